package main

import (
	"context"
	"fmt"

	"github.com/fwojciec/locnews"
	locredis "github.com/fwojciec/locnews/redis"
)

// Run executes the worker command.
func (c *WorkerCmd) Run(deps *Dependencies) error {
	fmt.Fprintln(deps.Stderr, "Waiting for crawl tasks. Press Ctrl-C to stop.")
	return deps.Tasks.Consume(deps.Ctx, func(ctx context.Context, task locredis.Task) error {
		source, err := taskSource(ctx, deps, task)
		if err != nil {
			return err
		}
		result, err := deps.Ingester.IngestSource(ctx, source, nil)
		if err != nil {
			return err
		}
		deps.Logger.Info("task done",
			"source", source.Name,
			"new", result.New,
			"existing", result.Existing,
			"published", result.Published,
			"failed", result.Failed,
		)
		return nil
	})
}

// taskSource resolves the source a task refers to, by ID or else by name.
// Tasks for unknown sources are rejected so articles never reference a
// missing source.
func taskSource(ctx context.Context, deps *Dependencies, task locredis.Task) (*locnews.Source, error) {
	var source *locnews.Source
	switch {
	case task.SourceID != "":
		s, err := deps.Sources.FindSourceByID(ctx, task.SourceID)
		if err != nil {
			return nil, err
		}
		source = s
	case task.Name != "":
		sources, err := deps.Sources.FindSources(ctx, locnews.SourceFilter{Name: &task.Name, Limit: 1})
		if err != nil {
			return nil, err
		}
		if len(sources) == 0 {
			return nil, locnews.Errorf(locnews.ENOTFOUND, "source %q not found", task.Name)
		}
		source = sources[0]
	default:
		return nil, locnews.Errorf(locnews.EINVALID, "task for %s names no source", task.URL)
	}

	if task.URL != "" {
		source.FeedURL = task.URL
	}
	return source, nil
}
