package main

import (
	"fmt"

	"github.com/fwojciec/locnews"
	"github.com/fwojciec/locnews/crawl"
)

// Run executes the fetch command.
func (c *FetchCmd) Run(deps *Dependencies) error {
	sources, err := selectSources(deps, c.Name)
	if err != nil {
		return err
	}

	var failed int
	for _, source := range sources {
		if err := ingest(deps, source); err != nil {
			failed++
		}
		if deps.Ctx.Err() != nil {
			return deps.Ctx.Err()
		}
	}

	if failed == len(sources) {
		return locnews.Errorf(locnews.EINTERNAL, "no source could be fetched")
	}
	return nil
}

// ingest runs one source through the ingester and prints a summary line.
func ingest(deps *Dependencies, source *locnews.Source) error {
	fmt.Fprintf(deps.Stdout, "%s\n", source.Name)

	progress := func(event crawl.ProgressEvent) {
		switch event.Type {
		case crawl.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "  Found %d new entries\n", event.Total)
		case crawl.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  fallback %s: %v\n", crawl.TruncateURL(event.URL, 80), event.Error)
		}
	}

	result, err := deps.Ingester.IngestSource(deps.Ctx, source, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "  error: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "  Saved %d articles (%s), %d existing, %d from summary, %d failed\n",
		result.New, crawl.FormatBytes(result.Bytes), result.Existing, result.Fallback, result.Failed)
	if result.Published > 0 {
		fmt.Fprintf(deps.Stdout, "  Published %d articles\n", result.Published)
	}
	return nil
}
