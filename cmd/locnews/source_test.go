package main_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/locnews"
	main "github.com/fwojciec/locnews/cmd/locnews"
	"github.com/fwojciec/locnews/mock"
	locredis "github.com/fwojciec/locnews/redis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoSources() *mock.SourceService {
	sources := []*locnews.Source{
		{ID: "src-1", Name: "thoi-su", FeedURL: "https://vnexpress.net/rss/thoi-su.rss"},
		{ID: "src-2", Name: "the-gioi", FeedURL: "https://vnexpress.net/rss/the-gioi.rss"},
	}
	return &mock.SourceService{
		FindSourcesFn: func(_ context.Context, filter locnews.SourceFilter) ([]*locnews.Source, error) {
			if filter.Name == nil {
				return sources, nil
			}
			for _, s := range sources {
				if s.Name == *filter.Name {
					return []*locnews.Source{s}, nil
				}
			}
			return nil, nil
		},
	}
}

func TestSourceAddCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("creates source", func(t *testing.T) {
		t.Parallel()

		var created *locnews.Source
		deps, stdout, _ := newDeps()
		deps.Sources = &mock.SourceService{
			CreateSourceFn: func(_ context.Context, s *locnews.Source) error {
				s.ID = "src-123"
				created = s
				return nil
			},
		}

		cmd := &main.SourceAddCmd{Name: "thoi-su", FeedURL: "https://vnexpress.net/rss/thoi-su.rss"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, "https://vnexpress.net/rss/thoi-su.rss", created.FeedURL)
		assert.Contains(t, stdout.String(), "src-123")
	})

	t.Run("reports create error", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := newDeps()
		deps.Sources = &mock.SourceService{
			CreateSourceFn: func(_ context.Context, _ *locnews.Source) error {
				return locnews.Errorf(locnews.EINVALID, "source feed URL required")
			},
		}

		cmd := &main.SourceAddCmd{Name: "thoi-su"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "source feed URL required")
	})
}

func TestSourceDeleteCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("requires force", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := newDeps()
		deps.Sources = twoSources()

		cmd := &main.SourceDeleteCmd{Name: "thoi-su"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "--force")
	})

	t.Run("deletes source by name", func(t *testing.T) {
		t.Parallel()

		var deleted string
		deps, stdout, _ := newDeps()
		sources := twoSources()
		sources.DeleteSourceFn = func(_ context.Context, id string) error {
			deleted = id
			return nil
		}
		deps.Sources = sources

		cmd := &main.SourceDeleteCmd{Name: "the-gioi", Force: true}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "src-2", deleted)
		assert.Contains(t, stdout.String(), "Deleted source")
	})

	t.Run("unknown source", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := newDeps()
		deps.Sources = twoSources()

		cmd := &main.SourceDeleteCmd{Name: "kinh-doanh", Force: true}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, locnews.ENOTFOUND, locnews.ErrorCode(err))
		assert.Contains(t, stderr.String(), "not found")
	})
}

func TestSourceListCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists sources", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps()
		deps.Sources = twoSources()

		err := (&main.SourceListCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "thoi-su")
		assert.Contains(t, stdout.String(), "https://vnexpress.net/rss/the-gioi.rss")
	})

	t.Run("returns error when FindSources fails", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := newDeps()
		deps.Sources = &mock.SourceService{
			FindSourcesFn: func(_ context.Context, _ locnews.SourceFilter) ([]*locnews.Source, error) {
				return nil, errors.New("database connection failed")
			},
		}

		err := (&main.SourceListCmd{}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "database connection failed")
	})
}

func TestSourceTriggerCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("queues every source", func(t *testing.T) {
		t.Parallel()

		queue := &taskQueue{}
		deps, stdout, _ := newDeps()
		deps.Sources = twoSources()
		deps.Tasks = queue

		err := (&main.SourceTriggerCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, []locredis.Task{
			{URL: "https://vnexpress.net/rss/thoi-su.rss", SourceID: "src-1", Name: "thoi-su"},
			{URL: "https://vnexpress.net/rss/the-gioi.rss", SourceID: "src-2", Name: "the-gioi"},
		}, queue.tasks)
		assert.Contains(t, stdout.String(), "Queued the-gioi")
	})

	t.Run("queues named source", func(t *testing.T) {
		t.Parallel()

		queue := &taskQueue{}
		deps, _, _ := newDeps()
		deps.Sources = twoSources()
		deps.Tasks = queue

		err := (&main.SourceTriggerCmd{Name: "the-gioi"}).Run(deps)

		require.NoError(t, err)
		require.Len(t, queue.tasks, 1)
		assert.Equal(t, "src-2", queue.tasks[0].SourceID)
	})

	t.Run("stops on enqueue error", func(t *testing.T) {
		t.Parallel()

		queue := &taskQueue{enqueueFn: func(locredis.Task) error {
			return errors.New("connection refused")
		}}
		deps, _, stderr := newDeps()
		deps.Sources = twoSources()
		deps.Tasks = queue

		err := (&main.SourceTriggerCmd{}).Run(deps)

		require.Error(t, err)
		assert.Empty(t, queue.tasks)
		assert.Contains(t, stderr.String(), "connection refused")
	})
}

func TestSourceUpdateCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("updates feed URL", func(t *testing.T) {
		t.Parallel()

		var got locnews.SourceUpdate
		deps, stdout, _ := newDeps()
		sources := twoSources()
		sources.UpdateSourceFn = func(_ context.Context, id string, upd locnews.SourceUpdate) (*locnews.Source, error) {
			assert.Equal(t, "src-1", id)
			got = upd
			return &locnews.Source{ID: id, Name: "thoi-su", FeedURL: *upd.FeedURL}, nil
		}
		deps.Sources = sources

		err := (&main.SourceUpdateCmd{Name: "thoi-su", FeedURL: "https://vnexpress.net/rss/thoi-su-moi.rss"}).Run(deps)

		require.NoError(t, err)
		assert.Nil(t, got.Name)
		assert.Contains(t, stdout.String(), "https://vnexpress.net/rss/thoi-su-moi.rss")
	})

	t.Run("requires a change", func(t *testing.T) {
		t.Parallel()

		deps, _, _ := newDeps()
		deps.Sources = twoSources()

		err := (&main.SourceUpdateCmd{Name: "thoi-su"}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, locnews.EINVALID, locnews.ErrorCode(err))
	})
}
