package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/locnews"
	"github.com/fwojciec/locnews/mock"
	locslog "github.com/fwojciec/locnews/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingPublisher_Publish(t *testing.T) {
	t.Parallel()

	t.Run("logs published article", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.ArticlePublisher{
			PublishFn: func(ctx context.Context, article *locnews.Article) error { return nil },
		}

		pub := locslog.NewLoggingPublisher(inner, logger)
		err := pub.Publish(context.Background(), &locnews.Article{Title: "Tin mới", Link: "https://x.vn/a"})

		require.NoError(t, err)
		assert.Contains(t, buf.String(), "published article")
		assert.Contains(t, buf.String(), "link=https://x.vn/a")
	})

	t.Run("logs and returns failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.ArticlePublisher{
			PublishFn: func(ctx context.Context, article *locnews.Article) error { return errors.New("down") },
		}

		pub := locslog.NewLoggingPublisher(inner, logger)
		err := pub.Publish(context.Background(), &locnews.Article{Link: "https://x.vn/a"})

		require.Error(t, err)
		assert.Contains(t, buf.String(), "level=ERROR")
		assert.Contains(t, buf.String(), "publish failed")
	})
}
