package slog

import (
	"context"
	"log/slog"

	"github.com/fwojciec/locnews"
)

// Ensure LoggingPublisher implements locnews.ArticlePublisher.
var _ locnews.ArticlePublisher = (*LoggingPublisher)(nil)

// LoggingPublisher wraps an ArticlePublisher with logging.
type LoggingPublisher struct {
	next   locnews.ArticlePublisher
	logger *slog.Logger
}

// NewLoggingPublisher creates a new LoggingPublisher.
func NewLoggingPublisher(next locnews.ArticlePublisher, logger *slog.Logger) *LoggingPublisher {
	return &LoggingPublisher{next: next, logger: logger}
}

// Publish delegates to the wrapped publisher. Failures are logged at error
// level.
func (p *LoggingPublisher) Publish(ctx context.Context, article *locnews.Article) error {
	err := p.next.Publish(ctx, article)
	if err != nil {
		p.logger.Error("publish failed", "link", article.Link, "err", err)
		return err
	}
	p.logger.Info("published article", "title", article.Title, "link", article.Link)
	return nil
}
