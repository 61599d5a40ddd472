package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/locnews"
)

// Ensure LoggingCrawler implements locnews.ArticleCrawler.
var _ locnews.ArticleCrawler = (*LoggingCrawler)(nil)

// LoggingCrawler wraps an ArticleCrawler with outcome logging.
type LoggingCrawler struct {
	next   locnews.ArticleCrawler
	logger *slog.Logger
}

// NewLoggingCrawler creates a new LoggingCrawler.
func NewLoggingCrawler(next locnews.ArticleCrawler, logger *slog.Logger) *LoggingCrawler {
	return &LoggingCrawler{next: next, logger: logger}
}

// Crawl delegates to the wrapped crawler and logs the outcome.
func (c *LoggingCrawler) Crawl(ctx context.Context, url string) *locnews.CrawlResult {
	begin := time.Now()
	result := c.next.Crawl(ctx, url)
	c.logger.Info("crawl",
		"url", url,
		"success", result.Success,
		"bytes", len(result.Content),
		"duration", time.Since(begin),
	)
	return result
}
