// Package crawl orchestrates article crawling: fetching a page, extracting
// its body, and feeding whole news sources through the crawler into storage.
package crawl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fwojciec/locnews"
)

// DefaultTimeout bounds a single article crawl.
const DefaultTimeout = 15 * time.Second

// Ensure Crawler implements locnews.ArticleCrawler at compile time.
var _ locnews.ArticleCrawler = (*Crawler)(nil)

// Crawler fetches a news page and extracts its article body.
// It never returns an error; every failure is an unsuccessful result.
type Crawler struct {
	Fetcher   locnews.Fetcher
	Extractor locnews.Extractor

	// Logger receives failure warnings. Nil discards them.
	Logger *slog.Logger

	// Timeout bounds each crawl. Zero means DefaultTimeout.
	Timeout time.Duration
}

// Crawl crawls url with the configured timeout.
func (c *Crawler) Crawl(ctx context.Context, url string) *locnews.CrawlResult {
	return c.CrawlTimeout(ctx, url, c.Timeout)
}

// CrawlTimeout crawls url, overriding the configured timeout for this call.
func (c *Crawler) CrawlTimeout(ctx context.Context, url string, timeout time.Duration) (result *locnews.CrawlResult) {
	logger := c.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	defer func() {
		if r := recover(); r != nil {
			logger.Warn("crawl failed", "url", url, "err", fmt.Errorf("panic: %v", r))
			result = &locnews.CrawlResult{}
		}
	}()

	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	html, err := c.Fetcher.Fetch(ctx, url)
	if err != nil {
		logger.Warn("crawl failed", "url", url, "err", err)
		return &locnews.CrawlResult{}
	}

	extracted, err := c.Extractor.Extract(url, html)
	if err != nil {
		if locnews.ErrorCode(err) == locnews.ENOTFOUND {
			logger.Warn("no article container", "url", url)
		} else {
			logger.Warn("crawl failed", "url", url, "err", err)
		}
		return &locnews.CrawlResult{}
	}

	if extracted.Content == "" {
		logger.Warn("crawl failed", "url", url, "err", "no content extracted")
		return &locnews.CrawlResult{}
	}

	logger.Info("crawled article", "url", url, "bytes", len(extracted.Content), "fragments", len(extracted.Fragments))

	return &locnews.CrawlResult{
		Content:  extracted.Content,
		ImageURL: locnews.FirstImageURL(extracted.Fragments),
		Success:  true,
	}
}
