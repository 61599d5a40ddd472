package mock

import (
	"context"

	"github.com/fwojciec/locnews"
)

var _ locnews.ArticleCrawler = (*ArticleCrawler)(nil)

// ArticleCrawler is a mock implementation of locnews.ArticleCrawler.
type ArticleCrawler struct {
	CrawlFn func(ctx context.Context, url string) *locnews.CrawlResult
}

func (c *ArticleCrawler) Crawl(ctx context.Context, url string) *locnews.CrawlResult {
	return c.CrawlFn(ctx, url)
}
