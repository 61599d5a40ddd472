package locnews

import "context"

// CrawlResult is the outcome of crawling a single article URL.
type CrawlResult struct {
	// Content is the newline-joined serialized fragments. Empty on failure.
	Content string `json:"content,omitempty"`

	// ImageURL is the first image of the extracted body, if any.
	ImageURL string `json:"imageUrl,omitempty"`

	// Success reports whether non-empty content was extracted.
	Success bool `json:"success"`
}

// ArticleCrawler fetches an article page and extracts its body.
type ArticleCrawler interface {
	// Crawl never fails: fetch, parse and extraction problems are reported
	// as a result with Success set to false. The result is never nil.
	Crawl(ctx context.Context, url string) *CrawlResult
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
