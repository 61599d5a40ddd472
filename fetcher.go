package locnews

import "context"

// Fetcher retrieves HTML from URLs.
type Fetcher interface {
	// Fetch issues a single request for url and returns the decoded body.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}
