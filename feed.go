package locnews

import "context"

// FeedEntry is a single item read from an RSS or Atom feed.
type FeedEntry struct {
	Title     string `json:"title"`
	Link      string `json:"link"`
	Published string `json:"published"`

	// Summary is the entry description with markup stripped.
	Summary string `json:"summary"`

	// SummaryHTML is the raw entry description, kept for image discovery.
	SummaryHTML string `json:"-"`

	// ImageURL is the image advertised by the feed, if any.
	ImageURL string `json:"imageUrl"`
}

// FeedService reads entries from news feeds.
type FeedService interface {
	// FetchFeed fetches and parses the feed at feedURL.
	// At most maxItems entries are returned; zero means no limit.
	FetchFeed(ctx context.Context, feedURL string, maxItems int) ([]*FeedEntry, error)
}
