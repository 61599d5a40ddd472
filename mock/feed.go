package mock

import (
	"context"

	"github.com/fwojciec/locnews"
)

var _ locnews.FeedService = (*FeedService)(nil)

// FeedService is a mock implementation of locnews.FeedService.
type FeedService struct {
	FetchFeedFn func(ctx context.Context, feedURL string, maxItems int) ([]*locnews.FeedEntry, error)
}

func (s *FeedService) FetchFeed(ctx context.Context, feedURL string, maxItems int) ([]*locnews.FeedEntry, error) {
	return s.FetchFeedFn(ctx, feedURL, maxItems)
}
