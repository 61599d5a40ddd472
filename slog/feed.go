package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/locnews"
)

// Ensure LoggingFeedService implements locnews.FeedService.
var _ locnews.FeedService = (*LoggingFeedService)(nil)

// LoggingFeedService wraps a FeedService with logging.
type LoggingFeedService struct {
	next   locnews.FeedService
	logger *slog.Logger
}

// NewLoggingFeedService creates a new LoggingFeedService.
func NewLoggingFeedService(next locnews.FeedService, logger *slog.Logger) *LoggingFeedService {
	return &LoggingFeedService{next: next, logger: logger}
}

// FetchFeed delegates to the wrapped service and logs the operation.
func (s *LoggingFeedService) FetchFeed(ctx context.Context, feedURL string, maxItems int) (entries []*locnews.FeedEntry, err error) {
	defer func(begin time.Time) {
		s.logger.Info("feed",
			"url", feedURL,
			"count", len(entries),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FetchFeed(ctx, feedURL, maxItems)
}
