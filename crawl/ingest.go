package crawl

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/fwojciec/locnews"
	"github.com/fwojciec/locnews/bloom"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultMaxItems is the number of feed entries read per source.
	DefaultMaxItems = 50

	// DefaultConcurrency is the number of articles crawled at once.
	DefaultConcurrency = 4

	// linkFalsePositiveRate is the acceptable false positive rate for link de-duplication.
	linkFalsePositiveRate = 0.001
)

// errEmptyFeed marks a feed read that returned no entries, so it is retried.
var errEmptyFeed = errors.New("feed returned no entries")

// Ingester reads a source's feed, crawls every new entry, and stores the
// merged articles.
type Ingester struct {
	Feeds    locnews.FeedService
	Crawler  locnews.ArticleCrawler
	Articles locnews.ArticleService

	// Publisher, if set, receives every newly stored article.
	Publisher locnews.ArticlePublisher

	// RateLimiter, if set, throttles crawls per article host.
	RateLimiter locnews.DomainLimiter

	Concurrency int
	MaxItems    int
	RetryDelays []time.Duration
	Logger      LogFunc
}

// IngestResult holds the outcome of ingesting one source.
type IngestResult struct {
	// Entries is the number of distinct entries read from the feed.
	Entries int
	// New is the number of articles stored.
	New int
	// Existing is the number of entries already stored.
	Existing int
	// Fallback is the number of stored articles whose content is the feed summary.
	Fallback int
	// Published is the number of stored articles handed to the publisher.
	Published int
	// Failed is the number of entries that could not be stored or published.
	Failed int
	// Bytes is the total content size of stored articles.
	Bytes int
}

// ProgressEvent reports progress during ingestion.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting ingestion progress.
type ProgressFunc func(event ProgressEvent)

// crawlOutcome holds the crawl of a single feed entry.
type crawlOutcome struct {
	position int
	result   *locnews.CrawlResult
}

// IngestSource ingests the feed of source. Only feed errors are returned;
// per-entry problems are counted in the result.
// The progress callback, if provided, receives one event per crawled entry.
func (i *Ingester) IngestSource(ctx context.Context, source *locnews.Source, progress ProgressFunc) (*IngestResult, error) {
	entries, err := i.fetchFeed(ctx, source.FeedURL)
	if err != nil {
		return nil, fmt.Errorf("fetch feed %s: %w", source.FeedURL, err)
	}

	result := &IngestResult{}
	pending := make([]*locnews.FeedEntry, 0, len(entries))
	seen := bloom.NewLinkFilter(uint(max(len(entries), 1)), linkFalsePositiveRate)
	for _, entry := range entries {
		if entry.Link == "" || seen.Seen(entry.Link) {
			continue
		}
		result.Entries++

		exists, err := i.exists(ctx, entry.Link)
		if err != nil {
			return nil, err
		}
		if exists {
			result.Existing++
			continue
		}
		pending = append(pending, entry)
	}

	crawled := i.crawlAll(ctx, pending, progress)

	for n, entry := range pending {
		article := Merge(source.ID, entry, crawled[n])

		if err := i.Articles.CreateArticle(ctx, article); err != nil {
			if locnews.ErrorCode(err) == locnews.ECONFLICT {
				result.Existing++
			} else {
				result.Failed++
				i.logf("  save %s: %v", entry.Link, err)
			}
			continue
		}

		result.New++
		result.Bytes += len(article.Content)
		if !article.Crawled {
			result.Fallback++
		}

		if i.Publisher == nil {
			continue
		}
		if err := i.Publisher.Publish(ctx, article); err != nil {
			result.Failed++
			i.logf("  publish %s: %v", entry.Link, err)
			continue
		}
		result.Published++
	}

	return result, nil
}

// fetchFeed reads the feed, retrying failures and empty reads. A feed that
// stays empty after every retry yields no entries and no error.
func (i *Ingester) fetchFeed(ctx context.Context, feedURL string) ([]*locnews.FeedEntry, error) {
	maxItems := i.MaxItems
	if maxItems <= 0 {
		maxItems = DefaultMaxItems
	}
	delays := i.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}

	entries, err := WithRetry(ctx, feedURL, delays, func(ctx context.Context) ([]*locnews.FeedEntry, error) {
		entries, err := i.Feeds.FetchFeed(ctx, feedURL, maxItems)
		if err == nil && len(entries) == 0 {
			return nil, errEmptyFeed
		}
		return entries, err
	}, i.Logger)
	if errors.Is(err, errEmptyFeed) {
		return nil, nil
	}
	return entries, err
}

func (i *Ingester) exists(ctx context.Context, link string) (bool, error) {
	found, err := i.Articles.FindArticles(ctx, locnews.ArticleFilter{Link: &link, Limit: 1})
	if err != nil {
		return false, fmt.Errorf("find article %s: %w", link, err)
	}
	return len(found) > 0, nil
}

// crawlAll crawls entries concurrently and returns results in entry order.
func (i *Ingester) crawlAll(ctx context.Context, entries []*locnews.FeedEntry, progress ProgressFunc) []*locnews.CrawlResult {
	concurrency := i.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	total := len(entries)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	resultCh := make(chan crawlOutcome, total)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for n, entry := range entries {
			g.Go(func() error {
				resultCh <- crawlOutcome{position: n, result: i.crawl(gctx, entry.Link)}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	var completed atomic.Int64
	results := make([]*locnews.CrawlResult, total)
	for outcome := range resultCh {
		completed.Add(1)
		results[outcome.position] = outcome.result

		if progress == nil {
			continue
		}
		event := ProgressEvent{
			Type:      ProgressCompleted,
			Completed: int(completed.Load()),
			Total:     total,
			URL:       entries[outcome.position].Link,
		}
		if !outcome.result.Success {
			event.Type = ProgressFailed
			event.Error = locnews.Errorf(locnews.ENOTFOUND, "no article content")
		}
		progress(event)
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	return results
}

func (i *Ingester) crawl(ctx context.Context, link string) *locnews.CrawlResult {
	if i.RateLimiter != nil {
		if u, err := url.Parse(link); err == nil {
			if err := i.RateLimiter.Wait(ctx, u.Host); err != nil {
				return &locnews.CrawlResult{}
			}
		}
	}
	if result := i.Crawler.Crawl(ctx, link); result != nil {
		return result
	}
	return &locnews.CrawlResult{}
}

func (i *Ingester) logf(format string, args ...any) {
	if i.Logger != nil {
		i.Logger(format, args...)
	}
}

// Merge combines a feed entry with its crawl into an article. Crawled
// content wins; otherwise the feed summary becomes a single paragraph.
// The image is the feed image, else the first image of the crawled body.
func Merge(sourceID string, entry *locnews.FeedEntry, crawled *locnews.CrawlResult) *locnews.Article {
	article := &locnews.Article{
		SourceID:  sourceID,
		Title:     entry.Title,
		Link:      entry.Link,
		Published: entry.Published,
		Summary:   entry.Summary,
		ImageURL:  entry.ImageURL,
	}

	if crawled != nil && crawled.Success && crawled.Content != "" {
		article.Content = crawled.Content
		article.Crawled = true
		if article.ImageURL == "" {
			article.ImageURL = crawled.ImageURL
		}
	} else if entry.Summary != "" {
		article.Content = locnews.Paragraph(entry.Summary).Render()
	}

	article.ContentHash = ComputeHash(article.Content)
	return article
}
