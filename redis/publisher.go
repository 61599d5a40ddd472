package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fwojciec/locnews"
	"github.com/redis/go-redis/v9"
)

// Compile-time interface verification.
var _ locnews.ArticlePublisher = (*Publisher)(nil)

// Publisher appends merged articles to a Redis stream.
type Publisher struct {
	client *redis.Client
	stream string
	maxLen int64
}

// PublisherOption configures a Publisher.
type PublisherOption func(*Publisher)

// WithStream overrides the target stream (default ArticleStream).
func WithStream(stream string) PublisherOption {
	return func(p *Publisher) {
		p.stream = stream
	}
}

// WithMaxLen caps the stream length with approximate trimming.
func WithMaxLen(n int64) PublisherOption {
	return func(p *Publisher) {
		p.maxLen = n
	}
}

// NewPublisher creates a Publisher writing to ArticleStream.
func NewPublisher(client *redis.Client, opts ...PublisherOption) *Publisher {
	p := &Publisher{client: client, stream: ArticleStream}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// articleMessage is the wire form consumed by the indexing service.
type articleMessage struct {
	SourceID  string `json:"source_id"`
	Title     string `json:"title"`
	Link      string `json:"link"`
	Published string `json:"published"`
	Summary   string `json:"summary"`
	Content   string `json:"content"`
	ImageURL  string `json:"image_url"`
}

// Publish appends the article as a JSON message.
func (p *Publisher) Publish(ctx context.Context, article *locnews.Article) error {
	body, err := json.Marshal(articleMessage{
		SourceID:  article.SourceID,
		Title:     article.Title,
		Link:      article.Link,
		Published: article.Published,
		Summary:   article.Summary,
		Content:   article.Content,
		ImageURL:  article.ImageURL,
	})
	if err != nil {
		return fmt.Errorf("failed to encode article: %w", err)
	}

	args := &redis.XAddArgs{
		Stream: p.stream,
		Values: map[string]any{payloadField: string(body)},
	}
	if p.maxLen > 0 {
		args.MaxLen = p.maxLen
		args.Approx = true
	}

	if err := p.client.XAdd(ctx, args).Err(); err != nil {
		return fmt.Errorf("failed to publish %s: %w", article.Link, err)
	}
	return nil
}
