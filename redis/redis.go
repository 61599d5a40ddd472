// Package redis provides Redis Streams transport for locnews: a publisher
// for merged articles and a consumer for crawl tasks.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Stream names shared with the downstream services.
const (
	TaskStream    = "crawl_tasks"
	ArticleStream = "crawled_data"
)

// payloadField is the stream entry field holding the JSON message body.
const payloadField = "data"

const connectionTimeout = 5 * time.Second

// NewClient parses a redis:// URL and returns a connected client.
func NewClient(url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), connectionTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return client, nil
}
