package redis_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/fwojciec/locnews"
	lredis "github.com/fwojciec/locnews/redis"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, client
}

func TestPublisher_Publish(t *testing.T) {
	t.Parallel()

	t.Run("appends article JSON to crawled_data", func(t *testing.T) {
		t.Parallel()

		_, client := setupRedis(t)
		pub := lredis.NewPublisher(client)
		ctx := context.Background()

		article := &locnews.Article{
			SourceID:  "src-1",
			Title:     "Bão số 3 đổ bộ",
			Link:      "https://vnexpress.net/bao-so-3.html",
			Published: "2026-09-01T02:00:00Z",
			Summary:   "Bão mạnh.",
			Content:   "<p>Bão mạnh.</p>",
			ImageURL:  "https://i.vnecdn.net/bao.jpg",
		}
		require.NoError(t, pub.Publish(ctx, article))

		entries, err := client.XRange(ctx, lredis.ArticleStream, "-", "+").Result()
		require.NoError(t, err)
		require.Len(t, entries, 1)

		var got map[string]string
		require.NoError(t, json.Unmarshal([]byte(entries[0].Values["data"].(string)), &got))
		assert.Equal(t, "src-1", got["source_id"])
		assert.Equal(t, article.Title, got["title"])
		assert.Equal(t, article.Link, got["link"])
		assert.Equal(t, article.Content, got["content"])
		assert.Equal(t, article.ImageURL, got["image_url"])
	})

	t.Run("writes to configured stream", func(t *testing.T) {
		t.Parallel()

		_, client := setupRedis(t)
		pub := lredis.NewPublisher(client, lredis.WithStream("custom"), lredis.WithMaxLen(100))
		ctx := context.Background()

		require.NoError(t, pub.Publish(ctx, &locnews.Article{Link: "https://x.example.com/a"}))

		n, err := client.XLen(ctx, "custom").Result()
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
	})

	t.Run("returns error when server is down", func(t *testing.T) {
		t.Parallel()

		mr, client := setupRedis(t)
		mr.Close()
		pub := lredis.NewPublisher(client)

		err := pub.Publish(context.Background(), &locnews.Article{Link: "https://x.example.com/a"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "https://x.example.com/a")
	})
}

func TestNewClient(t *testing.T) {
	t.Parallel()

	t.Run("connects with redis URL", func(t *testing.T) {
		t.Parallel()

		mr := miniredis.RunT(t)
		client, err := lredis.NewClient("redis://" + mr.Addr())
		require.NoError(t, err)
		client.Close()
	})

	t.Run("rejects invalid URL", func(t *testing.T) {
		t.Parallel()

		_, err := lredis.NewClient("not a url")
		require.Error(t, err)
	})
}
