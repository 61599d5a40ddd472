package bloom_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/fwojciec/locnews/bloom"
	"github.com/stretchr/testify/assert"
)

func TestLinkFilter_Seen(t *testing.T) {
	t.Parallel()

	t.Run("reports links only after they are recorded", func(t *testing.T) {
		t.Parallel()

		f := bloom.NewLinkFilter(1000, 0.01)

		assert.False(t, f.Seen("https://example.com/news/1"))
		assert.True(t, f.Seen("https://example.com/news/1"))
		assert.False(t, f.Seen("https://example.com/news/2"))
	})

	t.Run("treats fragment and host case variants as equal", func(t *testing.T) {
		t.Parallel()

		f := bloom.NewLinkFilter(1000, 0.01)

		assert.False(t, f.Seen("https://Example.com/news/1#comments"))
		assert.True(t, f.Seen(" https://example.com/news/1 "))
	})

	t.Run("query strings distinguish links", func(t *testing.T) {
		t.Parallel()

		f := bloom.NewLinkFilter(1000, 0.01)

		assert.False(t, f.Seen("https://example.com/news?id=1"))
		assert.False(t, f.Seen("https://example.com/news?id=2"))
	})

	t.Run("an undersized filter never drops a new link", func(t *testing.T) {
		t.Parallel()

		f := bloom.NewLinkFilter(1, 0.5)

		for i := range 500 {
			assert.False(t, f.Seen(fmt.Sprintf("https://example.com/news/%d", i)), "link %d", i)
		}
		for i := range 500 {
			assert.True(t, f.Seen(fmt.Sprintf("https://example.com/news/%d", i)), "link %d", i)
		}
		assert.Equal(t, uint(500), f.Count())
	})

	t.Run("is safe for concurrent use", func(t *testing.T) {
		t.Parallel()

		f := bloom.NewLinkFilter(1000, 0.01)

		var wg sync.WaitGroup
		for i := range 50 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				f.Seen(fmt.Sprintf("https://example.com/news/%d", i))
			}()
		}
		wg.Wait()

		assert.Equal(t, uint(50), f.Count())
	})
}

func TestLinkFilter_Count(t *testing.T) {
	t.Parallel()

	f := bloom.NewLinkFilter(1000, 0.01)
	assert.Equal(t, uint(0), f.Count())

	f.Seen("https://example.com/news/1")
	f.Seen("https://example.com/news/2")
	f.Seen("https://example.com/news/3")

	assert.Equal(t, uint(3), f.Count())
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "https://example.com/a?b=1", bloom.Normalize("HTTPS://EXAMPLE.com/a?b=1#top"))
	assert.Equal(t, "%zz", bloom.Normalize(" %zz "))
}
