// Package bloom de-duplicates article links within an ingestion run using
// a Bloom filter.
package bloom

import (
	"net/url"
	"strings"
	"sync"

	"github.com/bits-and-blooms/bloom/v3"
)

// LinkFilter remembers article links. The Bloom filter answers negatives;
// positives are confirmed against the exact set of recorded keys.
// It is safe for concurrent use.
type LinkFilter struct {
	mu   sync.Mutex
	f    *bloom.BloomFilter
	keys map[string]struct{}
}

// NewLinkFilter creates a filter sized for n expected links with the given
// false positive rate.
func NewLinkFilter(n uint, fpRate float64) *LinkFilter {
	return &LinkFilter{
		f:    bloom.NewWithEstimates(n, fpRate),
		keys: make(map[string]struct{}, n),
	}
}

// Seen records link and reports whether an equivalent link was recorded
// before. Links differing only by fragment or host case are equivalent.
func (l *LinkFilter) Seen(link string) bool {
	key := Normalize(link)

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.f.TestAndAddString(key) {
		if _, ok := l.keys[key]; ok {
			return true
		}
	}
	l.keys[key] = struct{}{}
	return false
}

// Count returns the number of distinct links recorded.
func (l *LinkFilter) Count() uint {
	l.mu.Lock()
	defer l.mu.Unlock()
	return uint(len(l.keys))
}

// Normalize returns the de-duplication key for link: trimmed, fragment
// dropped, scheme and host lowercased. Unparseable links are only trimmed.
func Normalize(link string) string {
	link = strings.TrimSpace(link)
	u, err := url.Parse(link)
	if err != nil {
		return link
	}
	u.Fragment = ""
	u.RawFragment = ""
	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	return u.String()
}
