package crawl

import (
	"context"
	"net"
	"strings"
	"sync"

	"github.com/fwojciec/locnews"
	"golang.org/x/time/rate"
)

// DefaultDomainRPS is the default crawl rate per publisher.
const DefaultDomainRPS = 2

var _ locnews.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter throttles crawls per publisher using token buckets.
// Hosts are grouped by publisher domain, so "www.example.com" and
// "EXAMPLE.com:443" share one bucket.
type DomainLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      float64
	burst    int
}

// NewDomainLimiter creates a DomainLimiter allowing rps requests per second
// per publisher with a burst of 1.
func NewDomainLimiter(rps float64) *DomainLimiter {
	return NewDomainLimiterBurst(rps, 1)
}

// NewDomainLimiterBurst is like NewDomainLimiter with a custom burst.
func NewDomainLimiterBurst(rps float64, burst int) *DomainLimiter {
	return &DomainLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
		burst:    max(burst, 1),
	}
}

// Wait blocks until the rate limit allows a request to host.
// Returns an error if the context is canceled before the wait completes.
func (d *DomainLimiter) Wait(ctx context.Context, host string) error {
	key := PublisherKey(host)

	d.mu.Lock()
	limiter, ok := d.limiters[key]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(d.rps), d.burst)
		d.limiters[key] = limiter
	}
	d.mu.Unlock()

	return limiter.Wait(ctx)
}

// Len returns the number of publishers seen so far.
func (d *DomainLimiter) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.limiters)
}

// PublisherKey lowercases host and drops the port and a leading "www.".
func PublisherKey(host string) string {
	host = strings.ToLower(strings.TrimSpace(host))
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	return strings.TrimPrefix(host, "www.")
}
