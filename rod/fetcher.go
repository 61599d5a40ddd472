// Package rod fetches pages through headless Chrome, for comparing what a
// rendered page holds against the plain HTTP fetch the crawler uses.
package rod

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/fwojciec/locnews"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

const (
	// DefaultFetchTimeout bounds one page load.
	DefaultFetchTimeout = 30 * time.Second

	// DefaultMaxPages is the number of pages served before Chrome is restarted.
	DefaultMaxPages = 50
)

var _ locnews.Fetcher = (*Fetcher)(nil)

// Fetcher returns the DOM of a page after its scripts have run.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	timeout  time.Duration
	maxPages int

	mu       sync.Mutex
	browser  *rod.Browser
	launcher *launcher.Launcher
	pages    int
	closed   bool
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithFetchTimeout sets the per-page load timeout.
func WithFetchTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithMaxPages sets how many pages one Chrome process serves.
func WithMaxPages(n int) Option {
	return func(f *Fetcher) {
		f.maxPages = n
	}
}

// NewFetcher launches headless Chrome. Close must be called when done.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{
		timeout:  DefaultFetchTimeout,
		maxPages: DefaultMaxPages,
	}
	for _, opt := range opts {
		opt(f)
	}

	if err := f.launch(); err != nil {
		return nil, err
	}
	return f, nil
}

// Fetch loads url, waits for the load event, and returns the serialized DOM.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	browser, err := f.acquire()
	if err != nil {
		return "", err
	}

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", fmt.Errorf("open page: %w", err)
	}
	defer page.Close()

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()
	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return "", err
	}
	if err := page.WaitLoad(); err != nil {
		return "", err
	}
	return page.HTML()
}

// Close stops Chrome. Close is safe to call more than once.
func (f *Fetcher) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return nil
	}
	f.closed = true
	return f.shutdown()
}

// acquire returns the running browser, restarting it once it has served
// maxPages pages. Chrome memory grows with every page even after close.
func (f *Fetcher) acquire() (*rod.Browser, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return nil, locnews.Errorf(locnews.EINVALID, "browser fetcher is closed")
	}

	if f.pages >= f.maxPages {
		old, oldLauncher := f.browser, f.launcher
		if err := f.launch(); err == nil {
			_ = old.Close()
			oldLauncher.Kill()
			f.pages = 0
		} else {
			f.browser, f.launcher = old, oldLauncher
		}
	}

	f.pages++
	return f.browser, nil
}

// launch starts Chrome. Must be called with mu held or before f is shared.
func (f *Fetcher) launch() error {
	l := launcher.New().
		Set("disable-dev-shm-usage").
		Set("disable-background-timer-throttling").
		Leakless(true).
		Headless(true)

	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return fmt.Errorf("connecting to browser: %w", err)
	}

	f.browser = browser
	f.launcher = l
	return nil
}

func (f *Fetcher) shutdown() error {
	var err error
	if f.browser != nil {
		err = f.browser.Close()
		f.browser = nil
	}
	if f.launcher != nil {
		f.launcher.Kill()
		f.launcher = nil
	}
	return err
}
