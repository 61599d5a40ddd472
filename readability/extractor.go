// Package readability adapts go-readability to locnews.Extractor. It serves
// as a reference engine for the compare command.
package readability

import (
	"net/url"
	"strings"

	"github.com/fwojciec/locnews"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements locnews.Extractor at compile time.
var _ locnews.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content as markup.
// Relative links and images are resolved against pageURL when it is absolute.
func (e *Extractor) Extract(pageURL, rawHTML string) (*locnews.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, locnews.Errorf(locnews.EINVALID, "empty HTML input")
	}

	var base *url.URL
	if u, err := url.Parse(pageURL); err == nil && u.Host != "" {
		base = u
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), base)
	if err != nil {
		return nil, locnews.Errorf(locnews.ENOTFOUND, "no article content: %v", err)
	}

	return &locnews.ExtractResult{
		Title:   article.Title,
		Content: article.Content,
	}, nil
}
