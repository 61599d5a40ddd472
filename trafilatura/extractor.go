// Package trafilatura adapts go-trafilatura to locnews.Extractor. It serves
// as a reference engine for the compare command.
package trafilatura

import (
	"bytes"
	"net/url"
	"strings"

	"github.com/fwojciec/locnews"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements locnews.Extractor at compile time.
var _ locnews.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content as markup.
// Fragments are left nil.
func (e *Extractor) Extract(pageURL, rawHTML string) (*locnews.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, locnews.Errorf(locnews.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
		IncludeImages:  true,
	}
	if u, err := url.Parse(pageURL); err == nil && u.Host != "" {
		opts.OriginalURL = u
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, locnews.Errorf(locnews.ENOTFOUND, "no article content: %v", err)
	}

	var content string
	if result.ContentNode != nil {
		content, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	return &locnews.ExtractResult{
		Title:   result.Metadata.Title,
		Content: content,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
