package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/locnews"
)

// Ensure Extractor implements locnews.Extractor.
var _ locnews.Extractor = (*Extractor)(nil)

// Extractor recovers article content from news pages using structural
// heuristics only: container selection, noise stripping, then an
// order-preserving walk.
type Extractor struct {
	selector *ContainerSelector
	stripper *Stripper
	walker   *Walker
}

// NewExtractor creates an Extractor that filters text through noise.
func NewExtractor(noise locnews.NoiseDetector) *Extractor {
	return &Extractor{
		selector: NewContainerSelector(),
		stripper: NewStripper(),
		walker:   NewWalker(noise),
	}
}

// Extract parses html and returns the page title and the rendered
// fragments of its article body. It returns ENOTFOUND when the page has no
// candidate container. An empty Content is not an error.
func (e *Extractor) Extract(pageURL, html string) (*locnews.ExtractResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, locnews.Errorf(locnews.EINVALID, "failed to parse HTML: %v", err)
	}

	title := pageTitle(doc)

	container := e.selector.Select(doc)
	if container == nil || container.Length() == 0 {
		return nil, locnews.Errorf(locnews.ENOTFOUND, "no article container")
	}

	e.stripper.Strip(container)
	fragments := e.walker.Walk(container, pageURL)

	return &locnews.ExtractResult{
		Title:     title,
		Content:   locnews.RenderFragments(fragments),
		Fragments: fragments,
	}, nil
}

// pageTitle prefers the Open Graph title, then <title>, then the first h1.
func pageTitle(doc *goquery.Document) string {
	if og := strings.TrimSpace(doc.Find(`meta[property="og:title"]`).AttrOr("content", "")); og != "" {
		return og
	}
	if t := flatten(doc.Find("title").First()); t != "" {
		return t
	}
	return flatten(doc.Find("h1").First())
}
