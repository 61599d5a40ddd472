package goquery

import (
	"regexp"

	"github.com/PuerkitoBio/goquery"
)

// ContainerRule matches the first element with the given tag whose Attr
// value matches Pattern. A rule without Attr matches the first element
// with the tag.
type ContainerRule struct {
	Tag     string
	Attr    string
	Pattern *regexp.Regexp
}

// ContainerRules lists article-body wrappers from most to least specific.
var ContainerRules = []ContainerRule{
	{Tag: "article"},
	{Tag: "div", Attr: "class", Pattern: regexp.MustCompile(`(?i)detail-content|detail__main|detail__cmain-main|detail__cmain|afcbc-body`)},
	{Tag: "div", Attr: "class", Pattern: regexp.MustCompile(`(?i)fck_detail|content_detail|detail__content|read__content|main-detail|container_detail|content-detail|section-content|article-content`)},
	{Tag: "section", Attr: "class", Pattern: regexp.MustCompile(`(?i)section-content|article-content`)},
	{Tag: "div", Attr: "class", Pattern: regexp.MustCompile(`(?i)article-body|article__body|story-body|post-content|entry-content|main-content|post`)},
	{Tag: "div", Attr: "id", Pattern: regexp.MustCompile(`(?i)article|content|detail|body`)},
	{Tag: "main"},
	{Tag: "div", Attr: "class", Pattern: regexp.MustCompile(`(?i)article|content|detail|body|main-content|post`)},
}

// ContainerSelector locates the article body root in a page.
type ContainerSelector struct {
	Rules []ContainerRule
}

// NewContainerSelector creates a ContainerSelector with the default rules.
func NewContainerSelector() *ContainerSelector {
	return &ContainerSelector{Rules: ContainerRules}
}

// Select returns the element matched by the first rule that matches
// anything. Without a match it returns the div with the most text, the
// first one on ties. It returns nil when the page has no div at all.
func (s *ContainerSelector) Select(doc *goquery.Document) *goquery.Selection {
	for _, rule := range s.Rules {
		if sel := rule.find(doc); sel.Length() > 0 {
			return sel
		}
	}
	return largestDiv(doc)
}

func (r ContainerRule) find(doc *goquery.Document) *goquery.Selection {
	candidates := doc.Find(r.Tag)
	if r.Attr == "" {
		return candidates.First()
	}
	return candidates.FilterFunction(func(_ int, sel *goquery.Selection) bool {
		v, ok := sel.Attr(r.Attr)
		return ok && r.Pattern.MatchString(v)
	}).First()
}

func largestDiv(doc *goquery.Document) *goquery.Selection {
	var best *goquery.Selection
	bestLen := -1
	doc.Find("div").Each(func(_ int, sel *goquery.Selection) {
		if n := strippedLength(sel.Get(0)); n > bestLen {
			best, bestLen = sel, n
		}
	})
	return best
}
