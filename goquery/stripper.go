package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Stripper removes non-content subtrees from an article container before
// it is walked. Only descendants are removed; the container itself stays.
type Stripper struct{}

// NewStripper creates a new Stripper.
func NewStripper() *Stripper {
	return &Stripper{}
}

// Strip removes boilerplate from container in place and returns the number
// of subtrees removed. Stripping an already stripped container removes nothing.
func (s *Stripper) Strip(container *goquery.Selection) int {
	if container.Length() == 0 {
		return 0
	}
	root := container.Get(0)
	removed := 0

	remove := func(match func(*goquery.Selection) bool) func(int, *goquery.Selection) {
		return func(_ int, sel *goquery.Selection) {
			if !attached(root, sel.Get(0)) {
				return
			}
			if match(sel) {
				sel.Remove()
				removed++
			}
		}
	}

	container.Find("*").Each(remove(func(sel *goquery.Selection) bool {
		return SkipTags[goquery.NodeName(sel)]
	}))

	container.Find("[class]").Each(remove(func(sel *goquery.Selection) bool {
		return StripClassPattern.MatchString(sel.AttrOr("class", ""))
	}))

	container.Find("[id]").Each(remove(func(sel *goquery.Selection) bool {
		return StripIDPattern.MatchString(sel.AttrOr("id", ""))
	}))

	container.Find("div, section").Each(remove(func(sel *goquery.Selection) bool {
		return AdPattern.MatchString(sel.AttrOr("class", "")) || AdPattern.MatchString(sel.AttrOr("id", ""))
	}))

	container.Find("*").Each(remove(hasTagRole))

	// Text passes run last: removing a node can join the text around it
	// into a topic phrase.
	container.Find(TopicBlockTags).Each(remove(hasTopicPhrase))

	container.Find("[class]").Each(remove(func(sel *goquery.Selection) bool {
		return HighlightClassPattern.MatchString(sel.AttrOr("class", "")) && hasTopicPhrase(sel)
	}))

	return removed
}

func hasTopicPhrase(sel *goquery.Selection) bool {
	return containsAny(normalize(flatten(sel)), TopicPhrases)
}

func hasTagRole(sel *goquery.Selection) bool {
	for _, attr := range TagRoleAttrs {
		if strings.Contains(strings.ToLower(sel.AttrOr(attr, "")), TagRoleToken) {
			return true
		}
	}
	return false
}
