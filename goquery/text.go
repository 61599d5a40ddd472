package goquery

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// flatten returns the text of a subtree with runs of whitespace collapsed.
func flatten(sel *goquery.Selection) string {
	return strings.Join(strings.Fields(sel.Text()), " ")
}

// normalize lowercases text and replaces non-breaking spaces for phrase
// and stopword comparisons.
func normalize(text string) string {
	return strings.TrimSpace(strings.ToLower(strings.ReplaceAll(text, "\u00a0", " ")))
}

// containsAny reports whether text contains any of the phrases.
func containsAny(text string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(text, p) {
			return true
		}
	}
	return false
}

// textNodes returns the trimmed, non-empty text nodes under n in document order.
func textNodes(n *html.Node) []string {
	var out []string
	var visit func(*html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" {
				out = append(out, t)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(n)
	return out
}

// strippedLength is the rune count of all trimmed text nodes under n.
func strippedLength(n *html.Node) int {
	total := 0
	for _, t := range textNodes(n) {
		total += utf8.RuneCountInString(t)
	}
	return total
}

// attached reports whether n is still inside the tree rooted at root.
func attached(root, n *html.Node) bool {
	for p := n; p != nil; p = p.Parent {
		if p == root {
			return true
		}
	}
	return false
}

// firstAttr returns the first non-empty trimmed value among attrs.
func firstAttr(sel *goquery.Selection, attrs []string) string {
	for _, a := range attrs {
		if v := strings.TrimSpace(sel.AttrOr(a, "")); v != "" {
			return v
		}
	}
	return ""
}
