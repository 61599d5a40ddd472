package goquery_test

import (
	"strings"
	"testing"

	gq "github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

// parseArticle parses body and returns its first <article> element.
func parseArticle(t *testing.T, body string) *gq.Selection {
	t.Helper()

	doc, err := gq.NewDocumentFromReader(strings.NewReader(body))
	require.NoError(t, err)

	sel := doc.Find("article").First()
	require.Equal(t, 1, sel.Length(), "fixture must contain an <article>")
	return sel
}

func parseDocument(t *testing.T, body string) *gq.Document {
	t.Helper()

	doc, err := gq.NewDocumentFromReader(strings.NewReader(body))
	require.NoError(t, err)
	return doc
}
