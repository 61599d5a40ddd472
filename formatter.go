package locnews

import "strings"

// FormatArticle formats an article header followed by body for display.
// Empty header fields are omitted; title falls back to the link.
func FormatArticle(a *Article, body string) string {
	var b strings.Builder

	title := a.Title
	if title == "" {
		title = a.Link
	}
	b.WriteString("# " + title + "\n")
	if a.Link != "" && a.Link != title {
		b.WriteString("Link: " + a.Link + "\n")
	}
	if a.Published != "" {
		b.WriteString("Published: " + a.Published + "\n")
	}
	if a.ImageURL != "" {
		b.WriteString("Image: " + a.ImageURL + "\n")
	}
	if !a.Crawled {
		b.WriteString("(feed summary only)\n")
	}

	if body != "" {
		b.WriteString("\n")
		b.WriteString(body)
	}

	return strings.TrimRight(b.String(), "\n")
}
