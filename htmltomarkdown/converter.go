// Package htmltomarkdown renders serialized article bodies as Markdown for
// terminal display and summarizer input.
package htmltomarkdown

import (
	"regexp"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/locnews"
)

var _ locnews.Converter = (*Converter)(nil)

// Markdown has no embed syntax, so video and iframe fragments become links.
var (
	videoFragment  = regexp.MustCompile(`<video controls src="([^"]*)"[^>]*></video>`)
	iframeFragment = regexp.MustCompile(`<iframe src="([^"]*)"[^>]*></iframe>`)
)

// Converter turns article content into Markdown.
type Converter struct {
	conv *converter.Converter
}

// NewConverter returns a Converter with CommonMark and table support.
func NewConverter() *Converter {
	return &Converter{
		conv: converter.NewConverter(
			converter.WithPlugins(
				base.NewBasePlugin(),
				commonmark.NewCommonmarkPlugin(),
				table.NewTablePlugin(),
			),
		),
	}
}

// Convert renders serialized fragments as Markdown.
func (c *Converter) Convert(content string) (string, error) {
	if strings.TrimSpace(content) == "" {
		return "", locnews.Errorf(locnews.EINVALID, "empty HTML input")
	}

	content = videoFragment.ReplaceAllString(content, `<p><a href="$1">Video</a></p>`)
	content = iframeFragment.ReplaceAllString(content, `<p><a href="$1">Embedded player</a></p>`)

	md, err := c.conv.ConvertString(content)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(md), nil
}
