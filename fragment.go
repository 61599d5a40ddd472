package locnews

import (
	"html"
	"strconv"
	"strings"
)

// FragmentKind identifies the kind of content block a Fragment holds.
type FragmentKind int

// FragmentKind constants.
const (
	FragmentParagraph FragmentKind = iota
	FragmentHeading
	FragmentImage
	FragmentVideo
	FragmentIframe
	FragmentBlockquote
	FragmentList
	FragmentTable
	FragmentCaption
)

var fragmentKindNames = [...]string{
	FragmentParagraph:  "paragraph",
	FragmentHeading:    "heading",
	FragmentImage:      "image",
	FragmentVideo:      "video",
	FragmentIframe:     "iframe",
	FragmentBlockquote: "blockquote",
	FragmentList:       "list",
	FragmentTable:      "table",
	FragmentCaption:    "caption",
}

// String returns the lowercase name of the kind.
func (k FragmentKind) String() string {
	if k < 0 || int(k) >= len(fragmentKindNames) {
		return "unknown"
	}
	return fragmentKindNames[k]
}

// Fragment is one extracted content block of an article body.
// Only the fields relevant to Kind are set.
type Fragment struct {
	Kind FragmentKind

	// Text holds the flattened text of paragraphs, headings, quotes and captions.
	Text string

	// Level is the heading level, 2 through 6.
	Level int

	// Src is the absolute media URL of images, videos and iframes.
	Src string

	// Alt is the alternative text of an image.
	Alt string

	// Poster is the absolute poster URL of a video, if any.
	Poster string

	// Ordered reports whether a list is numbered.
	Ordered bool

	// Items holds the text of each list item.
	Items []string

	// Markup holds the raw serialized markup of a table.
	Markup string
}

// Paragraph returns a paragraph fragment.
func Paragraph(text string) Fragment {
	return Fragment{Kind: FragmentParagraph, Text: text}
}

// Heading returns a heading fragment. Levels outside 2..6 are clamped.
func Heading(level int, text string) Fragment {
	level = min(max(level, 2), 6)
	return Fragment{Kind: FragmentHeading, Level: level, Text: text}
}

// Image returns an image fragment.
func Image(src, alt string) Fragment {
	return Fragment{Kind: FragmentImage, Src: src, Alt: alt}
}

// Video returns a video fragment. poster may be empty.
func Video(src, poster string) Fragment {
	return Fragment{Kind: FragmentVideo, Src: src, Poster: poster}
}

// Iframe returns an embedded player fragment.
func Iframe(src string) Fragment {
	return Fragment{Kind: FragmentIframe, Src: src}
}

// Blockquote returns a quotation fragment.
func Blockquote(text string) Fragment {
	return Fragment{Kind: FragmentBlockquote, Text: text}
}

// List returns a list fragment.
func List(ordered bool, items []string) Fragment {
	return Fragment{Kind: FragmentList, Ordered: ordered, Items: items}
}

// Table returns a table fragment holding raw markup.
func Table(markup string) Fragment {
	return Fragment{Kind: FragmentTable, Markup: markup}
}

// Caption returns a figure caption fragment.
func Caption(text string) Fragment {
	return Fragment{Kind: FragmentCaption, Text: text}
}

// Render serializes the fragment to its fixed HTML form.
// Text and attribute values are escaped so each fragment is well-formed
// on its own; table markup is emitted as-is.
func (f Fragment) Render() string {
	switch f.Kind {
	case FragmentParagraph:
		return "<p>" + html.EscapeString(f.Text) + "</p>"
	case FragmentHeading:
		tag := "h" + strconv.Itoa(f.Level)
		return "<" + tag + ">" + html.EscapeString(f.Text) + "</" + tag + ">"
	case FragmentImage:
		return `<img src="` + html.EscapeString(f.Src) + `" alt="` + html.EscapeString(f.Alt) + `" />`
	case FragmentVideo:
		var b strings.Builder
		b.WriteString(`<video controls src="`)
		b.WriteString(html.EscapeString(f.Src))
		b.WriteString(`"`)
		if f.Poster != "" {
			b.WriteString(` poster="`)
			b.WriteString(html.EscapeString(f.Poster))
			b.WriteString(`"`)
		}
		b.WriteString("></video>")
		return b.String()
	case FragmentIframe:
		return `<iframe src="` + html.EscapeString(f.Src) + `" allowfullscreen loading="lazy"></iframe>`
	case FragmentBlockquote:
		return "<blockquote>" + html.EscapeString(f.Text) + "</blockquote>"
	case FragmentList:
		tag := "ul"
		if f.Ordered {
			tag = "ol"
		}
		var b strings.Builder
		b.WriteString("<" + tag + ">")
		for _, item := range f.Items {
			b.WriteString("<li>")
			b.WriteString(html.EscapeString(item))
			b.WriteString("</li>")
		}
		b.WriteString("</" + tag + ">")
		return b.String()
	case FragmentTable:
		return f.Markup
	case FragmentCaption:
		return "<p><em>" + html.EscapeString(f.Text) + "</em></p>"
	}
	return ""
}

// RenderFragments serializes fragments in order, one per line.
func RenderFragments(fragments []Fragment) string {
	parts := make([]string, 0, len(fragments))
	for _, f := range fragments {
		if s := f.Render(); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "\n")
}

// FirstImageURL returns the source of the first image fragment, or "".
func FirstImageURL(fragments []Fragment) string {
	for _, f := range fragments {
		if f.Kind == FragmentImage && f.Src != "" {
			return f.Src
		}
	}
	return ""
}
