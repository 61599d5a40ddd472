package goquery

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/locnews"
	"golang.org/x/net/html"
)

// Walker converts a stripped article container into an ordered list of
// typed content fragments.
type Walker struct {
	noise locnews.NoiseDetector
}

// NewWalker creates a Walker that drops text the detector classifies as noise.
func NewWalker(noise locnews.NoiseDetector) *Walker {
	return &Walker{noise: noise}
}

// Walk traverses container depth-first in document order. Media URLs are
// resolved against pageURL. When the traversal yields nothing, the plain
// text lines of the container are returned as paragraphs instead.
func (w *Walker) Walk(container *goquery.Selection, pageURL string) []locnews.Fragment {
	if container.Length() == 0 {
		return nil
	}
	base, err := url.Parse(pageURL)
	if err != nil || !base.IsAbs() {
		base = nil
	}

	s := &walkState{walker: w, base: base}
	s.walk(container)
	if len(s.fragments) > 0 {
		return s.fragments
	}
	return w.fallback(container)
}

func (w *Walker) fallback(container *goquery.Selection) []locnews.Fragment {
	var fragments []locnews.Fragment
	for _, node := range textNodes(container.Get(0)) {
		for _, line := range strings.Split(node, "\n") {
			line = strings.TrimSpace(line)
			if utf8.RuneCountInString(line) <= minFallbackLineLength || w.isNoise(line) {
				continue
			}
			fragments = append(fragments, locnews.Paragraph(line))
		}
	}
	return fragments
}

func (w *Walker) isNoise(text string) bool {
	return w.noise != nil && w.noise.IsNoise(text)
}

type walkState struct {
	walker    *Walker
	base      *url.URL
	fragments []locnews.Fragment
}

func (s *walkState) emit(f locnews.Fragment) {
	s.fragments = append(s.fragments, f)
}

func (s *walkState) walk(sel *goquery.Selection) {
	node := sel.Get(0)
	switch node.Type {
	case html.TextNode:
		s.text(node.Data)
		return
	case html.ElementNode:
	default:
		return
	}

	name := goquery.NodeName(sel)
	if SkipTags[name] || name == "h1" {
		return
	}
	if BlockClassPattern.MatchString(sel.AttrOr("class", "")) {
		return
	}

	switch name {
	case "h2", "h3", "h4", "h5", "h6":
		if text := flatten(sel); text != "" {
			s.emit(locnews.Heading(int(name[1]-'0'), text))
		}
	case "p":
		s.paragraph(sel)
	case "img":
		s.image(sel)
	case "video":
		s.video(sel)
	case "iframe":
		s.iframe(sel)
	case "figure":
		s.figure(sel)
	case "blockquote":
		if text := flatten(sel); text != "" {
			s.emit(locnews.Blockquote(text))
		}
	case "ul", "ol":
		s.list(sel, name == "ol")
	case "table":
		if markup, err := goquery.OuterHtml(sel); err == nil {
			s.emit(locnews.Table(markup))
		}
	default:
		sel.Contents().Each(func(_ int, child *goquery.Selection) {
			s.walk(child)
		})
	}
}

func (s *walkState) text(raw string) {
	text := strings.TrimSpace(raw)
	if text == "" || CategoryStopwords[normalize(text)] || s.walker.isNoise(text) {
		return
	}
	s.emit(locnews.Paragraph(text))
}

func (s *walkState) paragraph(sel *goquery.Selection) {
	text := flatten(sel)
	if utf8.RuneCountInString(text) <= minParagraphLength {
		return
	}
	lower := normalize(text)
	if isBoilerplate(lower) || CategoryStopwords[lower] || s.walker.isNoise(text) {
		return
	}
	s.emit(locnews.Paragraph(text))
}

// isBoilerplate matches share prompts, contact lines and datelines.
func isBoilerplate(lower string) bool {
	return containsAny(lower, BoilerplatePhrases) ||
		EmailPattern.MatchString(lower) ||
		TimezonePattern.MatchString(lower)
}

func (s *walkState) image(sel *goquery.Selection) bool {
	src := resolveURL(s.base, firstAttr(sel, ImageSrcAttrs))
	if src == "" {
		return false
	}
	s.emit(locnews.Image(src, strings.TrimSpace(sel.AttrOr("alt", ""))))
	return true
}

func (s *walkState) video(sel *goquery.Selection) bool {
	src := firstAttr(sel, VideoSrcAttrs)
	if src == "" {
		src = firstAttr(sel.Find("source").First(), SourceSrcAttrs)
	}
	src = resolveURL(s.base, src)
	if src == "" {
		return false
	}
	poster := resolveURL(s.base, sel.AttrOr("poster", ""))
	s.emit(locnews.Video(src, poster))
	return true
}

func (s *walkState) iframe(sel *goquery.Selection) bool {
	src := resolveURL(s.base, firstAttr(sel, IframeSrcAttrs))
	if !IsVideoEmbed(src) {
		return false
	}
	s.emit(locnews.Iframe(src))
	return true
}

// figure emits the first embedded player, video or image, in that order of
// preference, followed by the caption.
func (s *walkState) figure(sel *goquery.Selection) {
	switch {
	case s.iframe(sel.Find("iframe").First()):
	case s.video(sel.Find("video").First()):
	default:
		s.image(sel.Find("img").First())
	}
	if caption := flatten(sel.Find("figcaption").First()); caption != "" {
		s.emit(locnews.Caption(caption))
	}
}

func (s *walkState) list(sel *goquery.Selection, ordered bool) {
	var items []string
	sel.ChildrenFiltered("li").Each(func(_ int, li *goquery.Selection) {
		if text := flatten(li); text != "" {
			items = append(items, text)
		}
	})
	if len(items) > 0 {
		s.emit(locnews.List(ordered, items))
	}
}
