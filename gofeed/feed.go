// Package gofeed implements locnews.FeedService on top of the gofeed
// RSS/Atom parser.
package gofeed

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/locnews"
	"github.com/mmcdole/gofeed"
	ext "github.com/mmcdole/gofeed/extensions"
)

// Ensure FeedService implements locnews.FeedService at compile time.
var _ locnews.FeedService = (*FeedService)(nil)

// FeedService fetches feeds through a locnews.Fetcher and parses them.
type FeedService struct {
	fetcher locnews.Fetcher
}

// NewFeedService creates a FeedService that downloads feeds with fetcher.
func NewFeedService(fetcher locnews.Fetcher) *FeedService {
	return &FeedService{fetcher: fetcher}
}

// FetchFeed downloads and parses the feed at feedURL.
func (s *FeedService) FetchFeed(ctx context.Context, feedURL string, maxItems int) ([]*locnews.FeedEntry, error) {
	body, err := s.fetcher.Fetch(ctx, feedURL)
	if err != nil {
		return nil, err
	}
	return ParseFeed(ctx, body, feedURL, maxItems)
}

// ParseFeed parses an RSS or Atom document. Entries without a usable link
// are skipped; relative links resolve against feedURL. At most maxItems
// entries are returned when maxItems is positive.
func ParseFeed(ctx context.Context, body, feedURL string, maxItems int) ([]*locnews.FeedEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	parsed, err := gofeed.NewParser().ParseString(body)
	if err != nil {
		return nil, locnews.Errorf(locnews.EINVALID, "parse feed %s: %v", feedURL, err)
	}

	base, _ := url.Parse(feedURL)

	entries := make([]*locnews.FeedEntry, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		if maxItems > 0 && len(entries) >= maxItems {
			break
		}

		link := resolve(base, itemLink(item))
		if link == "" {
			continue
		}

		summaryHTML := item.Description
		if strings.TrimSpace(summaryHTML) == "" {
			summaryHTML = item.Content
		}

		entries = append(entries, &locnews.FeedEntry{
			Title:       strings.TrimSpace(item.Title),
			Link:        link,
			Published:   published(item),
			Summary:     StripHTML(summaryHTML),
			SummaryHTML: summaryHTML,
			ImageURL:    resolve(base, imageURL(item, summaryHTML)),
		})
	}

	return entries, nil
}

// itemLink prefers the explicit link, falling back to a GUID that looks
// like an HTTP URL.
func itemLink(item *gofeed.Item) string {
	if link := strings.TrimSpace(item.Link); link != "" {
		return link
	}
	if guid := strings.TrimSpace(item.GUID); strings.HasPrefix(guid, "http") {
		return guid
	}
	return ""
}

// published returns the publication time as RFC 3339 when the feed date
// parses, the raw feed value otherwise. Updated stands in for a missing
// publication date.
func published(item *gofeed.Item) string {
	switch {
	case item.PublishedParsed != nil:
		return item.PublishedParsed.UTC().Format(time.RFC3339)
	case strings.TrimSpace(item.Published) != "":
		return strings.TrimSpace(item.Published)
	case item.UpdatedParsed != nil:
		return item.UpdatedParsed.UTC().Format(time.RFC3339)
	}
	return strings.TrimSpace(item.Updated)
}

// imageURL walks the image sources of an entry in order of preference:
// media:content, media:thumbnail, an image enclosure, the entry image, and
// finally the first <img> of the summary.
func imageURL(item *gofeed.Item, summaryHTML string) string {
	media := item.Extensions["media"]
	if u := mediaURL(media, "content", true); u != "" {
		return u
	}
	if u := mediaURL(media, "thumbnail", false); u != "" {
		return u
	}
	for _, enc := range item.Enclosures {
		if enc != nil && enc.URL != "" && strings.HasPrefix(enc.Type, "image/") {
			return enc.URL
		}
	}
	if item.Image != nil && item.Image.URL != "" {
		return item.Image.URL
	}
	if u := FirstImageURL(summaryHTML); u != "" {
		return u
	}
	return FirstImageURL(item.Content)
}

// mediaURL returns the first url attribute of a Media RSS element, looking
// inside media:group as well. With imagesOnly, elements declaring a
// non-image medium or type are skipped.
func mediaURL(media map[string][]ext.Extension, name string, imagesOnly bool) string {
	if media == nil {
		return ""
	}
	candidates := media[name]
	for _, group := range media["group"] {
		candidates = append(candidates, group.Children[name]...)
	}
	for _, e := range candidates {
		u := strings.TrimSpace(e.Attrs["url"])
		if u == "" {
			continue
		}
		if imagesOnly && !isImageMedia(e.Attrs) {
			continue
		}
		return u
	}
	return ""
}

func isImageMedia(attrs map[string]string) bool {
	if medium := attrs["medium"]; medium != "" {
		return medium == "image"
	}
	if typ := attrs["type"]; typ != "" {
		return strings.HasPrefix(typ, "image/")
	}
	return true
}

// StripHTML returns the text of an HTML fragment with whitespace collapsed.
// Line breaks and block boundaries separate words.
func StripHTML(fragment string) string {
	if strings.TrimSpace(fragment) == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return strings.Join(strings.Fields(fragment), " ")
	}
	doc.Find("br").ReplaceWithHtml(" ")
	doc.Find("p, div, li, tr, blockquote, h1, h2, h3, h4, h5, h6").AfterHtml(" ")
	return strings.Join(strings.Fields(doc.Text()), " ")
}

// FirstImageURL returns the source of the first <img> in an HTML fragment,
// preferring lazy-loading attributes.
func FirstImageURL(fragment string) string {
	if !strings.Contains(fragment, "<img") {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return ""
	}
	var src string
	doc.Find("img").EachWithBreak(func(_ int, img *goquery.Selection) bool {
		for _, attr := range []string{"data-src", "src", "data-original"} {
			if v := strings.TrimSpace(img.AttrOr(attr, "")); v != "" {
				src = v
				return false
			}
		}
		return true
	})
	return src
}

func resolve(base *url.URL, ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" || base == nil {
		return ref
	}
	u, err := url.Parse(ref)
	if err != nil {
		return ""
	}
	return base.ResolveReference(u).String()
}
