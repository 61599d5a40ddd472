package goquery_test

import (
	"testing"

	"github.com/fwojciec/locnews"
	"github.com/fwojciec/locnews/ahocorasick"
	"github.com/fwojciec/locnews/goquery"
	"github.com/fwojciec/locnews/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pageURL = "https://news.example.com/world/story-123.html"

func walk(t *testing.T, body string) []locnews.Fragment {
	t.Helper()
	w := goquery.NewWalker(ahocorasick.NewDetector())
	return w.Walk(parseArticle(t, body), pageURL)
}

func TestWalker_Walk(t *testing.T) {
	t.Parallel()

	t.Run("preserves document order across nesting depths", func(t *testing.T) {
		t.Parallel()

		got := walk(t, `<article>
<p>First paragraph text.</p>
<div><div><div><p>Second paragraph text.</p></div></div></div>
<section><p>Third paragraph text.</p></section>
</article>`)

		assert.Equal(t, []locnews.Fragment{
			locnews.Paragraph("First paragraph text."),
			locnews.Paragraph("Second paragraph text."),
			locnews.Paragraph("Third paragraph text."),
		}, got)
	})

	t.Run("excludes h1 and flattens wrappers", func(t *testing.T) {
		t.Parallel()

		got := walk(t, `<article><h1>Headline</h1><div><p>Alpha text</p><div><p>Bravo text</p></div></div></article>`)

		assert.Equal(t, "<p>Alpha text</p>\n<p>Bravo text</p>", locnews.RenderFragments(got))
	})

	t.Run("drops script-like text nodes and paragraphs", func(t *testing.T) {
		t.Parallel()

		got := walk(t, `<article>
<div>pageSettings.allow3rd _mgq.load _isAdsHidden</div>
<p>Recommended by Taboola partners today</p>
<p>if (typeof window !== 'undefined') { document.write(x); }</p>
<p>Genuine reporting survives the filter.</p>
</article>`)

		assert.Equal(t, []locnews.Fragment{
			locnews.Paragraph("Genuine reporting survives the filter."),
		}, got)
	})

	t.Run("keeps prose that merely mentions code words", func(t *testing.T) {
		t.Parallel()

		got := walk(t, `<article><p>The container ship docked at the port after a long voyage.</p></article>`)

		require.Len(t, got, 1)
		assert.Equal(t, "The container ship docked at the port after a long voyage.", got[0].Text)
	})

	t.Run("emits raw text nodes as paragraphs", func(t *testing.T) {
		t.Parallel()

		got := walk(t, `<article><span>Flat unstructured text in a span.</span> Trailing text node here.</article>`)

		assert.Equal(t, []locnews.Fragment{
			locnews.Paragraph("Flat unstructured text in a span."),
			locnews.Paragraph("Trailing text node here."),
		}, got)
	})

	t.Run("skips category labels, short and boilerplate paragraphs", func(t *testing.T) {
		t.Parallel()

		got := walk(t, `<article>
<div>Kinh tế</div>
<p>Hi!</p>
<p>Chia sẻ bài viết này</p>
<p>Liên hệ: tips@example.com</p>
<p>Cập nhật 10:00 GMT+7</p>
<p>Giá vàng tăng mạnh trong phiên sáng nay.</p>
</article>`)

		assert.Equal(t, []locnews.Fragment{
			locnews.Paragraph("Giá vàng tăng mạnh trong phiên sáng nay."),
		}, got)
	})

	t.Run("skips chrome tags and blocked classes without recursing", func(t *testing.T) {
		t.Parallel()

		got := walk(t, `<article>
<nav><p>Navigation paragraph.</p></nav>
<div class="article-author"><p>Reporter name line.</p></div>
<div class="keyword-list"><p>Keyword paragraph.</p></div>
<p>Body paragraph text.</p>
</article>`)

		assert.Equal(t, []locnews.Fragment{locnews.Paragraph("Body paragraph text.")}, got)
	})

	t.Run("emits headings, quotes, lists and tables", func(t *testing.T) {
		t.Parallel()

		got := walk(t, `<article>
<h2>Section  heading</h2>
<h4>Minor heading</h4>
<blockquote>A quoted <b>statement</b>.</blockquote>
<ol><li>One</li><li></li><li>Two <ul><li>nested</li></ul></li></ol>
<table><tr><td>Cell</td></tr></table>
</article>`)

		assert.Equal(t, []locnews.Fragment{
			locnews.Heading(2, "Section heading"),
			locnews.Heading(4, "Minor heading"),
			locnews.Blockquote("A quoted statement."),
			locnews.List(true, []string{"One", "Two nested"}),
			locnews.Table("<table><tbody><tr><td>Cell</td></tr></tbody></table>"),
		}, got)
	})

	t.Run("resolves lazy image sources against the page", func(t *testing.T) {
		t.Parallel()

		got := walk(t, `<article>
<img data-src="/images/photo.jpg" alt="Harbor">
<img src="placeholder.gif" data-src="lazy.jpg">
<img data-original="//cdn.example.net/o.jpg">
<img alt="no source">
</article>`)

		assert.Equal(t, []locnews.Fragment{
			locnews.Image("https://news.example.com/images/photo.jpg", "Harbor"),
			locnews.Image("https://news.example.com/world/lazy.jpg", ""),
			locnews.Image("https://cdn.example.net/o.jpg", ""),
		}, got)
	})

	t.Run("keeps video embeds and drops ad iframes", func(t *testing.T) {
		t.Parallel()

		got := walk(t, `<article>
<iframe src="https://www.youtube.com/embed/xyz"></iframe>
<iframe src="https://ads.example.com/banner"></iframe>
<iframe data-src="https://media.example.org/player?id=7"></iframe>
</article>`)

		assert.Equal(t, []locnews.Fragment{
			locnews.Iframe("https://www.youtube.com/embed/xyz"),
			locnews.Iframe("https://media.example.org/player?id=7"),
		}, got)
		assert.Equal(t,
			`<iframe src="https://www.youtube.com/embed/xyz" allowfullscreen loading="lazy"></iframe>`,
			got[0].Render())
	})

	t.Run("resolves video sources and posters", func(t *testing.T) {
		t.Parallel()

		got := walk(t, `<article>
<video poster="/thumbs/v.jpg"><source data-src="/clips/v.mp4"></video>
<video data-src="https://cdn.example.net/a.mp4"></video>
<video><p>Fallback text for old browsers.</p></video>
</article>`)

		assert.Equal(t, []locnews.Fragment{
			locnews.Video("https://news.example.com/clips/v.mp4", "https://news.example.com/thumbs/v.jpg"),
			locnews.Video("https://cdn.example.net/a.mp4", ""),
		}, got)
	})

	t.Run("figure prefers embeds then video then image and adds the caption", func(t *testing.T) {
		t.Parallel()

		got := walk(t, `<article>
<figure><img src="/a.jpg" alt="A"><figcaption>Photo  caption</figcaption></figure>
<figure><iframe src="https://player.vcdn.vn/v/1"></iframe><img src="/b.jpg"></figure>
<figure><iframe src="https://ads.example.com/x"></iframe><img src="/c.jpg"></figure>
<figure><figcaption>Caption only</figcaption></figure>
</article>`)

		assert.Equal(t, []locnews.Fragment{
			locnews.Image("https://news.example.com/a.jpg", "A"),
			locnews.Caption("Photo caption"),
			locnews.Iframe("https://player.vcdn.vn/v/1"),
			locnews.Image("https://news.example.com/c.jpg", ""),
			locnews.Caption("Caption only"),
		}, got)
	})

	t.Run("falls back to text lines when the walk yields nothing", func(t *testing.T) {
		t.Parallel()

		got := walk(t, `<article class="topic-page">Line one of genuine text
short
Line two of genuine text</article>`)

		assert.Equal(t, []locnews.Fragment{
			locnews.Paragraph("Line one of genuine text"),
			locnews.Paragraph("Line two of genuine text"),
		}, got)
	})

	t.Run("fallback still filters noise", func(t *testing.T) {
		t.Parallel()

		got := walk(t, `<article class="thread"><h1>window.runinit({ id: 1 });</h1></article>`)

		assert.Empty(t, got)
	})

	t.Run("consults the noise detector for every text", func(t *testing.T) {
		t.Parallel()

		var seen []string
		noise := &mock.NoiseDetector{
			IsNoiseFn: func(text string) bool {
				seen = append(seen, text)
				return text == "Blocked paragraph text."
			},
		}
		w := goquery.NewWalker(noise)

		got := w.Walk(parseArticle(t, `<article><p>Blocked paragraph text.</p>Kept node text.</article>`), pageURL)

		assert.Equal(t, []locnews.Fragment{locnews.Paragraph("Kept node text.")}, got)
		assert.Equal(t, []string{"Blocked paragraph text.", "Kept node text."}, seen)
	})

	t.Run("nil detector keeps all text", func(t *testing.T) {
		t.Parallel()

		got := goquery.NewWalker(nil).Walk(parseArticle(t, `<article><p>var a = 1; let b = 2;</p></article>`), "")

		assert.Equal(t, []locnews.Fragment{locnews.Paragraph("var a = 1; let b = 2;")}, got)
	})
}

func TestIsVideoEmbed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		src  string
		want bool
	}{
		{"https://www.youtube.com/embed/xyz", true},
		{"https://youtu.be/xyz", true},
		{"https://YouTube.com/watch?v=xyz", true},
		{"https://v.vnecdn.net/vne/1.mp4", true},
		{"https://youtube.com.evil.net/watch?v=xyz", false},
		{"https://notyoutube.com/watch?v=xyz", false},
		{"https://player.vimeo.com/video/1", true},
		{"https://tv.example.com/embed/1", true},
		{"https://tv.example.com/watch?player=1", true},
		{"https://ads.example.com/banner", false},
		{"https://video-ads.example.com/banner", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, goquery.IsVideoEmbed(tt.src))
		})
	}
}
