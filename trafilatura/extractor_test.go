package trafilatura_test

import (
	"testing"

	"github.com/fwojciec/locnews"
	"github.com/fwojciec/locnews/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Extractor implements locnews.Extractor at compile time.
var _ locnews.Extractor = (*trafilatura.Extractor)(nil)

const pageURL = "https://vnexpress.net/thoi-su/mua-lon-1.html"

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts title from meta tags", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head>
<title>Mưa lớn ở Hà Nội - VnExpress</title>
<meta property="og:title" content="Mưa lớn ở Hà Nội">
</head>
<body>
<nav>Thời sự | Thế giới | Kinh doanh</nav>
<article>
<h1>Mưa lớn ở Hà Nội</h1>
<p>Mưa lớn kéo dài từ đêm qua khiến nhiều tuyến phố ngập sâu, giao thông ùn tắc nghiêm trọng.</p>
</article>
<footer>Bản quyền thuộc về VnExpress</footer>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(pageURL, html)

		require.NoError(t, err)
		assert.NotEmpty(t, result.Title)
		assert.Nil(t, result.Fragments)
	})

	t.Run("extracts main article content", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Tin tức</title></head>
<body>
<nav><a href="/">Trang chủ</a><a href="/the-gioi">Thế giới</a></nav>
<article>
<h1>Giá xăng giảm</h1>
<p>Giá xăng trong nước giảm lần thứ ba liên tiếp từ chiều nay theo quyết định của liên bộ Công Thương và Tài chính.</p>
<p>Xăng RON95 giảm hơn 500 đồng mỗi lít, về mức thấp nhất trong sáu tháng qua.</p>
</article>
<aside>Tin liên quan</aside>
<footer>Copyright 2026</footer>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(pageURL, html)

		require.NoError(t, err)
		assert.Contains(t, result.Content, "Giá xăng trong nước giảm")
		assert.Contains(t, result.Content, "RON95")
	})

	t.Run("removes footer boilerplate", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<article>
<h1>Article Title</h1>
<p>Article body with substantive content for readers about the flood season in the north.</p>
</article>
<footer>
<p>Copyright 2026 Example News</p>
<nav>Privacy | Terms | Contact</nav>
</footer>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(pageURL, html)

		require.NoError(t, err)
		assert.Contains(t, result.Content, "substantive content")
		assert.NotContains(t, result.Content, "Copyright 2026 Example News")
	})

	t.Run("accepts relative page URL", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><article><p>Nội dung bài báo đủ dài để được trích xuất bởi thư viện trafilatura trong bài kiểm thử này.</p></article></body></html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract("not-a-url", html)

		require.NoError(t, err)
		assert.Contains(t, result.Content, "Nội dung bài báo")
	})

	t.Run("returns EINVALID for empty input", func(t *testing.T) {
		t.Parallel()

		ext := trafilatura.NewExtractor()
		_, err := ext.Extract(pageURL, "  ")

		require.Error(t, err)
		assert.Equal(t, locnews.EINVALID, locnews.ErrorCode(err))
	})
}
