package crawl

import "github.com/fwojciec/locnews"

// Engine is a named extractor taking part in a comparison.
type Engine struct {
	Name      string
	Extractor locnews.Extractor
}

// Comparison is the outcome of one engine on one page.
type Comparison struct {
	Engine    string
	Title     string
	Bytes     int
	Fragments int
	Err       error
}

// Compare runs every engine over the same page, in order.
func Compare(pageURL, html string, engines []Engine) []Comparison {
	out := make([]Comparison, 0, len(engines))
	for _, e := range engines {
		c := Comparison{Engine: e.Name}
		result, err := e.Extractor.Extract(pageURL, html)
		if err != nil {
			c.Err = err
		} else {
			c.Title = result.Title
			c.Bytes = len(result.Content)
			c.Fragments = len(result.Fragments)
		}
		out = append(out, c)
	}
	return out
}

// ContentDiffers reports whether other recovered significantly more content
// than base: more than 50% longer, or any content when base has none.
// A failed base with a successful other also differs.
func ContentDiffers(base, other Comparison) bool {
	if other.Err != nil {
		return false
	}
	if base.Err != nil {
		return other.Bytes > 0
	}
	if base.Bytes == 0 {
		return other.Bytes > 0
	}
	return float64(other.Bytes) > float64(base.Bytes)*1.5
}
