package locnews

// NoiseDetector decides whether a fragment of text is script, tracking or
// ad code rather than human-readable article content.
type NoiseDetector interface {
	// IsNoise reports whether text looks like executable or tracking noise.
	// Implementations must be pure and safe for concurrent use.
	IsNoise(text string) bool
}

// ExtractResult holds the content extracted from an article page.
type ExtractResult struct {
	// Title is the page title from metadata, if any.
	Title string

	// Content is the serialized article body: one rendered fragment per line.
	Content string

	// Fragments holds the structured blocks behind Content, in document order.
	// Extractors that only produce markup leave it nil.
	Fragments []Fragment
}

// Extractor extracts the article body from an HTML page.
type Extractor interface {
	// Extract processes raw HTML fetched from pageURL and returns the body.
	// pageURL is used to resolve relative media URLs.
	// Returns ENOTFOUND if no article container exists in the page.
	Extract(pageURL, html string) (*ExtractResult, error)
}
