package locnews

import "context"

// Summarizer produces a short summary of article text.
type Summarizer interface {
	// Summarize returns a summary of text.
	// Returns EINVALID if text is too short to summarize.
	Summarize(ctx context.Context, text string) (string, error)
}

// TokenCounter counts model tokens in text.
type TokenCounter interface {
	CountTokens(ctx context.Context, text string) (int, error)
}
