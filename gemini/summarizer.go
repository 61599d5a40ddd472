// Package gemini implements locnews.Summarizer using Google Gemini.
package gemini

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/locnews"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used for summaries.
const DefaultModel = "gemini-2.5-flash"

const (
	// MinTextLength is the shortest text, in characters, worth summarizing.
	MinTextLength = 50

	// MaxInputLength caps the characters sent to the model.
	MaxInputLength = 1024

	maxOutputTokens = 256
)

// Ensure Summarizer implements locnews.Summarizer at compile time.
var _ locnews.Summarizer = (*Summarizer)(nil)

// Summarizer implements locnews.Summarizer using Google Gemini.
type Summarizer struct {
	client *genai.Client
	model  string
}

// NewSummarizer creates a new Summarizer using DefaultModel.
func NewSummarizer(client *genai.Client) *Summarizer {
	return &Summarizer{client: client, model: DefaultModel}
}

// Summarize returns a short summary of text, written in the text's language.
func (s *Summarizer) Summarize(ctx context.Context, text string) (string, error) {
	text = strings.TrimSpace(text)
	if utf8.RuneCountInString(text) < MinTextLength {
		return "", locnews.Errorf(locnews.EINVALID, "text is too short for summarization (minimum %d characters)", MinTextLength)
	}

	result, err := s.client.Models.GenerateContent(ctx, s.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: BuildUserPrompt(text)}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", locnews.Errorf(locnews.EINTERNAL, "gemini returned nil result")
	}

	summary := strings.TrimSpace(result.Text())
	if summary == "" {
		return "", locnews.Errorf(locnews.EINTERNAL, "gemini returned empty summary")
	}
	return summary, nil
}

// BuildConfig returns the GenerateContentConfig for summary requests.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.2)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You summarize news articles. Reply with two or three sentences in the same language as the article. Do not add facts that are not in the article.",
			}},
		},
		Temperature:     &temp,
		MaxOutputTokens: maxOutputTokens,
	}
}

// BuildUserPrompt wraps the article text, truncated to MaxInputLength
// characters, in the summary prompt.
func BuildUserPrompt(text string) string {
	var sb strings.Builder
	sb.WriteString("<article>\n")
	sb.WriteString(Truncate(text, MaxInputLength))
	sb.WriteString("\n</article>\n\nSummarize the article.")
	return sb.String()
}

// Truncate returns the first n characters of text.
func Truncate(text string, n int) string {
	if utf8.RuneCountInString(text) <= n {
		return text
	}
	runes := []rune(text)
	return string(runes[:n])
}
