package gemini

import (
	"context"
	"strings"

	"github.com/fwojciec/locnews"
	"google.golang.org/genai"
	"google.golang.org/genai/tokenizer"
)

// TokenizerModel is the model whose vocabulary the local tokenizer ships.
// It matches DefaultModel's vocabulary.
const TokenizerModel = "gemini-2.0-flash"

var _ locnews.TokenCounter = (*TokenCounter)(nil)

// TokenCounter sizes summary requests offline. CountTokens reports the
// tokens Summarize would send for a text, system instruction included.
type TokenCounter struct {
	tok    *tokenizer.LocalTokenizer
	config *genai.CountTokensConfig
}

// NewTokenCounter loads the local tokenizer for model.
func NewTokenCounter(model string) (*TokenCounter, error) {
	tok, err := tokenizer.NewLocalTokenizer(model)
	if err != nil {
		return nil, err
	}
	return &TokenCounter{
		tok:    tok,
		config: &genai.CountTokensConfig{SystemInstruction: BuildConfig().SystemInstruction},
	}, nil
}

// CountTokens returns the prompt size of a summary request for text.
// Blank text yields zero.
func (tc *TokenCounter) CountTokens(_ context.Context, text string) (int, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, nil
	}

	result, err := tc.tok.CountTokens(
		[]*genai.Content{genai.NewContentFromText(BuildUserPrompt(text), genai.RoleUser)},
		tc.config,
	)
	if err != nil {
		return 0, err
	}
	return int(result.TotalTokens), nil
}
