// Package ahocorasick implements locnews.NoiseDetector with Aho-Corasick
// automata, so every fixed token table is matched in a single pass over the
// lowercased text.
package ahocorasick

import (
	"strings"
	"unicode/utf8"

	ahocorasick "github.com/cloudflare/ahocorasick"
	"github.com/fwojciec/locnews"
)

// Ensure Detector implements locnews.NoiseDetector at compile time.
var _ locnews.NoiseDetector = (*Detector)(nil)

// BlocklistTokens are ad/tracking vendor names and JavaScript runtime calls.
// Any occurrence marks text as noise.
var BlocklistTokens = []string{
	"taboola", "outbrain", "arfasync", "mutexads", "_taboola", "runinit", "_mgq",
	"window.runinit", "window.pagesettings", "window._isadshidden",
	"document.queryselector", "document.createelement",
	"addeventlistener", ".push(", ".call(", "htmltoelement",
}

// ScriptPatterns are JavaScript syntax fragments. Text containing at least
// MinScriptPatterns distinct patterns is noise.
var ScriptPatterns = []string{
	"function(", "function ()", "document.createelement", "document.queryselector",
	".appendchild", ".insertbefore", "var ", "const ", "let ",
	".getattribute", ".setattribute", "typeof ", "typeof window",
}

// ScriptPrefixes mark text that opens like a comment or an IIFE.
var ScriptPrefixes = []string{"//", "/*", "(function"}

const (
	// MinScriptPatterns is the number of distinct script patterns that mark noise.
	MinScriptPatterns = 2

	// MinBraces is the number of both '{' and '}' that mark code-dense text.
	MinBraces = 2

	// minNoiseLength is the rune count below which text is never noise,
	// so short captions and labels survive.
	minNoiseLength = 5
)

// Detector classifies text as script-like noise. It holds only read-only
// automata built at construction and is safe for concurrent use.
type Detector struct {
	blocklist *ahocorasick.Matcher
	scripts   *ahocorasick.Matcher
}

// NewDetector creates a Detector over the default token tables.
func NewDetector() *Detector {
	return NewDetectorWithTokens(BlocklistTokens, ScriptPatterns)
}

// NewDetectorWithTokens creates a Detector over custom token tables.
// Tokens are matched case-insensitively.
func NewDetectorWithTokens(blocklist, scripts []string) *Detector {
	return &Detector{
		blocklist: newMatcher(blocklist),
		scripts:   newMatcher(scripts),
	}
}

func newMatcher(tokens []string) *ahocorasick.Matcher {
	normalized := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if t = strings.ToLower(t); t != "" {
			normalized = append(normalized, t)
		}
	}
	if len(normalized) == 0 {
		return nil
	}
	return ahocorasick.NewStringMatcher(normalized)
}

// IsNoise reports whether text is script, tracking or ad code.
// Signals are checked in order and the first hit wins: blocklist tokens,
// distinct script patterns, comment/IIFE prefixes, then brace density.
func (d *Detector) IsNoise(text string) bool {
	if utf8.RuneCountInString(text) < minNoiseLength {
		return false
	}

	lower := strings.ToLower(text)
	in := []byte(lower)

	if d.blocklist != nil && len(d.blocklist.MatchThreadSafe(in)) > 0 {
		return true
	}

	// MatchThreadSafe reports each dictionary entry at most once,
	// so the hit count is the number of distinct patterns.
	if d.scripts != nil && len(d.scripts.MatchThreadSafe(in)) >= MinScriptPatterns {
		return true
	}

	for _, prefix := range ScriptPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}

	// Brace density is checked last; prose rarely carries two pairs.
	return strings.Count(text, "{") >= MinBraces && strings.Count(text, "}") >= MinBraces
}
