package ahocorasick_test

import (
	"sync"
	"testing"

	"github.com/fwojciec/locnews/ahocorasick"
	"github.com/stretchr/testify/assert"
)

func TestDetector_IsNoise(t *testing.T) {
	t.Parallel()

	d := ahocorasick.NewDetector()

	tests := []struct {
		name string
		text string
		want bool
	}{
		// Short text is always benign.
		{"empty", "", false},
		{"four runes", "{}{}", false},
		{"short caption", "Ảnh", false},

		// Blocklist tokens.
		{"ad loader globals", "pageSettings.allow3rd _mgq.load _isAdsHidden", true},
		{"vendor name", "Sponsored content by Taboola", true},
		{"vendor name upper case", "OUTBRAIN widget", true},
		{"runtime call", "window.runinit = window.runinit || []", true},
		{"array push", "dataLayer.push({event: 'view'})", true},

		// Distinct script patterns.
		{"two patterns", "var x = 1; const y = 2", true},
		{"typeof overlaps", "if (typeof window === 'undefined') return", true},
		{"single pattern is prose", "Let me explain the plan in detail", false},
		{"repeated single pattern", "var var var var", false},

		// Prefixes.
		{"line comment", "// load the player script", true},
		{"block comment", "/* tracking */ x", true},
		{"iife", "(function(){ init(); })()", true},

		// Brace density.
		{"braces", "x {a} and {b} here", true},
		{"one pair of braces", "the set {a, b} is small", false},

		// Ordinary prose.
		{"vietnamese prose", "Thị trường chứng khoán hôm nay tăng 2.5% nhờ dòng tiền mạnh.", false},
		{"container word", "The container ship docked at the port after a long voyage.", false},
		{"function word", "The function of the committee is to review the budget.", false},
		{"constant word", "Prices remained constant throughout the quarter.", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, d.IsNoise(tt.text), "IsNoise(%q)", tt.text)
		})
	}
}

func TestNewDetectorWithTokens(t *testing.T) {
	t.Parallel()

	t.Run("uses custom blocklist", func(t *testing.T) {
		t.Parallel()

		d := ahocorasick.NewDetectorWithTokens([]string{"AcmeAds"}, nil)

		assert.True(t, d.IsNoise("loaded acmeads banner"))
		assert.False(t, d.IsNoise("var a = 1; const b = 2 in prose"))
	})

	t.Run("tolerates empty tables", func(t *testing.T) {
		t.Parallel()

		d := ahocorasick.NewDetectorWithTokens(nil, []string{""})

		assert.False(t, d.IsNoise("taboola outbrain"))
		assert.True(t, d.IsNoise("// comment"))
	})
}

func TestDetector_ConcurrentUse(t *testing.T) {
	t.Parallel()

	d := ahocorasick.NewDetector()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				assert.True(t, d.IsNoise("var a = 1; const b = 2"))
				assert.False(t, d.IsNoise("Ordinary sentence about the weather today."))
			}
		}()
	}
	wg.Wait()
}
