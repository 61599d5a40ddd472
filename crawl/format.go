package crawl

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
)

// ComputeHash returns the xxhash of content as 16 hex digits.
func ComputeHash(content string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(content))
}

// TruncateURL shortens link for progress output. The scheme and a leading
// "www." are dropped; a link still longer than maxLen characters keeps its
// tail, where news slugs carry the article ID.
func TruncateURL(link string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	short := strings.TrimPrefix(link, "https://")
	short = strings.TrimPrefix(short, "http://")
	short = strings.TrimPrefix(short, "www.")

	n := utf8.RuneCountInString(short)
	if n <= maxLen {
		return short
	}
	runes := []rune(short)
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return "..." + string(runes[n-maxLen+3:])
}

var byteUnits = []string{"KB", "MB", "GB"}

// FormatBytes formats a size with binary units: 512 B, 1.5 KB, 2.0 MB.
func FormatBytes(n int) string {
	if n < 1024 {
		return fmt.Sprintf("%d B", n)
	}
	size := float64(n) / 1024
	unit := 0
	for size >= 1024 && unit < len(byteUnits)-1 {
		size /= 1024
		unit++
	}
	return fmt.Sprintf("%.1f %s", size, byteUnits[unit])
}
