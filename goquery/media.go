package goquery

import (
	"net/url"
	"strings"
)

// resolveURL makes ref absolute against base. A nil base leaves ref as is.
// Unparseable references resolve to the empty string.
func resolveURL(base *url.URL, ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ""
	}
	u, err := url.Parse(ref)
	if err != nil {
		return ""
	}
	if base == nil {
		return u.String()
	}
	return base.ResolveReference(u).String()
}

// IsVideoEmbed reports whether an iframe URL points at a video player:
// either the host is a known provider or one of its subdomains, or the
// path or query hints at a player.
func IsVideoEmbed(src string) bool {
	u, err := url.Parse(src)
	if err != nil || src == "" {
		return false
	}
	host := strings.ToLower(u.Hostname())
	for _, p := range VideoProviders {
		if host == p || strings.HasSuffix(host, "."+p) {
			return true
		}
	}
	return MediaHintPattern.MatchString(u.EscapedPath() + "?" + u.RawQuery)
}
