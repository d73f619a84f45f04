// Package core holds the wishlist domain: item types, enum parsing,
// input sanitization, the derived-view query pipeline and analytics
// aggregation. Everything here is pure; persistence and transport
// live in other packages.
package core

import (
	"net/url"
	"strings"
)

// SanitizeText strips angle brackets to keep markup out of stored
// text, then truncates to maxLen runes. Total: any input yields a
// safe string.
func SanitizeText(s string, maxLen int) string {
	s = strings.NewReplacer("<", "", ">", "").Replace(s)
	r := []rune(s)
	if len(r) > maxLen {
		return string(r[:maxLen])
	}
	return s
}

// NormalizeURL trims whitespace and prefixes https:// when the input
// has no scheme. Empty input passes through unchanged.
func NormalizeURL(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	if !strings.Contains(s, "://") {
		return "https://" + s
	}
	return s
}

// IsAllowedURL reports whether s parses as a URL with an http or
// https scheme. Malformed input is rejected, never an error.
func IsAllowedURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}
