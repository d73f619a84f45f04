package core

import (
	"strings"
	"testing"
)

func TestSanitizeText(t *testing.T) {
	cases := []struct {
		in     string
		maxLen int
		want   string
	}{
		{"plain", 10, "plain"},
		{"<script>x</script>", 50, "scriptx/script"},
		{"a<b>c", 50, "abc"},
		{"truncate me", 8, "truncate"},
		{"", 10, ""},
		{"héllo wörld", 5, "héllo"}, // rune truncation, not bytes
	}
	for i, tc := range cases {
		if got := SanitizeText(tc.in, tc.maxLen); got != tc.want {
			t.Fatalf("case %d: got %q, want %q", i, got, tc.want)
		}
	}
}

func TestSanitizeTextLong(t *testing.T) {
	in := strings.Repeat("a", NameMax+50)
	got := SanitizeText(in, NameMax)
	if len(got) != NameMax {
		t.Fatalf("got length %d, want %d", len(got), NameMax)
	}
}

func TestNormalizeURL(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"", ""},
		{"  ", ""},
		{"example.com", "https://example.com"},
		{"http://example.com", "http://example.com"},
		{"https://example.com/a", "https://example.com/a"},
		{" example.com/path ", "https://example.com/path"},
	}
	for i, tc := range cases {
		if got := NormalizeURL(tc.in); got != tc.want {
			t.Fatalf("case %d: got %q, want %q", i, got, tc.want)
		}
	}
}

func TestIsAllowedURL(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"http://example.com", true},
		{"https://example.com/x?y=1", true},
		{"ftp://example.com", false},
		{"javascript:alert(1)", false},
		{"example.com", false}, // no scheme
		{"://bad", false},
	}
	for i, tc := range cases {
		if got := IsAllowedURL(tc.in); got != tc.ok {
			t.Fatalf("case %d (%q): got %v, want %v", i, tc.in, got, tc.ok)
		}
	}
}
