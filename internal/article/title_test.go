package article

import (
	"strings"
	"testing"
)

func TestResolveTitle_HeadingCandidates(t *testing.T) {
	e := NewEngine()

	tests := []struct {
		name string
		html string
		want string
	}{
		{
			name: "entry title beats generic h1",
			html: `<html><body><h1 class="entry-title">The Real Headline</h1><h1>Some Other Heading</h1></body></html>`,
			want: "The Real Headline",
		},
		{
			name: "itemprop headline",
			html: `<html><body><span itemprop="headline">Marked Up Headline</span></body></html>`,
			want: "Marked Up Headline",
		},
		{
			name: "generic h1 as last resort",
			html: `<html><body><h1>Plain Page Heading</h1></body></html>`,
			want: "Plain Page Heading",
		},
		{
			name: "too-short heading skipped for page title",
			html: `<html><head><title>Fallback Title</title></head><body><h1>Hi</h1></body></html>`,
			want: "Fallback Title",
		},
		{
			name: "oversized heading skipped",
			html: `<html><head><title>Sane Title</title></head><body><h1>` + strings.Repeat("x", 300) + `</h1></body></html>`,
			want: "Sane Title",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := e.resolveTitle(mustDoc(t, tt.html)); got != tt.want {
				t.Errorf("resolveTitle = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveTitle_SiteSuffixCleanup(t *testing.T) {
	e := NewEngine()

	tests := []struct {
		in   string
		want string
	}{
		{"My Great Piece - The Daily Times", "My Great Piece"},
		{"My Great Piece | Example News", "My Great Piece"},
		{"My Great Piece :: Example", "My Great Piece"},
		{"My Great Piece (Example News)", "My Great Piece"},
		{"No Suffix Here", "No Suffix Here"},
		{"", DefaultTitle},
		{"   ", DefaultTitle},
	}

	for _, tt := range tests {
		html := `<html><head><title>` + tt.in + `</title></head><body></body></html>`
		if got := e.resolveTitle(mustDoc(t, html)); got != tt.want {
			t.Errorf("resolveTitle(title=%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeTitle_Bounds(t *testing.T) {
	e := NewEngine()

	long := strings.Repeat("word ", 100) // well past the cap
	got := e.NormalizeTitle(long)
	if n := len([]rune(got)); n < 1 || n > 200 {
		t.Errorf("normalized title length %d outside [1, 200]", n)
	}

	if got := e.NormalizeTitle(""); got != DefaultTitle {
		t.Errorf("empty title should normalize to %q, got %q", DefaultTitle, got)
	}
}
