package article

import (
	"strings"
	"testing"
)

// navChrome builds navigation-like text of at least n characters that is
// almost entirely stop-set words.
func navChrome(n int) string {
	unit := "Home About Contact Menu Click Subscribe Follow Share More Read "
	repeats := n/len(unit) + 1
	return strings.TrimSpace(strings.Repeat(unit, repeats))
}

func TestIsValidArticleContent(t *testing.T) {
	e := NewEngine()

	tests := []struct {
		name string
		text string
		want bool
	}{
		{"empty", "", false},
		{"below minimum length", "Too short to judge.", false},
		{"genuine prose", proseBlock(400), true},
		{"navigation chrome", navChrome(400), false},
		{"long navigation chrome", navChrome(2000), false},
		{"prose with punctuation", strings.Repeat("Foxes hunt at dawn, rest at noon, and roam the hills after dusk settles in. ", 5), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := e.isValidArticleContent(tt.text); got != tt.want {
				t.Errorf("isValidArticleContent(%.40q...) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestIsValidArticleContent_CustomThreshold(t *testing.T) {
	// A stricter ratio rejects text the default accepts.
	strict := NewEngineWith(DefaultRules(), Limits{StopWordRatio: 0.05})

	text := proseBlock(400)
	if strict.isValidArticleContent(text) {
		t.Error("expected rejection under a 0.05 stop-word ratio")
	}
	if !NewEngine().isValidArticleContent(text) {
		t.Error("expected acceptance under the default ratio")
	}
}
