package article

import (
	"strings"
	"testing"
)

func TestCollectParagraphs(t *testing.T) {
	e := NewEngine()

	html := `<html><body>
		<p>` + prose + `</p>
		<p>ok</p>
		<p>` + prose + `</p>
	</body></html>`

	got := e.collectParagraphs(mustDoc(t, html))
	if strings.Contains(got, "ok") {
		t.Errorf("fragment below minimum length survived: %q", got)
	}
	if want := 2; strings.Count(got, "quick brown fox") != want {
		t.Errorf("expected %d paragraphs joined, got %q", want, got)
	}
}

func TestCollectParagraphs_ExcludesNoiseWithinParagraphs(t *testing.T) {
	e := NewEngine()

	html := `<html><body>
		<p>` + prose + `<span class="advertisement">Sponsored offer inside</span></p>
	</body></html>`

	got := e.collectParagraphs(mustDoc(t, html))
	if strings.Contains(got, "Sponsored offer") {
		t.Errorf("noise subtree survived paragraph derivation: %q", got)
	}
}

func TestCollectParagraphs_Empty(t *testing.T) {
	e := NewEngine()
	if got := e.collectParagraphs(mustDoc(t, "<html><body><div>no paragraphs</div></body></html>")); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}
