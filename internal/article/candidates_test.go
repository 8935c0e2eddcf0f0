package article

import (
	"strings"
	"testing"
)

func TestSelectBestCandidate_ValidatorBeatsLength(t *testing.T) {
	// The highest-priority pattern holds valid prose; a lower-priority
	// region is longer but reads like navigation. The validator must
	// reject the longer one regardless of length.
	html := `<html><body>
		<article>` + proseBlock(1200) + `</article>
		<div class="post-content">` + navChrome(2000) + `</div>
	</body></html>`

	best := NewEngine().selectBestCandidate(mustDoc(t, html))
	if best == nil {
		t.Fatal("expected a candidate")
	}
	if best.method != "article" {
		t.Errorf("expected 'article' to win, got %q", best.method)
	}
}

func TestSelectBestCandidate_EarlyExit(t *testing.T) {
	// Once the best candidate clears the early exit length, later
	// patterns are never consulted, even if longer and valid.
	html := `<html><body>
		<article>` + proseBlock(1100) + `</article>
		<main>` + proseBlock(5000) + `</main>
	</body></html>`

	best := NewEngine().selectBestCandidate(mustDoc(t, html))
	if best == nil {
		t.Fatal("expected a candidate")
	}
	if best.method != "article" {
		t.Errorf("early exit should keep 'article', got %q", best.method)
	}
}

func TestSelectBestCandidate_LongerValidWins(t *testing.T) {
	// Below the early exit threshold the cascade keeps scanning and a
	// strictly longer valid candidate replaces the running best.
	html := `<html><body>
		<article>` + proseBlock(250) + `</article>
		<div class="entry-content">` + proseBlock(700) + `</div>
	</body></html>`

	best := NewEngine().selectBestCandidate(mustDoc(t, html))
	if best == nil {
		t.Fatal("expected a candidate")
	}
	if best.method != "entry-content" {
		t.Errorf("expected longer valid candidate to win, got %q", best.method)
	}
}

func TestSelectBestCandidate_NoMatch(t *testing.T) {
	html := `<html><body><div>too little text</div></body></html>`
	if best := NewEngine().selectBestCandidate(mustDoc(t, html)); best != nil {
		t.Errorf("expected nil candidate, got method %q", best.method)
	}
}

func TestElementText_ExcludesNoise(t *testing.T) {
	e := NewEngine()
	html := `<html><body><article>
		<p>Keep this sentence.</p>
		<script>var x = 1;</script>
		<nav>Home About</nav>
		<div class="social-share">Share on Example</div>
		<p>And keep this one.</p>
	</article></body></html>`
	doc := mustDoc(t, html)

	text := e.elementText(doc.Find("article"))
	for _, banned := range []string{"var x", "Home About", "Share on Example"} {
		if strings.Contains(text, banned) {
			t.Errorf("derived text contains excluded fragment %q: %q", banned, text)
		}
	}
	if !strings.Contains(text, "Keep this sentence.") {
		t.Errorf("derived text lost article prose: %q", text)
	}

	// The live document keeps its noise nodes.
	if doc.Find("article script").Length() != 1 {
		t.Error("element text derivation mutated the source document")
	}
}

func TestElementText_NilSafe(t *testing.T) {
	e := NewEngine()
	if got := e.elementText(nil); got != "" {
		t.Errorf("nil selection should yield empty string, got %q", got)
	}

	doc := mustDoc(t, "<html><body></body></html>")
	if got := e.elementText(doc.Find("article")); got != "" {
		t.Errorf("empty selection should yield empty string, got %q", got)
	}
}
