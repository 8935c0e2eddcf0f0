package extractor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/voxpage/voxpage/internal/article"
	"github.com/voxpage/voxpage/internal/fetcher"
)

const testSentence = "The quick brown fox jumps over the lazy dog near the quiet river bank every single morning without fail. "

func articlePage(sentences int) string {
	body := strings.Repeat(testSentence, sentences)
	return `<html><head><title>Fox Habits - The Daily Times</title></head><body>
<nav>Home About Contact</nav>
<article><h1>Fox Habits</h1><p>` + body + `</p></article>
<footer>Copyright 2024 The Daily Times</footer>
</body></html>`
}

func TestHeuristicBackendExtract(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(articlePage(12)))
	}))
	defer server.Close()

	backend := NewHeuristicBackend(
		fetcher.NewContentFetcher(),
		article.NewEngine(),
		fetcher.FetchOptions{Mode: fetcher.FetchModeStatic},
		200,
	)

	if backend.Name() != "heuristic" {
		t.Errorf("unexpected backend name: %q", backend.Name())
	}
	if !backend.IsAvailable() {
		t.Error("heuristic backend should always be available")
	}

	result, err := backend.Extract(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	art := result.Article
	if art.Title != "Fox Habits" {
		t.Errorf("expected site suffix stripped from title, got %q", art.Title)
	}
	if art.Method != "article" {
		t.Errorf("expected the article selector to win, got %q", art.Method)
	}
	if strings.Contains(art.Content, "Home About Contact") {
		t.Error("navigation chrome leaked into content")
	}
	if art.SourceURL != server.URL {
		t.Errorf("unexpected source URL: %q", art.SourceURL)
	}
	if result.UsedJS {
		t.Error("static mode should not report UsedJS")
	}
	if result.ReadMinutes <= 0 {
		t.Error("expected a positive read estimate")
	}

	// The narration estimate uses the article word count at the engine's
	// rate; the read estimate uses the full page word count.
	want := article.EstimateMinutes(art.WordCount, 180)
	if art.EstimatedMinutes != want {
		t.Errorf("EstimatedMinutes = %v, want %v", art.EstimatedMinutes, want)
	}
}

func TestHeuristicBackendFetchError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusGone)
	}))
	defer server.Close()

	backend := NewHeuristicBackend(
		fetcher.NewContentFetcher(),
		article.NewEngine(),
		fetcher.FetchOptions{Mode: fetcher.FetchModeStatic},
		200,
	)

	if _, err := backend.Extract(context.Background(), server.URL); err == nil {
		t.Fatal("expected error for HTTP 410 response")
	}
}

func TestHeuristicBackendCookieSource(t *testing.T) {
	var gotCookie string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if c, err := r.Cookie("session"); err == nil {
			gotCookie = c.Value
		}
		w.Write([]byte(articlePage(12)))
	}))
	defer server.Close()

	backend := NewHeuristicBackend(
		fetcher.NewContentFetcher(),
		article.NewEngine(),
		fetcher.FetchOptions{Mode: fetcher.FetchModeStatic},
		200,
	)
	backend.Cookies = func(ctx context.Context, url string) ([]*http.Cookie, error) {
		return []*http.Cookie{{Name: "session", Value: "from-browser"}}, nil
	}

	if _, err := backend.Extract(context.Background(), server.URL); err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if gotCookie != "from-browser" {
		t.Errorf("expected session cookie from cookie source, got %q", gotCookie)
	}
}
