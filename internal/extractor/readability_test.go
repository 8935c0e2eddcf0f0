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

func readabilityPage() string {
	para := "<p>" + strings.Repeat(testSentence, 4) + "</p>"
	return `<html><head><title>Deep Dive - The Daily Times</title></head><body>
<article><h1>Deep Dive</h1>` + para + para + para + `</article>
</body></html>`
}

func TestReadabilityBackendExtract(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(readabilityPage()))
	}))
	defer server.Close()

	backend := NewReadabilityBackend(
		fetcher.NewContentFetcher(),
		article.NewEngine(),
		fetcher.FetchOptions{Mode: fetcher.FetchModeStatic},
		200,
	)

	if backend.Name() != "readability" {
		t.Errorf("unexpected backend name: %q", backend.Name())
	}
	if !backend.IsAvailable() {
		t.Error("readability backend should always be available")
	}

	result, err := backend.Extract(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	art := result.Article
	if art.Method != MethodReadability {
		t.Errorf("expected readability method marker, got %q", art.Method)
	}
	if !strings.Contains(art.Content, "quick brown fox") {
		t.Error("expected article body in content")
	}
	if art.Title == "" || art.Title == article.DefaultTitle {
		t.Errorf("expected a real title, got %q", art.Title)
	}
	if art.WordCount == 0 {
		t.Error("expected a nonzero word count")
	}
	if art.EstimatedMinutes != article.EstimateMinutes(art.WordCount, 180) {
		t.Errorf("narration estimate mismatch: %v", art.EstimatedMinutes)
	}
}

func TestReadabilityBackendFetchError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "server error", http.StatusInternalServerError)
	}))
	defer server.Close()

	backend := NewReadabilityBackend(
		fetcher.NewContentFetcher(),
		article.NewEngine(),
		fetcher.FetchOptions{Mode: fetcher.FetchModeStatic},
		200,
	)

	if _, err := backend.Extract(context.Background(), server.URL); err == nil {
		t.Fatal("expected error for HTTP 500 response")
	}
}
