package extractor

import (
	"context"
	"net/http"

	"github.com/voxpage/voxpage/internal/article"
)

// ExtractResult holds the output of a full extraction pass: the processed
// article plus page-level facts gathered during the fetch. ReadMinutes is
// the quick silent-reading estimate computed from the raw page word count,
// as opposed to the article's narration estimate.
type ExtractResult struct {
	Article     *article.Result
	ReadMinutes float64
	UsedJS      bool
	Metadata    map[string]string
}

// Backend is the interface for article extraction backends
type Backend interface {
	// Name returns the unique identifier for this backend
	Name() string

	// Extract fetches a URL and produces a speech-ready article
	Extract(ctx context.Context, url string) (*ExtractResult, error)

	// IsAvailable checks if the backend is properly configured
	IsAvailable() bool
}

// CookieSource supplies session cookies for a URL, typically read from a
// local browser profile. A nil source means fetches go out unauthenticated.
type CookieSource func(ctx context.Context, url string) ([]*http.Cookie, error)
