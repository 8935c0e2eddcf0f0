package extractor

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	readability "github.com/go-shiori/go-readability"
	"github.com/rs/zerolog/log"

	"github.com/voxpage/voxpage/internal/article"
	"github.com/voxpage/voxpage/internal/fetcher"
)

// MethodReadability marks results produced by the readability backend.
const MethodReadability = "readability"

// ReadabilityBackend extracts articles with the go-readability DOM scoring
// algorithm instead of the selector cascade. It tends to do better on pages
// with unconventional markup, at the cost of the cascade's predictability.
type ReadabilityBackend struct {
	Fetcher    *fetcher.ContentFetcher
	Engine     *article.Engine
	Options    fetcher.FetchOptions
	Cookies    CookieSource
	ReadingWPM int
}

func NewReadabilityBackend(cf *fetcher.ContentFetcher, engine *article.Engine, opts fetcher.FetchOptions, readingWPM int) *ReadabilityBackend {
	return &ReadabilityBackend{
		Fetcher:    cf,
		Engine:     engine,
		Options:    opts,
		ReadingWPM: readingWPM,
	}
}

// Name returns the backend identifier
func (r *ReadabilityBackend) Name() string {
	return MethodReadability
}

// IsAvailable always returns true - readability runs locally
func (r *ReadabilityBackend) IsAvailable() bool {
	return true
}

// Extract fetches the URL and parses it with go-readability. The extracted
// text still goes through the engine's sanitizer so the output is
// speech-ready regardless of backend.
func (r *ReadabilityBackend) Extract(ctx context.Context, rawURL string) (*ExtractResult, error) {
	opts := r.Options
	if r.Cookies != nil {
		cookies, err := r.Cookies(ctx, rawURL)
		if err != nil {
			log.Warn().Err(err).Str("url", rawURL).Msg("cookie extraction failed, fetching without session")
		} else {
			opts.Cookies = cookies
		}
	}

	page, err := r.Fetcher.Fetch(ctx, rawURL, opts)
	if err != nil {
		return nil, fmt.Errorf("readability: fetch failed: %w", err)
	}

	pageURL, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("readability: invalid URL: %w", err)
	}

	parsed, err := readability.FromReader(strings.NewReader(page.HTML), pageURL)
	if err != nil {
		return nil, fmt.Errorf("readability: parse failed: %w", err)
	}

	content := r.Engine.Clean(parsed.TextContent)
	title := r.Engine.NormalizeTitle(parsed.Title)
	wordCount := article.CountWords(content)

	art := &article.Result{
		Title:            title,
		Content:          content,
		WordCount:        wordCount,
		EstimatedMinutes: article.EstimateMinutes(wordCount, r.Engine.NarrationWPM()),
		Method:           MethodReadability,
		SourceURL:        rawURL,
	}

	log.Debug().
		Str("url", rawURL).
		Int("words", art.WordCount).
		Msg("article extracted via readability")

	return &ExtractResult{
		Article:     art,
		ReadMinutes: article.EstimateMinutes(page.Words, r.ReadingWPM),
		UsedJS:      page.UsedJS,
		Metadata:    page.Metadata,
	}, nil
}
