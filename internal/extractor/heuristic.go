package extractor

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog/log"

	"github.com/voxpage/voxpage/internal/article"
	"github.com/voxpage/voxpage/internal/fetcher"
)

// HeuristicBackend runs the selector-cascade extraction engine over a
// fetched page. This is the default backend: no external services, and it
// always produces a result for any page the fetch can reach.
type HeuristicBackend struct {
	Fetcher    *fetcher.ContentFetcher
	Engine     *article.Engine
	Options    fetcher.FetchOptions
	Cookies    CookieSource
	ReadingWPM int
}

func NewHeuristicBackend(cf *fetcher.ContentFetcher, engine *article.Engine, opts fetcher.FetchOptions, readingWPM int) *HeuristicBackend {
	return &HeuristicBackend{
		Fetcher:    cf,
		Engine:     engine,
		Options:    opts,
		ReadingWPM: readingWPM,
	}
}

// Name returns the backend identifier
func (h *HeuristicBackend) Name() string {
	return "heuristic"
}

// IsAvailable always returns true - the heuristic backend has no external
// dependencies
func (h *HeuristicBackend) IsAvailable() bool {
	return true
}

// Extract fetches the URL and runs the extraction engine over the document
func (h *HeuristicBackend) Extract(ctx context.Context, url string) (*ExtractResult, error) {
	opts := h.Options
	if h.Cookies != nil {
		cookies, err := h.Cookies(ctx, url)
		if err != nil {
			log.Warn().Err(err).Str("url", url).Msg("cookie extraction failed, fetching without session")
		} else {
			opts.Cookies = cookies
		}
	}

	page, err := h.Fetcher.Fetch(ctx, url, opts)
	if err != nil {
		return nil, fmt.Errorf("heuristic: fetch failed: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page.HTML))
	if err != nil {
		return nil, fmt.Errorf("heuristic: failed to parse HTML: %w", err)
	}

	art := h.Engine.Extract(doc, url)
	log.Debug().
		Str("url", url).
		Str("method", art.Method).
		Int("words", art.WordCount).
		Msg("article extracted")

	return &ExtractResult{
		Article:     art,
		ReadMinutes: article.EstimateMinutes(page.Words, h.ReadingWPM),
		UsedJS:      page.UsedJS,
		Metadata:    page.Metadata,
	}, nil
}
