// Package voxpage is the embedding API: it wires configuration, fetching,
// browser cookies, and the extraction backends into a single client that
// turns a URL into a speech-ready article.
package voxpage

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog/log"

	"github.com/voxpage/voxpage/internal/article"
	"github.com/voxpage/voxpage/internal/browser"
	"github.com/voxpage/voxpage/internal/config"
	"github.com/voxpage/voxpage/internal/extractor"
	"github.com/voxpage/voxpage/internal/fetcher"
)

type Client struct {
	config  *config.Config
	fetcher *fetcher.ContentFetcher
	engine  *article.Engine
	cookies *browser.CookieExtractor
}

type ExtractOptions struct {
	Backend string // heuristic, readability; empty uses the configured default
	UseJS   *bool  // nil = auto, true = force, false = disable
	Timeout time.Duration
}

// Result is one extraction, ready for synthesis: the article itself, its
// synthesis chunks, and the page-level facts gathered along the way.
type Result struct {
	Article        *article.Result
	Chunks         []string
	ReadMinutes    float64
	UsedJavaScript bool
	Backend        string
	Metadata       map[string]string
	ProcessingTime time.Duration
}

func New(cfg *config.Config) *Client {
	cf := fetcher.NewContentFetcher()
	cf.SetFollowRedirects(cfg.Network.FollowRedirects)

	c := &Client{
		config:  cfg,
		fetcher: cf,
		engine:  EngineFromConfig(cfg),
	}

	if cfg.Browser.Cookies.Enabled {
		c.cookies = browser.NewCookieExtractor(
			browser.BrowserType(cfg.Browser.Default),
			cfg.Browser.Cookies.Domains,
			cfg.Browser.Cookies.Exclude,
		)
	}

	return c
}

// EngineFromConfig builds an extraction engine with the configured
// thresholds and narration rate.
func EngineFromConfig(cfg *config.Config) *article.Engine {
	return article.NewEngineWith(article.DefaultRules(), article.Limits{
		MinContentLength:   cfg.Extraction.MinContentLength,
		EarlyExitLength:    cfg.Extraction.EarlyExitLength,
		MinValidLength:     cfg.Extraction.MinValidLength,
		StopWordRatio:      cfg.Extraction.StopWordRatio,
		MinParagraphLength: cfg.Extraction.MinParagraphLength,
		TitleMinLength:     cfg.Extraction.TitleMinLength,
		TitleMaxLength:     cfg.Extraction.TitleMaxLength,
		NarrationWPM:       cfg.Speech.NarrationWPM,
	})
}

// Extract fetches a URL and turns it into a speech-ready article using the
// selected backend.
func (c *Client) Extract(ctx context.Context, url string, opts ExtractOptions) (*Result, error) {
	start := time.Now()

	backend, err := c.backend(opts)
	if err != nil {
		return nil, err
	}

	extracted, err := backend.Extract(ctx, url)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Article:        extracted.Article,
		Chunks:         article.SplitForSpeech(extracted.Article.Content, c.config.Speech.MaxChunkSize),
		ReadMinutes:    extracted.ReadMinutes,
		UsedJavaScript: extracted.UsedJS,
		Backend:        backend.Name(),
		Metadata:       extracted.Metadata,
		ProcessingTime: time.Since(start),
	}

	log.Debug().
		Str("url", url).
		Str("backend", result.Backend).
		Dur("took", result.ProcessingTime).
		Int("chunks", len(result.Chunks)).
		Msg("extraction complete")

	return result, nil
}

// ExtractHTML runs the extraction engine over HTML already in hand,
// skipping the network entirely.
func (c *Client) ExtractHTML(html, sourceURL string) (*Result, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	art := c.engine.Extract(doc, sourceURL)
	return &Result{
		Article: art,
		Chunks:  article.SplitForSpeech(art.Content, c.config.Speech.MaxChunkSize),
		Backend: "heuristic",
	}, nil
}

func (c *Client) backend(opts ExtractOptions) (extractor.Backend, error) {
	name := opts.Backend
	if name == "" {
		name = c.config.Extraction.Backend
	}
	if name == "" {
		name = "heuristic"
	}

	fetchOpts := c.fetchOptions(opts)

	var cookieSource extractor.CookieSource
	if c.cookies != nil {
		cookieSource = func(ctx context.Context, url string) ([]*http.Cookie, error) {
			return c.cookies.ExtractCookies(ctx, url)
		}
	}

	switch name {
	case "heuristic":
		b := extractor.NewHeuristicBackend(c.fetcher, c.engine, fetchOpts, c.config.Speech.ReadingWPM)
		b.Cookies = cookieSource
		return b, nil
	case "readability":
		b := extractor.NewReadabilityBackend(c.fetcher, c.engine, fetchOpts, c.config.Speech.ReadingWPM)
		b.Cookies = cookieSource
		return b, nil
	default:
		return nil, fmt.Errorf("unknown extraction backend: %q", name)
	}
}

func (c *Client) fetchOptions(opts ExtractOptions) fetcher.FetchOptions {
	mode := fetcher.FetchModeAuto
	switch c.config.Extraction.EnableJavaScript {
	case "always":
		mode = fetcher.FetchModeJS
	case "never":
		mode = fetcher.FetchModeStatic
	}
	if opts.UseJS != nil {
		if *opts.UseJS {
			mode = fetcher.FetchModeJS
		} else {
			mode = fetcher.FetchModeStatic
		}
	}

	timeout := opts.Timeout
	if timeout == 0 {
		timeout = time.Duration(c.config.Network.Timeout) * time.Second
	}

	return fetcher.FetchOptions{
		Mode:            mode,
		Timeout:         timeout,
		JSTimeout:       time.Duration(c.config.Extraction.JSTimeout) * time.Second,
		UserAgent:       c.config.Network.UserAgent,
		BrowserAgent:    c.config.Network.BrowserAgent,
		SkipBanners:     c.config.Extraction.SkipCookieBanners,
		BannerTimeout:   time.Duration(c.config.Extraction.BannerTimeout) * time.Second,
		WaitForSelector: c.config.Extraction.WaitForSelector,
	}
}
