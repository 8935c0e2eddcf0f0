package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/rs/zerolog/log"
)

type FetchMode string

const (
	FetchModeAuto   FetchMode = "auto"
	FetchModeStatic FetchMode = "static"
	FetchModeJS     FetchMode = "javascript"
)

type FetchOptions struct {
	Mode            FetchMode
	Timeout         time.Duration
	JSTimeout       time.Duration // overrides Timeout for rendered fetches
	UserAgent       string
	BrowserAgent    string
	Cookies         []*http.Cookie
	SkipBanners     bool
	BannerTimeout   time.Duration
	WaitForSelector string
}

// FetchResult carries the raw page plus a cheap summary of it. Words is the
// visible text token count, used for the quick-glance read estimate before
// the full extraction pipeline runs.
type FetchResult struct {
	HTML     string
	Title    string
	URL      string
	UsedJS   bool
	Words    int
	Metadata map[string]string
}

type ContentFetcher struct {
	client          *http.Client
	userAgentSelect *UserAgentSelector
}

func NewContentFetcher() *ContentFetcher {
	return &ContentFetcher{
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		userAgentSelect: NewUserAgentSelector(),
	}
}

// SetFollowRedirects disables or re-enables redirect following on the
// underlying client.
func (cf *ContentFetcher) SetFollowRedirects(follow bool) {
	if follow {
		cf.client.CheckRedirect = nil
		return
	}
	cf.client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	}
}

func (cf *ContentFetcher) Fetch(ctx context.Context, url string, opts FetchOptions) (*FetchResult, error) {
	if opts.Mode == FetchModeStatic {
		return cf.FetchStatic(ctx, url, opts)
	}

	if opts.Mode == FetchModeJS {
		return cf.fetchWithJS(ctx, url, opts)
	}

	// Auto mode: try static first, then JS if the page looks client-rendered
	result, err := cf.FetchStatic(ctx, url, opts)
	if err != nil {
		return nil, err
	}

	if needsJSRendering(result.HTML) {
		log.Debug().Str("url", url).Msg("static fetch looks client-rendered, retrying with JavaScript")
		return cf.fetchWithJS(ctx, url, opts)
	}

	return result, nil
}

func (cf *ContentFetcher) FetchStatic(ctx context.Context, url string, opts FetchOptions) (*FetchResult, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	// Set user agent (custom takes precedence, then browser agent, then random)
	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = cf.userAgentSelect.GetUserAgent(opts.BrowserAgent)
	}
	req.Header.Set("User-Agent", userAgent)

	// Headers that make the request look like a real browser
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("Connection", "keep-alive")
	req.Header.Set("Upgrade-Insecure-Requests", "1")
	req.Header.Set("Sec-Fetch-Dest", "document")
	req.Header.Set("Sec-Fetch-Mode", "navigate")
	req.Header.Set("Sec-Fetch-Site", "none")
	req.Header.Set("Cache-Control", "max-age=0")

	for _, cookie := range opts.Cookies {
		req.AddCookie(cookie)
	}

	resp, err := cf.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch URL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	html := string(body)
	info := summarizePage(html)

	return &FetchResult{
		HTML:     html,
		Title:    info.title,
		URL:      url,
		UsedJS:   false,
		Words:    info.words,
		Metadata: info.metadata,
	}, nil
}

func (cf *ContentFetcher) fetchWithJS(ctx context.Context, url string, opts FetchOptions) (*FetchResult, error) {
	chromeCtx, cancel := chromedp.NewContext(ctx)
	defer cancel()

	timeout := opts.Timeout
	if opts.JSTimeout > 0 {
		timeout = opts.JSTimeout
	}
	if timeout > 0 {
		chromeCtx, cancel = context.WithTimeout(chromeCtx, timeout)
		defer cancel()
	}

	tasks := []chromedp.Action{
		chromedp.Navigate(url),
	}

	if opts.WaitForSelector != "" {
		tasks = append(tasks, chromedp.WaitVisible(opts.WaitForSelector))
	} else {
		tasks = append(tasks, chromedp.WaitReady("body"))
	}

	if opts.SkipBanners {
		tasks = append(tasks, dismissCookieBanners(opts.BannerTimeout)...)
	}

	var html, title string
	tasks = append(tasks,
		chromedp.OuterHTML("html", &html),
		chromedp.Title(&title),
	)

	if err := chromedp.Run(chromeCtx, tasks...); err != nil {
		return nil, fmt.Errorf("failed to run Chrome tasks: %w", err)
	}

	info := summarizePage(html)
	if title == "" {
		title = info.title
	}

	return &FetchResult{
		HTML:     html,
		Title:    title,
		URL:      url,
		UsedJS:   true,
		Words:    info.words,
		Metadata: info.metadata,
	}, nil
}

// dismissCookieBanners clicks the first visible consent button it can find.
// Best effort: a banner that stays up only pollutes text the extraction
// deny-list removes anyway.
func dismissCookieBanners(timeout time.Duration) []chromedp.Action {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}

	const clickConsent = `(() => {
		const selectors = [
			'button[id*="accept"]', 'button[class*="accept"]',
			'.cookie-accept', '[data-action="accept"]',
			'#cookieConsent button', '.cookie-banner button', '.consent-banner button',
		];
		for (const sel of selectors) {
			const el = document.querySelector(sel);
			if (el) { el.click(); return true; }
		}
		return false;
	})()`

	return []chromedp.Action{
		chromedp.Sleep(timeout / 3),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var clicked bool
			if err := chromedp.Evaluate(clickConsent, &clicked).Do(ctx); err != nil {
				log.Debug().Err(err).Msg("cookie banner dismissal failed")
			}
			return nil
		}),
	}
}

// needsJSRendering guesses whether a static fetch returned a client-rendered
// shell instead of real content.
func needsJSRendering(html string) bool {
	lowerHTML := strings.ToLower(html)

	markers := []string{"data-reactroot", "ng-app", "v-app", "__next_data__", "nuxt"}
	for _, marker := range markers {
		if strings.Contains(lowerHTML, marker) {
			return true
		}
	}

	if strings.Contains(lowerHTML, "loading") && len(strings.TrimSpace(html)) < 2000 {
		return true
	}

	// Heavy script usage with a nearly empty body is the classic SPA shell
	scriptCount := strings.Count(lowerHTML, "<script")
	return scriptCount > 5 && summarizePage(html).words < 150
}
