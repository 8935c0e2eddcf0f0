package browser

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/browserutils/kooky"
	_ "github.com/browserutils/kooky/browser/all" // register all browser cookie stores
)

type BrowserType string

const (
	BrowserAuto    BrowserType = "auto"
	BrowserChrome  BrowserType = "chrome"
	BrowserFirefox BrowserType = "firefox"
	BrowserSafari  BrowserType = "safari"
)

// CookieExtractor reads session cookies out of locally installed browsers so
// fetches can reuse an existing login. Domains restricts extraction to the
// listed sites; Exclude always wins over Domains.
type CookieExtractor struct {
	browserType BrowserType
	domains     []string
	exclude     []string
}

func NewCookieExtractor(browserType BrowserType, domains, exclude []string) *CookieExtractor {
	return &CookieExtractor{
		browserType: browserType,
		domains:     domains,
		exclude:     exclude,
	}
}

// ExtractCookies returns the cookies a browser holds for the target URL's
// host. In auto mode browsers are tried in order and the first one with any
// matching cookies wins.
func (ce *CookieExtractor) ExtractCookies(ctx context.Context, targetURL string) ([]*http.Cookie, error) {
	parsedURL, err := url.Parse(targetURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse URL: %w", err)
	}

	host := parsedURL.Hostname()
	if !ce.domainAllowed(host) {
		return nil, nil
	}

	if ce.browserType == BrowserAuto {
		for _, browser := range []BrowserType{BrowserChrome, BrowserFirefox, BrowserSafari} {
			if cookies, err := ce.extractFromBrowser(ctx, browser, host); err == nil && len(cookies) > 0 {
				return cookies, nil
			}
		}
		return nil, nil
	}

	return ce.extractFromBrowser(ctx, ce.browserType, host)
}

func (ce *CookieExtractor) extractFromBrowser(ctx context.Context, browserType BrowserType, host string) ([]*http.Cookie, error) {
	var cookies []*http.Cookie

	for cookie, err := range kooky.TraverseCookies(ctx) {
		if err != nil {
			continue
		}

		if matchesBrowserType(cookie.Browser, browserType) && matchesDomain(cookie.Domain, host) {
			cookies = append(cookies, &http.Cookie{
				Name:     cookie.Name,
				Value:    cookie.Value,
				Path:     cookie.Path,
				Domain:   cookie.Domain,
				Expires:  cookie.Expires,
				Secure:   cookie.Secure,
				HttpOnly: cookie.HttpOnly,
			})
		}
	}

	return cookies, nil
}

// domainAllowed applies the configured allow/deny lists to a host. "*"
// matches any host.
func (ce *CookieExtractor) domainAllowed(host string) bool {
	for _, pattern := range ce.exclude {
		if pattern == "*" || matchesDomain(pattern, host) {
			return false
		}
	}

	if len(ce.domains) == 0 {
		return true
	}
	for _, pattern := range ce.domains {
		if pattern == "*" || matchesDomain(pattern, host) {
			return true
		}
	}
	return false
}

func matchesBrowserType(browser kooky.BrowserInfo, browserType BrowserType) bool {
	if browserType == BrowserAuto {
		return true
	}

	name := strings.ToLower(browser.Browser())
	switch browserType {
	case BrowserChrome:
		return strings.Contains(name, "chrome") || strings.Contains(name, "chromium")
	case BrowserFirefox:
		return strings.Contains(name, "firefox")
	case BrowserSafari:
		return strings.Contains(name, "safari")
	}

	return false
}

func matchesDomain(cookieDomain, targetDomain string) bool {
	if cookieDomain == "" || targetDomain == "" {
		return false
	}

	cookieDomain = strings.TrimPrefix(cookieDomain, ".")

	if cookieDomain == targetDomain {
		return true
	}
	return strings.HasSuffix(targetDomain, "."+cookieDomain)
}

// DetectAvailableBrowsers reports which supported browsers have a profile
// directory on this machine.
func (ce *CookieExtractor) DetectAvailableBrowsers() []BrowserType {
	var available []BrowserType
	for _, browser := range []BrowserType{BrowserChrome, BrowserFirefox, BrowserSafari} {
		if isBrowserAvailable(browser) {
			available = append(available, browser)
		}
	}
	return available
}

func isBrowserAvailable(browserType BrowserType) bool {
	switch browserType {
	case BrowserChrome:
		return anyPathExists(
			"~/.config/google-chrome",
			"~/Library/Application Support/Google/Chrome",
			"%LOCALAPPDATA%/Google/Chrome/User Data",
		)
	case BrowserFirefox:
		return anyPathExists(
			"~/.mozilla/firefox",
			"~/Library/Application Support/Firefox",
			"%APPDATA%/Mozilla/Firefox",
		)
	case BrowserSafari:
		return runtime.GOOS == "darwin" && anyPathExists("~/Library/Cookies")
	}
	return false
}

func anyPathExists(paths ...string) bool {
	for _, path := range paths {
		if _, err := os.Stat(expandPath(path)); err == nil {
			return true
		}
	}
	return false
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	if strings.Contains(path, "%LOCALAPPDATA%") {
		return strings.Replace(path, "%LOCALAPPDATA%", os.Getenv("LOCALAPPDATA"), 1)
	}
	if strings.Contains(path, "%APPDATA%") {
		return strings.Replace(path, "%APPDATA%", os.Getenv("APPDATA"), 1)
	}
	return path
}
