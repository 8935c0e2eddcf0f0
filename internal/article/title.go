package article

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// siteSuffixPatterns strip trailing separator-delimited site names from
// page titles, e.g. "My Piece - The Daily Times" or "My Piece | Example".
// Anchored at end of string so mid-title separators survive.
var siteSuffixPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\s+-\s+[^-]+$`),
	regexp.MustCompile(`\s+\|\s+[^|]+$`),
	regexp.MustCompile(`\s+::\s+[^:]+$`),
	regexp.MustCompile(`\s+\([^()]+\)$`),
}

// resolveTitle tries the title selector cascade in priority order and
// returns the first candidate whose text length falls within the configured
// bounds. The bounds reject both tag-soup slivers and accidental whole-page
// captures. When no heading qualifies, the document's own <title> is
// cleaned up and used; when that too is empty, DefaultTitle.
func (e *Engine) resolveTitle(doc *goquery.Document) string {
	var title string

	for _, pattern := range e.rules.TitleSelectors {
		if pattern.Scope == ScopeBody {
			continue
		}
		doc.Find(pattern.Query).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
			text := collapseWhitespace(sel.Text())
			if n := len(text); n >= e.limits.TitleMinLength && n <= e.limits.TitleMaxLength {
				title = text
				return false
			}
			return true
		})
		if title != "" {
			return title
		}
	}

	return e.NormalizeTitle(doc.Find("title").First().Text())
}

// NormalizeTitle cleans a raw page title: whitespace collapsed, trailing
// site-name suffix stripped, length capped at the title bound. An empty
// result becomes DefaultTitle. Exposed so alternate extraction backends can
// reuse the same cleanup.
func (e *Engine) NormalizeTitle(raw string) string {
	title := collapseWhitespace(raw)
	for _, pattern := range siteSuffixPatterns {
		title = pattern.ReplaceAllString(title, "")
	}
	title = strings.TrimSpace(title)

	if title == "" {
		return DefaultTitle
	}
	if len(title) > e.limits.TitleMaxLength {
		runes := []rune(title)
		if len(runes) > e.limits.TitleMaxLength {
			runes = runes[:e.limits.TitleMaxLength]
		}
		title = strings.TrimSpace(string(runes))
	}
	return title
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
