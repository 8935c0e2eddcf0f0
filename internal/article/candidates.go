package article

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// candidate is a transient pairing of a matched region with its derived
// text. Candidates live only for the duration of one extraction call.
type candidate struct {
	sel    *goquery.Selection
	text   string
	method string
}

// selectBestCandidate walks the body selector cascade in priority order and
// keeps the longest candidate that passes content validation. Replacement
// requires strictly greater length, so equal-length candidates keep the
// earlier, more specific pattern. Once the best candidate exceeds the early
// exit length, remaining patterns are skipped.
//
// Returns nil when no pattern yields passing text; the caller falls through
// to the paragraph fallback.
func (e *Engine) selectBestCandidate(doc *goquery.Document) *candidate {
	var best *candidate

	for _, pattern := range e.rules.ContentSelectors {
		if pattern.Scope == ScopeTitle {
			continue
		}

		method := pattern.Name
		doc.Find(pattern.Query).Each(func(_ int, sel *goquery.Selection) {
			text := e.elementText(sel)
			if best != nil && len(text) <= len(best.text) {
				return
			}
			if !e.isValidArticleContent(text) {
				return
			}
			best = &candidate{sel: sel, text: text, method: method}
		})

		if best != nil && len(best.text) > e.limits.EarlyExitLength {
			break
		}
	}

	return best
}

// elementText derives the plain text of a matched region with noise
// subtrees excluded. The work happens on a deep copy, so the caller's
// document is never mutated. Nil or empty selections return "".
func (e *Engine) elementText(sel *goquery.Selection) string {
	if sel == nil || sel.Length() == 0 {
		return ""
	}

	clone := sel.Clone()
	for _, query := range e.rules.NoiseSelectors {
		clone.Find(query).Remove()
	}
	return strings.TrimSpace(clone.Text())
}
