// Package article isolates the readable content of a web page and prepares
// it for speech synthesis. Given a parsed document it finds the primary
// article region through a prioritized selector cascade, falls back to
// paragraph collection when the cascade comes up short, and normalizes the
// winning text so downstream narration reads naturally.
//
// Extraction is best effort and never fails: malformed or empty documents
// produce a result with empty content rather than an error.
package article

import (
	"github.com/PuerkitoBio/goquery"
)

// Engine runs the extraction pipeline. It holds only immutable rule and
// threshold tables, so a single Engine is safe to share across goroutines.
type Engine struct {
	rules  Rules
	limits Limits
}

// NewEngine returns an Engine with the default rules and limits.
func NewEngine() *Engine {
	return NewEngineWith(DefaultRules(), DefaultLimits())
}

// NewEngineWith returns an Engine using custom rule and threshold tables.
// Zero-valued limit fields are replaced by their defaults.
func NewEngineWith(rules Rules, limits Limits) *Engine {
	return &Engine{
		rules:  rules,
		limits: limits.withDefaults(),
	}
}

// NarrationWPM reports the words-per-minute rate the engine uses for
// duration estimates.
func (e *Engine) NarrationWPM() int {
	return e.limits.NarrationWPM
}

// Extract runs the full pipeline against doc and returns a fresh Result.
// sourceURL is passed through untouched. A nil doc yields an empty result
// with Method set to MethodNone.
func (e *Engine) Extract(doc *goquery.Document, sourceURL string) *Result {
	res := &Result{
		Title:     DefaultTitle,
		Method:    MethodNone,
		SourceURL: sourceURL,
	}
	if doc == nil {
		return res
	}

	res.Title = e.resolveTitle(doc)

	var content string
	method := MethodNone
	if best := e.selectBestCandidate(doc); best != nil {
		content = best.text
		method = best.method
	}

	// The cascade alone is not trusted below the minimum content length;
	// paragraph collection takes over when it finds more text.
	if len(content) < e.limits.MinContentLength {
		if fallback := e.collectParagraphs(doc); len(fallback) > len(content) {
			content = fallback
			method = MethodParagraphs
		}
	}

	res.Content = e.Clean(content)
	res.Method = method
	res.WordCount = CountWords(res.Content)
	res.EstimatedMinutes = EstimateMinutes(res.WordCount, e.limits.NarrationWPM)
	return res
}
