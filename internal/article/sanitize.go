package article

import (
	"regexp"
	"strings"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// boilerplatePatterns match phrases that survive DOM-level noise removal:
// skip links, ad markers, subscription and share prompts, calls to action,
// and copyright lines. Whitespace must already be collapsed when these run,
// or irregular spacing defeats the match.
var boilerplatePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)skip to (?:main )?content`),
	regexp.MustCompile(`(?i)\badvertisement\b`),
	regexp.MustCompile(`(?i)subscribe (?:now|today|to (?:our|the) newsletter)`),
	regexp.MustCompile(`(?i)sign up for (?:our|the) newsletter`),
	regexp.MustCompile(`(?i)follow us(?: on \w+)?`),
	regexp.MustCompile(`(?i)share (?:this (?:article|story|post)|on \w+)`),
	regexp.MustCompile(`(?i)\bread more\b`),
	regexp.MustCompile(`(?i)\bclick here\b`),
	regexp.MustCompile(`(?i)(?:©|copyright)\s+(?:\d{4}|\S+\s+\d{4})[^.]*`),
}

// speechSubstitutions rewrite symbols and abbreviations that narration
// engines mispronounce. Literal token replacements only; abbreviations go
// first so their periods are not orphaned by the symbol rules.
var speechSubstitutions = []struct {
	pattern *regexp.Regexp
	repl    string
}{
	{regexp.MustCompile(`\be\.g\.`), "for example"},
	{regexp.MustCompile(`\bi\.e\.`), "that is"},
	{regexp.MustCompile(`\betc\.`), "etcetera"},
	{regexp.MustCompile(`\bvs\.`), "versus"},
	{regexp.MustCompile(`&`), " and "},
	{regexp.MustCompile(`@`), " at "},
	{regexp.MustCompile(`#`), " hashtag "},
}

// Clean normalizes extracted text for speech output: whitespace runs
// collapse to single spaces, boilerplate phrases are removed, symbols are
// rewritten for pronunciation, and the result is re-collapsed and trimmed.
// Clean is pure and idempotent, so already-cleaned fallback text passes
// through unchanged.
func (e *Engine) Clean(text string) string {
	text = whitespaceRun.ReplaceAllString(text, " ")

	for _, pattern := range boilerplatePatterns {
		text = pattern.ReplaceAllString(text, " ")
	}

	for _, sub := range speechSubstitutions {
		text = sub.pattern.ReplaceAllString(text, sub.repl)
	}

	text = whitespaceRun.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
