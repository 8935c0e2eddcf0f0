package article

// DefaultTitle is returned when no heading or page title qualifies.
const DefaultTitle = "Article"

// Extraction method markers that do not name a selector pattern.
const (
	// MethodParagraphs marks content assembled by the paragraph fallback.
	MethodParagraphs = "paragraphs"
	// MethodNone marks a run where no path produced usable content.
	MethodNone = "none"
)

// Result is the outcome of one extraction run. It is created fresh per
// call, never cached, and safe to hand across goroutine or process
// boundaries as a value.
type Result struct {
	// Title is never empty; DefaultTitle stands in when nothing qualifies.
	Title string `json:"title"`

	// Content is sanitized, whitespace-normalized prose. It is never the
	// raw text of a matched region.
	Content string `json:"content"`

	// WordCount is computed from Content after sanitization.
	WordCount int `json:"wordCount"`

	// EstimatedMinutes is the narration duration at the configured
	// words-per-minute rate, rounded to one decimal.
	EstimatedMinutes float64 `json:"estimatedMinutes"`

	// Method names the selector pattern that won, MethodParagraphs for the
	// fallback path, or MethodNone when extraction produced nothing.
	Method string `json:"extractionMethod"`

	// SourceURL is passed through from the caller unvalidated.
	SourceURL string `json:"sourceUrl"`
}
