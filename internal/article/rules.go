package article

// Scope restricts where a selector pattern applies.
type Scope int

const (
	// ScopeAny patterns apply to both body and title resolution.
	ScopeAny Scope = iota
	// ScopeBody patterns only locate article body candidates.
	ScopeBody
	// ScopeTitle patterns only locate title candidates.
	ScopeTitle
)

// SelectorPattern is one named rule in a cascade. Position in the slice is
// its priority; earlier patterns win ties.
type SelectorPattern struct {
	// Name identifies the pattern in Result.Method.
	Name string
	// Query is a CSS selector matched against the document.
	Query string
	// Scope limits which resolver consults the pattern.
	Scope Scope
}

// Rules bundles the immutable lookup tables the engine consults. Callers
// may supply their own tables (e.g. site-specific selectors) through
// NewEngineWith; the engine never mutates them.
type Rules struct {
	// ContentSelectors is the body candidate cascade, most specific first.
	ContentSelectors []SelectorPattern

	// TitleSelectors is the title candidate cascade, most specific first.
	TitleSelectors []SelectorPattern

	// NoiseSelectors match subtrees excluded from derived text: scripts,
	// navigation, and class-name conventions for ads, social widgets,
	// comment sections, and newsletter prompts.
	NoiseSelectors []string

	// StopWords is the function/UI word set the content validator counts.
	StopWords map[string]bool
}

// Limits holds the numeric thresholds of the pipeline.
type Limits struct {
	// MinContentLength is the character count under which the paragraph
	// fallback must run.
	MinContentLength int

	// EarlyExitLength stops the cascade once the best candidate exceeds it,
	// favoring higher-priority patterns over exhaustive search.
	EarlyExitLength int

	// MinValidLength is the shortest text the validator will accept.
	MinValidLength int

	// StopWordRatio rejects text whose stop-word fraction meets or
	// exceeds it.
	StopWordRatio float64

	// MinParagraphLength filters short fragments out of the fallback.
	MinParagraphLength int

	// TitleMinLength and TitleMaxLength bound acceptable title candidates.
	TitleMinLength int
	TitleMaxLength int

	// NarrationWPM is the words-per-minute rate for EstimatedMinutes.
	NarrationWPM int
}

// DefaultLimits returns the reference thresholds.
func DefaultLimits() Limits {
	return Limits{
		MinContentLength:   500,
		EarlyExitLength:    1000,
		MinValidLength:     200,
		StopWordRatio:      0.7,
		MinParagraphLength: 30,
		TitleMinLength:     5,
		TitleMaxLength:     200,
		NarrationWPM:       180,
	}
}

func (l Limits) withDefaults() Limits {
	d := DefaultLimits()
	if l.MinContentLength <= 0 {
		l.MinContentLength = d.MinContentLength
	}
	if l.EarlyExitLength <= 0 {
		l.EarlyExitLength = d.EarlyExitLength
	}
	if l.MinValidLength <= 0 {
		l.MinValidLength = d.MinValidLength
	}
	if l.StopWordRatio <= 0 {
		l.StopWordRatio = d.StopWordRatio
	}
	if l.MinParagraphLength <= 0 {
		l.MinParagraphLength = d.MinParagraphLength
	}
	if l.TitleMinLength <= 0 {
		l.TitleMinLength = d.TitleMinLength
	}
	if l.TitleMaxLength <= 0 {
		l.TitleMaxLength = d.TitleMaxLength
	}
	if l.NarrationWPM <= 0 {
		l.NarrationWPM = d.NarrationWPM
	}
	return l
}

// DefaultRules returns the built-in selector cascade, noise deny-list, and
// stop-word table.
func DefaultRules() Rules {
	return Rules{
		ContentSelectors: []SelectorPattern{
			{Name: "article", Query: "article", Scope: ScopeBody},
			{Name: "role-main", Query: `[role="main"]`, Scope: ScopeBody},
			{Name: "post-content", Query: ".post-content", Scope: ScopeBody},
			{Name: "entry-content", Query: ".entry-content", Scope: ScopeBody},
			{Name: "article-content", Query: ".article-content", Scope: ScopeBody},
			{Name: "article-body", Query: ".article-body, .story-body", Scope: ScopeBody},
			{Name: "content-id", Query: "#content, #main-content", Scope: ScopeBody},
			{Name: "content-class", Query: ".content, .main-content", Scope: ScopeBody},
			{Name: "main", Query: "main", Scope: ScopeBody},
		},
		TitleSelectors: []SelectorPattern{
			{Name: "headline", Query: "h1.headline, h1.article-title", Scope: ScopeTitle},
			{Name: "entry-title", Query: "h1.entry-title, h1.post-title", Scope: ScopeTitle},
			{Name: "itemprop-headline", Query: `[itemprop="headline"]`, Scope: ScopeTitle},
			{Name: "article-heading", Query: "article h1", Scope: ScopeTitle},
			{Name: "heading", Query: "h1", Scope: ScopeTitle},
		},
		NoiseSelectors: []string{
			"script", "style", "noscript", "iframe",
			"nav", "aside", "footer", "form",
			".ad", ".ads", ".advert", ".advertisement", ".ad-container", ".ad-unit",
			".social", ".social-share", ".share", ".share-buttons",
			".comments", ".comment", ".comment-section", "#comments",
			".newsletter", ".newsletter-signup", ".subscribe",
			".sidebar", ".related", ".related-posts",
		},
		StopWords: stopWordSet(),
	}
}

// stopWordSet covers articles, conjunctions, prepositions, and the UI action
// words that dominate navigation chrome. Genuine prose stays well under the
// rejection ratio; repeated menu and share-bar text does not.
func stopWordSet() map[string]bool {
	words := []string{
		"the", "a", "an",
		"and", "or", "but", "nor", "so", "yet",
		"in", "on", "at", "to", "for", "of", "with", "by", "from", "as",
		"is", "are", "was", "were", "be", "been",
		"this", "that", "these", "those", "it", "its",
		"click", "subscribe", "follow", "share", "like", "comment",
		"sign", "login", "register", "menu", "search",
		"home", "about", "contact", "next", "previous", "more", "read",
	}

	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}
