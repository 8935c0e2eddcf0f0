package article

import "strings"

const wordTrimCutset = ".,!?;:\"'()[]"

// isValidArticleContent decides whether text reads like article prose
// rather than navigation or UI chrome. Text below the minimum length is
// rejected outright; otherwise the fraction of stop-set tokens must stay
// under the configured ratio. Prose has lexical variety, while repeated
// menu and share-prompt text is disproportionately these function and
// action words. This is a cheap heuristic, not a classifier; misfires at
// the margins are a known limitation.
func (e *Engine) isValidArticleContent(text string) bool {
	if len(text) < e.limits.MinValidLength {
		return false
	}

	words := strings.Fields(strings.ToLower(text))
	if len(words) == 0 {
		return false
	}

	common := 0
	for _, word := range words {
		word = strings.Trim(word, wordTrimCutset)
		if e.rules.StopWords[word] {
			common++
		}
	}

	ratio := float64(common) / float64(len(words))
	return ratio < e.limits.StopWordRatio
}
