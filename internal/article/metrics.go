package article

import (
	"math"
	"strings"
)

// CountWords counts whitespace-delimited tokens.
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// EstimateMinutes converts a word count into listening or reading minutes
// at the given words-per-minute rate, rounded to one decimal place. The
// narration and quick-glance call sites pass different rates on purpose;
// they model different consumption modes.
func EstimateMinutes(wordCount, wordsPerMinute int) float64 {
	if wordCount <= 0 || wordsPerMinute <= 0 {
		return 0
	}
	return math.Round(float64(wordCount)/float64(wordsPerMinute)*10) / 10
}
