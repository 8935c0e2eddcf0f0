package article

import "strings"

// SplitForSpeech breaks sanitized content into chunks no longer than
// maxChunkSize characters, splitting at sentence boundaries so synthesis
// requests never start mid-sentence. A single sentence longer than the
// limit becomes its own oversized chunk rather than being cut. Empty input
// returns nil; maxChunkSize <= 0 disables chunking.
func SplitForSpeech(text string, maxChunkSize int) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if maxChunkSize <= 0 || len(text) <= maxChunkSize {
		return []string{text}
	}

	var chunks []string
	var current strings.Builder

	for _, sentence := range splitSentences(text) {
		if current.Len() > 0 && current.Len()+1+len(sentence) > maxChunkSize {
			chunks = append(chunks, current.String())
			current.Reset()
		}
		if current.Len() > 0 {
			current.WriteByte(' ')
		}
		current.WriteString(sentence)
	}
	if current.Len() > 0 {
		chunks = append(chunks, current.String())
	}

	return chunks
}

func splitSentences(text string) []string {
	parts := strings.SplitAfter(text, ". ")
	sentences := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			sentences = append(sentences, part)
		}
	}
	return sentences
}
