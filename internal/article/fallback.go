package article

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// collectParagraphs is the extraction path of last resort: every paragraph
// element in document order, noise-excluded text per element, fragments
// under the minimum paragraph length dropped, survivors joined with single
// spaces. The content validator does not run here: once the cascade has
// failed, returning something beats returning nothing, and individual
// paragraphs are naturally shorter than whole regions.
func (e *Engine) collectParagraphs(doc *goquery.Document) string {
	var parts []string

	doc.Find("p").Each(func(_ int, sel *goquery.Selection) {
		text := e.elementText(sel)
		if len(text) >= e.limits.MinParagraphLength {
			parts = append(parts, text)
		}
	})

	return strings.Join(parts, " ")
}
