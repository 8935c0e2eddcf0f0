package fetcher

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// pageInfo is the cheap structural summary of a fetched page: document
// title, visible word count, and the meta tags downstream consumers care
// about.
type pageInfo struct {
	title    string
	words    int
	metadata map[string]string
}

var metaNames = []string{"description", "author", "keywords"}

var metaProperties = []string{
	"og:title", "og:description", "og:site_name", "og:type",
	"article:published_time", "article:author",
}

func summarizePage(html string) pageInfo {
	info := pageInfo{metadata: map[string]string{}}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return info
	}

	info.title = strings.TrimSpace(doc.Find("title").First().Text())

	for _, name := range metaNames {
		if content, ok := doc.Find(`meta[name="` + name + `"]`).First().Attr("content"); ok {
			if content = strings.TrimSpace(content); content != "" {
				info.metadata[name] = content
			}
		}
	}
	for _, prop := range metaProperties {
		if content, ok := doc.Find(`meta[property="` + prop + `"]`).First().Attr("content"); ok {
			if content = strings.TrimSpace(content); content != "" {
				info.metadata[prop] = content
			}
		}
	}

	body := doc.Find("body").Clone()
	body.Find("script, style, noscript").Remove()
	info.words = len(strings.Fields(body.Text()))

	return info
}
