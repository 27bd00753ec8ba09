// ABOUTME: Content locator that selects the article body from a parsed document
// ABOUTME: Evaluates an ordered list of candidate selectors, first success wins

package transform

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// candidate names one known Wikipedia content-container convention.
// Page templates vary by locale and skin; the ordered chain maximizes the
// chance of finding the real article body without coupling to one structure.
type candidate struct {
	name     string
	selector string
}

var contentCandidates = []candidate{
	{"content text wrapper", "#mw-content-text .mw-parser-output"},
	{"body content wrapper", "#bodyContent #mw-content-text"},
	{"content text", "#mw-content-text"},
	{"content container", "#content"},
	{"body content class", ".mw-body-content"},
	{"document body", "body"},
}

// LocateContent selects the ContentRoot: the first candidate whose selector
// matches and whose serialized content is non-empty after the cleanup and
// normalization passes have run. Returns false if the chain is exhausted.
func LocateContent(doc *goquery.Document) (*goquery.Selection, bool) {
	for _, c := range contentCandidates {
		sel := doc.Find(c.selector).First()
		if sel.Length() == 0 {
			continue
		}
		html, err := sel.Html()
		if err != nil || strings.TrimSpace(html) == "" {
			continue
		}
		return sel, true
	}
	return nil, false
}
