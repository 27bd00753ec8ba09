// ABOUTME: Table-of-contents extraction from section and sub-section headings
// ABOUTME: Filters non-content headings and assigns scroll-target ids in place

package transform

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"

	"wikireader-api/core/domain"
)

// headingStopList excludes headings whose lowercased text contains any of
// these substrings. Matching is substring containment, which can
// false-positive on legitimate section titles containing these words;
// that behavior is intentional and preserved.
var headingStopList = []string{
	"contents",
	"navigation",
	"menu",
	"languages",
}

// ExtractTOC collects h2/h3 headings within root in document order, drops
// stop-listed ones, assigns each survivor a fresh unique id (mutating the
// heading element so rendered output can be scroll-targeted), and returns
// the ordered section list.
func ExtractTOC(root *goquery.Selection) []domain.Section {
	sections := []domain.Section{}

	root.Find("h2, h3").Each(func(_ int, h *goquery.Selection) {
		title := strings.TrimSpace(h.Text())
		if title == "" || isStopListed(title) {
			return
		}

		id := "section-" + uuid.New().String()
		h.SetAttr("id", id)
		sections = append(sections, domain.Section{
			ID:    id,
			Title: title,
		})
	})

	return sections
}

func isStopListed(title string) bool {
	lower := strings.ToLower(title)
	for _, stop := range headingStopList {
		if strings.Contains(lower, stop) {
			return true
		}
	}
	return false
}
