// ABOUTME: Clutter removal pass that strips Wikipedia site furniture in place
// ABOUTME: Driven by a declarative selector table consumed by one removal routine

package transform

import "github.com/PuerkitoBio/goquery"

// removal pairs a selector with the kind of page furniture it matches.
// The selector sets are disjoint, so removal order does not matter and
// re-running the pass on a cleaned document is a no-op.
type removal struct {
	selector string
	reason   string
}

var clutterRemovals = []removal{
	{"#mw-navigation", "site navigation chrome"},
	{".vector-header-container", "skin header chrome"},
	{".mw-editsection", "per-section edit links"},
	{"#toc", "site table of contents"},
	{".toc", "site table of contents variants"},
	{".navbox", "navigation boxes"},
	{".vertical-navbox", "vertical navigation boxes"},
	{".metadata", "metadata boxes"},
	{".sistersitebox", "sister-site boxes"},
	{".printfooter", "print-only footer"},
	{"#catlinks", "category links"},
	{"#footer", "page footer"},
	{".mw-footer-container", "skin footer"},
	{".mw-jump-link", "accessibility jump links"},
	{".mw-empty-elt", "empty element placeholders"},
	{"#siteSub", "page subtitle banner"},
	{"#contentSub", "page subtitle banner"},
	{".mw-indicators", "page indicator badges"},
	{".hatnote", "hat-notes"},
	{"#coordinates", "coordinate badges"},
}

// RemoveClutter deletes every element matching the removal table from the
// document. It operates in place and is idempotent.
func RemoveClutter(doc *goquery.Document) {
	for _, r := range clutterRemovals {
		doc.Find(r.selector).Remove()
	}
}
