// ABOUTME: HTML utilities for reducing markup fragments to plain text
// ABOUTME: Used to clean scraped metadata fields before they reach the banner

package html

import (
	stdhtml "html"
	"strings"

	"golang.org/x/net/html"
)

// StripHTML reduces an HTML fragment to its visible text. Tags are dropped,
// script and style content is skipped entirely, entities are decoded and
// whitespace is collapsed to single spaces.
func StripHTML(fragment string) string {
	if fragment == "" {
		return ""
	}

	var b strings.Builder
	skip := 0

	z := html.NewTokenizer(strings.NewReader(fragment))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return CollapseWhitespace(b.String())
		case html.StartTagToken:
			name, _ := z.TagName()
			if isInvisible(string(name)) {
				skip++
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			if isInvisible(string(name)) && skip > 0 {
				skip--
			}
		case html.TextToken:
			if skip == 0 {
				b.WriteString(string(z.Text()))
				b.WriteByte(' ')
			}
		}
	}
}

// DecodeEntities decodes HTML entities in a text fragment
func DecodeEntities(text string) string {
	return stdhtml.UnescapeString(text)
}

// CollapseWhitespace trims a string and collapses internal whitespace runs
// to single spaces.
func CollapseWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// isInvisible reports whether a tag's content never renders as text
func isInvisible(tag string) bool {
	switch tag {
	case "script", "style", "noscript", "template":
		return true
	}
	return false
}
