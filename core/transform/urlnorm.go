// ABOUTME: URL normalization pass for images and hyperlinks
// ABOUTME: Rewrites protocol-relative and root-relative references to absolute ones

package transform

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// NormalizeURLs rewrites every image src/srcset and every link href in the
// document so protocol-relative (//…) and root-relative (/…) references
// become absolute against origin, and marks all images as lazy-loaded.
// Already-absolute references are left untouched. This pass must run before
// sanitization so the sanitizer never sees protocol-relative URLs.
func NormalizeURLs(doc *goquery.Document, origin string) {
	doc.Find("img").Each(func(_ int, img *goquery.Selection) {
		if src, ok := img.Attr("src"); ok {
			img.SetAttr("src", NormalizeRef(src, origin))
		}
		if srcset, ok := img.Attr("srcset"); ok {
			img.SetAttr("srcset", NormalizeSrcset(srcset, origin))
		}
		img.SetAttr("loading", "lazy")
	})

	doc.Find("a").Each(func(_ int, a *goquery.Selection) {
		if href, ok := a.Attr("href"); ok {
			a.SetAttr("href", NormalizeRef(href, origin))
		}
	})
}

// NormalizeRef resolves a single reference against origin.
// Protocol-relative references adopt the origin's scheme; root-relative
// references are prefixed with the origin; everything else passes through.
func NormalizeRef(ref, origin string) string {
	switch {
	case strings.HasPrefix(ref, "//"):
		scheme := "https:"
		if i := strings.Index(origin, "//"); i > 0 {
			scheme = origin[:i]
		}
		return scheme + ref
	case strings.HasPrefix(ref, "/"):
		return origin + ref
	default:
		return ref
	}
}

// NormalizeSrcset rewrites each entry of a srcset attribute value.
// Entries are comma-separated "url [descriptor]" pairs; descriptors are
// preserved as-is and entries are rejoined with ", ".
func NormalizeSrcset(srcset, origin string) string {
	entries := strings.Split(srcset, ",")
	out := make([]string, 0, len(entries))
	for _, entry := range entries {
		fields := strings.Fields(entry)
		if len(fields) == 0 {
			continue
		}
		fields[0] = NormalizeRef(fields[0], origin)
		out = append(out, strings.Join(fields, " "))
	}
	return strings.Join(out, ", ")
}
