// ABOUTME: Render domain models for the reader view transformation pipeline
// ABOUTME: Defines the RenderModel produced per article and its TOC sections

package domain

// Section represents one entry in the derived table of contents.
// IDs are generated fresh for every pipeline invocation and are only
// meaningful for scroll targeting within the accompanying HTML.
type Section struct {
	// ID is an opaque identifier also carried by the rendered heading element
	ID string `json:"id"`

	// Title is the heading's visible text
	Title string `json:"title"`
}

// RenderModel is the pipeline's output: a render-ready view of one article.
// It is immutable once produced; a failed pipeline run yields a fully-formed
// fallback model rather than a partial one.
type RenderModel struct {
	// URL is the article source URL the model was built from
	URL string `json:"url"`

	// Title is the article title, empty on failure
	Title string `json:"title"`

	// HTML is sanitized markup safe for direct rendering
	HTML string `json:"html"`

	// Markdown is a markdown rendition of HTML, empty if conversion failed
	Markdown string `json:"markdown,omitempty"`

	// Sections lists TOC entries in document order
	Sections []Section `json:"sections"`

	// ReadingTimeMinutes is ceil(words/200); 0 only on failure or empty text
	ReadingTimeMinutes int `json:"readingTimeMinutes"`

	// LeadImage is the article's lead image URL, if one was found
	LeadImage string `json:"leadImage,omitempty"`

	// Failed reports whether the pipeline ended in its failure state
	Failed bool `json:"failed"`
}

// SectionIDs returns the IDs of all sections in order.
func (m *RenderModel) SectionIDs() []string {
	ids := make([]string, len(m.Sections))
	for i, s := range m.Sections {
		ids[i] = s.ID
	}
	return ids
}
