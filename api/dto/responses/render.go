// ABOUTME: Response DTOs for the render and redirect API endpoints
// ABOUTME: Defines the wire shapes of the render model and interception decisions

package responses

import "wikireader-api/core/domain"

// RenderResponse carries the render model for one article
type RenderResponse struct {
	Model domain.RenderModel `json:"model"`
}

// RedirectCheckResponse reports the interception decision for a URL
type RedirectCheckResponse struct {
	// Intercept is true when the URL qualifies for the reader view
	Intercept bool `json:"intercept"`

	// ReaderURL is the reader-view address, set only when Intercept is true
	ReaderURL string `json:"readerUrl,omitempty"`
}

// MetadataResponse carries banner metadata plus the derived accent color
type MetadataResponse struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Thumbnail   string `json:"thumbnail,omitempty"`
	Domain      string `json:"domain,omitempty"`
	Favicon     string `json:"favicon,omitempty"`

	// AccentColor is the theme accent derived from the lead image
	AccentColor string `json:"accentColor,omitempty"`

	// SuggestedTheme is the reader scheme that suits the accent color
	SuggestedTheme string `json:"suggestedTheme,omitempty"`
}
