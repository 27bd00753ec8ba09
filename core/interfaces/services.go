// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines contracts for services used throughout the application

package interfaces

import (
	"context"

	"wikireader-api/core/domain"
)

// RenderService turns an article URL into a render-ready model.
// It never returns an error: failures surface as a fallback RenderModel
// with Failed set.
type RenderService interface {
	Render(ctx context.Context, url string) domain.RenderModel
}

// MetadataResult contains banner metadata extracted from an article page
type MetadataResult struct {
	Title       string
	Description string
	Thumbnail   string // Lead image URL
	Domain      string
	Favicon     string
}

// MetadataService extracts banner metadata from article pages
type MetadataService interface {
	ExtractMetadata(ctx context.Context, url string) (*MetadataResult, error)
}

// AccentColorService derives a theme accent color from a lead image
type AccentColorService interface {
	ExtractColor(ctx context.Context, imageURL string) (*domain.RGBColor, error)
}
