// ABOUTME: Metadata handler serving the reader's article banner
// ABOUTME: Combines page metadata with the derived theme accent color

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"wikireader-api/api/dto/responses"
	"wikireader-api/core/interfaces"
	"wikireader-api/pkg/featureflags"
)

// MetadataHandler handles banner metadata requests
type MetadataHandler struct {
	metadataService interfaces.MetadataService
	colorService    interfaces.AccentColorService
}

// NewMetadataHandler creates a new metadata handler
func NewMetadataHandler(metadataService interfaces.MetadataService, colorService interfaces.AccentColorService) *MetadataHandler {
	return &MetadataHandler{
		metadataService: metadataService,
		colorService:    colorService,
	}
}

// RegisterRoutes registers metadata routes
func (h *MetadataHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "getMetadata",
		Method:      http.MethodGet,
		Path:        "/metadata",
		Summary:     "Extract banner metadata for an article",
		Description: "Returns title, description, lead image and the theme accent color derived from it.",
		Tags:        []string{"Metadata"},
	}, h.GetMetadata)
}

// MetadataInput defines the input for the GetMetadata operation
type MetadataInput struct {
	URL string `query:"url" required:"true" doc:"Article URL to extract banner metadata from"`
}

// MetadataOutput defines the output for the GetMetadata operation
type MetadataOutput struct {
	Body responses.MetadataResponse
}

// GetMetadata handles a banner metadata request
func (h *MetadataHandler) GetMetadata(ctx context.Context, input *MetadataInput) (*MetadataOutput, error) {
	if input.URL == "" {
		return nil, huma.Error400BadRequest("No URL provided")
	}

	meta, err := h.metadataService.ExtractMetadata(ctx, input.URL)
	if err != nil {
		return nil, toHumaError(err)
	}
	if meta == nil {
		return nil, huma.Error400BadRequest("URL yielded no metadata")
	}

	resp := responses.MetadataResponse{
		Title:       meta.Title,
		Description: meta.Description,
		Thumbnail:   meta.Thumbnail,
		Domain:      meta.Domain,
		Favicon:     meta.Favicon,
	}

	if meta.Thumbnail != "" && h.colorService != nil && featureflags.IsEnabled(ctx, featureflags.AccentColor) {
		if color, err := h.colorService.ExtractColor(ctx, meta.Thumbnail); err == nil && color != nil {
			resp.AccentColor = color.Hex()
			resp.SuggestedTheme = string(color.SuggestedTheme())
		}
	}

	return &MetadataOutput{Body: resp}, nil
}
