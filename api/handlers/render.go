// ABOUTME: Render handler exposing the article transformation pipeline
// ABOUTME: Accepts raw article URLs or reader-view addresses and returns render models

package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"wikireader-api/api/dto/responses"
	"wikireader-api/core/pipeline"
	"wikireader-api/core/redirect"
	"wikireader-api/pkg/featureflags"
)

// BannerPrefetcher accepts article URLs for background banner warming
type BannerPrefetcher interface {
	Enqueue(url string) bool
}

// RenderHandler handles article render requests
type RenderHandler struct {
	dispatcher *pipeline.Dispatcher
	redirector *redirect.Service
	prefetcher BannerPrefetcher
}

// NewRenderHandler creates a new render handler. The prefetcher is optional;
// nil disables banner prefetching.
func NewRenderHandler(dispatcher *pipeline.Dispatcher, redirector *redirect.Service, prefetcher BannerPrefetcher) *RenderHandler {
	return &RenderHandler{
		dispatcher: dispatcher,
		redirector: redirector,
		prefetcher: prefetcher,
	}
}

// RegisterRoutes registers all render-related routes
func (h *RenderHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "renderArticle",
		Method:      http.MethodGet,
		Path:        "/render",
		Summary:     "Render an article as a reader view model",
		Description: "Fetches a Wikipedia article, strips site furniture and returns sanitized HTML, a table of contents and a reading time estimate. Failures yield a well-formed fallback model rather than an error.",
		Tags:        []string{"Render"},
	}, h.Render)
}

// RenderInput defines the input for the Render operation
type RenderInput struct {
	URL string `query:"url" required:"true" doc:"Article URL, or a reader-view address embedding one"`
}

// RenderOutput defines the output for the Render operation
type RenderOutput struct {
	Body responses.RenderResponse
}

// Render handles a render request. When the given URL is itself a
// reader-view address, the original article URL is recovered from it first.
func (h *RenderHandler) Render(ctx context.Context, input *RenderInput) (*RenderOutput, error) {
	target := strings.TrimSpace(input.URL)
	if target == "" {
		return nil, huma.Error400BadRequest("No URL provided")
	}

	if original, err := h.redirector.OriginalURL(target); err == nil {
		target = original
	}

	model, committed := h.dispatcher.Render(ctx, target)
	if !committed {
		// A newer request superseded this one; its result is discarded
		return nil, huma.Error409Conflict("Render superseded by a newer request")
	}

	if !model.Failed && h.prefetcher != nil && featureflags.IsEnabled(ctx, featureflags.BannerPrefetch) {
		h.prefetcher.Enqueue(target)
	}

	return &RenderOutput{
		Body: responses.RenderResponse{Model: model},
	}, nil
}
