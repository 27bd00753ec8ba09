// ABOUTME: Redirect handler for interception decisions and blacklist preferences
// ABOUTME: Exposes the navigation redirector to the surrounding browser UI

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"wikireader-api/api/dto/requests"
	"wikireader-api/api/dto/responses"
	"wikireader-api/core/redirect"
)

// RedirectHandler handles interception checks and blacklist updates
type RedirectHandler struct {
	redirector *redirect.Service
}

// NewRedirectHandler creates a new redirect handler
func NewRedirectHandler(redirector *redirect.Service) *RedirectHandler {
	return &RedirectHandler{
		redirector: redirector,
	}
}

// RegisterRoutes registers all redirect-related routes
func (h *RedirectHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "checkRedirect",
		Method:      http.MethodGet,
		Path:        "/redirect/check",
		Summary:     "Decide whether a navigation should be intercepted",
		Description: "Reports whether the URL qualifies for the reader view, and if so the reader address to redirect to.",
		Tags:        []string{"Redirect"},
	}, h.Check)

	huma.Register(api, huma.Operation{
		OperationID:   "addToBlacklist",
		Method:        http.MethodPost,
		Path:          "/preferences/blacklist",
		Summary:       "Blacklist a host from interception",
		Description:   "Appends a host to the preference blacklist. The operation is append-only.",
		Tags:          []string{"Preferences"},
		DefaultStatus: http.StatusNoContent,
	}, h.AddToBlacklist)
}

// CheckInput defines the input for the Check operation
type CheckInput struct {
	URL string `query:"url" required:"true" doc:"Navigation URL to evaluate"`
}

// CheckOutput defines the output for the Check operation
type CheckOutput struct {
	Body responses.RedirectCheckResponse
}

// Check handles an interception decision request
func (h *RedirectHandler) Check(ctx context.Context, input *CheckInput) (*CheckOutput, error) {
	if input.URL == "" {
		return nil, huma.Error400BadRequest("No URL provided")
	}

	intercept, err := h.redirector.ShouldIntercept(ctx, input.URL)
	if err != nil {
		return nil, huma.Error400BadRequest(err.Error())
	}

	resp := responses.RedirectCheckResponse{Intercept: intercept}
	if intercept {
		resp.ReaderURL = h.redirector.ReaderURL(input.URL)
	}

	return &CheckOutput{Body: resp}, nil
}

// BlacklistInput defines the input for the AddToBlacklist operation
type BlacklistInput struct {
	Body requests.BlacklistRequest
}

// BlacklistOutput defines the (empty) output for the AddToBlacklist operation
type BlacklistOutput struct{}

// AddToBlacklist handles a blacklist append request
func (h *RedirectHandler) AddToBlacklist(ctx context.Context, input *BlacklistInput) (*BlacklistOutput, error) {
	if err := h.redirector.AddToBlacklist(ctx, input.Body.Host); err != nil {
		return nil, huma.Error400BadRequest(err.Error())
	}
	return &BlacklistOutput{}, nil
}
