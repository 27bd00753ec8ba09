// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to appropriate HTTP responses

package handlers

import (
	"github.com/danielgtaylor/huma/v2"

	"wikireader-api/core/errors"
)

// toHumaError converts domain errors to appropriate Huma HTTP errors
func toHumaError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.IsFetch(err):
		return huma.Error502BadGateway("Article fetch failed", err)
	case errors.IsParse(err), errors.IsNoContent(err), errors.IsSanitizeEmpty(err):
		return huma.Error422UnprocessableEntity(err.Error())
	default:
		return huma.Error500InternalServerError("Internal server error", err)
	}
}
