package handlers

import (
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"

	"wikireader-api/core/domain"
	coreerrors "wikireader-api/core/errors"
	"wikireader-api/core/interfaces"
)

func TestMetadataHandler_RegisterRoutes(t *testing.T) {
	handler := NewMetadataHandler(&mockMetadataService{}, &mockColorService{})

	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	openapi := api.OpenAPI()
	if openapi.Paths == nil || openapi.Paths["/metadata"] == nil {
		t.Error("GET /metadata endpoint not registered")
	} else if openapi.Paths["/metadata"].Get == nil {
		t.Error("GET method not registered for /metadata")
	}
}

func TestMetadataHandler_GetMetadata_Success(t *testing.T) {
	metadata := &mockMetadataService{
		result: &interfaces.MetadataResult{
			Title:       "Go (programming language)",
			Description: "Statically typed, compiled language",
			Thumbnail:   "https://upload.wikimedia.org/go-logo.png",
			Domain:      "en.wikipedia.org",
		},
	}
	colors := &mockColorService{
		color: &domain.RGBColor{R: 0, G: 173, B: 216},
	}
	handler := NewMetadataHandler(metadata, colors)
	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	resp := api.Get("/metadata?url=" + url.QueryEscape("https://en.wikipedia.org/wiki/Go"))

	if resp.Code != 200 {
		t.Fatalf("Expected status 200, got %d", resp.Code)
	}

	body := resp.Body.String()
	if !strings.Contains(body, "Go (programming language)") {
		t.Error("Response body missing title")
	}
	if !strings.Contains(body, "#00add8") {
		t.Error("Response body missing derived accent color")
	}
	if !strings.Contains(body, `"suggestedTheme":"dark"`) {
		t.Error("Response body missing suggested theme")
	}
}

func TestMetadataHandler_GetMetadata_NoThumbnailSkipsColor(t *testing.T) {
	metadata := &mockMetadataService{
		result: &interfaces.MetadataResult{Title: "Go"},
	}
	handler := NewMetadataHandler(metadata, &mockColorService{
		color: &domain.RGBColor{R: 1, G: 2, B: 3},
	})
	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	resp := api.Get("/metadata?url=" + url.QueryEscape("https://en.wikipedia.org/wiki/Go"))

	if resp.Code != 200 {
		t.Fatalf("Expected status 200, got %d", resp.Code)
	}
	if strings.Contains(resp.Body.String(), "accentColor") {
		t.Error("No thumbnail should mean no accent color")
	}
}

func TestMetadataHandler_GetMetadata_ColorErrorIsNonFatal(t *testing.T) {
	metadata := &mockMetadataService{
		result: &interfaces.MetadataResult{
			Title:     "Go",
			Thumbnail: "https://upload.wikimedia.org/go-logo.svg",
		},
	}
	colors := &mockColorService{err: errors.New("unsupported image format")}
	handler := NewMetadataHandler(metadata, colors)
	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	resp := api.Get("/metadata?url=" + url.QueryEscape("https://en.wikipedia.org/wiki/Go"))

	if resp.Code != 200 {
		t.Errorf("Expected status 200 despite color failure, got %d", resp.Code)
	}
}

func TestMetadataHandler_GetMetadata_FetchErrorMapsTo502(t *testing.T) {
	metadata := &mockMetadataService{
		err: &coreerrors.FetchError{
			URL:        "https://en.wikipedia.org/wiki/Go",
			StatusCode: 503,
		},
	}
	handler := NewMetadataHandler(metadata, &mockColorService{})
	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	resp := api.Get("/metadata?url=" + url.QueryEscape("https://en.wikipedia.org/wiki/Go"))

	if resp.Code != 502 {
		t.Errorf("Expected status 502 for fetch failure, got %d", resp.Code)
	}
}

func TestMetadataHandler_GetMetadata_MissingURL(t *testing.T) {
	handler := NewMetadataHandler(&mockMetadataService{}, &mockColorService{})
	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	resp := api.Get("/metadata")

	if resp.Code != 422 {
		t.Errorf("Expected status 422 for missing url parameter, got %d", resp.Code)
	}
}
