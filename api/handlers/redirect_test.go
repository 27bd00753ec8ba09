package handlers

import (
	"context"
	"net/url"
	"strings"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"

	"wikireader-api/core/redirect"
)

func newRedirectHandler(storage *mockBlacklistStorage) *RedirectHandler {
	redirector := redirect.NewService(storage, nil, redirect.DefaultOptions())
	return NewRedirectHandler(redirector)
}

func TestRedirectHandler_RegisterRoutes(t *testing.T) {
	handler := newRedirectHandler(newMockBlacklistStorage())

	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	openapi := api.OpenAPI()
	if openapi.Paths == nil || openapi.Paths["/redirect/check"] == nil {
		t.Error("GET /redirect/check endpoint not registered")
	} else if openapi.Paths["/redirect/check"].Get == nil {
		t.Error("GET method not registered for /redirect/check")
	}
	if openapi.Paths["/preferences/blacklist"] == nil {
		t.Error("POST /preferences/blacklist endpoint not registered")
	} else if openapi.Paths["/preferences/blacklist"].Post == nil {
		t.Error("POST method not registered for /preferences/blacklist")
	}
}

func TestRedirectHandler_Check_InterceptsArticlePage(t *testing.T) {
	handler := newRedirectHandler(newMockBlacklistStorage())
	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	article := "https://en.wikipedia.org/wiki/Go_(programming_language)"
	resp := api.Get("/redirect/check?url=" + url.QueryEscape(article))

	if resp.Code != 200 {
		t.Fatalf("Expected status 200, got %d", resp.Code)
	}

	body := resp.Body.String()
	if !strings.Contains(body, `"intercept":true`) {
		t.Error("Article page should be intercepted")
	}
	if !strings.Contains(body, "readerUrl") {
		t.Error("Intercepted response should carry the reader URL")
	}
}

func TestRedirectHandler_Check_SkipsOtherHosts(t *testing.T) {
	handler := newRedirectHandler(newMockBlacklistStorage())
	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	resp := api.Get("/redirect/check?url=" + url.QueryEscape("https://example.com/wiki/Go"))

	if resp.Code != 200 {
		t.Fatalf("Expected status 200, got %d", resp.Code)
	}

	body := resp.Body.String()
	if !strings.Contains(body, `"intercept":false`) {
		t.Error("Foreign host should not be intercepted")
	}
	if strings.Contains(body, "readerUrl") {
		t.Error("Non-intercepted response should not carry a reader URL")
	}
}

func TestRedirectHandler_Check_SkipsBlacklistedHost(t *testing.T) {
	storage := newMockBlacklistStorage()
	storage.hosts["en.wikipedia.org"] = true
	handler := newRedirectHandler(storage)
	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	article := "https://en.wikipedia.org/wiki/Go"
	resp := api.Get("/redirect/check?url=" + url.QueryEscape(article))

	if resp.Code != 200 {
		t.Fatalf("Expected status 200, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), `"intercept":false`) {
		t.Error("Blacklisted host should not be intercepted")
	}
}

func TestRedirectHandler_Check_MissingURL(t *testing.T) {
	handler := newRedirectHandler(newMockBlacklistStorage())
	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	resp := api.Get("/redirect/check")

	if resp.Code != 422 {
		t.Errorf("Expected status 422 for missing url parameter, got %d", resp.Code)
	}
}

func TestRedirectHandler_AddToBlacklist_Success(t *testing.T) {
	storage := newMockBlacklistStorage()
	handler := newRedirectHandler(storage)
	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	resp := api.Post("/preferences/blacklist", map[string]interface{}{
		"host": "en.wikipedia.org",
	})

	if resp.Code != 204 {
		t.Fatalf("Expected status 204, got %d", resp.Code)
	}

	found, _ := storage.Contains(context.Background(), "en.wikipedia.org")
	if !found {
		t.Error("Host should be persisted in the blacklist")
	}
}

func TestRedirectHandler_AddToBlacklist_NormalizesHost(t *testing.T) {
	storage := newMockBlacklistStorage()
	handler := newRedirectHandler(storage)
	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	resp := api.Post("/preferences/blacklist", map[string]interface{}{
		"host": "  EN.Wikipedia.ORG  ",
	})

	if resp.Code != 204 {
		t.Fatalf("Expected status 204, got %d", resp.Code)
	}

	found, _ := storage.Contains(context.Background(), "en.wikipedia.org")
	if !found {
		t.Error("Host should be stored lowercased and trimmed")
	}
}

func TestRedirectHandler_AddToBlacklist_RejectsInvalidHost(t *testing.T) {
	handler := newRedirectHandler(newMockBlacklistStorage())
	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	resp := api.Post("/preferences/blacklist", map[string]interface{}{
		"host": "https://en.wikipedia.org/wiki/Go",
	})

	if resp.Code != 400 {
		t.Errorf("Expected status 400 for a full URL, got %d", resp.Code)
	}
}
