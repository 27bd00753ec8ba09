// ABOUTME: Huma API server configuration and setup
// ABOUTME: Provides OpenAPI documentation and request/response validation

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"wikireader-api/api/middleware"
	"wikireader-api/core/interfaces"
	"wikireader-api/pkg/featureflags"
)

// APIConfig holds configuration for the API
type APIConfig struct {
	Logger     interfaces.Logger
	Flags      featureflags.Manager
	RateLimit  int           // requests per window per client IP
	RateWindow time.Duration // rate limit window
}

// NewAPIWithMiddleware creates a new Huma API with middleware configured
func NewAPIWithMiddleware(cfg APIConfig) (huma.API, chi.Router) {
	router := chi.NewRouter()

	flags := cfg.Flags
	if flags == nil {
		flags = featureflags.NewStaticManager(nil)
	}

	// CORS first: the reader front-end is served from a different origin
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Use(flagsMiddleware(flags))

	if cfg.Logger != nil {
		router.Use(middleware.RequestLoggingMiddleware(cfg.Logger))
	}

	if cfg.RateLimit > 0 && cfg.RateWindow > 0 &&
		flags.IsEnabled(context.Background(), featureflags.RateLimitEnabled) {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		router.Use(middleware.RateLimitMiddleware(limiter))
	}

	config := huma.DefaultConfig("WikiReader API", "1.0.0")
	config.Info.Description = "API turning Wikipedia article pages into simplified reader views"

	api := humachi.New(router, config)

	// The OpenAPI spec is served at /openapi.json, the UI at /docs

	return api, router
}

// flagsMiddleware installs the feature flag manager on request contexts so
// handlers and core services consult the same flag states.
func flagsMiddleware(flags featureflags.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r = r.WithContext(featureflags.WithManager(r.Context(), flags))
			next.ServeHTTP(w, r)
		})
	}
}
