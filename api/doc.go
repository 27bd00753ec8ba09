// Package api provides the HTTP API layer for the WikiReader application.
// It uses the Huma framework to provide automatic OpenAPI documentation,
// request/response validation, and a clean handler interface.
//
// # Architecture
//
// The API package is structured as follows:
//
// - server.go: Huma API configuration and setup
// - handlers/: HTTP request handlers
// - dto/: Data Transfer Objects for requests and responses
// - middleware/: HTTP middleware for cross-cutting concerns
//
// # Endpoints
//
// - GET /render: run the transformation pipeline for an article URL
// - GET /redirect/check: decide whether a navigation should be intercepted
// - POST /preferences/blacklist: append a host to the preference blacklist
// - GET /metadata: banner metadata plus theme accent color
//
// The OpenAPI 3.0 spec is generated automatically: the JSON document is
// served at /openapi.json and an interactive UI at /docs.
//
// # Middleware
//
// The API includes middleware for:
// - Request logging with unique request IDs
// - Per-IP token bucket rate limiting
// - CORS handling
//
// # Error Handling
//
// The API uses a consistent error format based on RFC 7807. Note that the
// render endpoint deliberately does not map pipeline failures to HTTP
// errors: a failed pipeline run still returns a complete fallback render
// model so the presentation layer always has something well-formed to show.
package api
