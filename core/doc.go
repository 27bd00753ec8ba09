// Package core contains the business logic for the Wikipedia reader view API.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Pure domain models (RenderModel, Section, Theme, BlacklistEntry)
// - transform: The individual article transformation passes
// - pipeline: The fetch-to-render orchestrator and stale-invocation guard
// - redirect: Navigation interception and reader-URL construction
// - services: Banner metadata and accent color extraction
// - workers: Background banner prefetch pool
// - errors: The pipeline's failure taxonomy as typed errors
// - interfaces: Contracts for external dependencies (cache, HTTP, logger, storage)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Domain models are free from persistence concerns
//
// # Usage Example
//
//	import (
//	    "wikireader-api/core/interfaces"
//	    "wikireader-api/core/pipeline"
//	)
//
//	deps := interfaces.Dependencies{
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	svc := pipeline.NewService(deps, pipeline.DefaultOptions())
//	model := svc.Render(ctx, "https://en.wikipedia.org/wiki/Go_(programming_language)")
package core
