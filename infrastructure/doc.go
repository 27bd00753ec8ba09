// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as caching, HTTP communication, logging, and preference storage.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: In-memory cache for ancillary data (go-cache backed)
// - http/standard: Standard library HTTP client with a single-attempt policy
// - logger/logrus: Structured logger implementation on logrus
// - storage/sqlite: SQLite-backed host blacklist store
//
// # Design Philosophy
//
// Infrastructure components are designed to be:
// - Pluggable: Easy to swap implementations
// - Configurable: Accept configuration objects
// - Testable: Include unit tests against the core interfaces
//
// Unlike a typical fetch layer, the HTTP client deliberately performs no
// retries: a failed article fetch is a terminal state for that pipeline
// invocation, and the user re-triggers navigation to retry.
//
// # HTTP Client
//
//	client := standard.NewStandardHTTPClient(30 * time.Second)
//	resp, err := client.Get(ctx, "https://en.wikipedia.org/wiki/Go_(programming_language)")
//	if err != nil {
//	    // Terminal failure for this invocation
//	}
//	defer resp.Body().Close()
//
// # Logger
//
//	logger := logrus.NewLogger("info")
//	logger.Info("Rendering article", map[string]interface{}{
//	    "url": articleURL,
//	})
//
// # Blacklist Store
//
//	store, err := sqlite.NewBlacklistStore("preferences.db")
//	err = store.Add(ctx, entry)
//	found, err := store.Contains(ctx, "en.wikipedia.org")
package infrastructure
