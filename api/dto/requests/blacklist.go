// ABOUTME: Request DTOs for preference API endpoints
// ABOUTME: Defines the structure for blacklist append requests

package requests

// BlacklistRequest represents a request to blacklist a host from interception
type BlacklistRequest struct {
	// Host to append to the blacklist
	Host string `json:"host" required:"true" example:"en.wikipedia.org" doc:"Host to exclude from reader interception"`
}
