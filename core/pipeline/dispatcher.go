// ABOUTME: Dispatcher guarding against stale pipeline invocations
// ABOUTME: Last-write-wins: only the result for the currently-desired URL commits

package pipeline

import (
	"context"
	"sync"

	"wikireader-api/core/domain"
	"wikireader-api/core/interfaces"
)

// Dispatcher serializes the "currently desired URL" across re-entrant
// render requests. A new request supersedes any in-flight one: the stale
// invocation still runs to completion (cancellation is advisory, not
// forced), but its model is discarded instead of committed.
type Dispatcher struct {
	mu      sync.Mutex
	current string

	renderer interfaces.RenderService
	logger   interfaces.Logger
}

// NewDispatcher creates a dispatcher around a render service.
func NewDispatcher(renderer interfaces.RenderService, logger interfaces.Logger) *Dispatcher {
	return &Dispatcher{
		renderer: renderer,
		logger:   logger,
	}
}

// Render runs the pipeline for url. The returned bool reports whether the
// model may be committed to the presentation layer; false means a newer
// request superseded this one while it was in flight.
func (d *Dispatcher) Render(ctx context.Context, url string) (domain.RenderModel, bool) {
	d.mu.Lock()
	d.current = url
	d.mu.Unlock()

	model := d.renderer.Render(ctx, url)

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.current != url {
		if d.logger != nil {
			d.logger.Debug("Discarding stale render", map[string]interface{}{
				"url":     url,
				"current": d.current,
			})
		}
		return domain.RenderModel{}, false
	}
	return model, true
}
