// ABOUTME: Banner worker warms metadata and accent color caches in the background
// ABOUTME: Provides a managed worker pool fed by completed article renders

package workers

import (
	"context"
	"sync"

	"wikireader-api/core/interfaces"
)

// BannerWorker prefetches banner metadata for recently rendered articles so
// the subsequent banner request is served from cache. Prefetching is best
// effort: a full queue drops the job rather than blocking a render.
type BannerWorker struct {
	metadata interfaces.MetadataService
	colors   interfaces.AccentColorService
	logger   interfaces.Logger

	jobQueue   chan string
	maxWorkers int
	wg         sync.WaitGroup
	ctx        context.Context
	cancel     context.CancelFunc
	mu         sync.Mutex
	running    bool
}

// WorkerConfig holds configuration for the banner worker pool
type WorkerConfig struct {
	MaxWorkers int
	QueueSize  int
}

// DefaultWorkerConfig returns the default worker configuration
func DefaultWorkerConfig() WorkerConfig {
	return WorkerConfig{
		MaxWorkers: 4,
		QueueSize:  64,
	}
}

// NewBannerWorker creates a new banner prefetch worker
func NewBannerWorker(metadata interfaces.MetadataService, colors interfaces.AccentColorService, logger interfaces.Logger, config WorkerConfig) *BannerWorker {
	if config.MaxWorkers <= 0 {
		config.MaxWorkers = DefaultWorkerConfig().MaxWorkers
	}
	if config.QueueSize <= 0 {
		config.QueueSize = DefaultWorkerConfig().QueueSize
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &BannerWorker{
		metadata:   metadata,
		colors:     colors,
		logger:     logger,
		jobQueue:   make(chan string, config.QueueSize),
		maxWorkers: config.MaxWorkers,
		ctx:        ctx,
		cancel:     cancel,
	}
}

// Start starts the worker pool
func (w *BannerWorker) Start() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return
	}

	for i := 0; i < w.maxWorkers; i++ {
		w.wg.Add(1)
		go w.run()
	}
	w.running = true
}

// Stop stops the worker pool gracefully. Queued jobs are drained first.
func (w *BannerWorker) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		return
	}

	close(w.jobQueue)
	w.wg.Wait()
	w.cancel()
	w.running = false
}

// Enqueue submits an article URL for banner prefetching. It reports whether
// the job was accepted; a stopped worker or full queue drops it.
func (w *BannerWorker) Enqueue(url string) bool {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return false
	}
	w.mu.Unlock()

	select {
	case w.jobQueue <- url:
		return true
	default:
		if w.logger != nil {
			w.logger.Debug("Banner prefetch queue full", map[string]interface{}{
				"url": url,
			})
		}
		return false
	}
}

// run is the main loop for each worker goroutine
func (w *BannerWorker) run() {
	defer w.wg.Done()

	for {
		select {
		case url, ok := <-w.jobQueue:
			if !ok {
				return
			}
			w.prefetch(url)
		case <-w.ctx.Done():
			return
		}
	}
}

// prefetch warms the metadata cache for one URL, then the accent color
// cache when a lead image was found.
func (w *BannerWorker) prefetch(url string) {
	meta, err := w.metadata.ExtractMetadata(w.ctx, url)
	if err != nil || meta == nil {
		if err != nil && w.logger != nil {
			w.logger.Debug("Banner metadata prefetch failed", map[string]interface{}{
				"url":   url,
				"error": err.Error(),
			})
		}
		return
	}

	if meta.Thumbnail != "" && w.colors != nil {
		if _, err := w.colors.ExtractColor(w.ctx, meta.Thumbnail); err != nil && w.logger != nil {
			w.logger.Debug("Accent color prefetch failed", map[string]interface{}{
				"url":   meta.Thumbnail,
				"error": err.Error(),
			})
		}
	}
}
