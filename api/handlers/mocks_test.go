package handlers

import (
	"context"
	"sync"

	"wikireader-api/core/domain"
	"wikireader-api/core/interfaces"
)

// mockRenderService records rendered URLs and returns a canned model
type mockRenderService struct {
	mu       sync.Mutex
	rendered []string
	model    domain.RenderModel
}

func (m *mockRenderService) Render(ctx context.Context, url string) domain.RenderModel {
	m.mu.Lock()
	m.rendered = append(m.rendered, url)
	m.mu.Unlock()
	model := m.model
	model.URL = url
	return model
}

func (m *mockRenderService) lastRendered() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.rendered) == 0 {
		return ""
	}
	return m.rendered[len(m.rendered)-1]
}

// mockBlacklistStorage is an in-memory blacklist for handler tests
type mockBlacklistStorage struct {
	hosts  map[string]bool
	addErr error
}

func newMockBlacklistStorage() *mockBlacklistStorage {
	return &mockBlacklistStorage{hosts: make(map[string]bool)}
}

func (m *mockBlacklistStorage) Add(ctx context.Context, entry *domain.BlacklistEntry) error {
	if m.addErr != nil {
		return m.addErr
	}
	m.hosts[entry.Host] = true
	return nil
}

func (m *mockBlacklistStorage) Contains(ctx context.Context, host string) (bool, error) {
	return m.hosts[host], nil
}

// mockPrefetcher records enqueued URLs
type mockPrefetcher struct {
	mu   sync.Mutex
	urls []string
}

func (m *mockPrefetcher) Enqueue(url string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.urls = append(m.urls, url)
	return true
}

func (m *mockPrefetcher) enqueued() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.urls...)
}

// mockMetadataService returns a fixed metadata result or error
type mockMetadataService struct {
	result *interfaces.MetadataResult
	err    error
}

func (m *mockMetadataService) ExtractMetadata(ctx context.Context, url string) (*interfaces.MetadataResult, error) {
	return m.result, m.err
}

// mockColorService returns a fixed accent color or error
type mockColorService struct {
	color *domain.RGBColor
	err   error
}

func (m *mockColorService) ExtractColor(ctx context.Context, imageURL string) (*domain.RGBColor, error) {
	return m.color, m.err
}
