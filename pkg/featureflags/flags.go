// ABOUTME: Feature flag management for optional reader enrichments
// ABOUTME: Provides interface-based feature toggling with env and static backends

package featureflags

import (
	"context"
	"os"
	"strings"
	"sync"
)

// FeatureFlag represents a single feature flag
type FeatureFlag string

// Defined feature flags
const (
	// MarkdownRendition enables the markdown rendition of rendered articles
	MarkdownRendition FeatureFlag = "markdown_rendition"

	// AccentColor enables accent color derivation from lead images
	AccentColor FeatureFlag = "accent_color"

	// BannerPrefetch enables background warming of banner metadata caches
	BannerPrefetch FeatureFlag = "banner_prefetch"

	// RateLimitEnabled enables per-IP rate limiting
	RateLimitEnabled FeatureFlag = "rate_limit_enabled"
)

// defaults holds the state of each flag when nothing overrides it.
// Enrichments ship enabled; flags exist to switch them off in degraded
// environments, not to gate rollouts.
var defaults = map[FeatureFlag]bool{
	MarkdownRendition: true,
	AccentColor:       true,
	BannerPrefetch:    true,
	RateLimitEnabled:  true,
}

// Manager defines the interface for feature flag management
type Manager interface {
	// IsEnabled checks if a feature flag is enabled
	IsEnabled(ctx context.Context, flag FeatureFlag) bool

	// SetEnabled sets a feature flag's state (for testing)
	SetEnabled(flag FeatureFlag, enabled bool)

	// GetAllFlags returns the state of all defined flags
	GetAllFlags() map[FeatureFlag]bool
}

// EnvManager implements Manager using environment variables. A flag keeps
// its default state unless FEATURE_<NAME> is set to an explicit boolean.
type EnvManager struct {
	mu        sync.RWMutex
	overrides map[FeatureFlag]bool
	prefix    string
}

// NewEnvManager creates a new environment-based feature flag manager
func NewEnvManager(prefix string) *EnvManager {
	if prefix == "" {
		prefix = "FEATURE_"
	}
	return &EnvManager{
		overrides: make(map[FeatureFlag]bool),
		prefix:    prefix,
	}
}

// IsEnabled checks if a feature flag is enabled
func (m *EnvManager) IsEnabled(ctx context.Context, flag FeatureFlag) bool {
	m.mu.RLock()
	if enabled, ok := m.overrides[flag]; ok {
		m.mu.RUnlock()
		return enabled
	}
	m.mu.RUnlock()

	envKey := m.prefix + strings.ToUpper(string(flag))
	value := strings.ToLower(os.Getenv(envKey))

	switch value {
	case "true", "1", "enabled":
		return true
	case "false", "0", "disabled":
		return false
	}
	return defaults[flag]
}

// SetEnabled sets a feature flag's state (mainly for testing)
func (m *EnvManager) SetEnabled(flag FeatureFlag, enabled bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.overrides[flag] = enabled
}

// GetAllFlags returns the state of all defined flags
func (m *EnvManager) GetAllFlags() map[FeatureFlag]bool {
	ctx := context.Background()
	flags := make(map[FeatureFlag]bool, len(defaults))
	for flag := range defaults {
		flags[flag] = m.IsEnabled(ctx, flag)
	}
	return flags
}

// StaticManager implements Manager with static configuration
type StaticManager struct {
	flags map[FeatureFlag]bool
	mu    sync.RWMutex
}

// NewStaticManager creates a manager with predefined flag states. Flags
// absent from the map keep their default state.
func NewStaticManager(flags map[FeatureFlag]bool) *StaticManager {
	merged := make(map[FeatureFlag]bool, len(defaults))
	for flag, enabled := range defaults {
		merged[flag] = enabled
	}
	for flag, enabled := range flags {
		merged[flag] = enabled
	}
	return &StaticManager{flags: merged}
}

// IsEnabled checks if a feature flag is enabled
func (m *StaticManager) IsEnabled(ctx context.Context, flag FeatureFlag) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.flags[flag]
}

// SetEnabled sets a feature flag's state
func (m *StaticManager) SetEnabled(flag FeatureFlag, enabled bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.flags[flag] = enabled
}

// GetAllFlags returns all flag states
func (m *StaticManager) GetAllFlags() map[FeatureFlag]bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make(map[FeatureFlag]bool, len(m.flags))
	for k, v := range m.flags {
		result[k] = v
	}
	return result
}

// contextKey for storing a manager in context
type contextKey struct{}

// WithManager adds a feature flag manager to the context
func WithManager(ctx context.Context, manager Manager) context.Context {
	return context.WithValue(ctx, contextKey{}, manager)
}

// FromContext retrieves the feature flag manager from context. Without one,
// a manager reporting the default states is returned.
func FromContext(ctx context.Context) Manager {
	if manager, ok := ctx.Value(contextKey{}).(Manager); ok {
		return manager
	}
	return NewStaticManager(nil)
}

// IsEnabled is a convenience function to check if a feature is enabled
func IsEnabled(ctx context.Context, flag FeatureFlag) bool {
	return FromContext(ctx).IsEnabled(ctx, flag)
}
