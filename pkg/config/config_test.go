package config

import (
	"os"
	"testing"
)

func TestLoadFromEnv_Defaults(t *testing.T) {
	os.Clearenv()

	cfg, err := LoadFromEnv()

	if err != nil {
		t.Fatalf("LoadFromEnv returned error: %v", err)
	}
	if cfg.Server.Port != "8000" {
		t.Errorf("default port = %q", cfg.Server.Port)
	}
	if cfg.Pipeline.Origin != "https://en.wikipedia.org" {
		t.Errorf("default origin = %q", cfg.Pipeline.Origin)
	}
	if cfg.Redirect.ContentHost != "en.wikipedia.org" {
		t.Errorf("default content host = %q", cfg.Redirect.ContentHost)
	}
	if cfg.Pipeline.FetchTimeoutSeconds != 30 {
		t.Errorf("default fetch timeout = %d", cfg.Pipeline.FetchTimeoutSeconds)
	}
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	os.Clearenv()
	os.Setenv("PORT", "9090")
	os.Setenv("CONTENT_ORIGIN", "https://de.wikipedia.org")
	os.Setenv("FETCH_TIMEOUT", "5")
	defer os.Clearenv()

	cfg, err := LoadFromEnv()

	if err != nil {
		t.Fatalf("LoadFromEnv returned error: %v", err)
	}
	if cfg.Server.Port != "9090" {
		t.Errorf("port = %q", cfg.Server.Port)
	}
	if cfg.Pipeline.Origin != "https://de.wikipedia.org" {
		t.Errorf("origin = %q", cfg.Pipeline.Origin)
	}
	if cfg.Pipeline.FetchTimeoutSeconds != 5 {
		t.Errorf("fetch timeout = %d", cfg.Pipeline.FetchTimeoutSeconds)
	}
}

func TestLoadFromEnv_InvalidIntUsesDefault(t *testing.T) {
	os.Clearenv()
	os.Setenv("FETCH_TIMEOUT", "not-a-number")
	defer os.Clearenv()

	cfg, _ := LoadFromEnv()

	if cfg.Pipeline.FetchTimeoutSeconds != 30 {
		t.Errorf("fetch timeout = %d, want default 30", cfg.Pipeline.FetchTimeoutSeconds)
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	os.Clearenv()
	cfg, _ := LoadFromEnv()

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestValidate_EmptyPort(t *testing.T) {
	os.Clearenv()
	cfg, _ := LoadFromEnv()
	cfg.Server.Port = ""

	if err := cfg.Validate(); err == nil {
		t.Error("empty port should fail validation")
	}
}

func TestValidate_BadOrigin(t *testing.T) {
	os.Clearenv()
	cfg, _ := LoadFromEnv()

	cfg.Pipeline.Origin = "en.wikipedia.org"
	if err := cfg.Validate(); err == nil {
		t.Error("origin without scheme should fail validation")
	}

	cfg.Pipeline.Origin = "https://en.wikipedia.org/"
	if err := cfg.Validate(); err == nil {
		t.Error("origin with trailing slash should fail validation")
	}
}

func TestValidate_BadFetchTimeout(t *testing.T) {
	os.Clearenv()
	cfg, _ := LoadFromEnv()
	cfg.Pipeline.FetchTimeoutSeconds = 0

	if err := cfg.Validate(); err == nil {
		t.Error("zero fetch timeout should fail validation")
	}
}
