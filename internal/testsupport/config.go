package testsupport

import (
	"path/filepath"
	"testing"

	"guardian/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.DataDir = filepath.Join(base, "data")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Paths.APIBind = "127.0.0.1:0"
	cfg.Analyzer.Simulated = true
	cfg.Anchor.Endpoint = ""

	for _, opt := range opts {
		opt(&cfg)
	}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("ensure directories: %v", err)
	}
	return &cfg
}

// WithAnalyzerKey configures a live analyzer with the given API key.
func WithAnalyzerKey(key string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Analyzer.Simulated = false
		cfg.Analyzer.APIKey = key
	}
}

// WithAPIToken sets the bearer token required by the HTTP API.
func WithAPIToken(token string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Paths.APIToken = token
	}
}

// WithFailClosed makes analyzer outages mark media as suspect.
func WithFailClosed() ConfigOption {
	return func(cfg *config.Config) {
		cfg.Analyzer.FailClosed = true
	}
}
