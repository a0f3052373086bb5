package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"guardian/internal/config"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("GUARDIAN_ANALYZER_API_KEY", "env-key")

	path := filepath.Join(t.TempDir(), "config.toml")
	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if exists {
		t.Fatal("expected missing config file")
	}
	if resolved != path {
		t.Fatalf("resolved path = %s, want %s", resolved, path)
	}
	if cfg.Analyzer.APIKey != "env-key" {
		t.Fatalf("expected API key from environment, got %q", cfg.Analyzer.APIKey)
	}
	if cfg.Paths.APIBind != "127.0.0.1:7519" {
		t.Fatalf("unexpected default api bind %q", cfg.Paths.APIBind)
	}
	if cfg.Analyzer.Model == "" {
		t.Fatal("expected analyzer model default")
	}
}

func TestLoadParsesFile(t *testing.T) {
	base := t.TempDir()
	path := filepath.Join(base, "config.toml")
	content := `
[paths]
data_dir = "` + filepath.Join(base, "data") + `"
log_dir = "` + filepath.Join(base, "logs") + `"
api_bind = "127.0.0.1:0"

[analyzer]
api_key = "file-key"
model = "test/model"

[logging]
level = "debug"
format = "json"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !exists {
		t.Fatal("expected config file to exist")
	}
	if cfg.Analyzer.APIKey != "file-key" {
		t.Fatalf("api key = %q", cfg.Analyzer.APIKey)
	}
	if cfg.Analyzer.Model != "test/model" {
		t.Fatalf("model = %q", cfg.Analyzer.Model)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Fatalf("logging = %+v", cfg.Logging)
	}
	if cfg.DatabasePath() != filepath.Join(base, "data", "guardian.db") {
		t.Fatalf("database path = %s", cfg.DatabasePath())
	}
}

func TestLoadRejectsMissingAPIKey(t *testing.T) {
	t.Setenv("GUARDIAN_ANALYZER_API_KEY", "")
	os.Unsetenv("GUARDIAN_ANALYZER_API_KEY")

	path := filepath.Join(t.TempDir(), "config.toml")
	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("expected error when analyzer API key missing")
	} else if !strings.Contains(err.Error(), "analyzer.api_key") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSimulatedAnalyzerSkipsAPIKeyCheck(t *testing.T) {
	cfg := config.Default()
	cfg.Analyzer.Simulated = true
	cfg.Paths.DataDir = t.TempDir()
	cfg.Paths.LogDir = t.TempDir()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate failed for simulated analyzer: %v", err)
	}
}

func TestValidateRejectsBadBind(t *testing.T) {
	cfg := config.Default()
	cfg.Analyzer.Simulated = true
	cfg.Paths.APIBind = "not-a-bind"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for invalid api_bind")
	}
}

func TestValidateRejectsBadLogFormat(t *testing.T) {
	cfg := config.Default()
	cfg.Analyzer.Simulated = true
	cfg.Logging.Format = "yaml"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for invalid logging format")
	}
}

func TestWriteSampleRoundTrips(t *testing.T) {
	t.Setenv("GUARDIAN_ANALYZER_API_KEY", "env-key")

	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.WriteSample(path); err != nil {
		t.Fatalf("WriteSample failed: %v", err)
	}
	if err := config.WriteSample(path); err == nil {
		t.Fatal("expected second WriteSample to refuse overwrite")
	}
	if _, _, exists, err := config.Load(path); err != nil {
		t.Fatalf("Load of sample failed: %v", err)
	} else if !exists {
		t.Fatal("expected sample config to exist")
	}
}

func TestExpandPathHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}
	expanded, err := config.ExpandPath("~/guardian-test")
	if err != nil {
		t.Fatalf("ExpandPath failed: %v", err)
	}
	if expanded != filepath.Join(home, "guardian-test") {
		t.Fatalf("expanded = %s", expanded)
	}
}

func TestMaxUploadBytes(t *testing.T) {
	cfg := config.Default()
	cfg.Server.MaxUploadMiB = 2
	if got := cfg.MaxUploadBytes(); got != 2<<20 {
		t.Fatalf("MaxUploadBytes = %d", got)
	}
}
