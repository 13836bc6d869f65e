package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	perrors "github.com/docdraft/docdraft/internal/errors"
	"github.com/docdraft/docdraft/internal/i18n"
)

// clearEnv blanks every variable the loader reads so the host environment
// does not leak into a test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range apiKeyEnvVars {
		t.Setenv(name, "")
	}
	for _, name := range []string{
		"DOCDRAFT_THEME", "DOCDRAFT_LANGUAGE", "DOCDRAFT_PROVIDER_MODEL",
		"DOCDRAFT_PROVIDER_BASE_URL", "DOCDRAFT_PROVIDER_TIMEOUT_SECONDS",
		"DOCDRAFT_STALE_RESULTS", "DOCDRAFT_SEED_DEMO_HISTORY",
	} {
		t.Setenv(name, "")
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func TestLoad_NewConfig(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg == nil {
		t.Fatal("Load() returned nil config")
	}

	if cfg.GetLanguage() != i18n.English {
		t.Errorf("GetLanguage() = %v, want English", cfg.GetLanguage())
	}
	if p := cfg.GetProvider(); p.Model != DefaultModel || p.BaseURL != DefaultBaseURL {
		t.Errorf("unexpected provider defaults: %+v", p)
	}
	if cfg.ProviderTimeout() != 60*time.Second {
		t.Errorf("ProviderTimeout() = %v, want 60s", cfg.ProviderTimeout())
	}
	if cfg.GenerateFallbackDelay() != 1500*time.Millisecond {
		t.Errorf("GenerateFallbackDelay() = %v, want 1.5s", cfg.GenerateFallbackDelay())
	}
	if cfg.RefineFallbackDelay() != time.Second {
		t.Errorf("RefineFallbackDelay() = %v, want 1s", cfg.RefineFallbackDelay())
	}
	if cfg.GetPreviewWidthPercent() != 45 {
		t.Errorf("GetPreviewWidthPercent() = %v, want 45", cfg.GetPreviewWidthPercent())
	}
	if cfg.DiscardStaleResults() {
		t.Error("stale results should be applied by default")
	}
	if !strings.HasSuffix(cfg.Path(), filepath.Join(".docdraft", "config.json")) {
		t.Errorf("Path() = %q", cfg.Path())
	}
}

func TestLoadFrom_ExistingConfig(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `{
		"theme": "slate",
		"language": "th",
		"provider": {"api_key": "file-key", "model": "gpt-4o-mini", "timeout_seconds": 10},
		"generate_fallback_ms": 0,
		"preview_width_percent": 60,
		"notifications_enabled": true,
		"seed_demo_history": true,
		"stale_results": "discard"
	}`)

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() failed: %v", err)
	}

	if cfg.GetTheme() != "slate" {
		t.Errorf("GetTheme() = %q, want slate", cfg.GetTheme())
	}
	if cfg.GetLanguage() != i18n.Thai {
		t.Errorf("GetLanguage() = %v, want Thai", cfg.GetLanguage())
	}
	p := cfg.GetProvider()
	if p.APIKey != "file-key" || p.Model != "gpt-4o-mini" {
		t.Errorf("unexpected provider: %+v", p)
	}
	if p.BaseURL != DefaultBaseURL {
		t.Errorf("BaseURL should keep its default, got %q", p.BaseURL)
	}
	if cfg.ProviderTimeout() != 10*time.Second {
		t.Errorf("ProviderTimeout() = %v, want 10s", cfg.ProviderTimeout())
	}
	if cfg.GenerateFallbackDelay() != 0 {
		t.Errorf("GenerateFallbackDelay() = %v, want 0", cfg.GenerateFallbackDelay())
	}
	if cfg.GetPreviewWidthPercent() != 60 {
		t.Errorf("GetPreviewWidthPercent() = %v, want 60", cfg.GetPreviewWidthPercent())
	}
	if !cfg.GetNotificationsEnabled() || !cfg.GetSeedDemoHistory() || !cfg.DiscardStaleResults() {
		t.Error("expected boolean settings from file")
	}
}

func TestLoadFrom_EnvOverridesAPIKey(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `{"provider": {"api_key": "file-key"}}`)

	tests := []struct {
		name string
		env  string
	}{
		{"prefixed", "DOCDRAFT_API_KEY"},
		{"bare", "API_KEY"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.env, "env-key")

			cfg, err := LoadFrom(path)
			if err != nil {
				t.Fatalf("LoadFrom() failed: %v", err)
			}
			if got := cfg.GetProvider().APIKey; got != "env-key" {
				t.Errorf("APIKey = %q, want env-key", got)
			}
		})
	}
}

func TestLoadFrom_EnvOverridesField(t *testing.T) {
	clearEnv(t)
	t.Setenv("DOCDRAFT_PROVIDER_MODEL", "local-model")
	t.Setenv("DOCDRAFT_LANGUAGE", "th")

	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("LoadFrom() failed: %v", err)
	}
	if cfg.GetProvider().Model != "local-model" {
		t.Errorf("Model = %q, want local-model", cfg.GetProvider().Model)
	}
	if cfg.GetLanguage() != i18n.Thai {
		t.Errorf("GetLanguage() = %v, want Thai", cfg.GetLanguage())
	}
}

func TestLoadFrom_InvalidJSON(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "invalid json")

	_, err := LoadFrom(path)
	if err == nil {
		t.Fatal("LoadFrom() should fail with invalid JSON")
	}
	if !perrors.Is(err, perrors.KindConfig) {
		t.Errorf("expected KindConfig, got %v", perrors.GetKind(err))
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"thai", func(c *Config) { c.Language = "th" }, false},
		{"unknown language", func(c *Config) { c.Language = "fr" }, true},
		{"discard", func(c *Config) { c.StaleResults = StaleDiscard }, false},
		{"bad stale policy", func(c *Config) { c.StaleResults = "sometimes" }, true},
		{"width lower bound", func(c *Config) { c.PreviewWidthPercent = 20 }, false},
		{"width upper bound", func(c *Config) { c.PreviewWidthPercent = 80 }, false},
		{"width too small", func(c *Config) { c.PreviewWidthPercent = 19.9 }, true},
		{"width too large", func(c *Config) { c.PreviewWidthPercent = 81 }, true},
		{"negative timeout", func(c *Config) { c.Provider.TimeoutSeconds = -1 }, true},
		{"negative delay", func(c *Config) { c.RefineFallbackMillis = -5 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !perrors.Is(err, perrors.KindInvalid) {
				t.Errorf("expected KindInvalid, got %v", perrors.GetKind(err))
			}
		})
	}
}

func TestLoadFrom_InvalidConfig(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `{"preview_width_percent": 95}`)

	if _, err := LoadFrom(path); err == nil {
		t.Error("LoadFrom() should fail validation")
	}
}

func TestConfig_SaveAndLoad(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() failed: %v", err)
	}
	cfg.SetTheme("sepia")
	cfg.SetLanguage(i18n.Thai)
	cfg.SetLastUsername("somchai")
	cfg.SetNotificationsEnabled(true)

	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if loaded.GetTheme() != "sepia" {
		t.Errorf("theme = %q", loaded.GetTheme())
	}
	if loaded.GetLanguage() != i18n.Thai {
		t.Errorf("language = %v", loaded.GetLanguage())
	}
	if loaded.GetLastUsername() != "somchai" {
		t.Errorf("last username = %q", loaded.GetLastUsername())
	}
	if !loaded.GetNotificationsEnabled() {
		t.Error("notifications should be enabled after reload")
	}
}

func TestConfig_SaveOmitsEnvAPIKey(t *testing.T) {
	clearEnv(t)
	t.Setenv("DOCDRAFT_API_KEY", "secret-from-env")
	path := filepath.Join(t.TempDir(), "config.json")

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() failed: %v", err)
	}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if strings.Contains(string(data), "secret-from-env") {
		t.Error("API key from the environment must not be written to disk")
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("saved file is not valid JSON: %v", err)
	}
	if _, ok := raw["provider"]; !ok {
		t.Error("saved file should contain the provider section")
	}
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("DOCDRAFT_API_KEY=from-dotenv\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)
	// godotenv does not override variables that are set, even to "".
	os.Unsetenv("DOCDRAFT_API_KEY")
	t.Cleanup(func() { os.Unsetenv("DOCDRAFT_API_KEY") })

	LoadDotEnv()

	if got := os.Getenv("DOCDRAFT_API_KEY"); got != "from-dotenv" {
		t.Errorf("DOCDRAFT_API_KEY = %q, want from-dotenv", got)
	}
}
