package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	perrors "github.com/docdraft/docdraft/internal/errors"
	"github.com/docdraft/docdraft/internal/i18n"
)

// Defaults applied when neither the config file nor the environment sets a value.
const (
	DefaultModel                 = "gemini-2.5-flash"
	DefaultBaseURL               = "https://generativelanguage.googleapis.com/v1beta/openai/"
	DefaultTimeoutSeconds        = 60
	DefaultGenerateFallbackMilli = 1500
	DefaultRefineFallbackMilli   = 1000
	DefaultPreviewWidthPercent   = 45.0

	StaleApply   = "apply"
	StaleDiscard = "discard"
)

// apiKeyEnvVars are read in order; the first non-empty one wins.
var apiKeyEnvVars = []string{"DOCDRAFT_PROVIDER_API_KEY", "DOCDRAFT_API_KEY", "API_KEY"}

// ProviderConfig describes the OpenAI-compatible generation endpoint.
type ProviderConfig struct {
	APIKey         string `json:"api_key,omitempty" mapstructure:"api_key"`
	BaseURL        string `json:"base_url,omitempty" mapstructure:"base_url"`
	Model          string `json:"model,omitempty" mapstructure:"model"`
	TimeoutSeconds int    `json:"timeout_seconds,omitempty" mapstructure:"timeout_seconds"`
}

// Config holds the application configuration
type Config struct {
	Theme        string         `json:"theme,omitempty" mapstructure:"theme"`       // UI theme name (e.g., "brand-red", "slate")
	Language     string         `json:"language,omitempty" mapstructure:"language"` // "en" or "th"
	LastUsername string         `json:"last_username,omitempty" mapstructure:"last_username"`
	Provider     ProviderConfig `json:"provider" mapstructure:"provider"`

	GenerateFallbackMillis int     `json:"generate_fallback_ms,omitempty" mapstructure:"generate_fallback_ms"` // Delay before the offline draft is shown
	RefineFallbackMillis   int     `json:"refine_fallback_ms,omitempty" mapstructure:"refine_fallback_ms"`
	PreviewWidthPercent    float64 `json:"preview_width_percent,omitempty" mapstructure:"preview_width_percent"`

	NotificationsEnabled bool   `json:"notifications_enabled,omitempty" mapstructure:"notifications_enabled"` // Desktop notifications when a draft is ready
	SeedDemoHistory      bool   `json:"seed_demo_history,omitempty" mapstructure:"seed_demo_history"`
	StaleResults         string `json:"stale_results,omitempty" mapstructure:"stale_results"` // "apply" or "discard"

	mu            sync.RWMutex
	filePath      string
	apiKeyFromEnv bool
}

// configDir returns the path to the config directory
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".docdraft"), nil
}

// configPath returns the path to the config file
func configPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// LoadDotEnv loads a .env file from the working directory into the process
// environment. Variables that are already set are left alone and a missing
// file is not an error.
func LoadDotEnv() {
	if wd, err := os.Getwd(); err == nil {
		_ = godotenv.Load(filepath.Join(wd, ".env"))
	}
}

// Load reads the config from ~/.docdraft/config.json, or returns defaults if it doesn't exist
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the config from path, layering DOCDRAFT_* environment
// variables over the file and defaults over both.
func LoadFrom(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	v.SetEnvPrefix("DOCDRAFT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	if err := v.BindEnv(append([]string{"provider.api_key"}, apiKeyEnvVars...)...); err != nil {
		return nil, perrors.ConfigLoadFailed(path, err)
	}

	if _, err := os.Stat(path); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return nil, perrors.ConfigLoadFailed(path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, perrors.ConfigLoadFailed(path, err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, perrors.ConfigLoadFailed(path, err)
	}
	cfg.filePath = path
	cfg.apiKeyFromEnv = apiKeyInEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("theme", "")
	v.SetDefault("language", "en")
	v.SetDefault("last_username", "")
	v.SetDefault("provider.api_key", "")
	v.SetDefault("provider.base_url", DefaultBaseURL)
	v.SetDefault("provider.model", DefaultModel)
	v.SetDefault("provider.timeout_seconds", DefaultTimeoutSeconds)
	v.SetDefault("generate_fallback_ms", DefaultGenerateFallbackMilli)
	v.SetDefault("refine_fallback_ms", DefaultRefineFallbackMilli)
	v.SetDefault("preview_width_percent", DefaultPreviewWidthPercent)
	v.SetDefault("notifications_enabled", false)
	v.SetDefault("seed_demo_history", false)
	v.SetDefault("stale_results", StaleApply)
}

func apiKeyInEnv() bool {
	for _, name := range apiKeyEnvVars {
		if os.Getenv(name) != "" {
			return true
		}
	}
	return false
}

// Default returns a config populated with defaults and no backing file.
// Used by tests and by the CLI when the config file cannot be read.
func Default() *Config {
	return &Config{
		Language: "en",
		Provider: ProviderConfig{
			BaseURL:        DefaultBaseURL,
			Model:          DefaultModel,
			TimeoutSeconds: DefaultTimeoutSeconds,
		},
		GenerateFallbackMillis: DefaultGenerateFallbackMilli,
		RefineFallbackMillis:   DefaultRefineFallbackMilli,
		PreviewWidthPercent:    DefaultPreviewWidthPercent,
		StaleResults:           StaleApply,
	}
}

// Validate checks that the config values are usable.
func (c *Config) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if _, err := i18n.Parse(c.Language); err != nil {
		return perrors.ConfigInvalid(err.Error())
	}
	switch c.StaleResults {
	case "", StaleApply, StaleDiscard:
	default:
		return perrors.ConfigInvalid(fmt.Sprintf("stale_results must be %q or %q, got %q", StaleApply, StaleDiscard, c.StaleResults))
	}
	if c.PreviewWidthPercent != 0 && (c.PreviewWidthPercent < 20 || c.PreviewWidthPercent > 80) {
		return perrors.ConfigInvalid(fmt.Sprintf("preview_width_percent must be within [20,80], got %v", c.PreviewWidthPercent))
	}
	if c.Provider.TimeoutSeconds < 0 {
		return perrors.ConfigInvalid("provider.timeout_seconds must not be negative")
	}
	if c.GenerateFallbackMillis < 0 || c.RefineFallbackMillis < 0 {
		return perrors.ConfigInvalid("fallback delays must not be negative")
	}
	return nil
}

// Save writes the config to disk. An API key that came from the
// environment is never written to the file.
func (c *Config) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.filePath == "" {
		path, err := configPath()
		if err != nil {
			return err
		}
		c.filePath = path
	}

	if err := os.MkdirAll(filepath.Dir(c.filePath), 0755); err != nil {
		return perrors.ConfigSaveFailed(c.filePath, err)
	}

	out := struct {
		Theme                  string         `json:"theme,omitempty"`
		Language               string         `json:"language,omitempty"`
		LastUsername           string         `json:"last_username,omitempty"`
		Provider               ProviderConfig `json:"provider"`
		GenerateFallbackMillis int            `json:"generate_fallback_ms,omitempty"`
		RefineFallbackMillis   int            `json:"refine_fallback_ms,omitempty"`
		PreviewWidthPercent    float64        `json:"preview_width_percent,omitempty"`
		NotificationsEnabled   bool           `json:"notifications_enabled,omitempty"`
		SeedDemoHistory        bool           `json:"seed_demo_history,omitempty"`
		StaleResults           string         `json:"stale_results,omitempty"`
	}{
		Theme:                  c.Theme,
		Language:               c.Language,
		LastUsername:           c.LastUsername,
		Provider:               c.Provider,
		GenerateFallbackMillis: c.GenerateFallbackMillis,
		RefineFallbackMillis:   c.RefineFallbackMillis,
		PreviewWidthPercent:    c.PreviewWidthPercent,
		NotificationsEnabled:   c.NotificationsEnabled,
		SeedDemoHistory:        c.SeedDemoHistory,
		StaleResults:           c.StaleResults,
	}
	if c.apiKeyFromEnv {
		out.Provider.APIKey = ""
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return perrors.ConfigSaveFailed(c.filePath, err)
	}
	if err := os.WriteFile(c.filePath, data, 0600); err != nil {
		return perrors.ConfigSaveFailed(c.filePath, err)
	}
	return nil
}

// Path returns the file backing this config.
func (c *Config) Path() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filePath
}

// GetTheme returns the configured theme name
func (c *Config) GetTheme() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Theme
}

// SetTheme sets the theme name
func (c *Config) SetTheme(theme string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Theme = theme
}

// GetLanguage returns the configured language, falling back to English.
func (c *Config) GetLanguage() i18n.Language {
	c.mu.RLock()
	defer c.mu.RUnlock()
	lang, _ := i18n.Parse(c.Language)
	return lang
}

// SetLanguage records the language selection.
func (c *Config) SetLanguage(lang i18n.Language) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Language = lang.Code()
}

// GetLastUsername returns the name the login form is prefilled with.
func (c *Config) GetLastUsername() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.LastUsername
}

// SetLastUsername records the most recent signed-in name.
func (c *Config) SetLastUsername(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.LastUsername = name
}

// GetProvider returns a copy of the provider settings.
func (c *Config) GetProvider() ProviderConfig {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Provider
}

// ProviderTimeout returns the per-call timeout for provider requests.
func (c *Config) ProviderTimeout() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.Provider.TimeoutSeconds <= 0 {
		return DefaultTimeoutSeconds * time.Second
	}
	return time.Duration(c.Provider.TimeoutSeconds) * time.Second
}

// GenerateFallbackDelay returns how long a failed generation waits before
// returning the offline draft.
func (c *Config) GenerateFallbackDelay() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return time.Duration(c.GenerateFallbackMillis) * time.Millisecond
}

// RefineFallbackDelay returns how long a failed refinement waits before
// returning the marked-up original.
func (c *Config) RefineFallbackDelay() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return time.Duration(c.RefineFallbackMillis) * time.Millisecond
}

// GetPreviewWidthPercent returns the initial preview width, defaulting to 45%.
func (c *Config) GetPreviewWidthPercent() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.PreviewWidthPercent == 0 {
		return DefaultPreviewWidthPercent
	}
	return c.PreviewWidthPercent
}

// GetNotificationsEnabled returns whether desktop notifications are enabled
func (c *Config) GetNotificationsEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.NotificationsEnabled
}

// SetNotificationsEnabled sets whether desktop notifications are enabled
func (c *Config) SetNotificationsEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.NotificationsEnabled = enabled
}

// GetSeedDemoHistory reports whether the history starts with the demo entries.
func (c *Config) GetSeedDemoHistory() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.SeedDemoHistory
}

// DiscardStaleResults reports whether results that arrive after the user
// switched sessions should be dropped instead of applied.
func (c *Config) DiscardStaleResults() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.StaleResults == StaleDiscard
}
