package cmd

import (
	"strings"
	"testing"

	"github.com/docdraft/docdraft/internal/i18n"
)

func TestPersistentFlags(t *testing.T) {
	tests := []struct {
		name string
		def  string
	}{
		{"debug", "false"},
		{"log-stderr", "false"},
		{"lang", ""},
		{"kind", "document"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag := rootCmd.PersistentFlags().Lookup(tt.name)
			if flag == nil {
				t.Fatalf("--%s flag not found", tt.name)
			}
			if flag.DefValue != tt.def {
				t.Errorf("--%s default = %q, want %q", tt.name, flag.DefValue, tt.def)
			}
		})
	}
}

func TestUserFlag(t *testing.T) {
	flag := rootCmd.Flags().Lookup("user")
	if flag == nil {
		t.Fatal("--user flag not found")
	}
	if flag.Shorthand != "u" {
		t.Errorf("--user shorthand = %q, want %q", flag.Shorthand, "u")
	}
}

func TestSubcommandsRegistered(t *testing.T) {
	for _, name := range []string{"generate", "refine", "clean"} {
		found := false
		for _, c := range rootCmd.Commands() {
			if c.Name() == name {
				found = true
			}
		}
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestVersionTemplate(t *testing.T) {
	origVersion, origCommit, origDate := version, commit, date
	defer func() { version, commit, date = origVersion, origCommit, origDate }()

	SetVersionInfo("1.2.3", "none", "unknown")
	if got := versionTemplate(); got != "docdraft 1.2.3\n" {
		t.Errorf("versionTemplate() = %q", got)
	}

	SetVersionInfo("1.2.3", "abc123", "2026-01-01")
	got := versionTemplate()
	if !strings.Contains(got, "commit: abc123") || !strings.Contains(got, "built:  2026-01-01") {
		t.Errorf("versionTemplate() = %q, want commit and date", got)
	}
}

func TestLoadConfig_LanguageOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	orig := language
	defer func() { language = orig }()

	language = "th"
	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() failed: %v", err)
	}
	if cfg.GetLanguage() != i18n.Thai {
		t.Errorf("language = %v, want Thai", cfg.GetLanguage())
	}

	language = "fr"
	if _, err := loadConfig(); err == nil {
		t.Error("an unsupported --lang should be rejected")
	}
}

func TestInitConfig_Debug(t *testing.T) {
	orig := debugMode
	defer func() { debugMode = orig }()

	// Should not panic
	debugMode = true
	initConfig()
	debugMode = false
	initConfig()
}
