package cmd

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/docdraft/docdraft/internal/app"
	"github.com/docdraft/docdraft/internal/clipboard"
	"github.com/docdraft/docdraft/internal/config"
	"github.com/docdraft/docdraft/internal/generation"
	"github.com/docdraft/docdraft/internal/i18n"
	"github.com/docdraft/docdraft/internal/logger"
	"github.com/docdraft/docdraft/internal/session"
	"github.com/docdraft/docdraft/internal/ui"
)

var (
	debugMode             bool
	logStderr             bool
	username              string
	language              string
	themeName             string
	docKind               string
	version, commit, date string
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "docdraft",
	Short: "Chat-driven document drafting in the terminal",
	Long: `docdraft drafts documents, emails and articles from a short prompt.
Describe what you need in the chat pane, then edit, refine and export the
draft from the preview pane. Past chats are kept in the history sidebar.

Without an API key docdraft still works and produces offline drafts.`,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&logStderr, "log-stderr", false, "Write logs to stderr instead of the log file (headless commands only)")
	rootCmd.PersistentFlags().StringVar(&language, "lang", "", "Document language: en or th (defaults to the saved setting)")
	rootCmd.PersistentFlags().StringVar(&docKind, "kind", string(generation.DocTypeDocument), "Kind of document: document, email or article")
	rootCmd.Flags().StringVarP(&username, "user", "u", "", "Sign in as this user and skip the login form")
	rootCmd.Flags().StringVar(&themeName, "theme", "", "UI theme for this run")
}

func initConfig() {
	config.LoadDotEnv()
	logger.SetDebug(debugMode)
}

// Execute runs the root command
func Execute() error {
	// Set version dynamically
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("docdraft %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("docdraft %s\n", version)
}

// loadConfig reads the config file and applies the --lang override
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	if language != "" {
		lang, err := i18n.Parse(language)
		if err != nil {
			return nil, err
		}
		cfg.SetLanguage(lang)
	}
	return cfg, nil
}

// newService builds the generation service from the provider settings
func newService(cfg *config.Config) *generation.Service {
	p := cfg.GetProvider()
	provider := generation.NewOpenAIProvider(generation.ProviderSettings{
		APIKey:  p.APIKey,
		BaseURL: p.BaseURL,
		Model:   p.Model,
		Timeout: cfg.ProviderTimeout(),
	})
	return generation.NewService(generation.Options{
		Provider:            provider,
		FallbackDelay:       cfg.GenerateFallbackDelay(),
		RefineFallbackDelay: cfg.RefineFallbackDelay(),
	})
}

// initHeadlessLogging routes logs for the non-interactive commands
func initHeadlessLogging() error {
	if logStderr {
		logger.InitWriter(os.Stderr)
		return nil
	}
	return logger.Init(logger.DefaultLogPath)
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if err := logger.Init(logger.DefaultLogPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	// Ensure logger is closed on exit
	defer logger.Close()

	if err := clipboard.Init(); err != nil {
		logger.WithComponent("cmd").Warn("system clipboard disabled", "error", err)
	}

	theme := themeName
	if theme == "" {
		theme = cfg.GetTheme()
	}
	if theme != "" {
		ui.SetThemeByName(theme)
	}

	store := session.NewStore()
	if cfg.GetSeedDemoHistory() {
		store.Seed(session.DemoSessions()...)
	}

	m := app.New(app.Options{
		Config:   cfg,
		Service:  newService(cfg),
		Store:    store,
		Username: username,
		DocType:  generation.ParseDocType(docKind),
		Version:  version,
	})
	p := tea.NewProgram(m)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}
