package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/docdraft/docdraft/internal/logger"
)

var (
	skipConfirm bool
	resetConfig bool
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove log files and, optionally, saved settings",
	Long: `Removes every docdraft log file from /tmp. With --config the saved settings
in ~/.docdraft/config.json are removed too, so the next start uses defaults.

It will prompt for confirmation before proceeding unless the --yes flag is used.`,
	RunE: runClean,
}

func init() {
	cleanCmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "Skip confirmation prompt")
	cleanCmd.Flags().BoolVar(&resetConfig, "config", false, "Also remove the saved settings")
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	return runCleanWithReader(os.Stdin)
}

// runCleanWithReader allows injecting a reader for testing
func runCleanWithReader(input io.Reader) error {
	logs, err := logger.LogFiles()
	if err != nil {
		return fmt.Errorf("error finding log files: %w", err)
	}

	var cfgPath string
	if resetConfig {
		if cfg, err := loadConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		} else if _, err := os.Stat(cfg.Path()); err == nil {
			cfgPath = cfg.Path()
		}
	}

	if len(logs) == 0 && cfgPath == "" {
		fmt.Println("Nothing to clean.")
		return nil
	}

	fmt.Println("This will clean:")
	if len(logs) > 0 {
		fmt.Printf("  - %d log file(s)\n", len(logs))
	}
	if cfgPath != "" {
		fmt.Printf("  - %s\n", cfgPath)
	}

	// Confirm unless --yes flag is set
	if !skipConfirm {
		if !confirm(input, "Continue?") {
			fmt.Println("Aborted.")
			return nil
		}
	}

	logsCleared, err := logger.ClearLogs()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: error clearing logs: %v\n", err)
	}

	configRemoved := false
	if cfgPath != "" {
		if err := os.Remove(cfgPath); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: error removing config: %v\n", err)
		} else {
			configRemoved = true
		}
	}

	fmt.Println()
	fmt.Println("Cleaned:")
	if logsCleared > 0 {
		fmt.Printf("  - %d log file(s) removed\n", logsCleared)
	}
	if configRemoved {
		fmt.Println("  - saved settings removed")
	}
	return nil
}

// confirm prompts the user for y/n confirmation
func confirm(input io.Reader, prompt string) bool {
	reader := bufio.NewReader(input)
	fmt.Printf("%s [y/N]: ", prompt)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}
