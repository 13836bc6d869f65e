package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/docdraft/docdraft/internal/config"
	"github.com/docdraft/docdraft/internal/export"
	"github.com/docdraft/docdraft/internal/generation"
	"github.com/docdraft/docdraft/internal/i18n"
	"github.com/docdraft/docdraft/internal/logger"
	"github.com/docdraft/docdraft/internal/session"
)

var (
	outPath    string
	yamlOutput bool
	refineOut  string
)

var generateCmd = &cobra.Command{
	Use:   "generate <topic>",
	Short: "Draft a document without starting the TUI",
	Long: `Generates a document about the given topic and prints the Markdown to stdout.

Examples:
  docdraft generate "office closed on Friday"
  docdraft generate "quarterly results" --kind email --lang th
  docdraft generate "team offsite" --out offsite.doc
  docdraft generate "team offsite" --yaml > offsite.yaml`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGenerate,
}

var refineCmd = &cobra.Command{
	Use:   "refine <file>",
	Short: "Proofread a Markdown file",
	Long: `Sends the file to the provider for proofreading and prints the refined text.
Use "-" to read from stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: runRefine,
}

func init() {
	generateCmd.Flags().StringVarP(&outPath, "out", "o", "", "Write a Word-compatible .doc file instead of printing Markdown")
	generateCmd.Flags().BoolVar(&yamlOutput, "yaml", false, "Print the chat and document as YAML")
	refineCmd.Flags().StringVarP(&refineOut, "out", "o", "", "Write the refined text to this file")
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(refineCmd)
}

// headless holds what the non-interactive commands share
type headless struct {
	cfg  *config.Config
	svc  *generation.Service
	lang i18n.Language
}

func newHeadless() (*headless, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	if err := initHeadlessLogging(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	return &headless{cfg: cfg, svc: newService(cfg), lang: cfg.GetLanguage()}, nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	h, err := newHeadless()
	if err != nil {
		return err
	}
	defer logger.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	topic := strings.TrimSpace(strings.Join(args, " "))
	if topic == "" {
		return fmt.Errorf("topic must not be empty")
	}
	return generateTo(ctx, cmd.OutOrStdout(), cmd.ErrOrStderr(), h.svc, topic, generation.ParseDocType(docKind), h.lang)
}

// generateTo drafts a document about topic and writes it in the format the
// flags select
func generateTo(ctx context.Context, stdout, stderr io.Writer, svc *generation.Service, topic string, docType generation.DocType, lang i18n.Language) error {
	res := svc.Generate(ctx, topic, docType, lang)
	if res.Degraded {
		fmt.Fprintf(stderr, "Warning: %s (%v)\n", i18n.For(lang).OfflineDraft, res.Cause)
	}

	switch {
	case yamlOutput:
		labels := i18n.For(lang)
		store := session.NewStore()
		transcript := []session.Message{
			session.UserMessage(topic),
			session.AssistantMessage(labels.Acknowledgement),
		}
		id, _ := store.UpsertFromGeneration(0, topic, transcript, res.Text, lang)
		sess, _ := store.Get(id)
		out, err := export.SessionSnapshot(sess)
		if err != nil {
			return err
		}
		_, err = stdout.Write(out)
		return err

	case outPath != "":
		path, err := export.WriteWordFile(outPath, res.Text)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Saved %s\n", path)
		return nil
	}

	_, err := fmt.Fprintln(stdout, res.Text)
	return err
}

func runRefine(cmd *cobra.Command, args []string) error {
	h, err := newHeadless()
	if err != nil {
		return err
	}
	defer logger.Close()

	var src []byte
	if args[0] == "-" {
		src, err = io.ReadAll(cmd.InOrStdin())
	} else {
		src, err = os.ReadFile(args[0])
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	if strings.TrimSpace(string(src)) == "" {
		return fmt.Errorf("nothing to refine in %s", args[0])
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	return refineTo(ctx, cmd.OutOrStdout(), cmd.ErrOrStderr(), h.svc, string(src), h.lang)
}

// refineTo proofreads src and writes the result to stdout or --out
func refineTo(ctx context.Context, stdout, stderr io.Writer, svc *generation.Service, src string, lang i18n.Language) error {
	res := svc.Refine(ctx, src, lang)
	if res.Degraded {
		fmt.Fprintf(stderr, "Warning: provider unavailable, original text returned with an offline note (%v)\n", res.Cause)
	}

	if refineOut != "" {
		if err := os.WriteFile(refineOut, []byte(res.Text), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", refineOut, err)
		}
		fmt.Fprintf(stdout, "Saved %s\n", refineOut)
		return nil
	}
	_, err := fmt.Fprintln(stdout, res.Text)
	return err
}
