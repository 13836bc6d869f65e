// Package generation turns prompts into documents through a remote text
// provider. Failures never reach the caller: when the provider cannot be
// used, the service waits briefly and returns a localized offline draft
// flagged as degraded.
package generation

import (
	"context"
	"fmt"
	"strings"
	"time"

	perrors "github.com/docdraft/docdraft/internal/errors"
	"github.com/docdraft/docdraft/internal/i18n"
	"github.com/docdraft/docdraft/internal/logger"
)

// DocType is the kind of document the user asked for.
type DocType string

const (
	DocTypeDocument DocType = "document"
	DocTypeEmail    DocType = "email"
	DocTypeArticle  DocType = "article"
)

// ParseDocType maps a CLI value onto a DocType, defaulting to a plain document.
func ParseDocType(s string) DocType {
	switch DocType(strings.ToLower(strings.TrimSpace(s))) {
	case DocTypeEmail:
		return DocTypeEmail
	case DocTypeArticle:
		return DocTypeArticle
	default:
		return DocTypeDocument
	}
}

// Sampling temperatures for each operation.
const (
	GenerateTemperature float32 = 0.7
	RefineTemperature   float32 = 0.3
)

// Default delays before an offline result is returned.
const (
	DefaultFallbackDelay       = 1500 * time.Millisecond
	DefaultRefineFallbackDelay = time.Second
)

// Result is what every operation returns. Degraded is set when Text came
// from the offline fallback rather than the provider; Cause then records why.
type Result struct {
	Text     string
	Degraded bool
	Cause    error
}

// Options configures a Service.
type Options struct {
	Provider            Provider
	FallbackDelay       time.Duration
	RefineFallbackDelay time.Duration
}

// Service is the generation facade used by the workspace and the CLI.
type Service struct {
	provider            Provider
	fallbackDelay       time.Duration
	refineFallbackDelay time.Duration
}

// NewService creates a Service. A nil provider is allowed and behaves like
// a provider without credentials.
func NewService(opts Options) *Service {
	return &Service{
		provider:            opts.Provider,
		fallbackDelay:       opts.FallbackDelay,
		refineFallbackDelay: opts.RefineFallbackDelay,
	}
}

// Generate drafts a document of the given type about prompt, written in lang.
func (s *Service) Generate(ctx context.Context, prompt string, docType DocType, lang i18n.Language) Result {
	const op = perrors.Op("generation.Generate")
	log := logger.WithComponent("generation")

	text, err := s.complete(ctx, op, Request{
		System:      generateSystemInstruction(lang),
		Prompt:      fmt.Sprintf("Write a %s about the following topic: \"%s\".", docType, prompt),
		Temperature: GenerateTemperature,
	})
	if err == nil && strings.TrimSpace(text) == "" {
		err = perrors.EmptyResponse(op)
	}
	if err != nil {
		log.Warn("falling back to offline draft", "kind", perrors.GetKind(err).String(), "error", err)
		wait(ctx, s.fallbackDelay)
		return Result{Text: MockDocument(prompt, lang), Degraded: true, Cause: err}
	}

	log.Debug("document generated", "docType", string(docType), "lang", lang.Code(), "chars", len(text))
	return Result{Text: text}
}

// Refine proofreads content in lang. If the provider returns no text the
// original content is returned unchanged and the result is not degraded.
func (s *Service) Refine(ctx context.Context, content string, lang i18n.Language) Result {
	const op = perrors.Op("generation.Refine")
	log := logger.WithComponent("generation")

	text, err := s.complete(ctx, op, Request{
		System:      refineSystemInstruction(lang),
		Prompt:      "Please edit and refine the following text:\n\n" + content,
		Temperature: RefineTemperature,
	})
	if err != nil {
		log.Warn("refine falling back to marked original", "kind", perrors.GetKind(err).String(), "error", err)
		wait(ctx, s.refineFallbackDelay)
		return Result{Text: content + RefineMarker(lang), Degraded: true, Cause: err}
	}
	if strings.TrimSpace(text) == "" {
		log.Debug("refine returned no text, keeping original")
		return Result{Text: content}
	}
	return Result{Text: text}
}

func (s *Service) complete(ctx context.Context, op perrors.Op, req Request) (string, error) {
	if s.provider == nil {
		return "", perrors.CredentialMissing(op)
	}
	return s.provider.Complete(ctx, req)
}

// wait sleeps for d or until ctx is done.
func wait(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}

func generateSystemInstruction(lang i18n.Language) string {
	langInstruction := "You must reply in English."
	if lang == i18n.Thai {
		langInstruction = "You must reply strictly in Thai language. Use formal and professional Thai for the document content."
	}
	return strings.Join([]string{
		`You are "ABDUL DOCGEN", a sophisticated AI writing assistant.`,
		"Your goal is to generate high-quality, professional, and engaging content.",
		"Maintain a helpful and creative tone.",
		langInstruction,
		"Format your response using Markdown.",
		"If the type is 'email', format it as a proper email structure.",
		"If 'article', use headings.",
	}, "\n")
}

func refineSystemInstruction(lang i18n.Language) string {
	langInstruction := "Review and edit the following content in English. Fix grammar, spelling, and improve the professional tone."
	if lang == i18n.Thai {
		langInstruction = "Review and edit the following content in Thai. Fix grammar, spelling, and improve the professional tone. Keep the output in Thai."
	}
	return "You are an expert editor. Your job is to proofread and polish the document. " +
		"Do not change the core meaning. Return the result in Markdown. " + langInstruction
}
