package app

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/docdraft/docdraft/internal/clipboard"
	"github.com/docdraft/docdraft/internal/export"
	"github.com/docdraft/docdraft/internal/generation"
	"github.com/docdraft/docdraft/internal/logger"
	"github.com/docdraft/docdraft/internal/notification"
	"github.com/docdraft/docdraft/internal/workspace"
)

// GenerationDoneMsg carries a finished generation back to Update.
type GenerationDoneMsg struct {
	Ticket workspace.Ticket
	Result generation.Result
}

// GenerationFailedMsg is sent when a generation ended without a result.
type GenerationFailedMsg struct {
	Ticket workspace.Ticket
	Err    error
}

// RefineDoneMsg carries a finished refinement back to Update.
type RefineDoneMsg struct {
	Ticket workspace.Ticket
	Result generation.Result
}

// ExportDoneMsg reports the outcome of a Word export.
type ExportDoneMsg struct {
	Path string
	Err  error
}

// DocumentCopiedMsg reports the outcome of copying the whole document.
type DocumentCopiedMsg struct {
	Err error
}

// generateCmd runs a generation off the event loop. The service never
// returns an error for provider failures, so anything reaching the failure
// path is a bug surfaced as a generic message.
func generateCmd(ctx context.Context, svc *generation.Service, t workspace.Ticket, docType generation.DocType) tea.Cmd {
	return func() (msg tea.Msg) {
		defer func() {
			if r := recover(); r != nil {
				logger.WithComponent("app").Error("generation panicked", "panic", r)
				msg = GenerationFailedMsg{Ticket: t, Err: fmt.Errorf("generation panicked: %v", r)}
			}
		}()
		res := svc.Generate(ctx, t.Prompt, docType, t.Lang)
		return GenerationDoneMsg{Ticket: t, Result: res}
	}
}

// refineCmd runs a refinement off the event loop
func refineCmd(ctx context.Context, svc *generation.Service, t workspace.Ticket) tea.Cmd {
	return func() (msg tea.Msg) {
		defer func() {
			if r := recover(); r != nil {
				logger.WithComponent("app").Error("refine panicked", "panic", r)
				msg = RefineDoneMsg{Ticket: t, Result: generation.Result{
					Text:     t.Prompt,
					Degraded: true,
					Cause:    fmt.Errorf("refine panicked: %v", r),
				}}
			}
		}()
		return RefineDoneMsg{Ticket: t, Result: svc.Refine(ctx, t.Prompt, t.Lang)}
	}
}

// exportCmd writes the document as a Word file
func exportCmd(path, document string) tea.Cmd {
	return func() tea.Msg {
		written, err := export.WriteWordFile(path, document)
		return ExportDoneMsg{Path: written, Err: err}
	}
}

// copyDocumentCmd puts the document on the clipboard. OSC 52 covers remote
// terminals; the native clipboard covers the rest.
func copyDocumentCmd(document string) tea.Cmd {
	return tea.Batch(
		tea.SetClipboard(document),
		func() tea.Msg {
			return DocumentCopiedMsg{Err: clipboard.WriteText(document)}
		},
	)
}

// notifyCmd sends a desktop notification without blocking the UI
func notifyCmd(title string) tea.Cmd {
	return func() tea.Msg {
		_ = notification.DocumentReady(title)
		return nil
	}
}
