// Package app wires the workspace, the generation service and the UI
// components into the Bubble Tea program.
package app

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/docdraft/docdraft/internal/config"
	"github.com/docdraft/docdraft/internal/generation"
	"github.com/docdraft/docdraft/internal/identity"
	"github.com/docdraft/docdraft/internal/layout"
	"github.com/docdraft/docdraft/internal/logger"
	"github.com/docdraft/docdraft/internal/session"
	"github.com/docdraft/docdraft/internal/ui"
	"github.com/docdraft/docdraft/internal/ui/modals"
	"github.com/docdraft/docdraft/internal/workspace"
)

// Options configures a Model.
type Options struct {
	Config  *config.Config
	Service *generation.Service
	Store   *session.Store

	// Username skips the sign-in modal when set.
	Username string
	DocType  generation.DocType
	Version  string
}

// Model is the main application model
type Model struct {
	cfg     *config.Config
	version string

	// ctx is cancelled on quit so in-flight provider calls stop.
	ctx    context.Context
	cancel context.CancelFunc

	ws      *workspace.Controller
	gen     *generation.Service
	docType generation.DocType

	username string

	header  *ui.Header
	footer  *ui.Footer
	sidebar *ui.Sidebar
	chat    *ui.Chat
	preview *ui.Preview
	modal   *ui.Modal

	focus  ui.Pane
	width  int
	height int

	// stopwatchRunning is set while a StopwatchTick chain is scheduled.
	stopwatchRunning bool
}

// StartupModalMsg is sent on Init to decide whether to ask for a sign-in.
type StartupModalMsg struct{}

// New creates a new application model
func New(opts Options) *Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	store := opts.Store
	if store == nil {
		store = session.NewStore()
	}
	svc := opts.Service
	if svc == nil {
		svc = generation.NewService(generation.Options{})
	}
	docType := opts.DocType
	if docType == "" {
		docType = generation.DocTypeDocument
	}

	policy := workspace.ApplyAlways
	if cfg.DiscardStaleResults() {
		policy = workspace.DiscardStale
	}
	lay := layout.NewWithWidth(cfg.GetPreviewWidthPercent())
	ws := workspace.New(store, lay, workspace.Options{
		Language:    cfg.GetLanguage(),
		StalePolicy: policy,
	})

	ctx, cancel := context.WithCancel(context.Background())
	m := &Model{
		cfg:     cfg,
		version: opts.Version,
		ctx:     ctx,
		cancel:  cancel,
		ws:      ws,
		gen:     svc,
		docType: docType,
		header:  ui.NewHeader(),
		footer:  ui.NewFooter(),
		sidebar: ui.NewSidebar(store),
		chat:    ui.NewChat(),
		preview: ui.NewPreview(),
		modal:   ui.NewModal(),
	}

	if opts.Username != "" {
		m.signIn(identity.Normalize(opts.Username))
	}
	m.applyLabels()
	m.setFocus(ui.PaneChat)
	m.sync()

	logger.WithComponent("app").Info("model created", "version", opts.Version, "sessions", store.Len())
	return m
}

// Init returns the initial command
func (m *Model) Init() tea.Cmd {
	return func() tea.Msg {
		return StartupModalMsg{}
	}
}

// Workspace exposes the workspace controller
func (m *Model) Workspace() *workspace.Controller {
	return m.ws
}

// Username returns the signed-in display name, or "" before sign-in
func (m *Model) Username() string {
	return m.username
}

// Focus returns the pane holding keyboard focus
func (m *Model) Focus() ui.Pane {
	return m.focus
}

func (m *Model) signIn(name string) {
	m.username = name
	m.header.SetUser(name)
	logger.WithComponent("app").Info("signed in", "user", name)
}

// applyLabels pushes the current language into every component
func (m *Model) applyLabels() {
	labels := m.ws.Labels()
	m.chat.SetLabels(labels)
	m.sidebar.SetLabels(labels)
	m.preview.SetLabels(labels)
	m.header.SetLanguage(m.ws.Language().Code())
}

// sync copies the workspace state into the components. It is called after
// every intent so the view is a pure function of the workspace.
func (m *Model) sync() {
	st := m.ws.State()
	labels := m.ws.Labels()

	m.chat.SetTranscript(st.Transcript)
	m.chat.SetWaiting(st.Pending, labels.Generating)
	if m.chat.Input() != st.Draft {
		m.chat.SetInput(st.Draft)
	}

	m.preview.SetDocument(st.Document)
	if m.preview.IsEditing() != st.Editing {
		m.preview.SetEditing(st.Editing)
	}
	switch {
	case st.Refining:
		m.preview.SetBusy(true, labels.Refining)
	case st.Pending:
		m.preview.SetBusy(true, labels.Generating)
	default:
		m.preview.SetBusy(false, "")
	}

	m.sidebar.Refresh()
	m.sidebar.SetActive(st.ActiveID)

	title := ""
	if st.ActiveID != 0 {
		if sess, ok := m.ws.Store().Get(st.ActiveID); ok {
			title = sess.Title
		}
	}
	m.header.SetSessionTitle(title)
	m.header.SetBusy(st.Pending || st.Refining)

	m.relayout()
}

// updateSizes recomputes every pane size after a terminal resize
func (m *Model) updateSizes() {
	if m.width == 0 || m.height == 0 {
		return
	}
	ui.GetViewContext().UpdateTerminalSize(m.width, m.height, m.ws.Layout())
	m.applySizes()
}

// relayout recomputes pane widths after a layout intent
func (m *Model) relayout() {
	if m.width == 0 || m.height == 0 {
		return
	}
	ui.GetViewContext().Relayout(m.ws.Layout())
	m.applySizes()
}

func (m *Model) applySizes() {
	ctx := ui.GetViewContext()
	st := m.ws.Layout().State()

	m.header.SetWidth(ctx.TerminalWidth)
	m.footer.SetWidth(ctx.TerminalWidth)
	m.sidebar.SetSize(ctx.NavWidth, ctx.ContentHeight)
	m.chat.SetSize(ctx.ChatWidth, ctx.ContentHeight)
	m.preview.SetSize(ctx.PreviewWidth, ctx.ContentHeight)
	m.preview.SetFullscreen(st.FullscreenPreview)
	m.preview.SetResizing(st.Resizing)

	m.ensureFocusVisible()
}

// paneVisible reports whether p has any columns in the current layout
func (m *Model) paneVisible(p ui.Pane) bool {
	ctx := ui.GetViewContext()
	switch p {
	case ui.PaneNav:
		return ctx.NavWidth > 0
	case ui.PanePreview:
		return ctx.PreviewWidth > 0
	default:
		return ctx.ChatWidth > 0
	}
}

// visiblePanes lists the drawn panes in screen order
func (m *Model) visiblePanes() []ui.Pane {
	var panes []ui.Pane
	for _, p := range []ui.Pane{ui.PaneNav, ui.PaneChat, ui.PanePreview} {
		if m.paneVisible(p) {
			panes = append(panes, p)
		}
	}
	return panes
}

// ensureFocusVisible moves focus off a pane the layout just hid
func (m *Model) ensureFocusVisible() {
	if m.paneVisible(m.focus) {
		return
	}
	for _, p := range []ui.Pane{ui.PaneChat, ui.PanePreview, ui.PaneNav} {
		if m.paneVisible(p) {
			m.setFocus(p)
			return
		}
	}
}

func (m *Model) setFocus(p ui.Pane) {
	if p != ui.PaneNav && m.sidebar.IsSearchMode() {
		m.sidebar.ExitSearchMode()
	}
	m.focus = p
	m.sidebar.SetFocused(p == ui.PaneNav)
	m.chat.SetFocused(p == ui.PaneChat)
	m.preview.SetFocused(p == ui.PanePreview)
}

// cycleFocus moves focus to the next (or previous) visible pane
func (m *Model) cycleFocus(delta int) {
	panes := m.visiblePanes()
	if len(panes) == 0 {
		return
	}
	idx := 0
	for i, p := range panes {
		if p == m.focus {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(panes)) % len(panes)
	m.setFocus(panes[idx])
}

// isTyping reports whether printable keys belong to a text input
func (m *Model) isTyping() bool {
	switch {
	case m.focus == ui.PaneChat:
		return true
	case m.focus == ui.PanePreview && m.preview.IsEditing():
		return true
	case m.sidebar.IsSearchMode():
		return true
	}
	return false
}

// startStopwatch schedules the spinner tick unless a chain is already running
func (m *Model) startStopwatch() tea.Cmd {
	if m.stopwatchRunning {
		return nil
	}
	m.stopwatchRunning = true
	return ui.StopwatchTick()
}

// saveConfig persists the config and reports a failure in the footer
func (m *Model) saveConfig() tea.Cmd {
	if err := m.cfg.Save(); err != nil {
		logger.WithComponent("app").Error("failed to save config", "error", err)
		return m.ShowFlashError("Failed to save settings: " + err.Error())
	}
	return nil
}

// showLogin opens the sign-in modal
func (m *Model) showLogin() {
	m.modal.Show(modals.NewLoginState(m.cfg.GetLastUsername()))
}

func (m *Model) quit() tea.Cmd {
	m.cancel()
	return tea.Quit
}
