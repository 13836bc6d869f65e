package app

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/docdraft/docdraft/internal/keys"
	"github.com/docdraft/docdraft/internal/logger"
	"github.com/docdraft/docdraft/internal/ui"
	"github.com/docdraft/docdraft/internal/ui/modals"
	"github.com/docdraft/docdraft/internal/workspace"
)

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()
		return m, nil

	case StartupModalMsg:
		if m.username == "" && !m.modal.IsVisible() {
			m.showLogin()
		}
		return m, nil

	case tea.KeyPressMsg:
		return m, m.handleKeyPress(msg)

	case tea.PasteMsg:
		return m, m.handlePaste(msg)

	case tea.MouseClickMsg:
		return m, m.handleMouseClick(msg)

	case tea.MouseMotionMsg:
		return m, m.handleMouseMotion(msg)

	case tea.MouseReleaseMsg:
		return m, m.handleMouseRelease(msg)

	case tea.MouseWheelMsg:
		return m, m.handleMouseWheel(msg)

	case GenerationDoneMsg:
		return m, m.handleGenerationDone(msg)

	case GenerationFailedMsg:
		m.ws.FailSend(msg.Ticket, msg.Err)
		m.sync()
		return m, nil

	case RefineDoneMsg:
		return m, m.handleRefineDone(msg)

	case ExportDoneMsg:
		if msg.Err != nil {
			return m, m.ShowFlashError(msg.Err.Error())
		}
		return m, m.ShowFlashSuccess(m.ws.Labels().Exported + " " + msg.Path)

	case DocumentCopiedMsg:
		if msg.Err != nil {
			// OSC 52 may still have reached the terminal.
			return m, m.ShowFlashWarning("Native clipboard unavailable: " + msg.Err.Error())
		}
		return m, m.ShowFlashSuccess(m.ws.Labels().Copied)

	case ui.SelectionCopiedMsg:
		return m, m.ShowFlashSuccess(fmt.Sprintf("Copied %d characters", len([]rune(msg.Text))))

	case ui.ClipboardErrorMsg:
		return m, m.ShowFlashWarning("Native clipboard unavailable: " + msg.Error.Error())

	case ui.StopwatchTickMsg:
		var cmd tea.Cmd
		m.chat, cmd = m.chat.Update(msg)
		m.preview.Advance()
		if cmd == nil && m.preview.IsBusy() {
			cmd = ui.StopwatchTick()
		}
		m.stopwatchRunning = cmd != nil
		return m, cmd

	case ui.SelectionFlashTickMsg:
		var cmd tea.Cmd
		m.preview, cmd = m.preview.Update(msg)
		return m, cmd

	case ui.FlashTickMsg:
		return m, m.handleFlashTick()

	case modals.HelpShortcutTriggeredMsg:
		m.modal.Hide()
		cmd, _ := m.ExecuteShortcut(msg.Key)
		return m, cmd
	}

	// Everything else (cursor blinks, list filtering) goes to whoever has input
	if m.modal.IsVisible() {
		var cmd tea.Cmd
		m.modal, cmd = m.modal.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKeyPress routes a key to the modal, a global shortcut or the focused pane
func (m *Model) handleKeyPress(msg tea.KeyPressMsg) tea.Cmd {
	key := msg.String()

	if m.modal.IsVisible() {
		return m.handleModalKey(msg)
	}

	// The search box swallows everything except quitting and pane changes
	if m.focus == ui.PaneNav && m.sidebar.IsSearchMode() {
		switch key {
		case keys.Quit, keys.Tab, keys.ShiftTab:
		default:
			var cmd tea.Cmd
			m.sidebar, cmd = m.sidebar.Update(msg)
			return cmd
		}
	}

	if cmd, ok := m.ExecuteShortcut(key); ok {
		return cmd
	}

	if key == keys.Escape {
		return m.handleEscape()
	}

	switch m.focus {
	case ui.PaneNav:
		return m.handleNavKey(msg)
	case ui.PanePreview:
		return m.handlePreviewKey(msg)
	default:
		return m.handleChatKey(msg)
	}
}

// handleEscape leaves the innermost mode
func (m *Model) handleEscape() tea.Cmd {
	switch {
	case m.preview.IsEditing():
		m.commitEdits()
		m.ws.ToggleEdit()
		m.sync()
	case m.preview.HasSelection():
		m.preview.ClearSelection()
	case m.ws.Layout().Overlay():
		m.ws.Layout().DismissOverlays()
		m.relayout()
	}
	return nil
}

func (m *Model) handleChatKey(msg tea.KeyPressMsg) tea.Cmd {
	if msg.String() == keys.Enter {
		return m.send()
	}
	var cmd tea.Cmd
	m.chat, cmd = m.chat.Update(msg)
	m.ws.SetDraft(m.chat.Input())
	return cmd
}

func (m *Model) handleNavKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case keys.Enter:
		if sess := m.sidebar.SelectedSession(); sess != nil {
			m.openSession(sess.ID)
		}
		return nil
	case "/":
		return m.sidebar.EnterSearchMode()
	case "r":
		if sess := m.sidebar.SelectedSession(); sess != nil {
			m.modal.Show(modals.NewRenameChatState(sess.ID, sess.Title))
		}
		return nil
	case "d":
		if sess := m.sidebar.SelectedSession(); sess != nil {
			m.modal.Show(modals.NewConfirmDeleteState(sess.ID, sess.Title))
		}
		return nil
	}
	var cmd tea.Cmd
	m.sidebar, cmd = m.sidebar.Update(msg)
	return cmd
}

func (m *Model) handlePreviewKey(msg tea.KeyPressMsg) tea.Cmd {
	var cmd tea.Cmd
	m.preview, cmd = m.preview.Update(msg)
	if m.preview.IsEditing() {
		m.ws.EditDocument(m.preview.EditorValue())
	}
	return cmd
}

func (m *Model) handlePaste(msg tea.PasteMsg) tea.Cmd {
	var cmd tea.Cmd
	switch {
	case m.modal.IsVisible():
		m.modal, cmd = m.modal.Update(msg)
	case m.focus == ui.PaneChat:
		m.chat, cmd = m.chat.Update(msg)
		m.ws.SetDraft(m.chat.Input())
	case m.focus == ui.PanePreview:
		m.preview, cmd = m.preview.Update(msg)
		if m.preview.IsEditing() {
			m.ws.EditDocument(m.preview.EditorValue())
		}
	}
	return cmd
}

// commitEdits copies the editor text into the workspace before an intent
// that reads the document
func (m *Model) commitEdits() {
	if m.preview.IsEditing() {
		m.ws.EditDocument(m.preview.EditorValue())
	}
}

// openSession makes a saved chat live
func (m *Model) openSession(id int64) {
	if !m.ws.SelectSession(id) {
		return
	}
	m.sync()
	m.sidebar.SelectSession(id)
}

// send starts a generation from the prompt box
func (m *Model) send() tea.Cmd {
	m.commitEdits()
	m.ws.SetDraft(m.chat.Input())
	t, ok := m.ws.BeginSend()
	if !ok {
		return nil
	}
	return m.startGeneration(t)
}

func (m *Model) startGeneration(t workspace.Ticket) tea.Cmd {
	logger.WithComponent("app").Debug("generation started", "activeID", t.ActiveID, "docType", m.docType)
	m.sync()
	return tea.Batch(generateCmd(m.ctx, m.gen, t, m.docType), m.startStopwatch())
}

func (m *Model) handleGenerationDone(msg GenerationDoneMsg) tea.Cmd {
	out := m.ws.CompleteSend(msg.Ticket, msg.Result)
	m.sync()
	if !out.Applied {
		return nil
	}
	m.sidebar.SelectSession(out.SessionID)

	var cmds []tea.Cmd
	if out.Degraded {
		cmds = append(cmds, m.ShowFlashWarning(m.ws.Labels().OfflineDraft))
	}
	if m.cfg.GetNotificationsEnabled() {
		if sess, ok := m.ws.Store().Get(out.SessionID); ok {
			cmds = append(cmds, notifyCmd(sess.Title))
		}
	}
	return tea.Batch(cmds...)
}

func (m *Model) handleRefineDone(msg RefineDoneMsg) tea.Cmd {
	out := m.ws.CompleteRefine(msg.Ticket, msg.Result)
	m.sync()
	if out.Applied && out.Degraded {
		return m.ShowFlashWarning(m.ws.Labels().OfflineDraft)
	}
	return nil
}
