package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/docdraft/docdraft/internal/identity"
	"github.com/docdraft/docdraft/internal/keys"
	"github.com/docdraft/docdraft/internal/logger"
	"github.com/docdraft/docdraft/internal/ui"
	"github.com/docdraft/docdraft/internal/ui/modals"
)

// handleModalKey handles key presses while a modal is shown
func (m *Model) handleModalKey(msg tea.KeyPressMsg) tea.Cmd {
	if msg.String() == keys.Quit {
		return m.quit()
	}

	switch s := m.modal.State.(type) {
	case *modals.LoginState:
		return m.handleLoginModal(msg, s)
	case *modals.SignupState:
		return m.handleSignupModal(msg, s)
	case *modals.RenameChatState:
		return m.handleRenameModal(msg, s)
	case *modals.ConfirmDeleteState:
		return m.handleConfirmDeleteModal(msg, s)
	case *modals.ExportState:
		return m.handleExportModal(msg, s)
	case *modals.HelpState:
		return m.handleHelpModal(msg, s)
	case *modals.ThemeState:
		return m.handleThemeModal(msg, s)
	}
	return m.updateModal(msg)
}

func (m *Model) updateModal(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.modal, cmd = m.modal.Update(msg)
	return cmd
}

// completeSignIn finishes either sign-in modal
func (m *Model) completeSignIn(name string) tea.Cmd {
	m.modal.Hide()
	m.signIn(name)
	m.cfg.SetLastUsername(name)
	return tea.Batch(m.saveConfig(), m.ShowFlashSuccess("Signed in as "+name))
}

// handleLoginModal handles the sign-in modal. Esc continues as a guest.
func (m *Model) handleLoginModal(msg tea.KeyPressMsg, state *modals.LoginState) tea.Cmd {
	switch msg.String() {
	case keys.Escape:
		m.modal.Hide()
		m.signIn(identity.Guest)
		return nil
	case keys.Enter:
		return m.completeSignIn(state.Submit())
	case keys.NewChat:
		m.modal.Show(modals.NewSignupState())
		return nil
	}
	return m.updateModal(msg)
}

// handleSignupModal handles the create-account modal. Esc goes back to sign-in.
func (m *Model) handleSignupModal(msg tea.KeyPressMsg, state *modals.SignupState) tea.Cmd {
	switch msg.String() {
	case keys.Escape:
		m.showLogin()
		return nil
	case keys.Enter:
		name, err := state.Submit()
		if err != nil {
			m.modal.SetError(err.Error())
			return nil
		}
		return m.completeSignIn(name)
	}
	return m.updateModal(msg)
}

func (m *Model) handleRenameModal(msg tea.KeyPressMsg, state *modals.RenameChatState) tea.Cmd {
	switch msg.String() {
	case keys.Escape:
		m.modal.Hide()
		return nil
	case keys.Enter:
		title := state.GetNewTitle()
		if title == "" {
			m.modal.SetError("Title cannot be empty")
			return nil
		}
		if !m.ws.RenameSession(state.SessionID, title) {
			m.modal.SetError("Chat no longer exists")
			return nil
		}
		m.modal.Hide()
		m.sync()
		return nil
	}
	return m.updateModal(msg)
}

func (m *Model) handleConfirmDeleteModal(msg tea.KeyPressMsg, state *modals.ConfirmDeleteState) tea.Cmd {
	switch msg.String() {
	case keys.Escape:
		m.modal.Hide()
		return nil
	case keys.Enter:
		m.modal.Hide()
		if !state.Confirmed() {
			return nil
		}
		if m.ws.DeleteSession(state.SessionID) {
			logger.WithSession(state.SessionID).Info("chat deleted")
			m.sync()
		}
		return nil
	}
	return m.updateModal(msg)
}

func (m *Model) handleExportModal(msg tea.KeyPressMsg, state *modals.ExportState) tea.Cmd {
	switch msg.String() {
	case keys.Escape:
		m.modal.Hide()
		return nil
	case keys.Enter:
		m.modal.Hide()
		m.commitEdits()
		return exportCmd(state.GetPath(), m.ws.State().Document)
	}
	return m.updateModal(msg)
}

func (m *Model) handleHelpModal(msg tea.KeyPressMsg, state *modals.HelpState) tea.Cmd {
	if state.IsFiltering() {
		return m.updateModal(msg)
	}
	switch msg.String() {
	case keys.Escape, keys.Help:
		m.modal.Hide()
		return nil
	case keys.Enter:
		sc := state.GetSelectedShortcut()
		if sc == nil {
			return nil
		}
		key, ok := keyForDisplay(sc.Key)
		if !ok {
			return nil
		}
		return func() tea.Msg {
			return modals.HelpShortcutTriggeredMsg{Key: key}
		}
	}
	return m.updateModal(msg)
}

func (m *Model) handleThemeModal(msg tea.KeyPressMsg, state *modals.ThemeState) tea.Cmd {
	switch msg.String() {
	case keys.Escape:
		m.modal.Hide()
		return nil
	case keys.Enter:
		name := state.GetSelectedTheme()
		m.modal.Hide()
		ui.SetThemeByName(name)
		m.preview.Restyle()
		m.sync()
		m.cfg.SetTheme(name)
		return m.saveConfig()
	}
	return m.updateModal(msg)
}
