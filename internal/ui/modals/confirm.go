package modals

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/docdraft/docdraft/internal/keys"
)

// =============================================================================
// ConfirmDeleteState - State for the Delete Chat confirmation
// =============================================================================

type ConfirmDeleteState struct {
	SessionID    int64
	SessionTitle string
	deleteChosen bool
}

func (*ConfirmDeleteState) modalState() {}

func (s *ConfirmDeleteState) Title() string { return "Delete Chat" }

func (s *ConfirmDeleteState) Help() string {
	return "left/right: choose  y: delete  Enter: confirm  Esc: cancel"
}

func (s *ConfirmDeleteState) Render() string {
	title := ModalTitleStyle.Render(s.Title())

	message := lipgloss.NewStyle().
		Foreground(ColorText).
		MarginBottom(1).
		Render("Delete \"" + TruncateString(s.SessionTitle, ModalInputWidth) + "\"? This cannot be undone.")

	button := func(label string, active bool) string {
		style := lipgloss.NewStyle().Padding(0, 2).MarginRight(1)
		if active {
			return style.Foreground(ColorTextInverse).Background(ColorPrimary).Render(label)
		}
		return style.Foreground(ColorTextMuted).Render(label)
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		button("Delete", s.deleteChosen),
		button("Cancel", !s.deleteChosen),
	)

	help := ModalHelpStyle.Render(s.Help())

	return lipgloss.JoinVertical(lipgloss.Left, title, message, buttons, help)
}

func (s *ConfirmDeleteState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}
	switch keyMsg.String() {
	case "left", "right", "h", "l", keys.Tab, keys.ShiftTab:
		s.deleteChosen = !s.deleteChosen
	case "y":
		s.deleteChosen = true
	case "n":
		s.deleteChosen = false
	}
	return s, nil
}

// Confirmed reports whether Delete is the chosen button
func (s *ConfirmDeleteState) Confirmed() bool {
	return s.deleteChosen
}

// NewConfirmDeleteState creates a confirmation with Cancel preselected
func NewConfirmDeleteState(sessionID int64, title string) *ConfirmDeleteState {
	return &ConfirmDeleteState{SessionID: sessionID, SessionTitle: title}
}
