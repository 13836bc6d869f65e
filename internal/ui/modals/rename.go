package modals

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// ChatTitleCharLimit bounds a renamed chat title
const ChatTitleCharLimit = 80

// =============================================================================
// RenameChatState - State for the Rename Chat modal
// =============================================================================

type RenameChatState struct {
	SessionID    int64
	CurrentTitle string
	TitleInput   textinput.Model
}

func (*RenameChatState) modalState() {}

func (s *RenameChatState) Title() string { return "Rename Chat" }

func (s *RenameChatState) Help() string {
	return "Enter: save  Esc: cancel"
}

func (s *RenameChatState) Render() string {
	title := ModalTitleStyle.Render(s.Title())

	currentLabel := lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Render("Current title:")

	current := lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Bold(true).
		MarginBottom(1).
		Render("  " + TruncateString(s.CurrentTitle, ModalInputWidth))

	newLabel := lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		MarginTop(1).
		Render("New title:")

	inputStyle := lipgloss.NewStyle().
		BorderLeft(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorPrimary).
		PaddingLeft(1)

	help := ModalHelpStyle.Render(s.Help())

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		currentLabel,
		current,
		newLabel,
		inputStyle.Render(s.TitleInput.View()),
		help,
	)
}

func (s *RenameChatState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.TitleInput, cmd = s.TitleInput.Update(msg)
	return s, cmd
}

// GetNewTitle returns the title entered by the user
func (s *RenameChatState) GetNewTitle() string {
	return s.TitleInput.Value()
}

// NewRenameChatState creates a RenameChatState prefilled with the current title
func NewRenameChatState(sessionID int64, currentTitle string) *RenameChatState {
	input := textinput.New()
	input.Placeholder = "enter new title"
	input.CharLimit = ChatTitleCharLimit
	input.SetWidth(ModalInputWidth)
	input.SetValue(currentTitle)
	input.Focus()

	return &RenameChatState{
		SessionID:    sessionID,
		CurrentTitle: currentTitle,
		TitleInput:   input,
	}
}
