package modals

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// =============================================================================
// ExportState - State for the Download modal
// =============================================================================

type ExportState struct {
	PathInput textinput.Model
}

func (*ExportState) modalState() {}

func (s *ExportState) Title() string { return "Download Document" }

func (s *ExportState) Help() string {
	return "Enter: save  Esc: cancel"
}

func (s *ExportState) Render() string {
	title := ModalTitleStyle.Render(s.Title())

	label := lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Render("Save as Word document:")

	inputStyle := lipgloss.NewStyle().
		BorderLeft(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorPrimary).
		PaddingLeft(1)

	help := ModalHelpStyle.Render(s.Help())

	return lipgloss.JoinVertical(lipgloss.Left, title, label, inputStyle.Render(s.PathInput.View()), help)
}

func (s *ExportState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.PathInput, cmd = s.PathInput.Update(msg)
	return s, cmd
}

// GetPath returns the chosen path; empty means the default file name
func (s *ExportState) GetPath() string {
	return strings.TrimSpace(s.PathInput.Value())
}

// NewExportState creates an ExportState prefilled with defaultPath
func NewExportState(defaultPath string) *ExportState {
	input := textinput.New()
	input.Placeholder = defaultPath
	input.CharLimit = ModalInputCharLimit
	input.SetWidth(ModalInputWidth)
	input.SetValue(defaultPath)
	input.Focus()

	return &ExportState{PathInput: input}
}
