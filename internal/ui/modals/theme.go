package modals

import (
	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
)

// =============================================================================
// ThemeState - State for the theme picker
// =============================================================================

type ThemeState struct {
	selected string
	form     *huh.Form
}

func (*ThemeState) modalState() {}

func (s *ThemeState) Title() string { return "Theme" }

func (s *ThemeState) Help() string {
	return "up/down: choose  Enter: apply  Esc: cancel"
}

func (s *ThemeState) Render() string {
	return renderForm(s.Title(), s.form, s.Help())
}

func (s *ThemeState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.form, cmd = updateForm(s.form, msg)
	return s, cmd
}

// GetSelectedTheme returns the highlighted theme name
func (s *ThemeState) GetSelectedTheme() string {
	return s.selected
}

// NewThemeState creates a picker over names with current preselected
func NewThemeState(names []string, current string) *ThemeState {
	s := &ThemeState{selected: current}

	options := make([]huh.Option[string], len(names))
	for i, name := range names {
		options[i] = huh.NewOption(name, name)
	}

	s.form = newModalForm(
		huh.NewSelect[string]().
			Options(options...).
			Value(&s.selected),
	)
	return s
}
