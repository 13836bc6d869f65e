package modals

import (
	"charm.land/bubbles/v2/help"
	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"

	"github.com/docdraft/docdraft/internal/keys"
)

// newModalForm builds a single-group form in the modal theme and
// initializes it so the first View is complete.
func newModalForm(fields ...huh.Field) *huh.Form {
	form := huh.NewForm(huh.NewGroup(fields...)).
		WithTheme(ModalTheme()).
		WithShowHelp(false).
		WithWidth(ModalInputWidth).
		WithLayout(huh.LayoutStack)
	form.Init()
	return form
}

// updateForm forwards msg to form. Enter and Esc belong to the app-layer
// modal handlers and never reach the form.
func updateForm(form *huh.Form, msg tea.Msg) (*huh.Form, tea.Cmd) {
	if k, ok := msg.(tea.KeyPressMsg); ok && (k.String() == keys.Enter || k.String() == keys.Escape) {
		return form, nil
	}
	m, cmd := form.Update(msg)
	return m.(*huh.Form), cmd
}

// renderForm stacks a modal title, form and help line.
func renderForm(title string, form *huh.Form, hint string) string {
	return lipgloss.JoinVertical(lipgloss.Left, ModalTitleStyle.Render(title), form.View(), ModalHelpStyle.Render(hint))
}

// ModalTheme returns a huh theme that matches the current modal color palette.
// This is called each time a huh form is created to pick up the current theme colors.
func ModalTheme() huh.Theme {
	return huh.ThemeFunc(func(isDark bool) *huh.Styles {
		t := huh.ThemeBase(isDark)

		// Focused field styles: active field with left border indicator
		t.Focused.Base = lipgloss.NewStyle().
			PaddingLeft(1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(ColorPrimary)
		t.Focused.Card = t.Focused.Base
		t.Focused.Title = lipgloss.NewStyle().Foreground(ColorText).Bold(true)
		t.Focused.Description = lipgloss.NewStyle().Foreground(ColorTextMuted).Italic(true)
		t.Focused.ErrorIndicator = lipgloss.NewStyle().Foreground(ColorWarning).SetString(" *")
		t.Focused.ErrorMessage = StatusErrorStyle

		// Theme picker
		t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(ColorPrimary).SetString("> ")
		t.Focused.Option = lipgloss.NewStyle().Foreground(ColorText)
		t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(ColorSecondary)

		// Sign-in fields
		t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(ColorPrimary)
		t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(ColorTextMuted)
		t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(ColorPrimary)
		t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(ColorText)

		// Blurred field styles: inactive field with hidden border
		t.Blurred = t.Focused
		t.Blurred.Base = lipgloss.NewStyle().
			PaddingLeft(2)
		t.Blurred.Card = t.Blurred.Base
		t.Blurred.Title = lipgloss.NewStyle().Foreground(ColorTextMuted)

		// Group styles
		t.Group.Title = lipgloss.NewStyle().Foreground(ColorSecondary).Bold(true)
		t.Group.Description = lipgloss.NewStyle().Foreground(ColorTextMuted)

		// Minimal field separator
		t.FieldSeparator = lipgloss.NewStyle().SetString("\n")

		// Help styles
		t.Help = help.New().Styles

		return t
	})
}
