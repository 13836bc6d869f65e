package modals

import (
	"fmt"
	"io"

	"charm.land/bubbles/v2/list"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// =============================================================================
// HelpState - keyboard shortcut reference, backed by a bubbles list
// =============================================================================

type helpShortcutItem struct {
	shortcut HelpShortcut
}

func (i helpShortcutItem) FilterValue() string {
	return i.shortcut.Key + " " + i.shortcut.Desc
}

// helpSectionItem is a header row; it never matches a filter.
type helpSectionItem struct {
	title string
}

func (i helpSectionItem) FilterValue() string { return "" }

type helpDelegate struct {
	keyWidth int
}

func (d helpDelegate) Height() int                              { return 1 }
func (d helpDelegate) Spacing() int                             { return 0 }
func (d helpDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d helpDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	switch i := item.(type) {
	case helpSectionItem:
		fmt.Fprint(w, lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary).
			Render(i.title))

	case helpShortcutItem:
		keyStyle := lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true).Width(d.keyWidth)
		descStyle := lipgloss.NewStyle().Foreground(ColorText)
		prefix := "  "
		if index == m.Index() {
			keyStyle = keyStyle.Foreground(ColorTextInverse).Background(ColorPrimary)
			descStyle = descStyle.Foreground(ColorTextInverse).Background(ColorPrimary)
			prefix = "> "
		}
		fmt.Fprint(w, prefix+keyStyle.Render(i.shortcut.Key)+descStyle.Render(i.shortcut.Desc))
	}
}

type HelpState struct {
	list list.Model
}

func (*HelpState) modalState() {}

func (s *HelpState) Title() string { return "Keyboard Shortcuts" }

func (s *HelpState) Help() string {
	if s.list.SettingFilter() {
		return "Type to filter  Enter: apply  Esc: cancel"
	}
	return "/: filter  up/down: navigate  Enter: run  Esc: close"
}

func (s *HelpState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	help := ModalHelpStyle.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, s.list.View(), help)
}

func (s *HelpState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.list, cmd = s.list.Update(msg)
	return s, cmd
}

// SetSize fits the list between the title and help lines
func (s *HelpState) SetSize(width, height int) {
	const titleAndHelpOverhead = 4
	s.list.SetSize(width, max(height-titleAndHelpOverhead, 1))
}

// GetSelectedShortcut returns the highlighted shortcut, or nil on a header
func (s *HelpState) GetSelectedShortcut() *HelpShortcut {
	if si, ok := s.list.SelectedItem().(helpShortcutItem); ok {
		return &si.shortcut
	}
	return nil
}

// IsFiltering returns whether the user is currently typing in the filter
func (s *HelpState) IsFiltering() bool {
	return s.list.SettingFilter()
}

// NewHelpState builds the shortcut list from sections
func NewHelpState(sections []HelpSection) *HelpState {
	var items []list.Item
	keyWidth := 0
	for _, section := range sections {
		items = append(items, helpSectionItem{title: section.Title})
		for _, shortcut := range section.Shortcuts {
			items = append(items, helpShortcutItem{shortcut: shortcut})
			keyWidth = max(keyWidth, ansi.StringWidth(shortcut.Key))
		}
	}

	l := list.New(items, helpDelegate{keyWidth: keyWidth + 2}, ModalWidth, HelpModalMaxVisible)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetShowPagination(false)
	l.DisableQuitKeybindings()
	l.SetFilteringEnabled(true)

	for i, item := range items {
		if _, ok := item.(helpShortcutItem); ok {
			l.Select(i)
			break
		}
	}

	return &HelpState{list: l}
}
