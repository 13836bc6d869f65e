package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/docdraft/docdraft/internal/ui"
)

// View renders the application
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	v.SetContent(m.render())
	return v
}

// render draws the whole screen as a string
func (m *Model) render() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	st := m.ws.State()
	m.footer.SetContext(ui.FooterContext{
		Focus:       m.focus,
		Busy:        st.Pending || st.Refining,
		Editing:     st.Editing,
		Searching:   m.sidebar.IsSearchMode(),
		HasDocument: st.Document != "",
	})

	var panes []string
	if view := m.sidebar.View(); view != "" {
		panes = append(panes, view)
	}
	if view := m.chat.View(); view != "" {
		panes = append(panes, view)
	}
	if view := m.preview.View(); view != "" {
		panes = append(panes, view)
	}

	content := lipgloss.JoinHorizontal(lipgloss.Top, panes...)
	screen := lipgloss.JoinVertical(lipgloss.Left, m.header.View(), content, m.footer.View())

	if m.modal.IsVisible() {
		return m.modal.View(m.width, m.height)
	}
	return screen
}
