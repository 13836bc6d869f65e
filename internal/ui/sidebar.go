package ui

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/docdraft/docdraft/internal/i18n"
	"github.com/docdraft/docdraft/internal/keys"
	"github.com/docdraft/docdraft/internal/session"
)

// sidebarItemHeight is the number of lines each history entry occupies
const sidebarItemHeight = 2

// Sidebar lists saved conversations, newest first, with a search box.
type Sidebar struct {
	store        *session.Store
	sessions     []session.Session
	labels       i18n.Labels
	width        int
	height       int
	focused      bool
	selectedIdx  int
	scrollOffset int
	activeID     int64

	searchMode  bool
	searchInput textinput.Model
}

// NewSidebar creates a new sidebar backed by store
func NewSidebar(store *session.Store) *Sidebar {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 100

	s := &Sidebar{
		store:       store,
		labels:      i18n.For(i18n.English),
		searchInput: ti,
	}
	s.Refresh()
	return s
}

// SetSize sets the sidebar dimensions
func (s *Sidebar) SetSize(width, height int) {
	s.width = width
	s.height = height
	s.searchInput.SetWidth(max(GetViewContext().InnerWidth(width)-3, 1))
}

// Width returns the sidebar width
func (s *Sidebar) Width() int {
	return s.width
}

// SetFocused sets the focus state
func (s *Sidebar) SetFocused(focused bool) {
	s.focused = focused
	if !focused && s.searchMode {
		s.searchInput.Blur()
	}
}

// IsFocused returns the focus state
func (s *Sidebar) IsFocused() bool {
	return s.focused
}

// SetLabels switches the language of the sidebar chrome
func (s *Sidebar) SetLabels(labels i18n.Labels) {
	s.labels = labels
	s.searchInput.Placeholder = labels.SearchPlaceholder
}

// SetActive marks the conversation shown in the chat pane
func (s *Sidebar) SetActive(id int64) {
	s.activeID = id
}

// Refresh reloads the list from the store using the current search query.
func (s *Sidebar) Refresh() {
	if s.store == nil {
		s.sessions = nil
		return
	}
	s.sessions = s.store.List(s.searchInput.Value())
	s.clampSelection()
}

func (s *Sidebar) clampSelection() {
	if s.selectedIdx >= len(s.sessions) {
		s.selectedIdx = len(s.sessions) - 1
	}
	if s.selectedIdx < 0 {
		s.selectedIdx = 0
	}
}

// Sessions returns the entries currently listed
func (s *Sidebar) Sessions() []session.Session {
	return s.sessions
}

// SelectedSession returns the highlighted entry, or nil if the list is empty
func (s *Sidebar) SelectedSession() *session.Session {
	if s.selectedIdx < 0 || s.selectedIdx >= len(s.sessions) {
		return nil
	}
	sess := s.sessions[s.selectedIdx]
	return &sess
}

// SelectSession highlights the entry with the given id, if listed
func (s *Sidebar) SelectSession(id int64) {
	for i, sess := range s.sessions {
		if sess.ID == id {
			s.selectedIdx = i
			return
		}
	}
}

// SelectIndex highlights the entry at row i of the list, as a click does
func (s *Sidebar) SelectIndex(i int) bool {
	if i < 0 || i >= len(s.sessions) {
		return false
	}
	s.selectedIdx = i
	return true
}

// IndexAt maps a row inside the sidebar (0 = top border) to a list index,
// or -1 if the row is not on an entry.
func (s *Sidebar) IndexAt(row int) int {
	// border + title + search line
	first := 1 + TitleHeight + SearchHeight
	if row < first {
		return -1
	}
	i := (row-first)/sidebarItemHeight + s.scrollOffset
	if i >= len(s.sessions) {
		return -1
	}
	return i
}

// EnterSearchMode focuses the search box
func (s *Sidebar) EnterSearchMode() tea.Cmd {
	s.searchMode = true
	return s.searchInput.Focus()
}

// ExitSearchMode clears the query and shows the full history again
func (s *Sidebar) ExitSearchMode() {
	s.searchMode = false
	s.searchInput.Blur()
	s.searchInput.SetValue("")
	s.scrollOffset = 0
	s.Refresh()
}

// IsSearchMode returns whether the search box has focus
func (s *Sidebar) IsSearchMode() bool {
	return s.searchMode
}

// SearchQuery returns the current filter
func (s *Sidebar) SearchQuery() string {
	return s.searchInput.Value()
}

// SetSearchQuery replaces the filter and reloads the list
func (s *Sidebar) SetSearchQuery(q string) {
	s.searchInput.SetValue(q)
	s.scrollOffset = 0
	s.Refresh()
}

// Update handles messages
func (s *Sidebar) Update(msg tea.Msg) (*Sidebar, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok || !s.focused {
		return s, nil
	}

	if s.searchMode {
		switch keyMsg.String() {
		case keys.Escape:
			s.ExitSearchMode()
			return s, nil
		case keys.Enter:
			// Keep the filter applied; selection moves back to the list.
			s.searchMode = false
			s.searchInput.Blur()
			return s, nil
		case keys.Up:
			s.move(-1)
			return s, nil
		case keys.Down:
			s.move(1)
			return s, nil
		default:
			var cmd tea.Cmd
			s.searchInput, cmd = s.searchInput.Update(msg)
			s.scrollOffset = 0
			s.Refresh()
			return s, cmd
		}
	}

	switch keyMsg.String() {
	case keys.Up, "k":
		s.move(-1)
	case keys.Down, "j":
		s.move(1)
	case keys.Home:
		s.selectedIdx = 0
	case keys.End:
		s.selectedIdx = max(len(s.sessions)-1, 0)
	}
	return s, nil
}

func (s *Sidebar) move(delta int) {
	s.selectedIdx += delta
	s.clampSelection()
}

// visibleItems returns how many entries fit in the list area
func (s *Sidebar) visibleItems() int {
	ctx := GetViewContext()
	h := ctx.InnerHeight(s.height) - TitleHeight - SearchHeight
	return max(h/sidebarItemHeight, 1)
}

// ensureVisible adjusts scrollOffset so the selection is on screen
func (s *Sidebar) ensureVisible() {
	visible := s.visibleItems()
	if s.selectedIdx < s.scrollOffset {
		s.scrollOffset = s.selectedIdx
	} else if s.selectedIdx >= s.scrollOffset+visible {
		s.scrollOffset = s.selectedIdx - visible + 1
	}
	maxScroll := max(len(s.sessions)-visible, 0)
	if s.scrollOffset > maxScroll {
		s.scrollOffset = maxScroll
	}
	if s.scrollOffset < 0 {
		s.scrollOffset = 0
	}
}

// View renders the sidebar
func (s *Sidebar) View() string {
	if s.width <= 0 {
		return ""
	}
	ctx := GetViewContext()

	style := PanelStyle
	if s.focused {
		style = PanelFocusedStyle
	}

	innerWidth := ctx.InnerWidth(s.width)
	innerHeight := ctx.InnerHeight(s.height)

	title := PanelTitleStyle.Render(ansi.Truncate(s.labels.YourChats, max(innerWidth-2, 0), "…"))

	searchMarker := lipgloss.NewStyle().Foreground(ColorTextMuted).Render("/")
	if s.searchMode {
		searchMarker = lipgloss.NewStyle().Foreground(ColorSecondary).Bold(true).Render("/")
	}
	searchLine := SidebarSearchStyle.Render(searchMarker + " " + s.searchInput.View())

	lines := []string{title, searchLine}

	if len(s.sessions) == 0 {
		empty := "No chats yet."
		if s.searchInput.Value() != "" {
			empty = "No matches."
		}
		lines = append(lines, lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true).
			Padding(0, 1).
			Render(empty))
	} else {
		s.ensureVisible()
		end := min(s.scrollOffset+s.visibleItems(), len(s.sessions))
		for i := s.scrollOffset; i < end; i++ {
			lines = append(lines, s.renderItem(s.sessions[i], i == s.selectedIdx, innerWidth)...)
		}
	}

	if len(lines) > innerHeight {
		lines = lines[:max(innerHeight, 0)]
	}

	return style.Width(s.width).Height(s.height).Render(strings.Join(lines, "\n"))
}

// renderItem renders a history entry as a title line and a preview line
func (s *Sidebar) renderItem(sess session.Session, selected bool, width int) []string {
	prefix := "  "
	if sess.ID == s.activeID {
		prefix = "● "
	}
	if selected && s.focused {
		prefix = "> "
	}

	// Padding(0, 1) takes two columns.
	titleText := ansi.Truncate(prefix+sess.Title, max(width-2, 0), "…")

	itemStyle := SidebarItemStyle
	switch {
	case selected && s.focused:
		itemStyle = SidebarSelectedStyle
	case sess.ID == s.activeID:
		itemStyle = SidebarActiveStyle
	}

	preview := ansi.Truncate(sess.Preview, max(width-SidebarPreviewStyle.GetPaddingLeft(), 0), "…")

	return []string{
		itemStyle.Width(width).Render(titleText),
		SidebarPreviewStyle.Render(preview),
	}
}
