package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/docdraft/docdraft/internal/export"
	"github.com/docdraft/docdraft/internal/keys"
	"github.com/docdraft/docdraft/internal/logger"
	"github.com/docdraft/docdraft/internal/ui"
	"github.com/docdraft/docdraft/internal/ui/modals"
)

// previewNudge is how far one alt+arrow press moves the preview edge, in percent.
const previewNudge = 5

// Shortcut represents a keyboard shortcut with its metadata and handler.
// This is the single source of truth for all global shortcuts.
type Shortcut struct {
	Key         string                 // The key binding (e.g., "ctrl+n")
	DisplayKey  string                 // Display name in help; defaults to Key
	Description string                 // Human-readable description
	Category    string                 // Section for help modal grouping
	Handler     func(m *Model) tea.Cmd // Action to perform
	Condition   func(m *Model) bool    // Optional guard
}

// Categories for organizing shortcuts in the help modal
const (
	CategoryNavigation = "Navigation"
	CategoryChat       = "Chat"
	CategoryDocument   = "Document"
	CategoryHistory    = "History (when focused)"
	CategoryGeneral    = "General"
)

var categoryOrder = []string{
	CategoryNavigation,
	CategoryChat,
	CategoryDocument,
	CategoryHistory,
	CategoryGeneral,
}

// ShortcutRegistry is the central registry of global shortcuts. Entries
// show up in the help modal and can be run from it.
var ShortcutRegistry = []Shortcut{
	// Navigation
	{Key: keys.Tab, DisplayKey: "Tab", Description: "Focus next pane", Category: CategoryNavigation, Handler: shortcutNextPane},
	{Key: keys.ShiftTab, DisplayKey: "Shift+Tab", Description: "Focus previous pane", Category: CategoryNavigation, Handler: shortcutPrevPane},
	{Key: keys.ToggleNav, Description: "Show or hide chat history", Category: CategoryNavigation, Handler: shortcutToggleNav},
	{Key: keys.TogglePreview, Description: "Show or hide the preview", Category: CategoryNavigation, Handler: shortcutTogglePreview},
	{Key: keys.Fullscreen, Description: "Full screen preview", Category: CategoryNavigation, Handler: shortcutFullscreen},
	{Key: keys.GrowPreview, DisplayKey: "alt+←", Description: "Widen the preview", Category: CategoryNavigation, Handler: shortcutGrowPreview},
	{Key: keys.ShrinkPreview, DisplayKey: "alt+→", Description: "Narrow the preview", Category: CategoryNavigation, Handler: shortcutShrinkPreview},

	// Chat
	{Key: keys.NewChat, Description: "Start a new chat", Category: CategoryChat, Handler: shortcutNewChat},
	{Key: keys.Template, Description: "Use the cover letter template", Category: CategoryChat, Handler: shortcutTemplate},
	{Key: keys.Regenerate, Description: "Regenerate the document", Category: CategoryChat, Handler: shortcutRegenerate},
	{Key: keys.Language, Description: "Switch language", Category: CategoryChat, Handler: shortcutLanguage},

	// Document
	{Key: keys.ToggleEdit, Description: "Edit the document", Category: CategoryDocument, Handler: shortcutToggleEdit, Condition: hasDocument},
	{Key: keys.SaveEdits, Description: "Save edits to the chat", Category: CategoryDocument, Handler: shortcutSaveEdits, Condition: hasDocument},
	{Key: keys.Refine, Description: "Auto correct the document", Category: CategoryDocument, Handler: shortcutRefine, Condition: canRefine},
	{Key: keys.Download, Description: "Download as Word", Category: CategoryDocument, Handler: shortcutDownload, Condition: hasDocument},
	{Key: keys.CopyDoc, Description: "Copy the document", Category: CategoryDocument, Handler: shortcutCopyDocument, Condition: hasDocument},

	// General
	{Key: keys.Theme, Description: "Change theme", Category: CategoryGeneral, Handler: shortcutTheme},
	{Key: keys.Logout, Description: "Log out", Category: CategoryGeneral, Handler: shortcutLogout},
	{Key: keys.Quit, Description: "Quit", Category: CategoryGeneral, Handler: shortcutQuit},
}

// helpShortcut is handled outside the registry because its handler reads the registry.
var helpShortcut = Shortcut{
	Key:         keys.Help,
	Description: "Show this help",
	Category:    CategoryGeneral,
	Condition:   func(m *Model) bool { return !m.isTyping() },
}

// DisplayOnlyShortcuts are shown in help but not run from it.
var DisplayOnlyShortcuts = []Shortcut{
	{DisplayKey: "Enter", Description: "Send the prompt", Category: CategoryChat},
	{DisplayKey: "Shift+Enter", Description: "New line in the prompt", Category: CategoryChat},
	{DisplayKey: "PgUp/PgDn", Description: "Scroll the focused pane", Category: CategoryNavigation},
	{DisplayKey: "Mouse drag", Description: "Select preview text (auto-copies)", Category: CategoryDocument},
	{DisplayKey: "Esc", Description: "Leave edit mode / clear selection", Category: CategoryDocument},
	{DisplayKey: "↑/↓", Description: "Select a chat", Category: CategoryHistory},
	{DisplayKey: "Enter", Description: "Open the selected chat", Category: CategoryHistory},
	{DisplayKey: "/", Description: "Search chats", Category: CategoryHistory},
	{DisplayKey: "r", Description: "Rename the selected chat", Category: CategoryHistory},
	{DisplayKey: "d", Description: "Delete the selected chat", Category: CategoryHistory},
}

func hasDocument(m *Model) bool {
	return m.ws.State().Document != ""
}

func canRefine(m *Model) bool {
	return hasDocument(m) && !m.ws.Busy()
}

// ExecuteShortcut runs the shortcut bound to key. It returns false when no
// shortcut matched or its guard failed, so the key can reach the focused pane.
func (m *Model) ExecuteShortcut(key string) (tea.Cmd, bool) {
	log := logger.WithComponent("shortcuts")

	if key == helpShortcut.Key {
		if !helpShortcut.Condition(m) {
			return nil, false
		}
		return shortcutHelp(m), true
	}

	for _, s := range ShortcutRegistry {
		if s.Key != key {
			continue
		}
		if s.Condition != nil && !s.Condition(m) {
			log.Debug("guard failed", "key", key)
			return nil, false
		}
		log.Debug("executing shortcut", "key", key)
		return s.Handler(m), true
	}
	return nil, false
}

// helpSections builds the help modal from the registry. Executable entries
// carry their real key so the modal can trigger them.
func (m *Model) helpSections() []modals.HelpSection {
	categories := make(map[string][]modals.HelpShortcut)

	for _, s := range ShortcutRegistry {
		if s.Condition != nil && !s.Condition(m) {
			continue
		}
		categories[s.Category] = append(categories[s.Category], modals.HelpShortcut{
			Key:  displayKey(s),
			Desc: s.Description,
		})
	}
	for _, s := range DisplayOnlyShortcuts {
		categories[s.Category] = append(categories[s.Category], modals.HelpShortcut{
			Key:  displayKey(s),
			Desc: s.Description,
		})
	}

	var sections []modals.HelpSection
	for _, cat := range categoryOrder {
		if shortcuts, ok := categories[cat]; ok && len(shortcuts) > 0 {
			sections = append(sections, modals.HelpSection{Title: cat, Shortcuts: shortcuts})
		}
	}
	return sections
}

func displayKey(s Shortcut) string {
	if s.DisplayKey != "" {
		return s.DisplayKey
	}
	return s.Key
}

// keyForDisplay maps a help modal row back to an executable key
func keyForDisplay(display string) (string, bool) {
	for _, s := range ShortcutRegistry {
		if displayKey(s) == display {
			return s.Key, true
		}
	}
	return "", false
}

// =============================================================================
// Shortcut Handlers
// =============================================================================

func shortcutNextPane(m *Model) tea.Cmd {
	m.cycleFocus(1)
	return nil
}

func shortcutPrevPane(m *Model) tea.Cmd {
	m.cycleFocus(-1)
	return nil
}

func shortcutToggleNav(m *Model) tea.Cmd {
	m.ws.Layout().ToggleNav()
	m.relayout()
	if m.paneVisible(ui.PaneNav) {
		m.setFocus(ui.PaneNav)
	}
	return nil
}

func shortcutTogglePreview(m *Model) tea.Cmd {
	m.ws.Layout().TogglePreview()
	m.relayout()
	return nil
}

func shortcutFullscreen(m *Model) tea.Cmd {
	lay := m.ws.Layout()
	if !lay.State().PreviewVisible {
		lay.ShowPreview()
	}
	lay.ToggleFullscreen()
	m.relayout()
	if lay.State().FullscreenPreview && m.paneVisible(ui.PanePreview) {
		m.setFocus(ui.PanePreview)
	}
	return nil
}

func shortcutGrowPreview(m *Model) tea.Cmd {
	if m.ws.Layout().Nudge(previewNudge) {
		m.relayout()
	}
	return nil
}

func shortcutShrinkPreview(m *Model) tea.Cmd {
	if m.ws.Layout().Nudge(-previewNudge) {
		m.relayout()
	}
	return nil
}

func shortcutNewChat(m *Model) tea.Cmd {
	m.ws.NewChat()
	m.sync()
	m.setFocus(ui.PaneChat)
	return nil
}

func shortcutTemplate(m *Model) tea.Cmd {
	m.ws.UseTemplate()
	m.sync()
	m.setFocus(ui.PaneChat)
	return nil
}

func shortcutRegenerate(m *Model) tea.Cmd {
	m.commitEdits()
	m.ws.SetDraft(m.chat.Input())
	t, ok := m.ws.Regenerate()
	if !ok {
		return nil
	}
	return m.startGeneration(t)
}

func shortcutLanguage(m *Model) tea.Cmd {
	lang := m.ws.Language().Toggle()
	m.ws.SetLanguage(lang)
	m.cfg.SetLanguage(lang)
	m.applyLabels()
	m.sync()
	return tea.Batch(m.saveConfig(), m.ShowFlashInfo("Language: "+lang.String()))
}

func shortcutToggleEdit(m *Model) tea.Cmd {
	m.commitEdits()
	if !m.ws.ToggleEdit() {
		return nil
	}
	m.sync()
	if m.ws.State().Editing {
		m.setFocus(ui.PanePreview)
	}
	return nil
}

func shortcutSaveEdits(m *Model) tea.Cmd {
	m.commitEdits()
	if !m.ws.SaveEdits() {
		return m.ShowFlashWarning("Send a prompt first to save this document to a chat")
	}
	m.sync()
	return m.ShowFlashSuccess(m.ws.Labels().EditsSaved)
}

func shortcutRefine(m *Model) tea.Cmd {
	if m.ws.Busy() {
		return nil
	}
	m.commitEdits()
	if m.ws.State().Editing {
		m.ws.ToggleEdit()
	}
	t, ok := m.ws.BeginRefine()
	if !ok {
		m.sync()
		return nil
	}
	m.sync()
	return tea.Batch(refineCmd(m.ctx, m.gen, t), m.startStopwatch())
}

func shortcutDownload(m *Model) tea.Cmd {
	m.modal.Show(modals.NewExportState(export.DefaultFilename))
	return nil
}

func shortcutCopyDocument(m *Model) tea.Cmd {
	m.commitEdits()
	return copyDocumentCmd(m.ws.State().Document)
}

func shortcutTheme(m *Model) tea.Cmd {
	names := make([]string, 0, len(ui.ThemeNames()))
	for _, n := range ui.ThemeNames() {
		names = append(names, string(n))
	}
	m.modal.Show(modals.NewThemeState(names, string(ui.CurrentThemeName())))
	return nil
}

func shortcutLogout(m *Model) tea.Cmd {
	logger.WithComponent("app").Info("signed out", "user", m.username)
	m.username = ""
	m.header.SetUser("")
	m.showLogin()
	return nil
}

func shortcutHelp(m *Model) tea.Cmd {
	m.modal.Show(modals.NewHelpState(m.helpSections()))
	return nil
}

func shortcutQuit(m *Model) tea.Cmd {
	return m.quit()
}
