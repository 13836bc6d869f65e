package ui

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// Pane identifies which pane has keyboard focus.
type Pane int

const (
	PaneChat Pane = iota
	PaneNav
	PanePreview
)

// KeyBinding represents a keyboard shortcut
type KeyBinding struct {
	Key  string
	Desc string
}

// FlashType determines the icon and color of a flash message
type FlashType int

const (
	FlashInfo FlashType = iota
	FlashSuccess
	FlashWarning
	FlashError
)

// DefaultFlashDuration is how long a flash message stays in the footer
const DefaultFlashDuration = 4 * time.Second

// FlashTickMsg is sent periodically to expire flash messages
type FlashTickMsg time.Time

// FlashTick returns a command that sends a flash tick after a delay
func FlashTick() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return FlashTickMsg(t)
	})
}

// FlashMessage is a transient status line shown in place of the bindings
type FlashMessage struct {
	Text      string
	Type      FlashType
	CreatedAt time.Time
	Duration  time.Duration
}

// IsExpired reports whether the message has outlived its duration
func (f *FlashMessage) IsExpired() bool {
	return time.Since(f.CreatedAt) > f.Duration
}

// FooterContext is the state the footer uses to pick its bindings
type FooterContext struct {
	Focus       Pane
	Busy        bool // generation or refinement in flight
	Editing     bool // preview is in edit mode
	Searching   bool // sidebar search box has focus
	HasDocument bool
}

// Footer represents the bottom footer bar with keybindings
type Footer struct {
	width        int
	bindings     []KeyBinding
	ctx          FooterContext
	flashMessage *FlashMessage
}

// NewFooter creates a new footer
func NewFooter() *Footer {
	return &Footer{
		bindings: []KeyBinding{
			{Key: "enter", Desc: "send"},
			{Key: "tab", Desc: "switch pane"},
			{Key: "ctrl+n", Desc: "new chat"},
			{Key: "ctrl+b", Desc: "history"},
			{Key: "ctrl+p", Desc: "preview"},
			{Key: "ctrl+l", Desc: "language"},
			{Key: "?", Desc: "help"},
			{Key: "ctrl+c", Desc: "quit"},
		},
	}
}

// SetContext updates the footer's context for conditional bindings
func (f *Footer) SetContext(ctx FooterContext) {
	f.ctx = ctx
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// SetBindings allows custom keybindings
func (f *Footer) SetBindings(bindings []KeyBinding) {
	f.bindings = bindings
}

// SetFlash shows a flash message for DefaultFlashDuration
func (f *Footer) SetFlash(text string, flashType FlashType) {
	f.SetFlashWithDuration(text, flashType, DefaultFlashDuration)
}

// SetFlashWithDuration shows a flash message for the given duration
func (f *Footer) SetFlashWithDuration(text string, flashType FlashType, d time.Duration) {
	f.flashMessage = &FlashMessage{
		Text:      text,
		Type:      flashType,
		CreatedAt: time.Now(),
		Duration:  d,
	}
}

// ClearFlash removes any flash message
func (f *Footer) ClearFlash() {
	f.flashMessage = nil
}

// HasFlash reports whether a flash message is showing
func (f *Footer) HasFlash() bool {
	return f.flashMessage != nil
}

// ClearIfExpired removes an expired flash message and reports whether it did
func (f *Footer) ClearIfExpired() bool {
	if f.flashMessage != nil && f.flashMessage.IsExpired() {
		f.flashMessage = nil
		return true
	}
	return false
}

// contextBindings returns the bindings for the current context
func (f *Footer) contextBindings() []KeyBinding {
	switch {
	case f.ctx.Searching:
		return []KeyBinding{
			{Key: "type", Desc: "filter"},
			{Key: "enter", Desc: "open"},
			{Key: "esc", Desc: "clear"},
		}
	case f.ctx.Focus == PanePreview && f.ctx.Editing:
		return []KeyBinding{
			{Key: "ctrl+s", Desc: "save"},
			{Key: "ctrl+e", Desc: "done"},
			{Key: "ctrl+r", Desc: "auto correct"},
			{Key: "tab", Desc: "switch pane"},
		}
	case f.ctx.Focus == PanePreview:
		b := []KeyBinding{
			{Key: "ctrl+e", Desc: "edit"},
			{Key: "ctrl+r", Desc: "auto correct"},
			{Key: "ctrl+g", Desc: "regenerate"},
			{Key: "ctrl+d", Desc: "download"},
			{Key: "ctrl+f", Desc: "full screen"},
			{Key: "alt+←/→", Desc: "resize"},
			{Key: "tab", Desc: "switch pane"},
		}
		if !f.ctx.HasDocument {
			return []KeyBinding{{Key: "tab", Desc: "switch pane"}, {Key: "ctrl+p", Desc: "close"}}
		}
		return b
	case f.ctx.Focus == PaneNav:
		return []KeyBinding{
			{Key: "↑/↓", Desc: "select"},
			{Key: "enter", Desc: "open"},
			{Key: "/", Desc: "search"},
			{Key: "r", Desc: "rename"},
			{Key: "d", Desc: "delete"},
			{Key: "tab", Desc: "switch pane"},
		}
	case f.ctx.Busy:
		return []KeyBinding{
			{Key: "tab", Desc: "switch pane"},
			{Key: "pgup/dn", Desc: "scroll"},
			{Key: "ctrl+c", Desc: "quit"},
		}
	}
	return f.bindings
}

// View renders the footer
func (f *Footer) View() string {
	if f.flashMessage != nil {
		return f.renderFlash()
	}

	var parts []string
	for _, b := range f.contextBindings() {
		key := FooterKeyStyle.Render(b.Key)
		desc := FooterDescStyle.Render(": " + b.Desc)
		parts = append(parts, key+desc)
	}

	content := strings.Join(parts, "  "+lipgloss.NewStyle().Foreground(ColorBorder).Render("|")+"  ")
	if f.width > 2 {
		content = ansi.Truncate(content, f.width-2, "…")
	}

	return FooterStyle.Width(f.width).Render(content)
}

func (f *Footer) renderFlash() string {
	var icon string
	var style lipgloss.Style
	switch f.flashMessage.Type {
	case FlashError:
		icon, style = "✕", StatusErrorStyle
	case FlashWarning:
		icon, style = "⚠", StatusWarningStyle
	case FlashSuccess:
		icon, style = "✓", StatusSuccessStyle
	default:
		icon, style = "ℹ", StatusLoadingStyle
	}
	content := style.Render(icon + " " + f.flashMessage.Text)
	if f.width > 2 {
		content = ansi.Truncate(content, f.width-2, "…")
	}
	return FooterStyle.Width(f.width).Render(content)
}
