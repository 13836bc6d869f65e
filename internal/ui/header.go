package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

const headerTitle = " docdraft"

// Header represents the top header bar
type Header struct {
	width        int
	sessionTitle string
	username     string
	language     string
	busy         bool
}

// NewHeader creates a new header
func NewHeader() *Header {
	return &Header{}
}

// SetWidth sets the header width
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetSessionTitle sets the active conversation title to display
func (h *Header) SetSessionTitle(title string) {
	h.sessionTitle = title
}

// SetUser sets the signed-in display name
func (h *Header) SetUser(name string) {
	h.username = name
}

// SetLanguage sets the language code shown in the header
func (h *Header) SetLanguage(code string) {
	h.language = code
}

// SetBusy marks a generation or refinement in flight
func (h *Header) SetBusy(busy bool) {
	h.busy = busy
}

// rightText is the plain-text status shown on the right of the bar.
func (h *Header) rightText() string {
	var parts []string
	if h.sessionTitle != "" {
		title := h.sessionTitle
		if h.busy {
			title = "● " + title
		}
		parts = append(parts, title)
	}
	if h.language != "" {
		parts = append(parts, strings.ToUpper(h.language))
	}
	if h.username != "" {
		parts = append(parts, "@"+h.username)
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, " · ") + " "
}

// View renders the header
func (h *Header) View() string {
	right := h.rightText()

	// Give the title priority; the status is cut from the right.
	room := h.width - runewidth.StringWidth(headerTitle) - 1
	if room < 0 {
		room = 0
	}
	if runewidth.StringWidth(right) > room {
		right = ansi.Truncate(right, room, "…")
	}

	paddingLen := h.width - runewidth.StringWidth(headerTitle) - runewidth.StringWidth(right)
	if paddingLen < 0 {
		paddingLen = 0
	}

	fullContent := headerTitle + strings.Repeat(" ", paddingLen) + right
	return h.renderGradient(fullContent)
}

// parseHexColor parses a hex color string (e.g., "#7C3AED") into RGB components
func parseHexColor(hex string) (r, g, b int) {
	if len(hex) == 7 && hex[0] == '#' {
		fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b)
	}
	return
}

// renderGradient renders the content with a theme-aware gradient background.
// Content is walked grapheme by grapheme so combining marks stay attached
// to their base character.
func (h *Header) renderGradient(content string) string {
	if len(content) == 0 {
		return ""
	}

	theme := CurrentTheme()
	startR, startG, startB := parseHexColor(theme.Primary)
	endR, endG, endB := parseHexColor(theme.Bg)

	textColor := lipgloss.Color(theme.Text)
	width := runewidth.StringWidth(content)
	if width == 0 {
		width = 1
	}

	var result strings.Builder
	col := 0
	gr := uniseg.NewGraphemes(content)
	for gr.Next() {
		cluster := gr.Str()
		t := float64(col) / float64(width)

		cr := int(float64(startR)*(1-t) + float64(endR)*t)
		cg := int(float64(startG)*(1-t) + float64(endG)*t)
		cb := int(float64(startB)*(1-t) + float64(endB)*t)
		bgColor := lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", cr, cg, cb))

		style := lipgloss.NewStyle().
			Background(bgColor).
			Foreground(textColor).
			Bold(col < len(headerTitle))

		result.WriteString(style.Render(cluster))
		col += runewidth.StringWidth(cluster)
	}

	return result.String()
}
