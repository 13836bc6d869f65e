package modals

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Palette carries the ui package's styles into the modals.
type Palette struct {
	Title, Help, Error lipgloss.Style

	Primary, Secondary, Text, Muted, Inverse, Warning color.Color

	InputWidth, InputCharLimit, Width int
}

// Current modal styles, refreshed by SetStyles whenever the theme changes.
var (
	ModalTitleStyle  lipgloss.Style
	ModalHelpStyle   lipgloss.Style
	StatusErrorStyle lipgloss.Style

	ColorPrimary     color.Color
	ColorSecondary   color.Color
	ColorText        color.Color
	ColorTextMuted   color.Color
	ColorTextInverse color.Color
	ColorWarning     color.Color

	ModalInputWidth     int
	ModalInputCharLimit int
	ModalWidth          int
)

// HelpModalMaxVisible is the list height of the help modal before scrolling.
const HelpModalMaxVisible = 18

// SetStyles installs p. It must run before any modal renders.
func SetStyles(p Palette) {
	ModalTitleStyle, ModalHelpStyle, StatusErrorStyle = p.Title, p.Help, p.Error
	ColorPrimary, ColorSecondary = p.Primary, p.Secondary
	ColorText, ColorTextMuted, ColorTextInverse = p.Text, p.Muted, p.Inverse
	ColorWarning = p.Warning
	ModalInputWidth, ModalInputCharLimit, ModalWidth = p.InputWidth, p.InputCharLimit, p.Width
}
