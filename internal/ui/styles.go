package ui

import (
	"image/color"

	"charm.land/lipgloss/v2"
	"github.com/docdraft/docdraft/internal/ui/modals"
)

// Color palette. Values are filled from the active theme by regenerateStyles.
var (
	ColorPrimary     color.Color
	ColorSecondary   color.Color
	ColorBorder      color.Color
	ColorBorderFocus color.Color
	ColorHandle      color.Color
	ColorBg          color.Color
	ColorText        color.Color
	ColorTextMuted   color.Color
	ColorTextInverse color.Color
	ColorUser        color.Color
	ColorAssistant   color.Color
	ColorWarning     color.Color
	ColorError       color.Color
	ColorSuccess     color.Color
)

// Header styles
var (
	HeaderStyle      lipgloss.Style
	HeaderTitleStyle lipgloss.Style
)

// Footer styles
var (
	FooterStyle     lipgloss.Style
	FooterKeyStyle  lipgloss.Style
	FooterDescStyle lipgloss.Style
)

// Panel styles
var (
	PanelStyle        lipgloss.Style
	PanelFocusedStyle lipgloss.Style
	PanelTitleStyle   lipgloss.Style
)

// Sidebar styles
var (
	SidebarItemStyle     lipgloss.Style
	SidebarSelectedStyle lipgloss.Style
	SidebarActiveStyle   lipgloss.Style
	SidebarPreviewStyle  lipgloss.Style
	SidebarSearchStyle   lipgloss.Style
)

// Chat styles
var (
	ChatUserStyle         lipgloss.Style
	ChatAssistantStyle    lipgloss.Style
	ChatMessageStyle      lipgloss.Style
	ChatInputStyle        lipgloss.Style
	ChatInputFocusedStyle lipgloss.Style
)

// Preview styles
var (
	PreviewToolbarStyle    lipgloss.Style
	PreviewButtonStyle     lipgloss.Style
	PreviewEditBannerStyle lipgloss.Style
	HandleStyle            lipgloss.Style
	HandleActiveStyle      lipgloss.Style
)

// Text selection styles
var (
	TextSelectionStyle      lipgloss.Style
	TextSelectionFlashStyle lipgloss.Style
)

// Modal styles
var (
	ModalStyle      lipgloss.Style
	ModalTitleStyle lipgloss.Style
	ModalHelpStyle  lipgloss.Style
)

// Status styles
var (
	StatusLoadingStyle lipgloss.Style
	StatusErrorStyle   lipgloss.Style
	StatusWarningStyle lipgloss.Style
	StatusSuccessStyle lipgloss.Style
)

// Markdown styles
var (
	MarkdownH1Style         lipgloss.Style
	MarkdownH2Style         lipgloss.Style
	MarkdownH3Style         lipgloss.Style
	MarkdownH4Style         lipgloss.Style
	MarkdownBoldStyle       lipgloss.Style
	MarkdownItalicStyle     lipgloss.Style
	MarkdownInlineCodeStyle lipgloss.Style
	MarkdownCodeBlockStyle  lipgloss.Style
	MarkdownListBulletStyle lipgloss.Style
	MarkdownBlockquoteStyle lipgloss.Style
	MarkdownHRStyle         lipgloss.Style
	MarkdownLinkStyle       lipgloss.Style
)

func init() {
	regenerateStyles()
	RefreshModalStyles()
}

// buildStyles rebuilds every style from the color variables and theme t.
func buildStyles(t Theme) {
	HeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText).
		Background(ColorPrimary).
		Padding(0, 1)

	HeaderTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText)

	FooterStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Padding(0, 1)

	FooterKeyStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorSecondary)

	FooterDescStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	PanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder)

	PanelFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorderFocus)

	PanelTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		Padding(0, 1)

	SidebarItemStyle = lipgloss.NewStyle().
		Padding(0, 1)

	SidebarSelectedStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(t.GetBgSelected())).
		Foreground(ColorText).
		Bold(true).
		Padding(0, 1)

	SidebarActiveStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true).
		Padding(0, 1)

	SidebarPreviewStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true).
		PaddingLeft(3)

	SidebarSearchStyle = lipgloss.NewStyle().
		Foreground(ColorText).
		Padding(0, 1)

	ChatUserStyle = lipgloss.NewStyle().
		Foreground(ColorUser).
		Bold(true)

	ChatAssistantStyle = lipgloss.NewStyle().
		Foreground(ColorAssistant).
		Bold(true)

	ChatMessageStyle = lipgloss.NewStyle().
		Foreground(ColorText)

	ChatInputStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Padding(0, 1)

	ChatInputFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorderFocus).
		Padding(0, 1)

	PreviewToolbarStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	PreviewButtonStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Bold(true)

	PreviewEditBannerStyle = lipgloss.NewStyle().
		Foreground(ColorWarning).
		Italic(true)

	HandleStyle = lipgloss.NewStyle().
		Foreground(ColorBorder)

	HandleActiveStyle = lipgloss.NewStyle().
		Foreground(ColorHandle).
		Bold(true)

	TextSelectionStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(t.GetBgSelected())).
		Foreground(ColorText)

	TextSelectionFlashStyle = lipgloss.NewStyle().
		Background(ColorSuccess).
		Foreground(ColorTextInverse)

	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2).
		Width(ModalWidth)

	ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		MarginBottom(1)

	ModalHelpStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true).
		MarginTop(1)

	StatusLoadingStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Italic(true)

	StatusErrorStyle = lipgloss.NewStyle().
		Foreground(ColorError).
		Bold(true)

	StatusWarningStyle = lipgloss.NewStyle().
		Foreground(ColorWarning)

	StatusSuccessStyle = lipgloss.NewStyle().
		Foreground(ColorSuccess)

	MarkdownH1Style = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(t.MarkdownH1)).
		MarginTop(1)

	MarkdownH2Style = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(t.MarkdownH2)).
		MarginTop(1)

	MarkdownH3Style = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(t.MarkdownH3))

	MarkdownH4Style = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorTextMuted)

	MarkdownBoldStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText)

	MarkdownItalicStyle = lipgloss.NewStyle().
		Italic(true).
		Foreground(ColorText)

	MarkdownInlineCodeStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.MarkdownCode)).
		Background(lipgloss.Color(t.MarkdownCodeBg))

	MarkdownCodeBlockStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(t.MarkdownCodeBg))

	MarkdownListBulletStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.MarkdownListItem))

	MarkdownBlockquoteStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true).
		BorderLeft(true).
		BorderStyle(lipgloss.ThickBorder()).
		BorderForeground(ColorBorder).
		PaddingLeft(1)

	MarkdownHRStyle = lipgloss.NewStyle().
		Foreground(ColorBorder)

	MarkdownLinkStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.MarkdownLink)).
		Underline(true)
}

// RefreshModalStyles pushes the current styles into the modals package.
func RefreshModalStyles() {
	modals.SetStyles(modals.Palette{
		Title:          ModalTitleStyle,
		Help:           ModalHelpStyle,
		Error:          StatusErrorStyle,
		Primary:        ColorPrimary,
		Secondary:      ColorSecondary,
		Text:           ColorText,
		Muted:          ColorTextMuted,
		Inverse:        ColorTextInverse,
		Warning:        ColorWarning,
		InputWidth:     ModalInputWidth,
		InputCharLimit: ModalInputCharLimit,
		Width:          ModalWidth,
	})
}
