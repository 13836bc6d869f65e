package ui

import "charm.land/lipgloss/v2"

// Theme is a color palette. Every style in the package is derived from the
// active theme by buildStyles.
type Theme struct {
	// Name is the display name of the theme
	Name string

	// Primary is the main accent color (used for focus, highlights, headers)
	Primary string
	// Secondary is the secondary accent color (used for assistant messages, info)
	Secondary string

	// Background colors
	Bg         string // Main background
	BgSelected string // Selected item background (defaults to Primary if empty)

	// Text colors
	Text        string // Primary text
	TextMuted   string // Secondary/muted text
	TextInverse string // Text on colored backgrounds

	// Semantic colors
	User      string // User message labels
	Assistant string // Assistant message labels
	Warning   string // Offline drafts, warnings
	Error     string // Error messages
	Success   string // Saved/exported confirmations

	// Border colors
	Border      string // Default borders
	BorderFocus string // Focused element borders (defaults to Primary if empty)
	Handle      string // Preview resize handle while dragging (defaults to Primary if empty)

	// Markdown colors
	MarkdownH1       string // H1 headers
	MarkdownH2       string // H2 headers
	MarkdownH3       string // H3 headers
	MarkdownCode     string // Inline code
	MarkdownCodeBg   string // Code background
	MarkdownLink     string // Links
	MarkdownListItem string // List bullets
}

// GetBgSelected returns the selected background color, defaulting to Primary
func (t Theme) GetBgSelected() string {
	if t.BgSelected != "" {
		return t.BgSelected
	}
	return t.Primary
}

// GetBorderFocus returns the focused border color, defaulting to Primary
func (t Theme) GetBorderFocus() string {
	if t.BorderFocus != "" {
		return t.BorderFocus
	}
	return t.Primary
}

// GetHandle returns the active resize handle color, defaulting to Primary
func (t Theme) GetHandle() string {
	if t.Handle != "" {
		return t.Handle
	}
	return t.Primary
}

// ThemeName is a type for theme identifiers
type ThemeName string

// Available theme names
const (
	ThemeBrandRed ThemeName = "brand-red"
	ThemeSlate    ThemeName = "slate"
	ThemeForest   ThemeName = "forest"
	ThemeSepia    ThemeName = "sepia"
	ThemeLight    ThemeName = "light"
)

// DefaultTheme is the default theme name
const DefaultTheme = ThemeBrandRed

// themeOrder is the order themes are offered in the picker
var themeOrder = []ThemeName{ThemeBrandRed, ThemeSlate, ThemeForest, ThemeSepia, ThemeLight}

// BuiltinThemes contains all built-in themes. Empty optional colors fall
// back to Primary.
var BuiltinThemes = map[ThemeName]Theme{
	ThemeBrandRed: {
		Name:             "Brand Red",
		Primary:          "#DC2626",
		Secondary:        "#F87171",
		Bg:               "#18181B",
		BgSelected:       "#3F1D1D",
		Text:             "#FAFAFA",
		TextMuted:        "#A1A1AA",
		TextInverse:      "#18181B",
		User:             "#FCA5A5",
		Assistant:        "#E4E4E7",
		Warning:          "#F59E0B",
		Error:            "#EF4444",
		Success:          "#4ADE80",
		Border:           "#3F3F46",
		BorderFocus:      "#DC2626",
		Handle:           "#F87171",
		MarkdownH1:       "#F87171",
		MarkdownH2:       "#FCA5A5",
		MarkdownH3:       "#FECACA",
		MarkdownCode:     "#FDBA74",
		MarkdownCodeBg:   "#27272A",
		MarkdownLink:     "#93C5FD",
		MarkdownListItem: "#DC2626",
	},
	ThemeSlate: {
		Name:             "Slate",
		Primary:          "#60A5FA",
		Secondary:        "#94A3B8",
		Bg:               "#0F172A",
		BgSelected:       "#1E3A5F",
		Text:             "#E2E8F0",
		TextMuted:        "#64748B",
		TextInverse:      "#0F172A",
		User:             "#7DD3FC",
		Assistant:        "#CBD5E1",
		Warning:          "#FBBF24",
		Error:            "#F87171",
		Success:          "#34D399",
		Border:           "#334155",
		MarkdownH1:       "#60A5FA",
		MarkdownH2:       "#93C5FD",
		MarkdownH3:       "#BFDBFE",
		MarkdownCode:     "#A5B4FC",
		MarkdownCodeBg:   "#1E293B",
		MarkdownLink:     "#38BDF8",
		MarkdownListItem: "#60A5FA",
	},
	ThemeForest: {
		Name:             "Forest",
		Primary:          "#22C55E",
		Secondary:        "#A3E635",
		Bg:               "#0C1A12",
		BgSelected:       "#14532D",
		Text:             "#ECFDF5",
		TextMuted:        "#6B8F7A",
		TextInverse:      "#0C1A12",
		User:             "#BEF264",
		Assistant:        "#D1FAE5",
		Warning:          "#FACC15",
		Error:            "#F87171",
		Success:          "#4ADE80",
		Border:           "#1F3B2B",
		MarkdownH1:       "#4ADE80",
		MarkdownH2:       "#86EFAC",
		MarkdownH3:       "#BBF7D0",
		MarkdownCode:     "#FDE68A",
		MarkdownCodeBg:   "#132A1D",
		MarkdownLink:     "#67E8F9",
		MarkdownListItem: "#22C55E",
	},
	ThemeSepia: {
		Name:             "Sepia",
		Primary:          "#B45309",
		Secondary:        "#92400E",
		Bg:               "#FBF3E4",
		BgSelected:       "#F3DFBF",
		Text:             "#3B2F22",
		TextMuted:        "#8A7560",
		TextInverse:      "#FBF3E4",
		User:             "#9A3412",
		Assistant:        "#57534E",
		Warning:          "#C2410C",
		Error:            "#B91C1C",
		Success:          "#3F6212",
		Border:           "#D6C3A5",
		MarkdownH1:       "#92400E",
		MarkdownH2:       "#B45309",
		MarkdownH3:       "#A16207",
		MarkdownCode:     "#7C2D12",
		MarkdownCodeBg:   "#F1E4CC",
		MarkdownLink:     "#1D4ED8",
		MarkdownListItem: "#B45309",
	},
	ThemeLight: {
		Name:             "Light",
		Primary:          "#B91C1C",
		Secondary:        "#0891B2",
		Bg:               "#FFFFFF",
		BgSelected:       "#FEE2E2",
		Text:             "#1F2937",
		TextMuted:        "#6B7280",
		TextInverse:      "#FFFFFF",
		User:             "#B91C1C",
		Assistant:        "#0891B2",
		Warning:          "#D97706",
		Error:            "#DC2626",
		Success:          "#16A34A",
		Border:           "#D1D5DB",
		BorderFocus:      "#B91C1C",
		MarkdownH1:       "#B91C1C",
		MarkdownH2:       "#7C3AED",
		MarkdownH3:       "#0891B2",
		MarkdownCode:     "#059669",
		MarkdownCodeBg:   "#F3F4F6",
		MarkdownLink:     "#0891B2",
		MarkdownListItem: "#B91C1C",
	},
}

// ThemeNames returns the available theme names in picker order
func ThemeNames() []ThemeName {
	return append([]ThemeName(nil), themeOrder...)
}

// GetTheme looks up a theme, falling back to DefaultTheme
func GetTheme(name ThemeName) Theme {
	if theme, ok := BuiltinThemes[name]; ok {
		return theme
	}
	return BuiltinThemes[DefaultTheme]
}

// currentTheme holds the active theme
var currentTheme = BuiltinThemes[DefaultTheme]

// CurrentTheme returns the currently active theme
func CurrentTheme() Theme {
	return currentTheme
}

// SetTheme sets the active theme and regenerates all styles
func SetTheme(name ThemeName) {
	currentTheme = GetTheme(name)
	regenerateStyles()
	RefreshModalStyles()
}

// SetThemeByName sets the active theme by string name
func SetThemeByName(name string) {
	SetTheme(ThemeName(name))
}

// CurrentThemeName returns the name of the active theme
func CurrentThemeName() ThemeName {
	for _, name := range themeOrder {
		if BuiltinThemes[name].Name == currentTheme.Name {
			return name
		}
	}
	return DefaultTheme
}

// regenerateStyles updates all style variables based on the current theme
func regenerateStyles() {
	t := currentTheme

	// Update color variables
	ColorPrimary = lipgloss.Color(t.Primary)
	ColorSecondary = lipgloss.Color(t.Secondary)
	ColorBorder = lipgloss.Color(t.Border)
	ColorBorderFocus = lipgloss.Color(t.GetBorderFocus())
	ColorHandle = lipgloss.Color(t.GetHandle())
	ColorBg = lipgloss.Color(t.Bg)
	ColorText = lipgloss.Color(t.Text)
	ColorTextMuted = lipgloss.Color(t.TextMuted)
	ColorTextInverse = lipgloss.Color(t.TextInverse)
	ColorUser = lipgloss.Color(t.User)
	ColorAssistant = lipgloss.Color(t.Assistant)
	ColorWarning = lipgloss.Color(t.Warning)
	ColorError = lipgloss.Color(t.Error)
	ColorSuccess = lipgloss.Color(t.Success)

	buildStyles(t)
}
