// Package keys provides string constants for the Bubble Tea v2 key presses
// docdraft binds.
//
// Each constant is derived from tea.KeyPressMsg{...}.String() so it always
// matches the runtime value. Single printable keys ("j", "?", "/") are used
// as literals.
package keys

import tea "charm.land/bubbletea/v2"

func ctrl(r rune) string {
	return tea.KeyPressMsg{Code: r, Mod: tea.ModCtrl}.String()
}

// Navigation keys
var (
	Up     = tea.KeyPressMsg{Code: tea.KeyUp}.String()     // "up"
	Down   = tea.KeyPressMsg{Code: tea.KeyDown}.String()   // "down"
	Home   = tea.KeyPressMsg{Code: tea.KeyHome}.String()   // "home"
	End    = tea.KeyPressMsg{Code: tea.KeyEnd}.String()    // "end"
	PgUp   = tea.KeyPressMsg{Code: tea.KeyPgUp}.String()   // "pgup"
	PgDown = tea.KeyPressMsg{Code: tea.KeyPgDown}.String() // "pgdown"
)

// Editing and focus keys
var (
	Enter      = tea.KeyPressMsg{Code: tea.KeyEnter}.String()                      // "enter"
	ShiftEnter = (tea.KeyPressMsg{Code: tea.KeyEnter, Mod: tea.ModShift}).String() // "shift+enter"
	Tab        = tea.KeyPressMsg{Code: tea.KeyTab}.String()                        // "tab"
	ShiftTab   = (tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}).String()   // "shift+tab"
	Backspace  = tea.KeyPressMsg{Code: tea.KeyBackspace}.String()                  // "backspace"
	Escape     = tea.KeyPressMsg{Code: tea.KeyEscape}.String()                     // "esc"
)

// Workspace commands
var (
	Quit          = ctrl('c') // "ctrl+c"
	NewChat       = ctrl('n') // "ctrl+n"
	ToggleNav     = ctrl('b') // "ctrl+b"
	TogglePreview = ctrl('p') // "ctrl+p"
	Fullscreen    = ctrl('f') // "ctrl+f"
	Language      = ctrl('l') // "ctrl+l"
	Template      = ctrl('t') // "ctrl+t"
	Refine        = ctrl('r') // "ctrl+r"
	Regenerate    = ctrl('g') // "ctrl+g"
	ToggleEdit    = ctrl('e') // "ctrl+e"
	SaveEdits     = ctrl('s') // "ctrl+s"
	Download      = ctrl('d') // "ctrl+d"
	CopyDoc       = ctrl('y') // "ctrl+y"
	Logout        = ctrl('o') // "ctrl+o"
	Theme         = ctrl('k') // "ctrl+k"
	Help          = "?"
)

// Keyboard resize of the preview pane
var (
	GrowPreview   = (tea.KeyPressMsg{Code: tea.KeyLeft, Mod: tea.ModAlt}).String()  // "alt+left"
	ShrinkPreview = (tea.KeyPressMsg{Code: tea.KeyRight, Mod: tea.ModAlt}).String() // "alt+right"
)
