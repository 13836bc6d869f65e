package modals

import (
	"io"
	"os"
	"testing"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/docdraft/docdraft/internal/logger"
)

func TestMain(m *testing.M) {
	// Keep test runs out of the debug log
	logger.Reset()
	logger.InitWriter(io.Discard)

	plain := lipgloss.NewStyle()
	SetStyles(Palette{
		Title:          plain,
		Help:           plain,
		Error:          plain,
		Primary:        lipgloss.Color("#ff0000"),
		Secondary:      lipgloss.Color("#00ff00"),
		Text:           lipgloss.Color("#ffffff"),
		Muted:          lipgloss.Color("#888888"),
		Inverse:        lipgloss.Color("#000000"),
		Warning:        lipgloss.Color("#ffff00"),
		InputWidth:     50,
		InputCharLimit: 256,
		Width:          60,
	})

	code := m.Run()

	logger.Reset()
	os.Exit(code)
}

func key(s string) tea.KeyPressMsg {
	switch s {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "tab":
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case "left":
		return tea.KeyPressMsg{Code: tea.KeyLeft}
	case "right":
		return tea.KeyPressMsg{Code: tea.KeyRight}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "backspace":
		return tea.KeyPressMsg{Code: tea.KeyBackspace}
	default:
		return tea.KeyPressMsg{Code: rune(s[0]), Text: s}
	}
}

func typeInto(s ModalState, text string) ModalState {
	for _, r := range text {
		s, _ = s.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	return s
}
