package ui

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// StopwatchTickMsg is sent to update the animated waiting display
type StopwatchTickMsg time.Time

// SelectionFlashTickMsg is sent to end the copy flash on a text selection
type SelectionFlashTickMsg time.Time

// spinnerFrames are the characters used for the waiting animation
var spinnerFrames = []string{"·", "✺", "✹", "✸", "✷", "✶", "✵", "✴", "✳", "✲", "✱", "✧", "✦", "·"}

// StopwatchTick returns a command that sends a tick message after a delay
func StopwatchTick() tea.Cmd {
	return tea.Tick(150*time.Millisecond, func(t time.Time) tea.Msg {
		return StopwatchTickMsg(t)
	})
}

// SelectionFlashTick returns a command that sends a selection flash tick
func SelectionFlashTick() tea.Cmd {
	return tea.Tick(150*time.Millisecond, func(t time.Time) tea.Msg {
		return SelectionFlashTickMsg(t)
	})
}

// renderSpinner renders the waiting line: spinner, verb and elapsed time.
// Format: ✺ Drafting... (3s)
func renderSpinner(verb string, frameIdx int, elapsed time.Duration) string {
	frame := spinnerFrames[frameIdx%len(spinnerFrames)]

	spinnerStyle := lipgloss.NewStyle().
		Foreground(ColorUser).
		Bold(true)

	verbStyle := lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Italic(true)

	metaStyle := lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	return spinnerStyle.Render(frame) + " " + verbStyle.Render(verb+"...") + " " + metaStyle.Render("("+formatElapsed(elapsed)+")")
}

// formatElapsed formats a duration for display (e.g., "12s", "1m30s")
func formatElapsed(d time.Duration) string {
	secs := int(d.Seconds())
	if secs < 60 {
		return fmt.Sprintf("%ds", secs)
	}
	return fmt.Sprintf("%dm%ds", secs/60, secs%60)
}
