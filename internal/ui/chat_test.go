package ui

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/docdraft/docdraft/internal/i18n"
	"github.com/docdraft/docdraft/internal/session"
)

func TestNewChat(t *testing.T) {
	chat := NewChat()

	if chat.IsFocused() {
		t.Error("Should not be focused initially")
	}
	if chat.IsWaiting() {
		t.Error("Should not be waiting initially")
	}
	if chat.input.Placeholder != i18n.For(i18n.English).AskPlaceholder {
		t.Errorf("placeholder = %q", chat.input.Placeholder)
	}
}

func TestChat_WelcomeMessage(t *testing.T) {
	chat := NewChat()
	chat.SetSize(60, 20)

	view := stripANSI(chat.View())
	if !strings.Contains(view, "Ask me to generate a document") {
		t.Errorf("empty chat should show the welcome line, got %q", view)
	}
}

func TestChat_Transcript(t *testing.T) {
	chat := NewChat()
	chat.SetSize(80, 24)
	chat.SetTranscript([]session.Message{
		session.UserMessage("Write a poem about the sea"),
		session.AssistantMessage("I've drafted the document for you in the preview panel."),
	})

	view := stripANSI(chat.View())
	for _, want := range []string{"You:", "Write a poem about the sea", "Assistant:", "drafted the document"} {
		if !strings.Contains(view, want) {
			t.Errorf("view should contain %q", want)
		}
	}
	if strings.Contains(view, "Ask me to generate") {
		t.Error("welcome line should be hidden once there are messages")
	}
}

func TestChat_ThaiLabels(t *testing.T) {
	chat := NewChat()
	chat.SetSize(80, 24)
	chat.SetLabels(i18n.For(i18n.Thai))
	chat.SetTranscript([]session.Message{session.UserMessage("สวัสดี")})

	view := stripANSI(chat.View())
	if !strings.Contains(view, "คุณ:") {
		t.Error("role label should follow the language")
	}
}

func TestChat_Waiting(t *testing.T) {
	chat := NewChat()
	chat.SetSize(80, 24)

	chat.SetWaiting(true, "Drafting")
	if !chat.IsWaiting() {
		t.Fatal("expected waiting")
	}
	if !strings.Contains(stripANSI(chat.View()), "Drafting...") {
		t.Error("waiting indicator should show the verb")
	}

	_, cmd := chat.Update(StopwatchTickMsg(time.Now()))
	if cmd == nil {
		t.Error("tick while waiting should schedule another tick")
	}
	if chat.spinnerFrame != 1 {
		t.Errorf("spinnerFrame = %d, want 1", chat.spinnerFrame)
	}

	chat.SetWaiting(false, "")
	_, cmd = chat.Update(StopwatchTickMsg(time.Now()))
	if cmd != nil {
		t.Error("tick after waiting should stop")
	}
}

func TestChat_Input(t *testing.T) {
	chat := NewChat()
	chat.SetSize(80, 24)
	chat.SetFocused(true)

	for _, ch := range "hi" {
		chat.Update(tea.KeyPressMsg{Code: ch, Text: string(ch)})
	}
	if chat.Input() != "hi" {
		t.Errorf("Input() = %q, want hi", chat.Input())
	}

	chat.Update(tea.KeyPressMsg{Code: tea.KeyEnter, Mod: tea.ModShift})
	chat.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	if chat.Input() != "hi\nx" {
		t.Errorf("shift+enter should insert a newline, got %q", chat.Input())
	}

	chat.ClearInput()
	if chat.Input() != "" {
		t.Error("ClearInput should empty the box")
	}

	chat.SetInput("template")
	if chat.Input() != "template" {
		t.Errorf("SetInput() not applied, got %q", chat.Input())
	}
}

func TestChat_BlurredIgnoresTyping(t *testing.T) {
	chat := NewChat()
	chat.Update(tea.KeyPressMsg{Code: 'a', Text: "a"})
	if chat.Input() != "" {
		t.Error("blurred chat should not accept input")
	}
}

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0s"},
		{12 * time.Second, "12s"},
		{90 * time.Second, "1m30s"},
	}
	for _, tt := range tests {
		if got := formatElapsed(tt.d); got != tt.want {
			t.Errorf("formatElapsed(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
