package ui

import (
	"regexp"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
)

// stripANSI removes ANSI escape codes from a string for testing
var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}

func TestNewHeader(t *testing.T) {
	header := NewHeader()

	if header == nil {
		t.Fatal("NewHeader() returned nil")
	}
	if header.sessionTitle != "" || header.username != "" {
		t.Error("Expected empty header initially")
	}
}

func TestHeader_View_NoSession(t *testing.T) {
	header := NewHeader()
	header.SetWidth(80)

	view := stripANSI(header.View())

	if !strings.Contains(view, "docdraft") {
		t.Errorf("Header should contain the app title, got: %q", view)
	}
	if runewidth.StringWidth(view) != 80 {
		t.Errorf("Header width = %d, want 80", runewidth.StringWidth(view))
	}
}

func TestHeader_View_WithStatus(t *testing.T) {
	header := NewHeader()
	header.SetWidth(120)
	header.SetSessionTitle("Business Proposal")
	header.SetLanguage("th")
	header.SetUser("somchai")

	view := stripANSI(header.View())

	for _, want := range []string{"Business Proposal", "TH", "@somchai"} {
		if !strings.Contains(view, want) {
			t.Errorf("Header should contain %q, got: %q", want, view)
		}
	}
}

func TestHeader_View_Busy(t *testing.T) {
	header := NewHeader()
	header.SetWidth(80)
	header.SetSessionTitle("Draft")

	if strings.Contains(stripANSI(header.View()), "●") {
		t.Error("idle header should not show the busy marker")
	}

	header.SetBusy(true)
	if !strings.Contains(stripANSI(header.View()), "● Draft") {
		t.Error("busy header should mark the session title")
	}
}

func TestHeader_View_TruncatesStatus(t *testing.T) {
	header := NewHeader()
	header.SetWidth(30)
	header.SetSessionTitle(strings.Repeat("long title ", 10))

	view := stripANSI(header.View())

	if !strings.HasPrefix(view, " docdraft") {
		t.Errorf("title should survive truncation, got %q", view)
	}
	if w := runewidth.StringWidth(view); w > 30 {
		t.Errorf("Header width = %d, should not exceed 30", w)
	}
}

func TestHeader_View_ThaiTitle(t *testing.T) {
	header := NewHeader()
	header.SetWidth(60)
	header.SetSessionTitle("ร่างจดหมาย")

	view := stripANSI(header.View())

	if !strings.Contains(view, "ร่างจดหมาย") {
		t.Errorf("combining marks should render with their base, got %q", view)
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		hex     string
		r, g, b int
	}{
		{"#DC2626", 0xDC, 0x26, 0x26},
		{"#000000", 0, 0, 0},
		{"bad", 0, 0, 0},
	}
	for _, tt := range tests {
		r, g, b := parseHexColor(tt.hex)
		if r != tt.r || g != tt.g || b != tt.b {
			t.Errorf("parseHexColor(%q) = %d,%d,%d", tt.hex, r, g, b)
		}
	}
}
