package ui

import (
	"strings"
	"testing"
	"time"
)

func TestTextSelection_StartExtendStop(t *testing.T) {
	s := newTextSelection()
	if s.HasSelection() {
		t.Fatal("new selection should be empty")
	}

	s.Start(2, 0)
	if s.HasSelection() {
		t.Error("a click without a drag is not a selection")
	}
	s.Extend(5, 1)
	if !s.HasSelection() {
		t.Error("expected a selection after drag")
	}
	s.Stop()
	if s.Active {
		t.Error("Stop should end the drag")
	}
	s.Extend(9, 9)
	if s.EndCol != 5 || s.EndLine != 1 {
		t.Error("Extend after Stop should be ignored")
	}

	s.Clear()
	if s.HasSelection() || s.FlashFrame != -1 {
		t.Error("Clear should reset the selection")
	}
}

func TestTextSelection_Text(t *testing.T) {
	lines := []string{
		"Dear Hiring Manager,",
		"",
		"\x1b[1mI am writing\x1b[0m to apply.",
	}

	tests := []struct {
		name           string
		sc, sl, ec, el int
		want           string
	}{
		{"single word", 5, 0, 11, 0, "Hiring"},
		{"reversed", 11, 0, 5, 0, "Hiring"},
		{"strips ansi", 0, 2, 12, 2, "I am writing"},
		{"multi line", 12, 0, 4, 2, "Manager,\n\nI am"},
		{"past end of line", 12, 0, 99, 0, "Manager,"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTextSelection()
			s.Start(tt.sc, tt.sl)
			s.Extend(tt.ec, tt.el)
			if got := s.Text(lines); got != tt.want {
				t.Errorf("Text() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTextSelection_TextWideCharacters(t *testing.T) {
	// Thai combining marks take no cell of their own.
	lines := []string{"สวัสดี world"}
	s := newTextSelection()
	s.Start(0, 0)
	s.Extend(4, 0)
	if got := s.Text(lines); got != "สวัสดี" {
		t.Errorf("Text() = %q, want สวัสดี", got)
	}
}

func TestTextSelection_SelectWord(t *testing.T) {
	lines := []string{"Subject: Project update"}

	tests := []struct {
		col  int
		want string
	}{
		{0, "Subject"},
		{3, "Subject"},
		{10, "Project"},
		{20, "update"},
	}
	for _, tt := range tests {
		s := newTextSelection()
		s.SelectWord(lines, tt.col, 0)
		if got := s.Text(lines); got != tt.want {
			t.Errorf("SelectWord(col %d) = %q, want %q", tt.col, got, tt.want)
		}
	}

	s := newTextSelection()
	s.SelectWord(lines, 50, 0)
	if s.HasSelection() {
		t.Error("clicking past the end of the line should not select")
	}
}

func TestTextSelection_SelectParagraph(t *testing.T) {
	lines := []string{
		"Title",
		"",
		"First line of body",
		"second line of body",
		"",
		"Closing",
	}
	s := newTextSelection()
	s.SelectParagraph(lines, 3)

	want := "First line of body\nsecond line of body"
	if got := s.Text(lines); got != want {
		t.Errorf("SelectParagraph = %q, want %q", got, want)
	}
}

func TestTextSelection_RegisterClick(t *testing.T) {
	s := newTextSelection()
	now := time.Now()

	if n := s.registerClick(4, 2, now); n != 1 {
		t.Errorf("first click = %d, want 1", n)
	}
	if n := s.registerClick(5, 2, now.Add(100*time.Millisecond)); n != 2 {
		t.Errorf("double click = %d, want 2", n)
	}
	if n := s.registerClick(5, 2, now.Add(200*time.Millisecond)); n != 3 {
		t.Errorf("triple click = %d, want 3", n)
	}
	if n := s.registerClick(20, 2, now.Add(300*time.Millisecond)); n != 1 {
		t.Errorf("click elsewhere = %d, want 1", n)
	}
	if n := s.registerClick(20, 2, now.Add(2*time.Second)); n != 1 {
		t.Errorf("slow click = %d, want 1", n)
	}
}

func TestTextSelection_Highlight(t *testing.T) {
	view := "hello world\nsecond line"

	s := newTextSelection()
	if got := s.Highlight(view, 20, 2); got != view {
		t.Error("Highlight without a selection should return the view unchanged")
	}

	s.Start(0, 0)
	s.Extend(5, 0)
	got := s.Highlight(view, 20, 2)
	if !strings.Contains(stripANSI(got), "hello world") {
		t.Errorf("highlighted view lost its text: %q", stripANSI(got))
	}
	if got == view {
		t.Error("expected styling to be applied to the selection")
	}
}
