// Text selection in the preview pane.
//
// Coordinates are relative to the preview body: (0,0) is the first visible
// cell under the toolbar. Columns are terminal cells, not bytes, so wide
// and combining characters select the way they are drawn. Rendered lines
// carry ANSI styling, which is stripped before any text is extracted.

package ui

import (
	"image/color"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/charmbracelet/x/ansi"
	"github.com/rivo/uniseg"

	"github.com/docdraft/docdraft/internal/clipboard"
	"github.com/docdraft/docdraft/internal/logger"
)

// ClipboardErrorMsg is sent when clipboard operations fail
type ClipboardErrorMsg struct {
	Error error
}

// SelectionCopiedMsg is sent after selected text reaches the clipboard
type SelectionCopiedMsg struct {
	Text string
}

const (
	doubleClickThreshold = 500 * time.Millisecond
	clickTolerance       = 2 // cells
)

// textSelection tracks a mouse selection over rendered lines
type textSelection struct {
	StartCol, StartLine int
	EndCol, EndLine     int
	Active              bool // drag in progress
	FlashFrame          int  // >= 0 while the copy flash is showing

	lastClickTime time.Time
	lastClickX    int
	lastClickY    int
	clickCount    int
}

func newTextSelection() textSelection {
	return textSelection{StartCol: -1, StartLine: -1, EndCol: -1, EndLine: -1, FlashFrame: -1}
}

// Start begins a selection at the given cell
func (s *textSelection) Start(col, line int) {
	s.StartCol, s.StartLine = col, line
	s.EndCol, s.EndLine = col, line
	s.Active = true
}

// Extend moves the end of a selection during a drag
func (s *textSelection) Extend(col, line int) {
	if !s.Active {
		return
	}
	s.EndCol, s.EndLine = col, line
}

// Stop ends the drag but keeps the selection visible
func (s *textSelection) Stop() {
	s.Active = false
}

// Clear drops the selection entirely
func (s *textSelection) Clear() {
	*s = textSelection{
		StartCol: -1, StartLine: -1, EndCol: -1, EndLine: -1,
		FlashFrame:    -1,
		lastClickTime: s.lastClickTime,
		lastClickX:    s.lastClickX,
		lastClickY:    s.lastClickY,
		clickCount:    s.clickCount,
	}
}

// HasSelection reports whether a non-empty range is selected
func (s *textSelection) HasSelection() bool {
	return s.StartCol >= 0 && s.StartLine >= 0 &&
		(s.EndCol != s.StartCol || s.EndLine != s.StartLine)
}

// registerClick counts consecutive clicks at roughly the same cell
func (s *textSelection) registerClick(x, y int, now time.Time) int {
	if now.Sub(s.lastClickTime) <= doubleClickThreshold &&
		abs(x-s.lastClickX) <= clickTolerance &&
		abs(y-s.lastClickY) <= clickTolerance {
		s.clickCount++
	} else {
		s.clickCount = 1
	}
	s.lastClickTime = now
	s.lastClickX = x
	s.lastClickY = y
	return s.clickCount
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// SelectWord selects the word under the given cell
func (s *textSelection) SelectWord(lines []string, col, line int) {
	if line < 0 || line >= len(lines) || col < 0 {
		return
	}

	plain := ansi.Strip(lines[line])
	if col >= ansi.StringWidth(plain) {
		return
	}

	start, end := 0, -1
	pos := 0
	gr := uniseg.NewGraphemes(plain)
	for gr.Next() {
		next := pos + gr.Width()
		if gr.IsWordBoundary() {
			if next <= col {
				start = next
			} else if end < 0 {
				end = next
			}
		}
		pos = next
	}
	if end < 0 {
		end = pos
	}

	s.StartCol, s.StartLine = start, line
	s.EndCol, s.EndLine = end, line
	s.Active = false
}

// SelectParagraph selects the run of non-blank lines around line
func (s *textSelection) SelectParagraph(lines []string, line int) {
	if line < 0 || line >= len(lines) {
		return
	}

	startLine, endLine := line, line
	for startLine > 0 && strings.TrimSpace(ansi.Strip(lines[startLine-1])) != "" {
		startLine--
	}
	for endLine < len(lines)-1 && strings.TrimSpace(ansi.Strip(lines[endLine+1])) != "" {
		endLine++
	}

	s.StartCol, s.StartLine = 0, startLine
	s.EndCol, s.EndLine = ansi.StringWidth(ansi.Strip(lines[endLine])), endLine
	s.Active = false
}

// area returns the selection with start before end in reading order
func (s *textSelection) area() (startCol, startLine, endCol, endLine int) {
	startCol, startLine = s.StartCol, s.StartLine
	endCol, endLine = s.EndCol, s.EndLine
	if startLine > endLine || (startLine == endLine && startCol > endCol) {
		startCol, endCol = endCol, startCol
		startLine, endLine = endLine, startLine
	}
	return
}

// Text extracts the selected text from rendered lines
func (s *textSelection) Text(lines []string) string {
	if !s.HasSelection() {
		return ""
	}

	startCol, startLine, endCol, endLine := s.area()

	var result strings.Builder
	for y := startLine; y <= endLine && y < len(lines); y++ {
		line := ansi.Strip(lines[y])
		width := ansi.StringWidth(line)

		lineStart, lineEnd := 0, width
		if y == startLine {
			lineStart = startCol
		}
		if y == endLine {
			lineEnd = min(endCol, width)
		}
		if lineStart < lineEnd {
			result.WriteString(ansi.Cut(line, lineStart, lineEnd))
		}
		if y < endLine {
			result.WriteString("\n")
		}
	}

	return strings.TrimSpace(result.String())
}

// copyText sends text to the terminal clipboard (OSC 52) and the native one
func copyText(text string) tea.Cmd {
	return tea.Batch(
		tea.SetClipboard(text),
		func() tea.Msg {
			if err := clipboard.WriteText(text); err != nil {
				logger.WithComponent("clipboard").Warn("native clipboard write failed", "error", err)
				return ClipboardErrorMsg{Error: err}
			}
			return SelectionCopiedMsg{Text: text}
		},
		SelectionFlashTick(),
	)
}

// Highlight paints the selection over a rendered view of the given size
func (s *textSelection) Highlight(view string, width, height int) string {
	if !s.HasSelection() || width <= 0 || height <= 0 {
		return view
	}

	area := uv.Rect(0, 0, width, height)
	scr := uv.NewScreenBuffer(area.Dx(), area.Dy())
	uv.NewStyledString(view).Draw(scr, area)

	startCol, startLine, endCol, endLine := s.area()

	var selBg, selFg color.Color
	if s.FlashFrame == 0 {
		selBg = TextSelectionFlashStyle.GetBackground()
		selFg = TextSelectionFlashStyle.GetForeground()
	} else {
		selBg = TextSelectionStyle.GetBackground()
		selFg = TextSelectionStyle.GetForeground()
	}

	for y := max(startLine, 0); y <= endLine && y < height; y++ {
		xStart, xEnd := 0, width
		if y == startLine {
			xStart = startCol
		}
		if y == endLine {
			xEnd = endCol
		}

		for x := max(xStart, 0); x < xEnd && x < width; x++ {
			cell := scr.CellAt(x, y)
			if cell != nil {
				cell = cell.Clone()
				cell.Style.Bg = selBg
				cell.Style.Fg = selFg
				scr.SetCell(x, y, cell)
			}
		}
	}

	return scr.Render()
}
