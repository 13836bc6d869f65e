package ui

import (
	"sync"

	"github.com/docdraft/docdraft/internal/layout"
	"github.com/docdraft/docdraft/internal/logger"
)

// ViewContext holds centralized layout calculations and provides debug logging.
// All size calculations should go through this to avoid duplication.
type ViewContext struct {
	// Terminal dimensions
	TerminalWidth  int
	TerminalHeight int

	// Calculated dimensions
	HeaderHeight  int
	FooterHeight  int
	ContentHeight int
	NavWidth      int
	ChatWidth     int
	PreviewWidth  int

	// PreviewLeft is the column where the preview pane (and its resize
	// handle) starts. It is -1 when the preview is hidden.
	PreviewLeft int

	mu sync.Mutex
}

// Global view context instance
var ctx *ViewContext
var ctxOnce sync.Once

// GetViewContext returns the singleton ViewContext instance
func GetViewContext() *ViewContext {
	ctxOnce.Do(func() {
		ctx = &ViewContext{
			HeaderHeight: HeaderHeight,
			FooterHeight: FooterHeight,
			PreviewLeft:  -1,
		}
		logger.WithComponent("ui").Debug("ViewContext initialized")
	})
	return ctx
}

// Log writes a debug message to the log file using slog structured logging.
func (v *ViewContext) Log(msg string, args ...interface{}) {
	logger.WithComponent("ui").Debug(msg, args...)
}

// UpdateTerminalSize records new terminal dimensions and recomputes pane
// widths from the layout controller. The controller is told the viewport
// size first so the narrow breakpoint is evaluated on the new width.
func (v *ViewContext) UpdateTerminalSize(width, height int, lay *layout.Controller) {
	v.mu.Lock()
	defer v.mu.Unlock()

	// Validate dimensions to prevent negative layout values
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}
	if height < MinTerminalHeight {
		height = MinTerminalHeight
	}

	v.TerminalWidth = width
	v.TerminalHeight = height
	v.HeaderHeight = HeaderHeight
	v.FooterHeight = FooterHeight
	v.ContentHeight = height - v.HeaderHeight - v.FooterHeight

	if lay != nil {
		lay.SetViewportColumns(width)
	}
	v.applyColumns(lay)
}

// Relayout recomputes pane widths after a layout intent without a resize.
func (v *ViewContext) Relayout(lay *layout.Controller) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.applyColumns(lay)
}

func (v *ViewContext) applyColumns(lay *layout.Controller) {
	cols := layout.Columns{Chat: v.TerminalWidth}
	if lay != nil {
		cols = lay.Columns(v.TerminalWidth)
	}
	v.NavWidth = cols.Nav
	v.ChatWidth = cols.Chat
	v.PreviewWidth = cols.Preview
	v.PreviewLeft = -1
	if cols.Preview > 0 {
		v.PreviewLeft = cols.Nav + cols.Chat
	}

	logger.WithComponent("ui").Debug("Layout updated",
		"width", v.TerminalWidth,
		"height", v.TerminalHeight,
		"contentHeight", v.ContentHeight,
		"navWidth", v.NavWidth,
		"chatWidth", v.ChatWidth,
		"previewWidth", v.PreviewWidth,
	)
}

// OnResizeHandle reports whether column x falls on the preview's drag handle.
func (v *ViewContext) OnResizeHandle(x int) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.PreviewLeft < 0 || v.NavWidth+v.ChatWidth == 0 {
		return false
	}
	return x >= v.PreviewLeft && x < v.PreviewLeft+HandleWidth
}

// InContent reports whether row y is between the header and footer.
func (v *ViewContext) InContent(y int) bool {
	return y >= v.HeaderHeight && y < v.HeaderHeight+v.ContentHeight
}

// InnerWidth returns the usable width inside a panel with borders
func (v *ViewContext) InnerWidth(panelWidth int) int {
	return panelWidth - BorderSize
}

// InnerHeight returns the usable height inside a panel with borders
func (v *ViewContext) InnerHeight(panelHeight int) int {
	return panelHeight - BorderSize
}
