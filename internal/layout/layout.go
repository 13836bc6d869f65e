// Package layout owns the three-pane arrangement: navigation on the left,
// conversation in the middle, preview on the right. Widths are tracked as a
// percentage of the container so terminal columns and pixels share the same
// rules.
package layout

const (
	// DefaultPreviewWidthPercent is the preview width before the user resizes it.
	DefaultPreviewWidthPercent = 45.0
	// MinPreviewWidthPercent and MaxPreviewWidthPercent bound drag resizing.
	MinPreviewWidthPercent = 20.0
	MaxPreviewWidthPercent = 80.0

	// NarrowThreshold is the viewport width, in logical pixels, below which
	// the panes become overlays.
	NarrowThreshold = 768
	// PixelsPerColumn converts terminal columns to logical pixels.
	PixelsPerColumn = 8

	// DefaultNavColumns is the width of the navigation pane on wide viewports.
	DefaultNavColumns = 30
)

// State is a snapshot of the layout.
type State struct {
	NavVisible          bool
	PreviewVisible      bool
	PreviewWidthPercent float64
	Resizing            bool
	FullscreenPreview   bool
	NarrowViewport      bool
}

// Controller applies layout intents. It is not safe for concurrent use; the
// UI event loop is its only caller.
type Controller struct {
	state State
}

// New returns a controller with both panes visible at the default width.
func New() *Controller {
	return NewWithWidth(DefaultPreviewWidthPercent)
}

// NewWithWidth returns a controller with the given initial preview width.
// Values outside [20,80] fall back to the default.
func NewWithWidth(percent float64) *Controller {
	if percent < MinPreviewWidthPercent || percent > MaxPreviewWidthPercent {
		percent = DefaultPreviewWidthPercent
	}
	return &Controller{state: State{
		NavVisible:          true,
		PreviewVisible:      true,
		PreviewWidthPercent: percent,
	}}
}

// State returns the current layout.
func (c *Controller) State() State {
	return c.state
}

// SetViewportPixels updates the narrow flag from a width in logical pixels.
func (c *Controller) SetViewportPixels(px int) {
	c.state.NarrowViewport = px < NarrowThreshold
}

// SetViewportColumns updates the narrow flag from a terminal width.
func (c *Controller) SetViewportColumns(cols int) {
	c.SetViewportPixels(cols * PixelsPerColumn)
}

// ResizeEnabled reports whether the resize handle is interactive.
func (c *Controller) ResizeEnabled() bool {
	return c.state.PreviewVisible && !c.state.FullscreenPreview && !c.state.NarrowViewport
}

// BeginResize starts a drag. It is refused while the handle is disabled.
func (c *Controller) BeginResize() bool {
	if !c.ResizeEnabled() {
		return false
	}
	c.state.Resizing = true
	return true
}

// Move updates the preview width from a pointer position. The width is the
// distance from the pointer to the container's right edge as a percentage
// of the container width. Positions that would leave [20,80] are ignored so
// the last valid width is kept.
func (c *Controller) Move(pointerX, containerRight, containerWidth float64) bool {
	if !c.state.Resizing || containerWidth <= 0 {
		return false
	}
	percent := (containerRight - pointerX) * 100 / containerWidth
	if percent < MinPreviewWidthPercent || percent > MaxPreviewWidthPercent {
		return false
	}
	c.state.PreviewWidthPercent = percent
	return true
}

// Nudge changes the preview width by delta percentage points, the keyboard
// counterpart of a drag. Like Move, it is ignored while the handle is
// disabled or when the result would leave [20,80].
func (c *Controller) Nudge(delta float64) bool {
	if !c.ResizeEnabled() {
		return false
	}
	percent := c.state.PreviewWidthPercent + delta
	if percent < MinPreviewWidthPercent || percent > MaxPreviewWidthPercent {
		return false
	}
	c.state.PreviewWidthPercent = percent
	return true
}

// EndResize stops any drag in progress.
func (c *Controller) EndResize() {
	c.state.Resizing = false
}

// ToggleNav shows or hides the navigation pane. On a narrow viewport only
// one overlay is open at a time, so showing navigation closes the preview.
func (c *Controller) ToggleNav() {
	c.state.NavVisible = !c.state.NavVisible
	if c.state.NavVisible && c.state.NarrowViewport {
		c.ClosePreview()
	}
}

// CloseNavIfNarrow hides the navigation overlay on narrow viewports.
func (c *Controller) CloseNavIfNarrow() {
	if c.state.NarrowViewport {
		c.state.NavVisible = false
	}
}

// TogglePreview shows or hides the preview. Hiding it also leaves fullscreen
// and ends any drag.
func (c *Controller) TogglePreview() {
	if c.state.PreviewVisible {
		c.ClosePreview()
		return
	}
	c.ShowPreview()
}

// ShowPreview makes the preview visible. On a narrow viewport it replaces
// the navigation overlay.
func (c *Controller) ShowPreview() {
	c.state.PreviewVisible = true
	if c.state.NarrowViewport {
		c.state.NavVisible = false
	}
}

// ClosePreview hides the preview.
func (c *Controller) ClosePreview() {
	c.state.PreviewVisible = false
	c.state.FullscreenPreview = false
	c.state.Resizing = false
}

// ToggleFullscreen switches the preview between its pane and the whole
// screen. It does nothing while the preview is hidden.
func (c *Controller) ToggleFullscreen() {
	if !c.state.PreviewVisible {
		return
	}
	c.state.FullscreenPreview = !c.state.FullscreenPreview
	c.state.Resizing = false
}

// DismissOverlays closes both overlays, as tapping the backdrop does on a
// narrow viewport.
func (c *Controller) DismissOverlays() {
	if !c.state.NarrowViewport {
		return
	}
	c.state.NavVisible = false
	c.state.PreviewVisible = false
	c.state.FullscreenPreview = false
	c.state.Resizing = false
}

// Overlay reports whether a pane currently covers the conversation on a
// narrow viewport.
func (c *Controller) Overlay() bool {
	return c.state.NarrowViewport && (c.state.NavVisible || c.state.PreviewVisible)
}

// Columns is the width of each pane for a given total width. A zero width
// means the pane is not drawn.
type Columns struct {
	Nav     int
	Chat    int
	Preview int
}

// Columns splits total terminal columns between the panes.
//
// On a narrow viewport a visible overlay takes the whole width, preview
// first. Fullscreen gives the preview everything. Otherwise the navigation
// pane has a fixed width and the remainder is split by PreviewWidthPercent,
// measured against the full container as the drag handle is.
func (c *Controller) Columns(total int) Columns {
	s := c.state
	if total <= 0 {
		return Columns{}
	}

	if s.PreviewVisible && s.FullscreenPreview {
		return Columns{Preview: total}
	}

	if s.NarrowViewport {
		switch {
		case s.PreviewVisible:
			return Columns{Preview: total}
		case s.NavVisible:
			return Columns{Nav: total}
		default:
			return Columns{Chat: total}
		}
	}

	var cols Columns
	remaining := total
	if s.NavVisible {
		cols.Nav = min(DefaultNavColumns, total/3)
		remaining -= cols.Nav
	}
	if s.PreviewVisible {
		cols.Preview = int(float64(total) * s.PreviewWidthPercent / 100)
		// Keep at least a sliver of conversation visible.
		if cols.Preview > remaining-10 {
			cols.Preview = max(remaining-10, 0)
		}
		remaining -= cols.Preview
	}
	cols.Chat = remaining
	return cols
}
