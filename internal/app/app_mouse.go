package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/docdraft/docdraft/internal/layout"
	"github.com/docdraft/docdraft/internal/logger"
	"github.com/docdraft/docdraft/internal/ui"
)

// paneAt returns the pane under screen column x
func (m *Model) paneAt(x int) ui.Pane {
	ctx := ui.GetViewContext()
	switch {
	case x < ctx.NavWidth:
		return ui.PaneNav
	case ctx.PreviewLeft >= 0 && x >= ctx.PreviewLeft:
		return ui.PanePreview
	default:
		return ui.PaneChat
	}
}

// handleMouseClick routes a press to the resize handle, the history list,
// the preview toolbar or the preview text
func (m *Model) handleMouseClick(msg tea.MouseClickMsg) tea.Cmd {
	mouse := msg.Mouse()
	if m.modal.IsVisible() || mouse.Button != tea.MouseLeft {
		return nil
	}
	ctx := ui.GetViewContext()
	if !ctx.InContent(mouse.Y) {
		return nil
	}

	if ctx.OnResizeHandle(mouse.X) {
		if m.ws.Layout().BeginResize() {
			logger.WithComponent("mouse").Debug("resize started", "x", mouse.X)
			m.preview.ClearSelection()
			m.relayout()
		}
		return nil
	}

	pane := m.paneAt(mouse.X)
	if pane != m.focus {
		m.setFocus(pane)
	}
	row := mouse.Y - ctx.HeaderHeight

	switch pane {
	case ui.PaneNav:
		if idx := m.sidebar.IndexAt(row); idx >= 0 && m.sidebar.SelectIndex(idx) {
			if sess := m.sidebar.SelectedSession(); sess != nil {
				m.openSession(sess.ID)
			}
		}
		return nil

	case ui.PanePreview:
		x := mouse.X - ctx.PreviewLeft
		if action := m.preview.ActionAt(x, row); action != ui.ToolbarNone {
			return m.runToolbarAction(action)
		}
		return m.preview.MouseDown(x, row)
	}
	return nil
}

// handleMouseMotion drags the resize handle or extends a preview selection
func (m *Model) handleMouseMotion(msg tea.MouseMotionMsg) tea.Cmd {
	mouse := msg.Mouse()
	ctx := ui.GetViewContext()
	lay := m.ws.Layout()

	if lay.State().Resizing {
		// The handle works in pixels so the [20,80] bounds match a pointer drag.
		px := float64(mouse.X * layout.PixelsPerColumn)
		right := float64(ctx.TerminalWidth * layout.PixelsPerColumn)
		if lay.Move(px, right, right) {
			m.relayout()
		}
		return nil
	}

	if ctx.PreviewLeft >= 0 {
		m.preview.MouseDrag(mouse.X-ctx.PreviewLeft, mouse.Y-ctx.HeaderHeight)
	}
	return nil
}

// handleMouseRelease ends a drag
func (m *Model) handleMouseRelease(msg tea.MouseReleaseMsg) tea.Cmd {
	lay := m.ws.Layout()
	if lay.State().Resizing {
		lay.EndResize()
		m.relayout()
		logger.WithComponent("mouse").Debug("resize finished", "percent", lay.State().PreviewWidthPercent)
		return nil
	}
	return m.preview.MouseUp()
}

// handleMouseWheel scrolls the pane under the pointer
func (m *Model) handleMouseWheel(msg tea.MouseWheelMsg) tea.Cmd {
	if m.modal.IsVisible() {
		return nil
	}
	var cmd tea.Cmd
	switch m.paneAt(msg.Mouse().X) {
	case ui.PaneChat:
		m.chat, cmd = m.chat.Update(msg)
	case ui.PanePreview:
		m.preview, cmd = m.preview.Update(msg)
	}
	return cmd
}

// runToolbarAction performs a preview toolbar button
func (m *Model) runToolbarAction(action ui.ToolbarAction) tea.Cmd {
	logger.WithComponent("mouse").Debug("toolbar action", "action", action)
	switch action {
	case ui.ToolbarEdit:
		return shortcutToggleEdit(m)
	case ui.ToolbarRefine:
		return shortcutRefine(m)
	case ui.ToolbarRegenerate:
		return shortcutRegenerate(m)
	case ui.ToolbarDownload:
		if !hasDocument(m) {
			return nil
		}
		return shortcutDownload(m)
	case ui.ToolbarFullscreen:
		return shortcutFullscreen(m)
	case ui.ToolbarClose:
		m.ws.Layout().ClosePreview()
		m.relayout()
	}
	return nil
}
