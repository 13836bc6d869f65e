package app

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/docdraft/docdraft/internal/ui"
	"github.com/docdraft/docdraft/internal/ui/modals"
)

func TestMouse_ClickHistoryOpensChat(t *testing.T) {
	m := testModelWithSize(t, testOptions{store: seededStore()}, 200, 50)
	want := m.sidebar.Sessions()[1].ID

	// border + title + search, then two rows per entry
	row := 1 + ui.TitleHeight + ui.SearchHeight + 2
	m.Update(mouseClick(5, ui.HeaderHeight+row))

	if got := m.ws.State().ActiveID; got != want {
		t.Errorf("ActiveID = %d, want %d", got, want)
	}
	if m.Focus() != ui.PaneNav {
		t.Errorf("focus = %v, want nav", m.Focus())
	}
}

func TestMouse_ClickFocusesPane(t *testing.T) {
	m := testModelWithSize(t, testOptions{}, 200, 50)
	ctx := ui.GetViewContext()

	m.Update(mouseClick(ctx.PreviewLeft+10, ui.HeaderHeight+10))
	if m.Focus() != ui.PanePreview {
		t.Errorf("focus = %v, want preview", m.Focus())
	}
	m.Update(mouseClick(ctx.NavWidth+5, ui.HeaderHeight+5))
	if m.Focus() != ui.PaneChat {
		t.Errorf("focus = %v, want chat", m.Focus())
	}
}

func TestMouse_ClickOutsideContentIgnored(t *testing.T) {
	m := testModelWithSize(t, testOptions{store: seededStore()}, 200, 50)
	m.Update(mouseClick(5, 0))

	if m.Focus() != ui.PaneChat || m.ws.State().ActiveID != 0 {
		t.Error("header clicks should do nothing")
	}
}

func TestMouse_DragResize(t *testing.T) {
	tests := []struct {
		name    string
		dragTo  int
		percent float64
	}{
		{"half", 100, 50},
		{"lower bound", 160, 20},
		{"upper bound", 40, 80},
		{"too far right keeps last", 190, 45},
		{"too far left keeps last", 10, 45},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := testModelWithSize(t, testOptions{}, 200, 50)
			ctx := ui.GetViewContext()

			m.Update(mouseClick(ctx.PreviewLeft, ui.HeaderHeight+5))
			if !m.ws.Layout().State().Resizing {
				t.Fatal("click on the handle should start a resize")
			}

			m.Update(mouseMotion(tt.dragTo, ui.HeaderHeight+5))
			m.Update(mouseRelease(tt.dragTo, ui.HeaderHeight+5))

			st := m.ws.Layout().State()
			if st.Resizing {
				t.Error("release should end the resize")
			}
			if st.PreviewWidthPercent != tt.percent {
				t.Errorf("PreviewWidthPercent = %v, want %v", st.PreviewWidthPercent, tt.percent)
			}
		})
	}
}

func TestMouse_ResizeDisabledWhenFullscreen(t *testing.T) {
	m := testModelWithSize(t, testOptions{}, 200, 50)
	press(m, "ctrl+f")

	m.Update(mouseClick(0, ui.HeaderHeight+5))
	if m.ws.Layout().State().Resizing {
		t.Error("the handle is disabled in fullscreen")
	}
}

func TestMouse_ToolbarEdit(t *testing.T) {
	m := testModelWithSize(t, testOptions{}, 200, 50)
	sendPrompt(m, "memo")
	m.render() // toolbar hit boxes are recorded while drawing
	ctx := ui.GetViewContext()

	x := -1
	for px := 0; px < ctx.PreviewWidth; px++ {
		if m.preview.ActionAt(px, 1) == ui.ToolbarEdit {
			x = px
			break
		}
	}
	if x < 0 {
		t.Fatal("edit button not found")
	}

	m.Update(mouseClick(ctx.PreviewLeft+x, ui.HeaderHeight+1))
	if !m.ws.State().Editing {
		t.Error("edit button should enter edit mode")
	}
}

func TestMouse_ToolbarClose(t *testing.T) {
	m := testModelWithSize(t, testOptions{}, 200, 50)
	m.render()
	ctx := ui.GetViewContext()

	x := -1
	for px := 0; px < ctx.PreviewWidth; px++ {
		if m.preview.ActionAt(px, 1) == ui.ToolbarClose {
			x = px
			break
		}
	}
	if x < 0 {
		t.Fatal("close button not found")
	}

	m.Update(mouseClick(ctx.PreviewLeft+x, ui.HeaderHeight+1))
	if m.ws.Layout().State().PreviewVisible {
		t.Error("close button should hide the preview")
	}
	if m.Focus() == ui.PanePreview {
		t.Error("focus should leave the hidden preview")
	}
}

func TestMouse_SelectPreviewText(t *testing.T) {
	p := testModelWithSize(t, testOptions{}, 200, 50)
	sendPrompt(p, "memo")
	p.render()
	ctx := ui.GetViewContext()

	// The body starts two rows below the pane top and two columns in; the
	// heading sits under its top margin.
	y := ui.HeaderHeight + 3
	p.Update(mouseClick(ctx.PreviewLeft+2, y))
	p.Update(mouseMotion(ctx.PreviewLeft+12, y))
	_, cmd := p.Update(mouseRelease(ctx.PreviewLeft+12, y))

	if !p.preview.HasSelection() {
		t.Fatal("drag should select text")
	}
	if cmd == nil {
		t.Error("release should copy the selection")
	}

	press(p, "esc")
	if p.preview.HasSelection() {
		t.Error("Esc should clear the selection")
	}
}

func TestMouse_IgnoredUnderModal(t *testing.T) {
	m := testModelWithSize(t, testOptions{store: seededStore()}, 200, 50)
	m.modal.Show(modals.NewExportState("out.doc"))

	row := 1 + ui.TitleHeight + ui.SearchHeight
	m.Update(mouseClick(5, ui.HeaderHeight+row))
	if m.ws.State().ActiveID != 0 {
		t.Error("clicks must not reach panes behind a modal")
	}
	if _, cmd := m.Update(tea.MouseWheelMsg{X: 50, Y: 10, Button: tea.MouseWheelDown}); cmd != nil {
		t.Error("wheel should be ignored under a modal")
	}
}
