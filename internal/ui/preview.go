package ui

import (
	"strings"
	"time"

	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/docdraft/docdraft/internal/i18n"
	"github.com/docdraft/docdraft/internal/keys"
)

// ToolbarAction identifies a preview toolbar button
type ToolbarAction int

const (
	ToolbarNone ToolbarAction = iota
	ToolbarEdit
	ToolbarRefine
	ToolbarRegenerate
	ToolbarDownload
	ToolbarFullscreen
	ToolbarClose
)

// Pane-relative geometry. Column 0 is the resize handle, the panel border
// follows, and the toolbar is the first row inside the border.
const (
	previewBodyLeft = HandleWidth + 1
	previewToolbarY = 1
	previewBodyTop  = previewToolbarY + ToolbarHeight
	toolbarGap      = "  "
)

type toolbarButton struct {
	action     ToolbarAction
	start, end int // pane-relative columns, end exclusive
}

// Preview is the document pane: a resize handle, a toolbar and either the
// rendered document or the manual editor.
type Preview struct {
	viewport viewport.Model
	editor   textarea.Model
	labels   i18n.Labels
	width    int
	height   int
	focused  bool

	document string
	// Rendered markdown is cached per document and width
	rendered      string
	renderedDoc   string
	renderedWidth int

	editing    bool
	resizing   bool
	fullscreen bool

	busy         bool
	busyVerb     string
	busyStart    time.Time
	spinnerFrame int

	buttons   []toolbarButton
	selection textSelection
}

// NewPreview creates the preview pane
func NewPreview() *Preview {
	ed := textarea.New()
	ed.CharLimit = 0
	ed.ShowLineNumbers = false
	ed.Prompt = ""

	vp := viewport.New()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	p := &Preview{
		viewport:  vp,
		editor:    ed,
		selection: newTextSelection(),
	}
	p.SetLabels(i18n.For(i18n.English))
	return p
}

// SetSize sets the pane dimensions, handle column included
func (p *Preview) SetSize(width, height int) {
	p.width = width
	p.height = height

	ctx := GetViewContext()
	innerWidth := max(ctx.InnerWidth(width-HandleWidth), 1)
	bodyHeight := max(ctx.InnerHeight(height)-ToolbarHeight, 1)

	p.viewport.SetWidth(innerWidth)
	p.viewport.SetHeight(bodyHeight)
	p.editor.SetWidth(innerWidth)
	p.editor.SetHeight(max(bodyHeight-1, 1)) // one row for the edit banner

	p.selection.Clear()
	p.updateContent()
}

// SetFocused sets the focus state
func (p *Preview) SetFocused(focused bool) {
	p.focused = focused
	if focused && p.editing {
		p.editor.Focus()
	} else {
		p.editor.Blur()
	}
}

// IsFocused returns the focus state
func (p *Preview) IsFocused() bool {
	return p.focused
}

// SetLabels switches the language of the pane
func (p *Preview) SetLabels(labels i18n.Labels) {
	p.labels = labels
	p.editor.Placeholder = labels.EditPlaceholder
	p.updateContent()
}

// SetDocument replaces the displayed document. The editor keeps its own
// text while editing so a background result does not clobber typing.
func (p *Preview) SetDocument(doc string) {
	if doc != p.document {
		p.selection.Clear()
		p.viewport.GotoTop()
	}
	p.document = doc
	p.updateContent()
}

// Document returns the displayed document
func (p *Preview) Document() string {
	return p.document
}

// SetEditing switches between the rendered document and the editor
func (p *Preview) SetEditing(editing bool) {
	if editing && !p.editing {
		p.editor.SetValue(p.document)
		p.editor.MoveToBegin()
	}
	p.editing = editing
	p.selection.Clear()
	p.SetFocused(p.focused)
	p.updateContent()
}

// IsEditing reports whether the editor is shown
func (p *Preview) IsEditing() bool {
	return p.editing
}

// EditorValue returns the editor contents
func (p *Preview) EditorValue() string {
	return p.editor.Value()
}

// SetBusy shows or hides the progress line. verb names the work in flight.
func (p *Preview) SetBusy(busy bool, verb string) {
	if busy && !p.busy {
		p.busyStart = time.Now()
		p.spinnerFrame = 0
	}
	p.busy = busy
	p.busyVerb = verb
	p.updateContent()
}

// IsBusy reports whether the progress line is shown
func (p *Preview) IsBusy() bool {
	return p.busy
}

// Advance moves the spinner one frame
func (p *Preview) Advance() {
	if !p.busy {
		return
	}
	p.spinnerFrame++
	p.updateContent()
}

// SetResizing highlights the handle during a drag
func (p *Preview) SetResizing(resizing bool) {
	p.resizing = resizing
}

// SetFullscreen switches the fullscreen toolbar label
func (p *Preview) SetFullscreen(fullscreen bool) {
	p.fullscreen = fullscreen
}

// ActionAt returns the toolbar button under a pane-relative position
func (p *Preview) ActionAt(x, y int) ToolbarAction {
	if y != previewToolbarY {
		return ToolbarNone
	}
	for _, b := range p.buttons {
		if x >= b.start && x < b.end {
			return b.action
		}
	}
	return ToolbarNone
}

// bodyCell converts a pane-relative position to a cell in the visible body
func (p *Preview) bodyCell(x, y int) (col, line int, ok bool) {
	col, line = x-previewBodyLeft, y-previewBodyTop
	if col < 0 || line < 0 || col >= p.viewport.Width() || line >= p.viewport.Height() {
		return 0, 0, false
	}
	return col, line, true
}

func (p *Preview) visibleLines() []string {
	return strings.Split(p.viewport.View(), "\n")
}

// MouseDown starts a selection, or selects a word or paragraph on a double
// or triple click. It returns a copy command when a selection completes.
func (p *Preview) MouseDown(x, y int) tea.Cmd {
	if p.editing {
		return nil
	}
	col, line, ok := p.bodyCell(x, y)
	if !ok {
		p.selection.Clear()
		return nil
	}

	switch p.selection.registerClick(x, y, time.Now()) {
	case 2:
		p.selection.SelectWord(p.visibleLines(), col, line)
		return p.copySelection()
	case 3:
		p.selection.SelectParagraph(p.visibleLines(), line)
		return p.copySelection()
	}

	p.selection.Start(col, line)
	return nil
}

// MouseDrag extends a selection in progress
func (p *Preview) MouseDrag(x, y int) {
	if !p.selection.Active {
		return
	}
	col := min(max(x-previewBodyLeft, 0), p.viewport.Width())
	line := min(max(y-previewBodyTop, 0), p.viewport.Height()-1)
	p.selection.Extend(col, line)
}

// MouseUp finishes a drag and copies the selection
func (p *Preview) MouseUp() tea.Cmd {
	if !p.selection.Active {
		return nil
	}
	p.selection.Stop()
	return p.copySelection()
}

// HasSelection reports whether text is selected
func (p *Preview) HasSelection() bool {
	return p.selection.HasSelection()
}

// ClearSelection drops any selection
func (p *Preview) ClearSelection() {
	p.selection.Clear()
}

// Restyle re-renders the document with the current theme
func (p *Preview) Restyle() {
	p.renderedWidth = -1
	p.updateContent()
}

// SelectedText returns the selected text without styling
func (p *Preview) SelectedText() string {
	return p.selection.Text(p.visibleLines())
}

func (p *Preview) copySelection() tea.Cmd {
	text := p.SelectedText()
	if text == "" {
		return nil
	}
	p.selection.FlashFrame = 0
	return copyText(text)
}

func (p *Preview) renderDocument(width int) string {
	if p.document == p.renderedDoc && width == p.renderedWidth {
		return p.rendered
	}
	p.rendered = renderMarkdown(p.document, width)
	p.renderedDoc = p.document
	p.renderedWidth = width
	return p.rendered
}

func (p *Preview) updateContent() {
	if p.editing {
		return
	}

	wrapWidth := p.viewport.Width()
	if wrapWidth <= 0 {
		wrapWidth = DefaultWrapWidth
	}

	var sb strings.Builder
	if p.busy {
		sb.WriteString(renderSpinner(p.busyVerb, p.spinnerFrame, time.Since(p.busyStart)))
		sb.WriteString("\n\n")
	}

	if p.document == "" {
		if !p.busy {
			sb.WriteString(lipgloss.NewStyle().
				Foreground(ColorTextMuted).
				Italic(true).
				Render(wrapText(p.labels.NoDocument, wrapWidth)))
		}
	} else {
		sb.WriteString(p.renderDocument(wrapWidth))
	}

	p.viewport.SetContent(sb.String())
}

// Update handles messages
func (p *Preview) Update(msg tea.Msg) (*Preview, tea.Cmd) {
	switch msg := msg.(type) {
	case SelectionFlashTickMsg:
		if p.selection.FlashFrame >= 0 {
			p.selection.Clear()
		}
		return p, nil

	case tea.KeyPressMsg:
		if !p.focused {
			return p, nil
		}
		if p.editing {
			var cmd tea.Cmd
			p.editor, cmd = p.editor.Update(msg)
			return p, cmd
		}
		switch msg.String() {
		case keys.Up, keys.Down, keys.PgUp, keys.PgDown, keys.Home, keys.End, "j", "k":
			p.selection.Clear()
			var cmd tea.Cmd
			p.viewport, cmd = p.viewport.Update(msg)
			return p, cmd
		}
		return p, nil

	case tea.PasteMsg:
		if !p.focused || !p.editing {
			return p, nil
		}
		var cmd tea.Cmd
		p.editor, cmd = p.editor.Update(msg)
		return p, cmd

	case tea.MouseWheelMsg:
		p.selection.Clear()
		var cmd tea.Cmd
		if p.editing {
			p.editor, cmd = p.editor.Update(msg)
		} else {
			p.viewport, cmd = p.viewport.Update(msg)
		}
		return p, cmd
	}

	return p, nil
}

type toolbarLabel struct {
	action ToolbarAction
	label  string
}

func (p *Preview) toolbarLabels() []toolbarLabel {
	editLabel := p.labels.Edit
	if p.editing {
		editLabel = p.labels.Save
	}
	fullLabel := p.labels.FullScreen
	if p.fullscreen {
		fullLabel = p.labels.ExitFullScreen
	}
	return []toolbarLabel{
		{ToolbarEdit, editLabel},
		{ToolbarRefine, p.labels.AutoCorrect},
		{ToolbarRegenerate, p.labels.Regenerate},
		{ToolbarDownload, p.labels.Download},
		{ToolbarFullscreen, fullLabel},
		{ToolbarClose, "✕"},
	}
}

// renderToolbar draws the toolbar and records where each button landed
func (p *Preview) renderToolbar(innerWidth int) string {
	p.buttons = p.buttons[:0]

	title := PanelTitleStyle.Render(p.labels.PreviewTitle)
	var sb strings.Builder
	sb.WriteString(title)

	x := previewBodyLeft + ansi.StringWidth(title)
	limit := previewBodyLeft + innerWidth
	for _, b := range p.toolbarLabels() {
		w := ansi.StringWidth(b.label)
		start := x + len(toolbarGap)
		if start+w > limit {
			break
		}
		sb.WriteString(toolbarGap)
		sb.WriteString(PreviewButtonStyle.Render(b.label))
		p.buttons = append(p.buttons, toolbarButton{action: b.action, start: start, end: start + w})
		x = start + w
	}

	return PreviewToolbarStyle.Render(ansi.Truncate(sb.String(), innerWidth, ""))
}

// View renders the handle and the preview panel
func (p *Preview) View() string {
	if p.width <= HandleWidth {
		return ""
	}

	ctx := GetViewContext()
	panelWidth := p.width - HandleWidth
	innerWidth := ctx.InnerWidth(panelWidth)

	var body string
	if p.editing {
		banner := PreviewEditBannerStyle.Render(ansi.Truncate(p.labels.EditPlaceholder, innerWidth, "…"))
		body = lipgloss.JoinVertical(lipgloss.Left, banner, p.editor.View())
	} else {
		body = p.viewport.View()
		body = p.selection.Highlight(body, p.viewport.Width(), p.viewport.Height())
	}

	panelStyle := PanelStyle
	if p.focused {
		panelStyle = PanelFocusedStyle
	}
	panel := panelStyle.Width(panelWidth).Height(p.height).Render(
		lipgloss.JoinVertical(lipgloss.Left, p.renderToolbar(innerWidth), body))

	handleChar, handleStyle := "│", HandleStyle
	if p.resizing {
		handleChar, handleStyle = "┃", HandleActiveStyle
	}
	handle := handleStyle.Render(strings.TrimSuffix(strings.Repeat(handleChar+"\n", p.height), "\n"))

	return lipgloss.JoinHorizontal(lipgloss.Top, handle, panel)
}
