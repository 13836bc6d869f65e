package ui

import (
	"strings"
	"time"

	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/docdraft/docdraft/internal/i18n"
	"github.com/docdraft/docdraft/internal/keys"
	"github.com/docdraft/docdraft/internal/session"
)

// Chat is the conversation pane: the transcript above and the prompt box below.
type Chat struct {
	viewport viewport.Model
	input    textarea.Model
	width    int
	height   int
	focused  bool
	labels   i18n.Labels
	messages []session.Message

	waiting       bool      // a generation is in flight
	waitStartTime time.Time // when waiting started (for stopwatch)
	waitingVerb   string
	spinnerFrame  int
}

// NewChat creates a new chat panel
func NewChat() *Chat {
	ti := textarea.New()
	ti.CharLimit = 0
	ti.SetHeight(TextareaHeight)
	ti.ShowLineNumbers = false
	ti.Prompt = ""

	vp := viewport.New()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	c := &Chat{
		viewport: vp,
		input:    ti,
	}
	c.SetLabels(i18n.For(i18n.English))
	return c
}

// SetSize sets the chat panel dimensions
func (c *Chat) SetSize(width, height int) {
	c.width = width
	c.height = height

	ctx := GetViewContext()

	chatPanelHeight := height - InputTotalHeight
	innerWidth := ctx.InnerWidth(width)
	viewportHeight := max(ctx.InnerHeight(chatPanelHeight), 1)

	c.viewport.SetWidth(max(innerWidth, 1))
	c.viewport.SetHeight(viewportHeight)
	c.input.SetWidth(max(innerWidth-InputPaddingWidth, 1))

	c.updateContent()
}

// SetFocused sets the focus state
func (c *Chat) SetFocused(focused bool) {
	c.focused = focused
	if focused {
		c.input.Focus()
	} else {
		c.input.Blur()
	}
}

// IsFocused returns the focus state
func (c *Chat) IsFocused() bool {
	return c.focused
}

// SetLabels switches the language of the pane
func (c *Chat) SetLabels(labels i18n.Labels) {
	c.labels = labels
	c.input.Placeholder = labels.AskPlaceholder
	c.updateContent()
}

// SetTranscript replaces the displayed conversation
func (c *Chat) SetTranscript(messages []session.Message) {
	c.messages = messages
	c.updateContent()
}

// Input returns the prompt box contents
func (c *Chat) Input() string {
	return c.input.Value()
}

// SetInput replaces the prompt box contents
func (c *Chat) SetInput(value string) {
	c.input.SetValue(value)
	c.input.CursorEnd()
}

// ClearInput empties the prompt box
func (c *Chat) ClearInput() {
	c.input.Reset()
}

// SetWaiting shows or hides the waiting indicator. verb names the work
// being waited on ("Drafting", "Refining").
func (c *Chat) SetWaiting(waiting bool, verb string) {
	if waiting && !c.waiting {
		c.waitStartTime = time.Now()
		c.spinnerFrame = 0
	}
	c.waiting = waiting
	c.waitingVerb = verb
	c.updateContent()
}

// IsWaiting returns whether we're waiting for a response
func (c *Chat) IsWaiting() bool {
	return c.waiting
}

func (c *Chat) updateContent() {
	wrapWidth := c.viewport.Width()
	if wrapWidth <= 0 {
		wrapWidth = DefaultWrapWidth
	}

	var sb strings.Builder

	if len(c.messages) == 0 && !c.waiting {
		sb.WriteString(lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true).
			Render(wrapText(c.labels.Welcome, wrapWidth)))
	}

	for i, msg := range c.messages {
		if i > 0 {
			sb.WriteString("\n\n")
		}

		roleStyle, roleName := ChatAssistantStyle, c.labels.Assistant
		if msg.Role == session.RoleUser {
			roleStyle, roleName = ChatUserStyle, c.labels.You
		}

		sb.WriteString(roleStyle.Render(roleName + ":"))
		sb.WriteString("\n")
		sb.WriteString(ChatMessageStyle.Render(wrapText(strings.TrimSpace(msg.Text), wrapWidth)))
	}

	if c.waiting {
		if len(c.messages) > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(ChatAssistantStyle.Render(c.labels.Assistant + ":"))
		sb.WriteString("\n")
		sb.WriteString(renderSpinner(c.waitingVerb, c.spinnerFrame, time.Since(c.waitStartTime)))
	}

	c.viewport.SetContent(sb.String())
	c.viewport.GotoBottom()
}

// Update handles messages
func (c *Chat) Update(msg tea.Msg) (*Chat, tea.Cmd) {
	var cmds []tea.Cmd

	if _, ok := msg.(StopwatchTickMsg); ok {
		if c.waiting {
			c.spinnerFrame++
			c.updateContent()
			return c, StopwatchTick()
		}
		return c, nil
	}

	if c.focused {
		if keyMsg, isKey := msg.(tea.KeyPressMsg); isKey {
			switch keyMsg.String() {
			case keys.PgUp, keys.PgDown, keys.Home, keys.End:
				var cmd tea.Cmd
				c.viewport, cmd = c.viewport.Update(msg)
				return c, cmd
			case keys.ShiftEnter:
				c.input.InsertString("\n")
				return c, nil
			}

			var cmd tea.Cmd
			c.input, cmd = c.input.Update(msg)
			return c, cmd
		}
	}

	if _, isPaste := msg.(tea.PasteMsg); isPaste {
		if !c.focused {
			return c, nil
		}
		var cmd tea.Cmd
		c.input, cmd = c.input.Update(msg)
		return c, cmd
	}

	// Non-key events (mouse wheel) scroll the transcript
	var cmd tea.Cmd
	c.viewport, cmd = c.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return c, tea.Batch(cmds...)
}

// View renders the chat panel
func (c *Chat) View() string {
	if c.width <= 0 {
		return ""
	}

	panelStyle := PanelStyle
	if c.focused {
		panelStyle = PanelFocusedStyle
	}

	chatPanelHeight := c.height - InputTotalHeight
	chatPanel := panelStyle.Width(c.width).Height(chatPanelHeight).Render(c.viewport.View())

	inputStyle := ChatInputStyle
	if c.focused {
		inputStyle = ChatInputFocusedStyle
	}
	inputArea := inputStyle.Width(c.width).Render(c.input.View())

	return lipgloss.JoinVertical(lipgloss.Left, chatPanel, inputArea)
}
