// Package workspace turns user intents into ordered changes across the
// session history, the layout and the live editing surface.
//
// The live surface (transcript, document, draft) is a view over the active
// session. Generation and refinement are split into a Begin step, which
// checks preconditions and returns a ticket for the asynchronous call, and a
// Complete step, which applies the call's result. The UI runs the call
// between the two steps; this package never blocks.
package workspace

import (
	"strings"

	perrors "github.com/docdraft/docdraft/internal/errors"
	"github.com/docdraft/docdraft/internal/generation"
	"github.com/docdraft/docdraft/internal/i18n"
	"github.com/docdraft/docdraft/internal/layout"
	"github.com/docdraft/docdraft/internal/logger"
	"github.com/docdraft/docdraft/internal/session"
)

// StalePolicy decides what happens to a result that arrives after the user
// switched to another session or started a new chat.
type StalePolicy int

const (
	// ApplyAlways applies late results to whatever is live when they arrive.
	ApplyAlways StalePolicy = iota
	// DiscardStale drops late results.
	DiscardStale
)

// State is the live editing surface.
type State struct {
	ActiveID   int64 // 0 when the live chat has not been saved yet
	Transcript []session.Message
	Document   string
	Draft      string
	Pending    bool // a generation is in flight
	Refining   bool // a refinement is in flight
	Editing    bool // the document is being edited by hand
}

// Ticket identifies an in-flight generation or refinement.
type Ticket struct {
	Prompt   string // generation prompt, or the content being refined
	Lang     i18n.Language
	ActiveID int64
	epoch    uint64
}

// Outcome reports what a Complete call did.
type Outcome struct {
	Applied   bool
	SessionID int64
	Created   bool
	Degraded  bool
}

// Options configures a Controller.
type Options struct {
	Language    i18n.Language
	StalePolicy StalePolicy
}

// Controller owns the live state. It is not safe for concurrent use.
type Controller struct {
	store  *session.Store
	layout *layout.Controller
	state  State
	lang   i18n.Language
	policy StalePolicy

	// epoch changes whenever the live surface switches to a different
	// conversation, so tickets can tell they are stale.
	epoch uint64
}

// New creates a controller over store and lay.
func New(store *session.Store, lay *layout.Controller, opts Options) *Controller {
	return &Controller{
		store:  store,
		layout: lay,
		lang:   opts.Language,
		policy: opts.StalePolicy,
	}
}

// State returns a snapshot of the live surface.
func (c *Controller) State() State {
	s := c.state
	s.Transcript = session.CopyTranscript(c.state.Transcript)
	return s
}

// Store returns the session history.
func (c *Controller) Store() *session.Store {
	return c.store
}

// Layout returns the layout controller.
func (c *Controller) Layout() *layout.Controller {
	return c.layout
}

// Language returns the current workspace language.
func (c *Controller) Language() i18n.Language {
	return c.lang
}

// SetLanguage switches the language used for new requests and messages.
func (c *Controller) SetLanguage(lang i18n.Language) {
	c.lang = lang
}

// Labels returns the label table for the current language.
func (c *Controller) Labels() i18n.Labels {
	return i18n.For(c.lang)
}

// SetDraft replaces the prompt draft.
func (c *Controller) SetDraft(text string) {
	c.state.Draft = text
}

// UseTemplate fills the draft with the cover-letter template prompt.
func (c *Controller) UseTemplate() {
	c.state.Draft = c.Labels().TemplatePrompt
}

// IsStale reports whether the conversation t was issued for is no longer live.
func (c *Controller) IsStale(t Ticket) bool {
	return t.epoch != c.epoch
}

func (c *Controller) ticket(prompt string) Ticket {
	return Ticket{Prompt: prompt, Lang: c.lang, ActiveID: c.state.ActiveID, epoch: c.epoch}
}

// Busy reports whether a generation or a refinement is in flight. Send and
// refine never overlap.
func (c *Controller) Busy() bool {
	return c.state.Pending || c.state.Refining
}

// BeginSend starts a generation from the draft. It is refused when the
// draft is blank or a generation or refinement is in flight. On success the user
// message is appended, the draft is cleared, the preview is shown and edit
// mode ends.
func (c *Controller) BeginSend() (Ticket, bool) {
	prompt := c.state.Draft
	if strings.TrimSpace(prompt) == "" || c.Busy() {
		return Ticket{}, false
	}

	c.state.Transcript = append(c.state.Transcript, session.UserMessage(prompt))
	c.state.Draft = ""
	c.state.Pending = true
	c.layout.ShowPreview()
	c.state.Editing = false

	logger.WithComponent("workspace").Debug("send started", "activeID", c.state.ActiveID, "lang", c.lang.Code())
	return c.ticket(prompt), true
}

// Regenerate sends the draft if there is one, otherwise it resends the most
// recent user prompt of the live chat. While busy it does nothing.
func (c *Controller) Regenerate() (Ticket, bool) {
	if c.Busy() {
		return Ticket{}, false
	}
	if strings.TrimSpace(c.state.Draft) == "" {
		for i := len(c.state.Transcript) - 1; i >= 0; i-- {
			if c.state.Transcript[i].Role == session.RoleUser {
				c.state.Draft = c.state.Transcript[i].Text
				break
			}
		}
	}
	return c.BeginSend()
}

// CompleteSend applies a finished generation: an acknowledgement is
// appended, the document replaced and the chat saved to history. Pending is
// cleared whatever happens.
func (c *Controller) CompleteSend(t Ticket, res generation.Result) Outcome {
	c.state.Pending = false
	log := logger.WithComponent("workspace")

	if c.policy == DiscardStale && c.IsStale(t) {
		log.Info("discarding stale generation result", "issuedFor", t.ActiveID, "activeID", c.state.ActiveID)
		return Outcome{}
	}

	labels := i18n.For(t.Lang)
	c.state.Transcript = append(c.state.Transcript, session.AssistantMessage(labels.Acknowledgement))
	c.state.Document = res.Text

	id, created := c.store.UpsertFromGeneration(c.state.ActiveID, t.Prompt, c.state.Transcript, c.state.Document, t.Lang)
	c.state.ActiveID = id

	log.Debug("send completed", "sessionID", id, "created", created, "degraded", res.Degraded)
	return Outcome{Applied: true, SessionID: id, Created: created, Degraded: res.Degraded}
}

// FailSend handles a generation that ended without a result. A generic
// error message is appended and pending is cleared.
func (c *Controller) FailSend(t Ticket, err error) Outcome {
	c.state.Pending = false
	logger.WithComponent("workspace").Error("send failed", "error", err)

	if c.policy == DiscardStale && c.IsStale(t) {
		return Outcome{}
	}
	c.state.Transcript = append(c.state.Transcript, session.AssistantMessage(i18n.For(t.Lang).GenericError))
	return Outcome{Applied: true, SessionID: c.state.ActiveID}
}

// BeginRefine starts a refinement of the current document. It is refused
// when there is no document or a generation or refinement is in flight.
func (c *Controller) BeginRefine() (Ticket, bool) {
	if c.state.Document == "" || c.Busy() {
		return Ticket{}, false
	}
	c.state.Refining = true
	return c.ticket(c.state.Document), true
}

// CompleteRefine replaces the document with the refined text and saves it
// to the active session. The transcript is never touched.
func (c *Controller) CompleteRefine(t Ticket, res generation.Result) Outcome {
	c.state.Refining = false

	if c.policy == DiscardStale && c.IsStale(t) {
		logger.WithComponent("workspace").Info("discarding stale refine result", "issuedFor", t.ActiveID)
		return Outcome{}
	}

	c.state.Document = res.Text
	if c.state.ActiveID != 0 {
		c.store.UpdateDocument(c.state.ActiveID, res.Text)
	}
	return Outcome{Applied: true, SessionID: c.state.ActiveID, Degraded: res.Degraded}
}

// NewChat clears the live surface without deleting any saved session.
func (c *Controller) NewChat() {
	c.state.ActiveID = 0
	c.state.Transcript = nil
	c.state.Document = ""
	c.state.Draft = ""
	c.state.Editing = false
	c.epoch++
}

// SelectSession copies a saved session into the live surface. On narrow
// viewports the navigation overlay closes.
func (c *Controller) SelectSession(id int64) bool {
	sess, ok := c.store.Get(id)
	if !ok {
		logger.WithComponent("workspace").Warn("select ignored", "error", perrors.SessionNotFound(id))
		return false
	}
	c.state.ActiveID = id
	c.state.Transcript = sess.Transcript
	c.state.Document = sess.Document
	c.state.Editing = false
	c.epoch++
	c.layout.CloseNavIfNarrow()

	logger.WithSession(id).Debug("session selected")
	return true
}

// RenameSession renames a saved session.
func (c *Controller) RenameSession(id int64, title string) bool {
	return c.store.Rename(id, title)
}

// DeleteSession deletes a saved session. Deleting the active session also
// clears the live surface, exactly like NewChat.
func (c *Controller) DeleteSession(id int64) bool {
	if !c.store.Delete(id) {
		logger.WithComponent("workspace").Warn("delete ignored", "error", perrors.SessionNotFound(id))
		return false
	}
	if id == c.state.ActiveID {
		c.NewChat()
	}
	return true
}

// ToggleEdit enters or leaves manual edit mode. Edit mode needs a document.
func (c *Controller) ToggleEdit() bool {
	if !c.state.Editing && c.state.Document == "" {
		return false
	}
	c.state.Editing = !c.state.Editing
	return true
}

// EditDocument replaces the document text while in edit mode.
func (c *Controller) EditDocument(text string) bool {
	if !c.state.Editing {
		return false
	}
	c.state.Document = text
	return true
}

// SaveEdits writes the live document back to the active session.
func (c *Controller) SaveEdits() bool {
	if c.state.ActiveID == 0 {
		return false
	}
	return c.store.UpdateDocument(c.state.ActiveID, c.state.Document)
}
