package session

import (
	"strings"
	"sync"
	"time"

	"github.com/rivo/uniseg"

	"github.com/docdraft/docdraft/internal/i18n"
	"github.com/docdraft/docdraft/internal/logger"
)

// TitleLength is the number of characters kept when deriving a title from a prompt.
const TitleLength = 20

// Session is a saved conversation and the document it produced.
type Session struct {
	ID         int64         `yaml:"id"`
	Title      string        `yaml:"title"`
	Preview    string        `yaml:"preview"`
	Transcript []Message     `yaml:"transcript"`
	Document   string        `yaml:"document"`
	Language   i18n.Language `yaml:"-"`
	CreatedAt  time.Time     `yaml:"created_at"`
	UpdatedAt  time.Time     `yaml:"updated_at"`
}

func (s Session) clone() Session {
	s.Transcript = CopyTranscript(s.Transcript)
	return s
}

// Title derives a session title from the prompt that created it: the first
// 20 characters, with "..." appended when the prompt is longer. Characters
// are grapheme clusters so Thai combining marks are never split.
func Title(prompt string) string {
	g := uniseg.NewGraphemes(prompt)
	var b strings.Builder
	n := 0
	for g.Next() {
		if n == TitleLength {
			return b.String() + "..."
		}
		b.WriteString(g.Str())
		n++
	}
	return b.String()
}

// Store holds sessions newest first.
type Store struct {
	mu       sync.RWMutex
	sessions []Session
	nextID   int64
	now      func() time.Time
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{nextID: 1, now: time.Now}
}

// List returns the sessions whose title or preview contains filter,
// ignoring case, newest first. An empty filter matches everything.
func (s *Store) List(filter string) []Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(filter)
	out := make([]Session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		if needle == "" ||
			strings.Contains(strings.ToLower(sess.Title), needle) ||
			strings.Contains(strings.ToLower(sess.Preview), needle) {
			out = append(out, sess.clone())
		}
	}
	return out
}

// Get returns a copy of the session with the given id.
func (s *Store) Get(id int64) (Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexOf(id); i >= 0 {
		return s.sessions[i].clone(), true
	}
	return Session{}, false
}

// Len returns the number of sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Rename replaces a session's title. Titles that are empty after trimming
// and unknown ids are ignored. Ordering is unchanged.
func (s *Store) Rename(id int64, title string) bool {
	if strings.TrimSpace(title) == "" {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.sessions[i].Title = title
	logger.WithSession(id).Debug("session renamed", "title", title)
	return true
}

// Delete removes a session. Returns false if the id is unknown.
func (s *Store) Delete(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.sessions = append(s.sessions[:i], s.sessions[i+1:]...)
	logger.WithSession(id).Debug("session deleted")
	return true
}

// UpsertFromGeneration records a completed generation.
//
// When activeID names an existing session, its transcript and document are
// replaced and its preview becomes the "Updated" marker. Otherwise a new
// session titled after prompt is prepended. The returned id is the session
// that now holds the result; created reports which path was taken.
func (s *Store) UpsertFromGeneration(activeID int64, prompt string, transcript []Message, document string, lang i18n.Language) (id int64, created bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	labels := i18n.For(lang)
	now := s.now()

	if activeID != 0 {
		if i := s.indexOf(activeID); i >= 0 {
			sess := &s.sessions[i]
			sess.Transcript = CopyTranscript(transcript)
			sess.Document = document
			sess.Preview = labels.Updated
			sess.Language = lang
			sess.UpdatedAt = now
			logger.WithSession(activeID).Debug("session updated from generation", "messages", len(transcript))
			return activeID, false
		}
	}

	id = s.nextID
	s.nextID++
	sess := Session{
		ID:         id,
		Title:      Title(prompt),
		Preview:    labels.JustNow,
		Transcript: CopyTranscript(transcript),
		Document:   document,
		Language:   lang,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	s.sessions = append([]Session{sess}, s.sessions...)
	logger.WithSession(id).Debug("session created from generation", "title", sess.Title)
	return id, true
}

// UpdateDocument replaces a session's document without touching its
// transcript. Used when a refinement or a manual edit is saved.
func (s *Store) UpdateDocument(id int64, document string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.sessions[i].Document = document
	s.sessions[i].UpdatedAt = s.now()
	return true
}

// Seed appends sessions to the end of the list, keeping their ids. Sessions
// whose id is already present are skipped.
func (s *Store) Seed(sessions ...Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, sess := range sessions {
		if sess.ID == 0 || s.indexOf(sess.ID) >= 0 {
			continue
		}
		s.sessions = append(s.sessions, sess.clone())
		if sess.ID >= s.nextID {
			s.nextID = sess.ID + 1
		}
	}
}

// indexOf must be called with mu held.
func (s *Store) indexOf(id int64) int {
	for i := range s.sessions {
		if s.sessions[i].ID == id {
			return i
		}
	}
	return -1
}

// DemoSessions returns the history entries shown to first-time users.
func DemoSessions() []Session {
	return []Session{
		{ID: 1, Title: "Project Proposal", Preview: "Outline for the Q3 marketing..."},
		{ID: 2, Title: "Email to Client", Preview: "Draft regarding the delays..."},
		{ID: 3, Title: "Poem about Code", Preview: "In the land of brackets..."},
	}
}
