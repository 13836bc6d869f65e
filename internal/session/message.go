package session

import "github.com/google/uuid"

// Role identifies who wrote a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one chat turn. Messages are never modified after creation.
type Message struct {
	ID   string `yaml:"id"`
	Role Role   `yaml:"role"`
	Text string `yaml:"text"`
}

// NewMessage creates a message with a fresh ID.
func NewMessage(role Role, text string) Message {
	return Message{ID: uuid.NewString(), Role: role, Text: text}
}

// UserMessage creates a user message.
func UserMessage(text string) Message {
	return NewMessage(RoleUser, text)
}

// AssistantMessage creates an assistant message.
func AssistantMessage(text string) Message {
	return NewMessage(RoleAssistant, text)
}

// CopyTranscript returns an independent copy of t.
func CopyTranscript(t []Message) []Message {
	if t == nil {
		return nil
	}
	out := make([]Message, len(t))
	copy(out, t)
	return out
}
