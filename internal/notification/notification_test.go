package notification

import (
	"errors"
	"testing"
)

// mockNotification records calls to the notification function
type mockNotification struct {
	calls []struct {
		title   string
		message string
	}
	err error
}

func (m *mockNotification) notify(title, message string, icon any) error {
	m.calls = append(m.calls, struct {
		title   string
		message string
	}{title, message})
	return m.err
}

func TestSend(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		message     string
		mockErr     error
		expectError bool
	}{
		{"successful notification", "Test Title", "Test Message", nil, false},
		{"notification error", "Test Title", "Test Message", errors.New("notification failed"), true},
		{"empty message", "Title", "", nil, false},
		{"thai content", "แจ้งเตือน", "เอกสารพร้อมแล้ว", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockNotification{err: tt.mockErr}
			SetNotifier(mock.notify)
			defer ResetNotifier()

			err := Send(tt.title, tt.message)

			if tt.expectError && err == nil {
				t.Error("expected error but got nil")
			}
			if !tt.expectError && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if len(mock.calls) != 1 {
				t.Fatalf("expected 1 call, got %d", len(mock.calls))
			}
			if mock.calls[0].title != tt.title || mock.calls[0].message != tt.message {
				t.Errorf("call = %+v", mock.calls[0])
			}
		})
	}
}

func TestDocumentReady(t *testing.T) {
	tests := []struct {
		name            string
		sessionTitle    string
		expectedMessage string
		mockErr         error
	}{
		{"basic", "Write a poem about t...", "Write a poem about t... is ready", nil},
		{"empty title", "", " is ready", nil},
		{"failure", "Report", "Report is ready", errors.New("notification system unavailable")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockNotification{err: tt.mockErr}
			SetNotifier(mock.notify)
			defer ResetNotifier()

			err := DocumentReady(tt.sessionTitle)
			if (err != nil) != (tt.mockErr != nil) {
				t.Errorf("error = %v, want %v", err, tt.mockErr)
			}
			if len(mock.calls) != 1 {
				t.Fatalf("expected 1 call, got %d", len(mock.calls))
			}
			if mock.calls[0].title != AppName {
				t.Errorf("title = %q, want %q", mock.calls[0].title, AppName)
			}
			if mock.calls[0].message != tt.expectedMessage {
				t.Errorf("message = %q, want %q", mock.calls[0].message, tt.expectedMessage)
			}
		})
	}
}
