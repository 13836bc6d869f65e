package generation

import (
	"context"
	"sync"
)

// MockResponse is one scripted reply from a MockProvider.
type MockResponse struct {
	Text string
	Err  error
}

// MockProvider is a Provider for tests. Responses are consumed in order; once
// the queue is empty the Default response is returned.
type MockProvider struct {
	mu       sync.Mutex
	queue    []MockResponse
	requests []Request

	Default MockResponse

	// OnComplete, when set, is called with each request before it is answered.
	OnComplete func(req Request)
}

// NewMockProvider creates a MockProvider that answers every call with text.
func NewMockProvider(text string) *MockProvider {
	return &MockProvider{Default: MockResponse{Text: text}}
}

// QueueResponse adds scripted responses to the end of the queue.
func (m *MockProvider) QueueResponse(responses ...MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queue = append(m.queue, responses...)
}

// Complete records req and returns the next scripted response.
func (m *MockProvider) Complete(ctx context.Context, req Request) (string, error) {
	m.mu.Lock()
	m.requests = append(m.requests, req)
	resp := m.Default
	if len(m.queue) > 0 {
		resp = m.queue[0]
		m.queue = m.queue[1:]
	}
	hook := m.OnComplete
	m.mu.Unlock()

	if hook != nil {
		hook(req)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return resp.Text, resp.Err
}

// Requests returns a copy of every request received so far.
func (m *MockProvider) Requests() []Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Request, len(m.requests))
	copy(out, m.requests)
	return out
}
