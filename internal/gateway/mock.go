package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// MockResponse is one scripted outcome for the MockProvider: either a
// content payload or an error, plus optional token usage.
type MockResponse struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// MockProvider plays back scripted responses in order and records every
// request it saw. Tests across the program, content, and chat packages use
// it in place of a real model.
type MockProvider struct {
	mu     sync.Mutex
	script []MockResponse

	// Calls holds every request in arrival order.
	Calls []Request
}

// NewMockProvider creates a MockProvider preloaded with responses.
func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{script: responses}
}

// AddResponse queues another scripted response.
func (m *MockProvider) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.script = append(m.script, resp)
}

// CallCount reports how many times Generate was invoked.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// Generate records the request and pops the next scripted response. An
// exhausted script surfaces as provider-unavailable, which is what a test
// that over-calls deserves to see.
func (m *MockProvider) Generate(_ context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)

	if len(m.script) == 0 {
		return nil, &ErrProviderUnavailable{Err: fmt.Errorf("mock script exhausted after %d calls", len(m.Calls))}
	}
	next := m.script[0]
	m.script = m.script[1:]

	if next.Err != nil {
		return nil, next.Err
	}
	return &Response{
		Content:    next.Content,
		Usage:      next.Usage,
		Model:      "mock",
		StopReason: "end",
	}, nil
}

func (m *MockProvider) ModelID() string {
	return "mock"
}
