package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// MockResponse is one canned answer for MockProvider.
type MockResponse struct {
	JSON   json.RawMessage
	Tokens Tokens
	Err    error
}

// MockJSON marshals v into a canned answer. It panics on values that
// cannot be marshaled, which only happens in broken tests.
func MockJSON(v any) MockResponse {
	b, err := json.Marshal(v)
	if err != nil {
		panic(fmt.Sprintf("llm: mock response: %v", err))
	}
	return MockResponse{JSON: b}
}

// MockProvider replays canned answers in order and records every prompt.
// Answers still go through the prompt's schema, so a test can exercise the
// invalid-response path. It backs the "mock" provider and the tutor tests.
type MockProvider struct {
	mu      sync.Mutex
	queue   []MockResponse
	prompts []Prompt
}

func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{queue: responses}
}

// Generate pops the next answer, or fails with ErrProviderUnavailable once
// the queue is empty.
func (m *MockProvider) Generate(ctx context.Context, p Prompt) (*Reply, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	m.prompts = append(m.prompts, p)
	if len(m.queue) == 0 {
		return nil, &ErrProviderUnavailable{}
	}
	next := m.queue[0]
	m.queue = m.queue[1:]
	if next.Err != nil {
		return nil, next.Err
	}
	if p.Schema != nil {
		if err := p.Schema.Check(next.JSON); err != nil {
			return nil, err
		}
	}
	return &Reply{JSON: next.JSON, Model: "mock", Tokens: next.Tokens}, nil
}

func (m *MockProvider) ModelID() string { return "mock" }

func (m *MockProvider) AddResponse(r MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queue = append(m.queue, r)
}

func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.prompts)
}

// LastCall returns the most recent prompt, if any.
func (m *MockProvider) LastCall() (Prompt, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.prompts) == 0 {
		return Prompt{}, false
	}
	return m.prompts[len(m.prompts)-1], true
}
