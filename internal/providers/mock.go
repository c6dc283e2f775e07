package providers

import (
	"context"
	"sync"
	"time"
)

// MockLLM is a test double for LLMClient.
// It records requests and returns canned responses or errors.
type MockLLM struct {
	mu sync.Mutex

	// Response is returned on each Generate call when Err is nil.
	Response string
	// Err, when set, is returned instead of a result.
	Err error

	// Requests records every request received, in order.
	Requests []*GenerateRequest
}

// NewMockLLM creates a mock that always replies with response.
func NewMockLLM(response string) *MockLLM {
	return &MockLLM{Response: response}
}

// Name returns the provider identifier.
func (m *MockLLM) Name() string { return "mock" }

// Generate records the request and returns the canned response.
func (m *MockLLM) Generate(_ context.Context, req *GenerateRequest) (*GenerateResult, error) {
	m.mu.Lock()
	m.Requests = append(m.Requests, req)
	m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}
	return &GenerateResult{
		Content:       m.Response,
		Provider:      m.Name(),
		ModelUsed:     "mock-model",
		ExecutionTime: time.Millisecond,
	}, nil
}

// CallCount returns how many Generate calls the mock has received.
func (m *MockLLM) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Requests)
}

// LastRequest returns the most recent request, or nil.
func (m *MockLLM) LastRequest() *GenerateRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Requests) == 0 {
		return nil
	}
	return m.Requests[len(m.Requests)-1]
}

// Verify interface
var _ LLMClient = (*MockLLM)(nil)
