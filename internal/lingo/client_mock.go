package lingo

import (
	"context"
	"fmt"
	"sync"
)

// MockClient is a mock implementation of Client for testing purposes.
// It allows setting a predefined response or error without network calls.
type MockClient struct {
	mu           sync.Mutex
	mockResponse string
	mockError    error
	callCount    int
	lastData     map[string]string
}

// NewMockClient creates a new MockClient instance
func NewMockClient() *MockClient {
	return &MockClient{}
}

// Localize implements Client. Returns the mock response if set, otherwise
// the mock error.
func (m *MockClient) Localize(_ context.Context, data map[string]string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.callCount++
	m.lastData = data

	if m.mockError != nil {
		return "", m.mockError
	}
	if m.mockResponse == "" {
		return "", fmt.Errorf("no mock response set, use SetMockResponse()")
	}
	return m.mockResponse, nil
}

// SetMockResponse sets the response to return from Localize
func (m *MockClient) SetMockResponse(response string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mockResponse = response
	m.mockError = nil
}

// SetMockError sets the error to return from Localize
func (m *MockClient) SetMockError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mockError = err
	m.mockResponse = ""
}

// CallCount returns how many times Localize was invoked
func (m *MockClient) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}

// LastData returns the payload from the most recent Localize call
func (m *MockClient) LastData() map[string]string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastData
}
