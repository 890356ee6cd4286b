package mock

import (
	"context"
	"sync"
)

// MockQuoteSearcher is a test double for ai.QuoteSearcher.
// It allows custom behavior injection via function fields.
type MockQuoteSearcher struct {
	// SearchFunc is called by Search if set.
	// If nil, Results is returned (truncated to max).
	SearchFunc func(ctx context.Context, query string, max int) ([]string, error)

	// Results is the fixed result set returned by the default behavior.
	Results []string

	mu        sync.Mutex
	callCount int
}

// NewMockQuoteSearcher creates a mock searcher returning no results by
// default. Note: Returns concrete type to allow test assertions.
func NewMockQuoteSearcher() *MockQuoteSearcher {
	return &MockQuoteSearcher{}
}

// Search returns the configured fixed results.
func (m *MockQuoteSearcher) Search(ctx context.Context, query string, max int) ([]string, error) {
	m.mu.Lock()
	m.callCount++
	fn := m.SearchFunc
	results := m.Results
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, query, max)
	}
	if len(results) > max {
		results = results[:max]
	}
	return results, nil
}

// CallCount returns the number of times Search was called.
func (m *MockQuoteSearcher) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}

// Reset clears the call count and injected behavior.
func (m *MockQuoteSearcher) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callCount = 0
	m.SearchFunc = nil
	m.Results = nil
}
