package mock

import (
	"context"
	"sync"
)

// MockTranslator is a test double for ai.Translator.
// It allows custom behavior injection via function fields.
type MockTranslator struct {
	// TranslateFunc is called by Translate if set.
	// If nil, uses default deterministic behavior.
	TranslateFunc func(ctx context.Context, text, language string) (string, error)

	mu        sync.Mutex
	callCount int
}

// NewMockTranslator creates a mock translator with default deterministic
// behavior: it prefixes the text with the target language name, so translated
// output always differs from the input.
// Note: Returns concrete type to allow test assertions.
func NewMockTranslator() *MockTranslator {
	return &MockTranslator{}
}

// Translate returns a deterministic pseudo-translation.
func (m *MockTranslator) Translate(ctx context.Context, text, language string) (string, error) {
	m.mu.Lock()
	m.callCount++
	fn := m.TranslateFunc
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, text, language)
	}

	return language + ": " + text, nil
}

// CallCount returns the number of times Translate was called.
func (m *MockTranslator) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}

// Reset clears the call count and injected behavior.
func (m *MockTranslator) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callCount = 0
	m.TranslateFunc = nil
}
