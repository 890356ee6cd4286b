package mock

import (
	"context"
	"sync"

	"github.com/prajna-labs/prajna/ai"
)

// MockChatModel is a test double for ai.ChatModel.
// It allows custom behavior injection via function fields.
type MockChatModel struct {
	// GenerateAnswerFunc is called by GenerateAnswer if set.
	// If nil, uses default deterministic behavior.
	GenerateAnswerFunc func(ctx context.Context, messages []ai.Message) (string, error)

	mu        sync.Mutex
	callCount int
	lastMsgs  []ai.Message
}

// NewMockChatModel creates a mock chat model with default deterministic
// behavior: it echoes the last user message prefixed with "Answer: ".
// Note: Returns concrete type to allow test assertions.
func NewMockChatModel() *MockChatModel {
	return &MockChatModel{}
}

// GenerateAnswer returns a canned answer derived from the prompt.
func (m *MockChatModel) GenerateAnswer(ctx context.Context, messages []ai.Message) (string, error) {
	m.mu.Lock()
	m.callCount++
	m.lastMsgs = messages
	fn := m.GenerateAnswerFunc
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, messages)
	}

	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == ai.RoleUser {
			return "Answer: " + messages[i].Text, nil
		}
	}
	return "Answer: (no question)", nil
}

// CallCount returns the number of times GenerateAnswer was called.
func (m *MockChatModel) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}

// LastMessages returns the prompt from the most recent call.
func (m *MockChatModel) LastMessages() []ai.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastMsgs
}

// Reset clears the call count and injected behavior.
func (m *MockChatModel) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callCount = 0
	m.lastMsgs = nil
	m.GenerateAnswerFunc = nil
}
