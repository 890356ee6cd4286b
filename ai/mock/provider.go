package mock

import "github.com/prajna-labs/prajna/ai"

// MockProvider aggregates mock AI services, implementing ai.Provider.
type MockProvider struct {
	embedder *MockEmbedder
	chat     *MockChatModel
}

// NewMockProvider creates a provider backed by default mocks.
//
// Returns ai.Provider since it's the primary entry point; use
// GetMockEmbedder/GetMockChatModel to access concrete types for assertions.
func NewMockProvider() ai.Provider {
	return &MockProvider{
		embedder: NewMockEmbedder(),
		chat:     NewMockChatModel(),
	}
}

// Embedder returns the mock embedding service.
func (p *MockProvider) Embedder() ai.Embedder {
	return p.embedder
}

// ChatModel returns the mock answer generation service.
func (p *MockProvider) ChatModel() ai.ChatModel {
	return p.chat
}

// GetMockEmbedder returns the concrete mock embedder for test assertions.
func (p *MockProvider) GetMockEmbedder() *MockEmbedder {
	return p.embedder
}

// GetMockChatModel returns the concrete mock chat model for test assertions.
func (p *MockProvider) GetMockChatModel() *MockChatModel {
	return p.chat
}

// Close is a no-op.
func (p *MockProvider) Close() error {
	return nil
}
