package ai

import "context"

// Role identifies the author of a chat message.
type Role int

const (
	// RoleSystem carries instructions and retrieved context.
	RoleSystem Role = iota + 1
	// RoleUser is the human side of the conversation.
	RoleUser
	// RoleAssistant is the model side of the conversation.
	RoleAssistant
)

// Message is one element of a chat-completion prompt.
type Message struct {
	Role Role
	Text string
}

// Embedder generates vector embeddings from text for similarity search.
// Implementations must be thread-safe for concurrent use.
type Embedder interface {
	// EmbedQuery generates a vector embedding for a single query string.
	// Returns an error if the embedding generation fails.
	EmbedQuery(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates vector embeddings for multiple text strings in a
	// batch. The returned slice contains embeddings in the same order as the
	// input texts. Returns an error if any embedding generation fails.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// ChatModel generates a natural-language answer from a prompt.
// Implementations must be thread-safe for concurrent use.
type ChatModel interface {
	// GenerateAnswer submits the messages to a hosted chat-completion model
	// and returns the generated text. Sampling is deterministic (temperature
	// pinned at the minimum) to minimize response variance. An empty result
	// is returned as an empty string, not an error; the caller decides the
	// fallback.
	GenerateAnswer(ctx context.Context, messages []Message) (string, error)
}

// Translator translates answer text into a target language.
type Translator interface {
	// Translate translates text from the native language into the language
	// identified by its display name (e.g. "Hindi"). The caller is expected
	// to skip the call when the target is the native language.
	Translate(ctx context.Context, text, language string) (string, error)
}

// QuoteSearcher issues a web search and returns result links.
type QuoteSearcher interface {
	// Search returns up to max result links for the query, in rank order.
	// An empty slice is a valid result, not an error.
	Search(ctx context.Context, query string, max int) ([]string, error)
}

// Provider aggregates the generation-side AI services for convenient
// initialization and lifecycle management. Translation and web search are
// separate collaborators with their own credentials.
type Provider interface {
	// Embedder returns the text embedding service.
	Embedder() Embedder

	// ChatModel returns the answer generation service.
	ChatModel() ChatModel

	// Close releases resources held by the provider and its services.
	Close() error
}
