package chat

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prajna-labs/prajna/ai"
	"github.com/prajna-labs/prajna/ai/mock"
	"github.com/prajna-labs/prajna/core"
	"github.com/prajna-labs/prajna/storage"
	"github.com/prajna-labs/prajna/storage/badger"
)

func newTestEngine(t *testing.T, opts ...Option) (*Engine, *mock.MockProvider, *mock.MockTranslator, storage.ChunkRepository) {
	t.Helper()

	repo, backend, err := badger.NewMemoryRepository()
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close(); backend.Close() })

	provider := mock.NewMockProvider().(*mock.MockProvider)
	translator := mock.NewMockTranslator()

	engine, err := NewEngine(repo, provider, translator, opts...)
	require.NoError(t, err)

	return engine, provider, translator, repo
}

func seedChunks(t *testing.T, repo storage.ChunkRepository, texts ...string) {
	t.Helper()
	records := make([]*storage.ChunkRecord, len(texts))
	for i, text := range texts {
		records[i] = &storage.ChunkRecord{
			Text:   text,
			Source: "gita.csv",
			Vector: mock.DeterministicVector(text, 384),
		}
	}
	require.NoError(t, repo.AddChunks(context.Background(), records...))
}

func TestNewEngineValidation(t *testing.T) {
	repo, backend, err := badger.NewMemoryRepository()
	require.NoError(t, err)
	defer func() { repo.Close(); backend.Close() }()

	t.Run("requires repository", func(t *testing.T) {
		_, err := NewEngine(nil, mock.NewMockProvider(), nil)
		assert.ErrorIs(t, err, ErrChunkRepositoryRequired)
	})

	t.Run("requires provider", func(t *testing.T) {
		_, err := NewEngine(repo, nil, nil)
		assert.ErrorIs(t, err, ErrAIProviderRequired)
	})
}

func TestEngineAsk(t *testing.T) {
	engine, provider, _, repo := newTestEngine(t)
	seedChunks(t, repo,
		"The self is never born and never dies",
		"Yoga is the stilling of the fluctuations of the mind",
		"Abandon attachment to the fruits of action",
		"Practice and dispassion restrain the mind",
	)

	answer, err := engine.Ask(context.Background(), nil, "What is yoga?", ai.NativeLanguage)
	require.NoError(t, err)

	assert.NotEmpty(t, answer.Text)
	assert.Equal(t, answer.Raw, answer.Text)
	assert.Len(t, answer.Sources, defaultTopK)
	assert.Greater(t, answer.Elapsed.Nanoseconds(), int64(0))

	// Retrieved passages reach the model inside the system message
	messages := provider.GetMockChatModel().LastMessages()
	require.NotEmpty(t, messages)
	assert.Equal(t, ai.RoleSystem, messages[0].Role)
	assert.Contains(t, messages[0].Text, "Yoga is the stilling")
	assert.Equal(t, "What is yoga?", messages[len(messages)-1].Text)
}

func TestEngineAskTranslates(t *testing.T) {
	engine, _, translator, repo := newTestEngine(t)
	seedChunks(t, repo, "Abandon attachment to the fruits of action")

	answer, err := engine.Ask(context.Background(), nil, "What should I abandon?", "Hindi")
	require.NoError(t, err)

	// The default mock prefixes the language name
	assert.Contains(t, answer.Text, "Hindi: ")
	assert.NotEqual(t, answer.Raw, answer.Text)
	assert.Equal(t, 1, translator.CallCount())
}

func TestEngineAskNativeSkipsTranslation(t *testing.T) {
	engine, _, translator, repo := newTestEngine(t)
	seedChunks(t, repo, "Abandon attachment to the fruits of action")

	_, err := engine.Ask(context.Background(), nil, "What should I abandon?", ai.NativeLanguage)
	require.NoError(t, err)
	assert.Equal(t, 0, translator.CallCount())
}

func TestEngineAskEmptyModelOutput(t *testing.T) {
	engine, provider, _, repo := newTestEngine(t)
	seedChunks(t, repo, "Some passage")

	provider.GetMockChatModel().GenerateAnswerFunc = func(ctx context.Context, messages []ai.Message) (string, error) {
		return "   ", nil
	}

	answer, err := engine.Ask(context.Background(), nil, "Anything?", ai.NativeLanguage)
	require.NoError(t, err)
	assert.Equal(t, noAnswerFallback, answer.Raw)
	assert.Equal(t, noAnswerFallback, answer.Text)
}

func TestEngineAskHistoryWindow(t *testing.T) {
	engine, provider, _, repo := newTestEngine(t, WithHistoryWindow(2))
	seedChunks(t, repo, "Some passage")

	history := []*core.ConversationTurn{
		{Question: "q1", Answer: "a1"},
		{Question: "q2", Answer: "a2"},
		{Question: "q3", Answer: "a3"},
	}

	_, err := engine.Ask(context.Background(), history, "q4", ai.NativeLanguage)
	require.NoError(t, err)

	// System + 2 windowed turns + the new question
	messages := provider.GetMockChatModel().LastMessages()
	require.Len(t, messages, 6)
	assert.Equal(t, "q2", messages[1].Text)
	assert.Equal(t, "a2", messages[2].Text)
	assert.Equal(t, "q3", messages[3].Text)
	assert.Equal(t, "a3", messages[4].Text)
	assert.Equal(t, "q4", messages[5].Text)
}

func TestEngineAskErrors(t *testing.T) {
	t.Run("embedding failure", func(t *testing.T) {
		engine, provider, _, repo := newTestEngine(t)
		seedChunks(t, repo, "Some passage")

		provider.GetMockEmbedder().EmbedQueryFunc = func(ctx context.Context, text string) ([]float32, error) {
			return nil, errors.New("embedding service down")
		}

		_, err := engine.Ask(context.Background(), nil, "Anything?", ai.NativeLanguage)
		require.Error(t, err)
	})

	t.Run("generation failure", func(t *testing.T) {
		engine, provider, _, repo := newTestEngine(t)
		seedChunks(t, repo, "Some passage")

		provider.GetMockChatModel().GenerateAnswerFunc = func(ctx context.Context, messages []ai.Message) (string, error) {
			return "", errors.New("model unavailable")
		}

		_, err := engine.Ask(context.Background(), nil, "Anything?", ai.NativeLanguage)
		require.Error(t, err)
	})

	t.Run("translation failure", func(t *testing.T) {
		engine, _, translator, repo := newTestEngine(t)
		seedChunks(t, repo, "Some passage")

		translator.TranslateFunc = func(ctx context.Context, text, language string) (string, error) {
			return "", errors.New("translation service down")
		}

		_, err := engine.Ask(context.Background(), nil, "Anything?", "Tamil")
		require.Error(t, err)
	})
}
