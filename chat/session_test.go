package chat

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prajna-labs/prajna/ai"
)

func TestSessionStart(t *testing.T) {
	engine, _, _, repo := newTestEngine(t)
	seedChunks(t, repo, "Some passage")

	t.Run("trims the name", func(t *testing.T) {
		session := NewSession(engine)
		require.NoError(t, session.Start("  Arjuna  "))
		assert.True(t, session.Started())
		assert.Equal(t, "Arjuna", session.Name())
	})

	t.Run("rejects blank names", func(t *testing.T) {
		session := NewSession(engine)
		assert.ErrorIs(t, session.Start(""), ErrEmptyName)
		assert.ErrorIs(t, session.Start("   "), ErrEmptyName)
		assert.False(t, session.Started())
	})
}

func TestSessionAskBeforeStart(t *testing.T) {
	engine, provider, _, repo := newTestEngine(t)
	seedChunks(t, repo, "Some passage")

	session := NewSession(engine)
	answer, err := session.Ask(context.Background(), "What is yoga?", ai.NativeLanguage)
	require.NoError(t, err)
	assert.Nil(t, answer)
	assert.Empty(t, session.History())
	assert.Equal(t, 0, provider.GetMockChatModel().CallCount())
}

func TestSessionAskBlankQuestion(t *testing.T) {
	engine, provider, _, repo := newTestEngine(t)
	seedChunks(t, repo, "Some passage")

	session := NewSession(engine)
	require.NoError(t, session.Start("Arjuna"))

	answer, err := session.Ask(context.Background(), "   ", ai.NativeLanguage)
	require.NoError(t, err)
	assert.Nil(t, answer)
	assert.Empty(t, session.History())
	assert.Equal(t, 0, provider.GetMockChatModel().CallCount())
}

func TestSessionHistoryOrder(t *testing.T) {
	engine, _, _, repo := newTestEngine(t)
	seedChunks(t, repo, "Some passage")

	session := NewSession(engine)
	require.NoError(t, session.Start("Arjuna"))

	ctx := context.Background()
	for i := 1; i <= 3; i++ {
		question := fmt.Sprintf("question %d", i)
		answer, err := session.Ask(ctx, question, ai.NativeLanguage)
		require.NoError(t, err)
		require.NotNil(t, answer)
	}

	history := session.History()
	require.Len(t, history, 3)
	for i, turn := range history {
		assert.Equal(t, fmt.Sprintf("question %d", i+1), turn.Question)
		assert.NotEmpty(t, turn.Answer)
		assert.NotEmpty(t, turn.Sources)
	}
}

func TestSessionStoresTranslatedAnswer(t *testing.T) {
	engine, _, _, repo := newTestEngine(t)
	seedChunks(t, repo, "Some passage")

	session := NewSession(engine)
	require.NoError(t, session.Start("Arjuna"))

	answer, err := session.Ask(context.Background(), "What is dharma?", "Hindi")
	require.NoError(t, err)

	history := session.History()
	require.Len(t, history, 1)
	assert.Equal(t, answer.Text, history[0].Answer)
	assert.Contains(t, history[0].Answer, "Hindi: ")
}

func TestSessionErrorAppendsNothing(t *testing.T) {
	engine, provider, _, repo := newTestEngine(t)
	seedChunks(t, repo, "Some passage")

	session := NewSession(engine)
	require.NoError(t, session.Start("Arjuna"))

	provider.GetMockChatModel().GenerateAnswerFunc = func(ctx context.Context, messages []ai.Message) (string, error) {
		return "", assert.AnError
	}

	_, err := session.Ask(context.Background(), "What is dharma?", ai.NativeLanguage)
	require.Error(t, err)
	assert.Empty(t, session.History())
}
