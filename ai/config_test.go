package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := NewConfig()
		assert.Equal(t, "https://api.groq.com/openai/v1", cfg.ChatHost)
		assert.Equal(t, "llama-3.1-70b-versatile", cfg.ChatModel)
		assert.Equal(t, "http://localhost:11434/v1", cfg.EmbeddingHost)
		assert.Equal(t, "embeddinggemma", cfg.EmbeddingModel)
		assert.Equal(t, "none", cfg.EmbeddingToken)
		assert.Empty(t, cfg.ChatToken)
	})

	t.Run("options override defaults", func(t *testing.T) {
		cfg := NewConfig(
			WithChatHost("http://localhost:9100/v1"),
			WithChatModel("test-model"),
			WithChatToken("secret"),
			WithEmbeddingHost("http://localhost:9200/v1"),
			WithEmbeddingModel("test-embed"),
			WithEmbeddingToken("tok"),
		)
		assert.Equal(t, "http://localhost:9100/v1", cfg.ChatHost)
		assert.Equal(t, "test-model", cfg.ChatModel)
		assert.Equal(t, "secret", cfg.ChatToken)
		assert.Equal(t, "http://localhost:9200/v1", cfg.EmbeddingHost)
		assert.Equal(t, "test-embed", cfg.EmbeddingModel)
		assert.Equal(t, "tok", cfg.EmbeddingToken)
	})
}

func TestConfigNormalize(t *testing.T) {
	t.Run("adds v1 suffix", func(t *testing.T) {
		cfg := NewConfig(
			WithChatHost("http://localhost:8000"),
			WithEmbeddingHost("http://localhost:9000/"),
		)
		cfg.Normalize()
		assert.Equal(t, "http://localhost:8000/v1", cfg.ChatHost)
		assert.Equal(t, "http://localhost:9000/v1", cfg.EmbeddingHost)
	})

	t.Run("leaves v1 suffix alone", func(t *testing.T) {
		cfg := NewConfig(WithChatHost("http://localhost:8000/v1"))
		cfg.Normalize()
		assert.Equal(t, "http://localhost:8000/v1", cfg.ChatHost)
	})
}

func TestConfigValidate(t *testing.T) {
	t.Run("complete config", func(t *testing.T) {
		cfg := NewConfig(WithChatToken("secret"))
		require.NoError(t, cfg.Validate())
	})

	t.Run("missing chat token", func(t *testing.T) {
		cfg := NewConfig()
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing embedding model", func(t *testing.T) {
		cfg := NewConfig(WithChatToken("secret"), WithEmbeddingModel(""))
		assert.Error(t, cfg.Validate())
	})

	t.Run("embedding-only validation ignores chat token", func(t *testing.T) {
		cfg := NewConfig()
		require.NoError(t, cfg.ValidateEmbedding())
	})
}

func TestLanguageCode(t *testing.T) {
	t.Run("every listed language has a code", func(t *testing.T) {
		for _, name := range Languages {
			code, ok := LanguageCode(name)
			assert.True(t, ok, "missing code for %s", name)
			assert.NotEmpty(t, code)
		}
	})

	t.Run("unknown language", func(t *testing.T) {
		_, ok := LanguageCode("Klingon")
		assert.False(t, ok)
	})

	t.Run("native language", func(t *testing.T) {
		assert.True(t, IsNativeLanguage("English"))
		assert.False(t, IsNativeLanguage("Hindi"))
		code, ok := LanguageCode(NativeLanguage)
		require.True(t, ok)
		assert.Equal(t, NativeLanguageCode, code)
	})
}
