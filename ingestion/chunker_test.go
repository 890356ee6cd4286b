package ingestion

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prajna-labs/prajna/core"
)

func TestNewChunkerValidation(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		overlap int
		wantErr bool
	}{
		{"valid defaults", 2000, 500, false},
		{"zero overlap", 100, 0, false},
		{"overlap equals size", 100, 100, true},
		{"overlap exceeds size", 100, 200, true},
		{"zero size", 0, 0, true},
		{"negative overlap", 100, -1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewChunker(tt.size, tt.overlap)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidChunking)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestChunkerSplit(t *testing.T) {
	t.Run("short text stays whole", func(t *testing.T) {
		chunker, err := NewChunker(2000, 500)
		require.NoError(t, err)

		chunks, err := chunker.Split([]*core.Document{
			{Text: "A short verse.", Source: "gita.csv"},
		})
		require.NoError(t, err)

		require.Len(t, chunks, 1)
		assert.Equal(t, "A short verse.", chunks[0].Text)
		assert.Equal(t, "gita.csv", chunks[0].Source)
	})

	t.Run("long text is split with no empty chunks", func(t *testing.T) {
		chunker, err := NewChunker(100, 20)
		require.NoError(t, err)

		long := strings.Repeat("The mind is restless and hard to restrain. ", 30)
		chunks, err := chunker.Split([]*core.Document{
			{Text: long, Source: "gita.csv"},
		})
		require.NoError(t, err)

		assert.Greater(t, len(chunks), 1)
		for _, chunk := range chunks {
			assert.NotEmpty(t, strings.TrimSpace(chunk.Text))
			assert.LessOrEqual(t, len(chunk.Text), 100)
			assert.Equal(t, "gita.csv", chunk.Source)
		}
	})

	t.Run("sources follow their documents", func(t *testing.T) {
		chunker, err := NewChunker(2000, 500)
		require.NoError(t, err)

		chunks, err := chunker.Split([]*core.Document{
			{Text: "from the gita", Source: "gita.csv"},
			{Text: "from the sutras", Source: "sutras.pdf"},
		})
		require.NoError(t, err)

		require.Len(t, chunks, 2)
		assert.Equal(t, "gita.csv", chunks[0].Source)
		assert.Equal(t, "sutras.pdf", chunks[1].Source)
	})
}
