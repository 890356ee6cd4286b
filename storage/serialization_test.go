package storage

import (
	"testing"

	"github.com/prajna-labs/prajna/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkRecordRoundTrip(t *testing.T) {
	t.Run("full record", func(t *testing.T) {
		record := &ChunkRecord{
			Id:     core.ID(42),
			Text:   "You have a right to perform your prescribed duty",
			Source: "data/gita.csv",
			Vector: []float32{0.1, -0.5, 0.25, 1.0},
		}

		data := MarshalChunkRecord(record)
		got, err := UnmarshalChunkRecord(data)
		require.NoError(t, err)
		assert.Equal(t, record, got)
	})

	t.Run("empty optional fields", func(t *testing.T) {
		record := &ChunkRecord{Id: core.ID(1), Text: "x", Vector: []float32{0}}

		got, err := UnmarshalChunkRecord(MarshalChunkRecord(record))
		require.NoError(t, err)
		assert.Equal(t, record.Text, got.Text)
		assert.Empty(t, got.Source)
		assert.Equal(t, record.Vector, got.Vector)
	})

	t.Run("truncated data fails", func(t *testing.T) {
		record := &ChunkRecord{
			Id:     core.ID(7),
			Text:   "some chunk text",
			Source: "a.pdf",
			Vector: []float32{1, 2, 3},
		}
		data := MarshalChunkRecord(record)

		_, err := UnmarshalChunkRecord(data[:len(data)/2])
		assert.Error(t, err)
	})

	t.Run("chunk conversion", func(t *testing.T) {
		record := &ChunkRecord{Id: core.ID(3), Text: "t", Source: "s"}
		chunk := record.Chunk()
		assert.Equal(t, &core.Chunk{Text: "t", Source: "s"}, chunk)
	})
}

func TestDimensionRoundTrip(t *testing.T) {
	for _, dim := range []int{1, 384, 1536} {
		data := MarshalDimension(dim)
		got, err := UnmarshalDimension(data)
		require.NoError(t, err)
		assert.Equal(t, dim, got)
	}
}

func TestChunkRecordSkip(t *testing.T) {
	a := ChunkRecord{Id: 1, Text: "first", Source: "s1", Vector: []float32{1}}
	b := ChunkRecord{Id: 2, Text: "second", Source: "s2", Vector: []float32{2, 3}}

	buf := make([]byte, ChunkRecordMUS.Size(a)+ChunkRecordMUS.Size(b))
	n := ChunkRecordMUS.Marshal(a, buf)
	ChunkRecordMUS.Marshal(b, buf[n:])

	skipped, err := ChunkRecordMUS.Skip(buf)
	require.NoError(t, err)
	assert.Equal(t, n, skipped)

	got, _, err := ChunkRecordMUS.Unmarshal(buf[skipped:])
	require.NoError(t, err)
	assert.Equal(t, b, got)
}
