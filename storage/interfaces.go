package storage

import (
	"context"

	"github.com/prajna-labs/prajna/core"
)

// ChunkRecord is a persisted vector index entry: chunk text, its embedding,
// and source metadata. Every entry in a store carries an embedding of the
// same dimensionality.
type ChunkRecord struct {
	Id     core.ID
	Text   string
	Source string
	Vector []float32
}

// Chunk converts the record back to its domain form.
func (r *ChunkRecord) Chunk() *core.Chunk {
	return &core.Chunk{Text: r.Text, Source: r.Source}
}

// ChunkRepository is the persistent vector index. Ingestion writes it,
// querying only reads it; the two are never run concurrently against the
// same store. Implementations must be thread-safe for concurrent reads.
type ChunkRepository interface {
	// AddChunks appends records to the index in bounded batches.
	// IDs are generated from a sequence; records are never deduplicated, so
	// adding the same content twice stores two entries. Each batch commits
	// in its own transaction: if a later batch fails, earlier batches stay
	// committed and the index is left partially written. The first write
	// pins the store's embedding dimensionality; records whose vectors have
	// a different length are rejected with ErrDimensionMismatch.
	AddChunks(ctx context.Context, records ...*ChunkRecord) error

	// FindSimilar returns the stored chunks most similar to the vector.
	// Results have cosine similarity >= minSimilarity, up to limit entries,
	// ordered by similarity score (highest first).
	FindSimilar(ctx context.Context, vector []float32, minSimilarity float32, limit int) ([]*core.SearchResult, error)

	// Count returns the number of persisted index entries.
	Count(ctx context.Context) (int, error)

	// Close closes the repository and releases resources.
	Close() error
}
