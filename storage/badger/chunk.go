package badger

import (
	"bytes"
	"context"
	"log/slog"
	"math"
	"slices"

	"github.com/dgraph-io/badger/v4"
	"github.com/prajna-labs/prajna/core"
	"github.com/prajna-labs/prajna/storage"
)

// maxChunksPerTx caps the number of records written in a single
// transaction so large ingestions stay within BadgerDB's txn limits.
const maxChunksPerTx = 5000

// ChunkRepository implements storage.ChunkRepository for BadgerDB.
type ChunkRepository struct {
	backend *Backend
	idSeq   *badger.Sequence
	logger  *slog.Logger
}

var _ storage.ChunkRepository = (*ChunkRepository)(nil)

// NewChunkRepository creates a new ChunkRepository.
// Note: Returns the storage.ChunkRepository interface to enforce
// repository abstraction.
func NewChunkRepository(backend *Backend) (storage.ChunkRepository, error) {
	idSeq, err := backend.GetSequence(chunkRecordIDSeq)
	if err != nil {
		return nil, err
	}

	return &ChunkRepository{
		backend: backend,
		idSeq:   idSeq,
		logger:  slog.Default().With("component", "chunk_repository"),
	}, nil
}

// Close releases the ID sequence. The backend is owned by the caller.
func (r *ChunkRepository) Close() error {
	if r.backend.IsClosed() {
		return nil
	}
	return r.idSeq.Release()
}

// AddChunks appends one or more chunk records to storage.
// Every record receives a fresh sequence ID, so re-adding identical
// content creates new records rather than overwriting. Records are
// written in batches; a failure mid-way can leave earlier batches
// committed.
func (r *ChunkRepository) AddChunks(ctx context.Context, records ...*storage.ChunkRecord) error {
	if r.backend.IsClosed() {
		return storage.ErrStorageClosed
	}
	if len(records) == 0 {
		return nil
	}

	for _, record := range records {
		if len(record.Vector) == 0 {
			return storage.ErrEmptyVector
		}
	}

	dim, err := r.pinDimension(len(records[0].Vector))
	if err != nil {
		return err
	}
	for _, record := range records {
		if len(record.Vector) != dim {
			return storage.ErrDimensionMismatch
		}
	}

	for start := 0; start < len(records); start += maxChunksPerTx {
		end := min(start+maxChunksPerTx, len(records))
		batch := records[start:end]

		err := r.backend.WithTx(func(tx *badger.Txn) error {
			for _, record := range batch {
				// Always generate new ID from sequence
				nextID, err := r.idSeq.Next()
				if err != nil {
					return err
				}
				// BadgerDB sequences can return 0 on first call, so we skip it
				if nextID == 0 {
					nextID, err = r.idSeq.Next()
					if err != nil {
						return err
					}
				}
				record.Id = core.ID(nextID)

				key := makeChunkKey(record.Id)
				value := storage.MarshalChunkRecord(record)
				if err := tx.Set(key, value); err != nil {
					return err
				}
			}
			return tx.Commit()
		}, true)
		if err != nil {
			return err
		}

		r.logger.Debug("stored chunk batch", "count", len(batch))
	}

	return nil
}

// FindSimilar scans all chunk records and returns the limit closest to
// the query vector by cosine similarity, sorted descending by score.
func (r *ChunkRepository) FindSimilar(ctx context.Context, vector []float32, minSimilarity float32, limit int) ([]*core.SearchResult, error) {
	if r.backend.IsClosed() {
		return nil, storage.ErrStorageClosed
	}
	if len(vector) == 0 {
		return nil, storage.ErrEmptyVector
	}

	var results []*core.SearchResult

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(chunkRecordPrefix)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			item := iter.Item()

			// The sequence key shares the record prefix
			if bytes.Equal(item.Key(), []byte(chunkRecordIDSeq)) {
				continue
			}

			var record *storage.ChunkRecord
			err := item.Value(func(val []byte) error {
				var err error
				record, err = storage.UnmarshalChunkRecord(val)
				return err
			})
			if err != nil {
				return err
			}
			if record == nil || len(record.Vector) == 0 {
				continue
			}

			similarity := cosineSimilarity(vector, record.Vector)
			if similarity >= minSimilarity {
				results = append(results, &core.SearchResult{
					Chunk: record.Chunk(),
					Score: similarity,
				})
			}
		}

		return nil
	}, false)

	if err != nil {
		return nil, err
	}

	// Sort by similarity descending
	slices.SortFunc(results, func(a, b *core.SearchResult) int {
		if a.Score > b.Score {
			return -1
		}
		if a.Score < b.Score {
			return 1
		}
		return 0
	})

	if len(results) > limit {
		results = results[:limit]
	}

	return results, nil
}

// Count returns the number of chunk records in storage.
func (r *ChunkRepository) Count(ctx context.Context) (int, error) {
	if r.backend.IsClosed() {
		return 0, storage.ErrStorageClosed
	}

	var count int
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(chunkRecordPrefix)
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			if bytes.Equal(iter.Item().Key(), []byte(chunkRecordIDSeq)) {
				continue
			}
			count++
		}
		return nil
	}, false)

	return count, err
}

// pinDimension records the vector dimension on first write and returns
// the pinned value. All subsequent writes must match it.
func (r *ChunkRepository) pinDimension(dim int) (int, error) {
	var pinned int
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeDimensionKey())
		if err == nil {
			return item.Value(func(val []byte) error {
				pinned, err = storage.UnmarshalDimension(val)
				return err
			})
		}
		if err != badger.ErrKeyNotFound {
			return err
		}

		pinned = dim
		if err := tx.Set(makeDimensionKey(), storage.MarshalDimension(dim)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
	return pinned, err
}

// cosineSimilarity calculates the cosine similarity of two vectors.
// Returns 0 when either vector has zero magnitude.
func cosineSimilarity(a, b []float32) float32 {
	minLen := len(a)
	if len(b) < minLen {
		minLen = len(b)
	}

	var dot, normA, normB float64
	for i := 0; i < minLen; i++ {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return float32(dot / (math.Sqrt(normA) * math.Sqrt(normB)))
}
