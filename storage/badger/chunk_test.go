package badger

import (
	"context"
	"testing"

	"github.com/prajna-labs/prajna/storage"
)

func TestChunkBasics(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer func() { repo.Close(); backend.Close() }()

	ctx := context.Background()

	records := []*storage.ChunkRecord{
		{Text: "The self is eternal", Source: "gita.csv", Vector: []float32{1, 0, 0}},
		{Text: "Yoga is stilling the mind", Source: "sutras.csv", Vector: []float32{0, 1, 0}},
	}

	if err := repo.AddChunks(ctx, records...); err != nil {
		t.Fatalf("Failed to add chunks: %v", err)
	}

	if records[0].Id == 0 || records[1].Id == 0 {
		t.Fatal("Expected non-zero IDs")
	}
	if records[0].Id == records[1].Id {
		t.Fatal("Expected distinct IDs")
	}

	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Failed to count chunks: %v", err)
	}
	if count != 2 {
		t.Fatalf("Expected 2 chunks, got %d", count)
	}
}

func TestChunkAppendOnly(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer func() { repo.Close(); backend.Close() }()

	ctx := context.Background()

	add := func() {
		records := []*storage.ChunkRecord{
			{Text: "identical text", Source: "same.csv", Vector: []float32{0.5, 0.5}},
			{Text: "identical text", Source: "same.csv", Vector: []float32{0.5, 0.5}},
		}
		if err := repo.AddChunks(ctx, records...); err != nil {
			t.Fatalf("Failed to add chunks: %v", err)
		}
	}

	// Adding the same content twice must double the count, not dedupe
	add()
	add()

	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Failed to count chunks: %v", err)
	}
	if count != 4 {
		t.Fatalf("Expected 4 chunks after double ingest, got %d", count)
	}
}

func TestChunkFindSimilar(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer func() { repo.Close(); backend.Close() }()

	ctx := context.Background()

	records := []*storage.ChunkRecord{
		{Text: "alpha", Source: "a.csv", Vector: []float32{1, 0, 0}},
		{Text: "beta", Source: "b.csv", Vector: []float32{0.9, 0.1, 0}},
		{Text: "gamma", Source: "c.csv", Vector: []float32{0, 0, 1}},
	}
	if err := repo.AddChunks(ctx, records...); err != nil {
		t.Fatalf("Failed to add chunks: %v", err)
	}

	results, err := repo.FindSimilar(ctx, []float32{1, 0, 0}, -1, 2)
	if err != nil {
		t.Fatalf("Failed to find similar chunks: %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}
	if results[0].Chunk.Text != "alpha" {
		t.Fatalf("Expected 'alpha' first, got '%s'", results[0].Chunk.Text)
	}
	if results[1].Chunk.Text != "beta" {
		t.Fatalf("Expected 'beta' second, got '%s'", results[1].Chunk.Text)
	}
	if results[0].Score < results[1].Score {
		t.Fatal("Expected results sorted by descending score")
	}

	// Exact match scores 1 under cosine similarity
	if results[0].Score < 0.999 {
		t.Fatalf("Expected near-perfect score for exact match, got %f", results[0].Score)
	}
}

func TestChunkFindSimilarThreshold(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer func() { repo.Close(); backend.Close() }()

	ctx := context.Background()

	records := []*storage.ChunkRecord{
		{Text: "near", Source: "a.csv", Vector: []float32{1, 0}},
		{Text: "far", Source: "b.csv", Vector: []float32{-1, 0}},
	}
	if err := repo.AddChunks(ctx, records...); err != nil {
		t.Fatalf("Failed to add chunks: %v", err)
	}

	results, err := repo.FindSimilar(ctx, []float32{1, 0}, 0.5, 10)
	if err != nil {
		t.Fatalf("Failed to find similar chunks: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("Expected 1 result above threshold, got %d", len(results))
	}
	if results[0].Chunk.Text != "near" {
		t.Fatalf("Expected 'near', got '%s'", results[0].Chunk.Text)
	}
}

func TestChunkDimensionPinning(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer func() { repo.Close(); backend.Close() }()

	ctx := context.Background()

	first := &storage.ChunkRecord{Text: "first", Source: "a.csv", Vector: []float32{1, 0, 0}}
	if err := repo.AddChunks(ctx, first); err != nil {
		t.Fatalf("Failed to add first chunk: %v", err)
	}

	wrong := &storage.ChunkRecord{Text: "wrong", Source: "b.csv", Vector: []float32{1, 0}}
	err = repo.AddChunks(ctx, wrong)
	if err != storage.ErrDimensionMismatch {
		t.Fatalf("Expected ErrDimensionMismatch, got %v", err)
	}

	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Failed to count chunks: %v", err)
	}
	if count != 1 {
		t.Fatalf("Expected 1 chunk, got %d", count)
	}
}

func TestChunkEmptyVector(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer func() { repo.Close(); backend.Close() }()

	ctx := context.Background()

	record := &storage.ChunkRecord{Text: "no vector", Source: "a.csv"}
	if err := repo.AddChunks(ctx, record); err != storage.ErrEmptyVector {
		t.Fatalf("Expected ErrEmptyVector, got %v", err)
	}

	if _, err := repo.FindSimilar(ctx, nil, -1, 5); err != storage.ErrEmptyVector {
		t.Fatalf("Expected ErrEmptyVector from search, got %v", err)
	}
}

func TestChunkLargeBatch(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer func() { repo.Close(); backend.Close() }()

	ctx := context.Background()

	// Spans two write batches
	records := make([]*storage.ChunkRecord, maxChunksPerTx+10)
	for i := range records {
		records[i] = &storage.ChunkRecord{
			Text:   "chunk",
			Source: "big.csv",
			Vector: []float32{float32(i), 1},
		}
	}
	if err := repo.AddChunks(ctx, records...); err != nil {
		t.Fatalf("Failed to add chunks: %v", err)
	}

	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Failed to count chunks: %v", err)
	}
	if count != len(records) {
		t.Fatalf("Expected %d chunks, got %d", len(records), count)
	}
}
