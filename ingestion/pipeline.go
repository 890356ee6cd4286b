package ingestion

import (
	"context"
	"log/slog"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/prajna-labs/prajna/ai"
	"github.com/prajna-labs/prajna/core"
	"github.com/prajna-labs/prajna/storage"
)

// defaultBatchSize caps how many chunks are embedded and stored per
// round trip.
const defaultBatchSize = 100

// Stats summarizes a completed ingestion run.
type Stats struct {
	Files     int
	Documents int
	Chunks    int
}

// Pipeline orchestrates the ingestion of source files into the vector store.
// Files are parsed concurrently; embedding and storage proceed in batches.
type Pipeline struct {
	chunkRepository storage.ChunkRepository
	embedder        ai.Embedder
	pool            *ants.Pool
	chunkSize       int
	chunkOverlap    int
	batchSize       int
	logger          *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithChunkSize sets the chunk size in characters.
// Default is 2000.
func WithChunkSize(size int) Option {
	return func(p *Pipeline) error {
		p.chunkSize = size
		return nil
	}
}

// WithChunkOverlap sets the overlap between consecutive chunks in characters.
// Default is 500.
func WithChunkOverlap(overlap int) Option {
	return func(p *Pipeline) error {
		p.chunkOverlap = overlap
		return nil
	}
}

// WithBatchSize sets how many chunks are embedded and stored per batch.
// Default is 100.
func WithBatchSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}
		p.batchSize = size
		return nil
	}
}

// WithPoolSize sets the worker pool size for concurrent file parsing.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		if p.pool != nil {
			p.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a new ingestion pipeline.
func NewPipeline(
	chunkRepository storage.ChunkRepository,
	embedder ai.Embedder,
	opts ...Option,
) (*Pipeline, error) {
	if chunkRepository == nil {
		return nil, ErrChunkRepositoryRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		chunkRepository: chunkRepository,
		embedder:        embedder,
		pool:            pool,
		chunkSize:       defaultChunkSize,
		chunkOverlap:    defaultChunkOverlap,
		batchSize:       defaultBatchSize,
		logger:          slog.Default().With("component", "ingestion"),
	}

	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	return p, nil
}

// Run ingests every supported file directly under dir: parse, chunk,
// embed, store. Any failure aborts the run; batches stored before the
// failure remain in the repository.
func (p *Pipeline) Run(ctx context.Context, dir string) (*Stats, error) {
	files, err := ListFiles(dir)
	if err != nil {
		return nil, err
	}

	docs, err := p.loadAll(files)
	if err != nil {
		return nil, err
	}

	chunker, err := NewChunker(p.chunkSize, p.chunkOverlap)
	if err != nil {
		return nil, err
	}
	chunks, err := chunker.Split(docs)
	if err != nil {
		return nil, err
	}

	p.logger.Info("ingesting",
		"files", len(files), "documents", len(docs), "chunks", len(chunks))

	for start := 0; start < len(chunks); start += p.batchSize {
		end := min(start+p.batchSize, len(chunks))
		if err := p.storeBatch(ctx, chunks[start:end]); err != nil {
			return nil, err
		}
	}

	return &Stats{
		Files:     len(files),
		Documents: len(docs),
		Chunks:    len(chunks),
	}, nil
}

// loadAll parses files concurrently on the worker pool. The first
// error wins; remaining results are discarded.
func (p *Pipeline) loadAll(files []string) ([]*core.Document, error) {
	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		firstErr error
	)
	perFile := make([][]*core.Document, len(files))

	for i, file := range files {
		wg.Add(1)
		submitErr := p.pool.Submit(func() {
			defer wg.Done()
			docs, err := LoadFile(file)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				return
			}
			perFile[i] = docs
		})
		if submitErr != nil {
			// Wait for already submitted workers before returning so
			// none of them write into perFile after we are gone.
			wg.Done()
			mu.Lock()
			if firstErr == nil {
				firstErr = submitErr
			}
			mu.Unlock()
			break
		}
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	// Preserve file order regardless of completion order
	var docs []*core.Document
	for _, fileDocs := range perFile {
		docs = append(docs, fileDocs...)
	}
	return docs, nil
}

// storeBatch embeds a batch of chunks and appends them to the repository.
func (p *Pipeline) storeBatch(ctx context.Context, chunks []*core.Chunk) error {
	texts := make([]string, len(chunks))
	for i, chunk := range chunks {
		texts[i] = chunk.Text
	}

	vectors, err := p.embedder.EmbedTexts(ctx, texts)
	if err != nil {
		return err
	}

	records := make([]*storage.ChunkRecord, len(chunks))
	for i, chunk := range chunks {
		records[i] = &storage.ChunkRecord{
			Text:   chunk.Text,
			Source: chunk.Source,
			Vector: vectors[i],
		}
	}

	return p.chunkRepository.AddChunks(ctx, records...)
}

// Release releases the worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}
