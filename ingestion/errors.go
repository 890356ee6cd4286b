package ingestion

import "errors"

var (
	// ErrChunkRepositoryRequired is returned when a chunk repository is not provided.
	ErrChunkRepositoryRequired = errors.New("chunk repository required")

	// ErrEmbedderRequired is returned when an embedder is not provided.
	ErrEmbedderRequired = errors.New("embedder required")

	// ErrUnsupportedFormat is returned for files the loader cannot parse.
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// ErrInvalidChunking is returned when chunk overlap is not smaller than chunk size.
	ErrInvalidChunking = errors.New("chunk overlap must be smaller than chunk size")
)
