// Package ingestion turns source files into embedded chunks in the vector store.
//
// The Pipeline type manages the ingestion workflow:
//   - Listing and parsing CSV, XLSX, and PDF files from a directory
//   - Splitting documents into overlapping chunks
//   - Embedding chunk batches and appending them to storage
//
// File parsing is performed concurrently using a worker pool. Any
// parse, embed, or storage error aborts the run.
package ingestion
