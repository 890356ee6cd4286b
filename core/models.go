package core

import "time"

// ID is a unique identifier for persisted index entries.
// IDs are assigned from a database sequence at write time; they carry no
// content semantics, so ingesting the same corpus twice yields distinct IDs.
type ID uint64

// Document is one unit of raw content loaded from a source file: one row of a
// tabular file, or one page of a paginated file. Documents exist only in
// memory during ingestion and are never mutated.
type Document struct {
	Text   string
	Source string // path of the file the document came from
}

// Chunk is a bounded-length fragment of a Document's text, the unit stored in
// and retrieved from the vector index. Consecutive chunks from the same
// Document share an overlapping region of configured length.
type Chunk struct {
	Text   string
	Source string
}

// SearchResult is a retrieved chunk with its similarity score.
type SearchResult struct {
	Chunk *Chunk
	Score float32
}

// Answer is the outcome of one query-pipeline invocation.
type Answer struct {
	Text    string        // display text, translated when a non-native language is selected
	Raw     string        // the model's untranslated output
	Sources []*Chunk      // retrieved chunks the answer was conditioned on
	Elapsed time.Duration // wall time of the full pipeline call
}

// ConversationTurn is one question/answer exchange within a session.
// Turns are appended in arrival order and never deleted within a session.
type ConversationTurn struct {
	Question string
	Answer   string // stored translated, matching what was displayed
	Sources  []*Chunk
	Elapsed  time.Duration
}
