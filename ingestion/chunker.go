// Copyright 2026 Prajna Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package ingestion

import (
	"github.com/tmc/langchaingo/textsplitter"

	"github.com/prajna-labs/prajna/core"
)

const (
	defaultChunkSize    = 2000
	defaultChunkOverlap = 500
)

// Chunker splits documents into overlapping text chunks suitable for
// embedding. Splitting is recursive on separators, preferring paragraph
// and sentence boundaries over hard character cuts.
type Chunker struct {
	splitter textsplitter.RecursiveCharacter
}

// NewChunker creates a Chunker with the given chunk size and overlap,
// both measured in characters. Overlap must be smaller than size.
func NewChunker(chunkSize, chunkOverlap int) (*Chunker, error) {
	if chunkSize < 1 || chunkOverlap < 0 || chunkOverlap >= chunkSize {
		return nil, ErrInvalidChunking
	}

	splitter := textsplitter.NewRecursiveCharacter(
		textsplitter.WithChunkSize(chunkSize),
		textsplitter.WithChunkOverlap(chunkOverlap),
	)

	return &Chunker{splitter: splitter}, nil
}

// Split chunks each document, carrying the document's source onto every
// chunk. Blank chunks are dropped.
func (c *Chunker) Split(docs []*core.Document) ([]*core.Chunk, error) {
	var chunks []*core.Chunk
	for _, doc := range docs {
		parts, err := c.splitter.SplitText(doc.Text)
		if err != nil {
			return nil, err
		}
		for _, part := range parts {
			if core.IsBlank(part) {
				continue
			}
			chunks = append(chunks, &core.Chunk{Text: part, Source: doc.Source})
		}
	}
	return chunks, nil
}
