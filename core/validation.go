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


package core

import (
	"fmt"
	"strings"
)

// ValidateDocument validates a Document according to domain rules.
//
// Validation rules:
//   - Text must contain at least one non-whitespace character
//
// NOT validated:
//   - Source (a document may come from an unnamed reader)
func ValidateDocument(doc *Document) error {
	if doc == nil {
		return fmt.Errorf("%w: document is nil", ErrInvalidDocument)
	}
	if IsBlank(doc.Text) {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, ErrEmptyText)
	}
	return nil
}

// ValidateChunk validates a Chunk according to domain rules.
//
// Validation rules:
//   - Text must contain at least one non-whitespace character
func ValidateChunk(chunk *Chunk) error {
	if chunk == nil {
		return fmt.Errorf("%w: chunk is nil", ErrInvalidChunk)
	}
	if IsBlank(chunk.Text) {
		return fmt.Errorf("%w: %w", ErrInvalidChunk, ErrEmptyText)
	}
	return nil
}

// IsBlank reports whether s is empty or consists only of whitespace.
// Blank user submissions are silently ignored rather than rejected with an
// error, so this check is shared by the session layer and the validators.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
