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


// Package storage provides the persistent vector index abstraction.
//
// The index stores (chunk text, embedding vector, source) triples written
// once during ingestion and read by the query pipeline. Writes append with
// no upsert or content deduplication, and batches commit independently, so
// partial writes are possible on failure; both behaviors are documented on
// ChunkRepository.
//
// # Constructor Return Type Pattern
//
// Public constructors return the storage.ChunkRepository interface to
// prevent coupling to the BadgerDB implementation:
//
//	repo, err := badger.NewChunkRepository(backend)
//
// # Usage
//
//	backend, err := badger.OpenBackend("/path/to/index", false)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	repo, err := badger.NewChunkRepository(backend)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer repo.Close()
package storage
