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


// Package ai provides abstractions for the external AI services used by
// prajna.
//
// This package defines interfaces for text embeddings, chat-completion answer
// generation, answer translation, and the web search behind the daily quote.
// It follows the dependency inversion principle: the ingestion pipeline, the
// chat engine, and the web layer all depend on these abstractions rather than
// on concrete API clients.
//
// # Implementation Packages
//
//   - ai/openai: embeddings and chat completion via OpenAI-compatible APIs
//     (a hosted Groq endpoint for generation, any compatible server for
//     embeddings)
//   - ai/google: translation (Cloud Translation v2) and web search
//     (Custom Search v1)
//   - ai/mock: deterministic test doubles for unit testing without external
//     services
//
// # Constructor Return Type Pattern
//
// Public constructors (openai.NewProvider, google.NewTranslator, etc.) return
// INTERFACE types to enforce abstraction. Test utility constructors in
// ai/mock return CONCRETE types so tests can inject behavior and assert on
// call counts.
package ai
