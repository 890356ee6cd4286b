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


// Package openai implements the ai.Embedder, ai.ChatModel, and ai.Provider
// interfaces against OpenAI-compatible HTTP APIs.
//
// Answer generation targets the hosted Groq endpoint by default; embeddings
// target any OpenAI-compatible embedding server (a local Ollama instance by
// default). Both clients retry transient failures with exponential backoff
// before surfacing an error.
package openai
