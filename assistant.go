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


package prajna

import (
	"log/slog"

	"github.com/prajna-labs/prajna/ai"
	"github.com/prajna-labs/prajna/ai/openai"
	"github.com/prajna-labs/prajna/chat"
	"github.com/prajna-labs/prajna/ingestion"
	"github.com/prajna-labs/prajna/quote"
	"github.com/prajna-labs/prajna/storage"
	"github.com/prajna-labs/prajna/storage/badger"
)

// Assistant bundles the vector store, AI services, and query engine
// behind one handle. It is the embedding-friendly entry point for
// applications that don't want to wire the packages individually.
type Assistant struct {
	backend   *badger.Backend
	chunkRepo storage.ChunkRepository
	provider  ai.Provider
	engine    *chat.Engine
	quotes    *quote.Service
	logger    *slog.Logger
}

// AssistantOption configures an Assistant.
type AssistantOption func(*assistantOptions)

type assistantOptions struct {
	aiConfig   *ai.Config
	provider   ai.Provider
	engineOpts []chat.Option
}

// WithAIConfig sets the AI service configuration used to build the
// default provider. Ignored when WithProvider is given.
func WithAIConfig(config *ai.Config) AssistantOption {
	return func(o *assistantOptions) {
		if config != nil {
			o.aiConfig = config
		}
	}
}

// WithProvider injects a pre-built AI provider instead of constructing
// one from the configuration.
func WithProvider(provider ai.Provider) AssistantOption {
	return func(o *assistantOptions) {
		o.provider = provider
	}
}

// WithEngineOptions passes options through to the query engine.
func WithEngineOptions(opts ...chat.Option) AssistantOption {
	return func(o *assistantOptions) {
		o.engineOpts = append(o.engineOpts, opts...)
	}
}

// NewAssistant opens the vector store at filePath and wires the query
// pipeline. The translator and quote searcher may be nil; translation
// then only supports the native language and the quote service serves
// its fallback message.
func NewAssistant(filePath string, translator ai.Translator, searcher ai.QuoteSearcher, opts ...AssistantOption) (*Assistant, error) {
	options := &assistantOptions{
		aiConfig: ai.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(filePath, false)
	if err != nil {
		return nil, err
	}

	chunkRepo, err := badger.NewChunkRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	provider := options.provider
	if provider == nil {
		provider, err = openai.NewProvider(options.aiConfig)
		if err != nil {
			chunkRepo.Close()
			backend.Close()
			return nil, err
		}
	}

	engine, err := chat.NewEngine(chunkRepo, provider, translator, options.engineOpts...)
	if err != nil {
		provider.Close()
		chunkRepo.Close()
		backend.Close()
		return nil, err
	}

	return &Assistant{
		backend:   backend,
		chunkRepo: chunkRepo,
		provider:  provider,
		engine:    engine,
		quotes:    quote.NewService(searcher),
		logger:    slog.Default(),
	}, nil
}

// Close releases the AI provider and the vector store.
func (a *Assistant) Close() error {
	if err := a.provider.Close(); err != nil {
		a.logger.Error("error closing AI provider", "err", err)
	}

	if err := a.chunkRepo.Close(); err != nil {
		a.logger.Error("error closing chunk repository", "err", err)
		return err
	}
	if err := a.backend.Close(); err != nil {
		a.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

// ChunkRepository exposes the underlying vector store.
func (a *Assistant) ChunkRepository() storage.ChunkRepository {
	return a.chunkRepo
}

// Engine exposes the query engine.
func (a *Assistant) Engine() *chat.Engine {
	return a.engine
}

// Quotes exposes the daily quote service. It is never nil; without a
// searcher it serves the fallback message.
func (a *Assistant) Quotes() *quote.Service {
	return a.quotes
}

// NewSession starts a fresh conversation against the engine.
func (a *Assistant) NewSession() *chat.Session {
	return chat.NewSession(a.engine)
}

// NewIngestionPipeline builds an ingestion pipeline writing into this
// assistant's vector store.
func (a *Assistant) NewIngestionPipeline(opts ...ingestion.Option) (*ingestion.Pipeline, error) {
	return ingestion.NewPipeline(a.chunkRepo, a.provider.Embedder(), opts...)
}
