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


package chat

import (
	"context"
	"log/slog"
	"time"

	"github.com/prajna-labs/prajna/ai"
	"github.com/prajna-labs/prajna/core"
	"github.com/prajna-labs/prajna/storage"
)

const (
	defaultTopK          = 4
	defaultHistoryWindow = 10

	// noAnswerFallback is shown when the model returns nothing.
	noAnswerFallback = "No answer found."
)

// Engine runs the retrieval-augmented query pipeline: embed the
// question, retrieve the closest chunks, generate an answer conditioned
// on them, and translate the result when a non-native language is
// selected.
type Engine struct {
	chunkRepository storage.ChunkRepository
	embedder        ai.Embedder
	chatModel       ai.ChatModel
	translator      ai.Translator
	topK            int
	historyWindow   int
	logger          *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine) error

// WithTopK sets how many chunks are retrieved per question.
// Default is 4.
func WithTopK(k int) Option {
	return func(e *Engine) error {
		if k < 1 {
			k = 1
		}
		e.topK = k
		return nil
	}
}

// WithHistoryWindow sets how many recent turns are replayed to the model.
// Default is 10. Zero replays the full history.
func WithHistoryWindow(turns int) Option {
	return func(e *Engine) error {
		if turns < 0 {
			turns = 0
		}
		e.historyWindow = turns
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) error {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
		return nil
	}
}

// NewEngine creates a new query engine. The translator may be nil when
// only the native language is used.
func NewEngine(
	chunkRepository storage.ChunkRepository,
	provider ai.Provider,
	translator ai.Translator,
	opts ...Option,
) (*Engine, error) {
	if chunkRepository == nil {
		return nil, ErrChunkRepositoryRequired
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}

	e := &Engine{
		chunkRepository: chunkRepository,
		embedder:        provider.Embedder(),
		chatModel:       provider.ChatModel(),
		translator:      translator,
		topK:            defaultTopK,
		historyWindow:   defaultHistoryWindow,
		logger:          slog.Default().With("component", "chat_engine"),
	}

	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}

	return e, nil
}

// Ask answers a question against the indexed corpus. The history is
// replayed to the model so follow-up questions resolve correctly.
// When language is not the native language, the displayed text is
// translated and the raw model output is kept alongside it.
func (e *Engine) Ask(ctx context.Context, history []*core.ConversationTurn, question, language string) (*core.Answer, error) {
	start := time.Now()

	embedding, err := e.embedder.EmbedQuery(ctx, question)
	if err != nil {
		e.logger.Error("error embedding question", "err", err)
		return nil, err
	}

	// No similarity floor: the closest chunks are always used
	results, err := e.chunkRepository.FindSimilar(ctx, embedding, -1, e.topK)
	if err != nil {
		e.logger.Error("error retrieving chunks", "err", err)
		return nil, err
	}

	messages := buildMessages(results, history, question, e.historyWindow)
	raw, err := e.chatModel.GenerateAnswer(ctx, messages)
	if err != nil {
		e.logger.Error("error generating answer", "err", err)
		return nil, err
	}
	if core.IsBlank(raw) {
		raw = noAnswerFallback
	}

	text := raw
	if e.translator != nil && !ai.IsNativeLanguage(language) {
		text, err = e.translator.Translate(ctx, raw, language)
		if err != nil {
			e.logger.Error("error translating answer", "language", language, "err", err)
			return nil, err
		}
	}

	sources := make([]*core.Chunk, len(results))
	for i, result := range results {
		sources[i] = result.Chunk
	}

	return &core.Answer{
		Text:    text,
		Raw:     raw,
		Sources: sources,
		Elapsed: time.Since(start),
	}, nil
}
