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


// Package quote picks a daily wisdom link from web search results.
package quote

import (
	"context"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/prajna-labs/prajna/ai"
)

const (
	searchQuery = "Bhagavad Gita inspirational quotes"
	maxResults  = 5

	// fallbackQuote is shown when search fails or returns nothing.
	fallbackQuote = "Explore the Bhagavad Gita and Yoga Sutras for timeless wisdom!"
)

// Service fetches quote links and picks one at random per request.
// Search failures degrade to a fixed fallback message rather than an error.
type Service struct {
	searcher ai.QuoteSearcher
	logger   *slog.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

// Option configures a Service.
type Option func(*Service)

// WithRand sets the random source used to pick among results.
// Default is a time-seeded source.
func WithRand(rng *rand.Rand) Option {
	return func(s *Service) {
		if rng != nil {
			s.rng = rng
		}
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewService creates a quote service backed by the given searcher.
// A nil searcher is allowed; the service then always serves the
// fallback message.
func NewService(searcher ai.QuoteSearcher, opts ...Option) *Service {
	s := &Service{
		searcher: searcher,
		logger:   slog.Default().With("component", "quote"),
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Daily returns one quote link chosen uniformly from the top search
// results, or the fallback message when search fails or finds nothing.
func (s *Service) Daily(ctx context.Context) string {
	if s.searcher == nil {
		return fallbackQuote
	}

	results, err := s.searcher.Search(ctx, searchQuery, maxResults)
	if err != nil {
		s.logger.Warn("quote search failed", "err", err)
		return fallbackQuote
	}
	if len(results) == 0 {
		return fallbackQuote
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return results[s.rng.Intn(len(results))]
}
