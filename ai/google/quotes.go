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


package google

import (
	"context"
	"errors"
	"log/slog"

	"github.com/prajna-labs/prajna/ai"
	customsearch "google.golang.org/api/customsearch/v1"
	"google.golang.org/api/option"
)

// QuoteSearcher implements ai.QuoteSearcher using the Custom Search v1 API.
type QuoteSearcher struct {
	svc      *customsearch.Service
	engineID string
	logger   *slog.Logger
}

// NewQuoteSearcher creates a web searcher authenticated with an API key and
// bound to a programmable search engine ID.
//
// Returns ai.QuoteSearcher interface to enforce abstraction.
func NewQuoteSearcher(ctx context.Context, apiKey, engineID string) (ai.QuoteSearcher, error) {
	if apiKey == "" {
		return nil, errors.New("quote searcher: API key is required")
	}
	if engineID == "" {
		return nil, errors.New("quote searcher: search engine ID is required")
	}

	svc, err := customsearch.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	return &QuoteSearcher{
		svc:      svc,
		engineID: engineID,
		logger:   slog.Default().With("component", "google-search"),
	}, nil
}

// Search returns up to max result links for the query, in rank order.
func (s *QuoteSearcher) Search(ctx context.Context, query string, max int) ([]string, error) {
	s.logger.Debug("issuing web search", "query", query, "max", max)

	resp, err := s.svc.Cse.List().
		Q(query).
		Cx(s.engineID).
		Num(int64(max)).
		Context(ctx).
		Do()
	if err != nil {
		s.logger.Error("web search failed", "err", err)
		return nil, err
	}

	links := make([]string, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.Link != "" {
			links = append(links, item.Link)
		}
	}
	return links, nil
}
