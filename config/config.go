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


// Package config loads the JSON configuration file holding provider
// credentials. A missing file or a missing required key is a startup error;
// the process must not come up without them.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

var (
	// ErrMissingGroqKey indicates the chat-completion API key is absent.
	ErrMissingGroqKey = errors.New("config: GROQ_API_KEY is required")

	// ErrMissingGoogleKey indicates the Google API key is absent.
	ErrMissingGoogleKey = errors.New("config: GOOGLE_API_KEY is required")

	// ErrMissingSearchEngineID indicates the search engine ID is absent.
	ErrMissingSearchEngineID = errors.New("config: SEARCH_ENGINE_ID is required")
)

// Config holds credentials for the external providers. Key names match the
// JSON configuration file.
type Config struct {
	// GroqAPIKey authenticates against the hosted chat-completion endpoint.
	GroqAPIKey string `json:"GROQ_API_KEY"`

	// GoogleAPIKey authenticates translation and web-search calls.
	GoogleAPIKey string `json:"GOOGLE_API_KEY"`

	// SearchEngineID is the programmable search engine used for quotes.
	SearchEngineID string `json:"SEARCH_ENGINE_ID"`
}

// Load reads and validates the configuration file at path.
// The chat-completion key is always required; the Google credentials are
// checked separately via RequireSearch since ingestion does not need them.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	if cfg.GroqAPIKey == "" {
		return nil, ErrMissingGroqKey
	}

	return &cfg, nil
}

// RequireSearch validates the keys needed for translation and the daily
// quote. The serving surface refuses to start without them.
func (c *Config) RequireSearch() error {
	if c.GoogleAPIKey == "" {
		return ErrMissingGoogleKey
	}
	if c.SearchEngineID == "" {
		return ErrMissingSearchEngineID
	}
	return nil
}
