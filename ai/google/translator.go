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
	"fmt"
	"log/slog"

	"github.com/prajna-labs/prajna/ai"
	"google.golang.org/api/option"
	translate "google.golang.org/api/translate/v2"
)

var (
	// ErrUnknownLanguage indicates a target language with no known ISO code.
	ErrUnknownLanguage = errors.New("unknown target language")

	// ErrEmptyTranslation indicates the service returned no translations.
	ErrEmptyTranslation = errors.New("translation service returned no result")
)

// Translator implements ai.Translator using the Cloud Translation v2 API.
type Translator struct {
	svc    *translate.Service
	logger *slog.Logger
}

// NewTranslator creates a translator authenticated with an API key.
//
// Returns ai.Translator interface to enforce abstraction.
func NewTranslator(ctx context.Context, apiKey string) (ai.Translator, error) {
	if apiKey == "" {
		return nil, errors.New("translator: API key is required")
	}

	svc, err := translate.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	return &Translator{
		svc:    svc,
		logger: slog.Default().With("component", "google-translator"),
	}, nil
}

// Translate translates text from the native language into the language
// identified by its display name.
func (t *Translator) Translate(ctx context.Context, text, language string) (string, error) {
	code, ok := ai.LanguageCode(language)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownLanguage, language)
	}

	t.logger.Debug("translating answer", "target", code, "length", len(text))

	resp, err := t.svc.Translations.List([]string{text}, code).
		Source(ai.NativeLanguageCode).
		Format("text").
		Context(ctx).
		Do()
	if err != nil {
		t.logger.Error("translation call failed", "target", code, "err", err)
		return "", err
	}

	if len(resp.Translations) == 0 {
		return "", ErrEmptyTranslation
	}

	return resp.Translations[0].TranslatedText, nil
}
