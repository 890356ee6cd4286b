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
	"strings"
	"sync"

	"github.com/prajna-labs/prajna/core"
)

// Session holds one user's conversation state. A session must be
// started with a name before questions are accepted; blank input is
// ignored at both stages. Sessions are safe for concurrent use.
type Session struct {
	engine *Engine

	mu      sync.Mutex
	name    string
	started bool
	turns   []*core.ConversationTurn
}

// NewSession creates a session backed by the given engine.
func NewSession(engine *Engine) *Session {
	return &Session{engine: engine}
}

// Start begins the conversation for the named user. Whitespace around
// the name is trimmed; a blank name leaves the session unstarted.
func (s *Session) Start(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = name
	s.started = true
	return nil
}

// Started reports whether the session has been started.
func (s *Session) Started() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.started
}

// Name returns the user's name, or "" before Start.
func (s *Session) Name() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.name
}

// History returns the session's turns in arrival order.
// The returned slice must not be modified.
func (s *Session) History() []*core.ConversationTurn {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.turns
}

// Ask submits a question in the given language and appends the
// exchange to the history. A blank question, or a question before
// Start, is a no-op returning (nil, nil). On pipeline error nothing is
// appended.
func (s *Session) Ask(ctx context.Context, question, language string) (*core.Answer, error) {
	question = strings.TrimSpace(question)

	s.mu.Lock()
	if !s.started || question == "" {
		s.mu.Unlock()
		return nil, nil
	}
	history := s.turns
	s.mu.Unlock()

	answer, err := s.engine.Ask(ctx, history, question, language)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.turns = append(s.turns, &core.ConversationTurn{
		Question: question,
		Answer:   answer.Text,
		Sources:  answer.Sources,
		Elapsed:  answer.Elapsed,
	})
	s.mu.Unlock()

	return answer, nil
}
