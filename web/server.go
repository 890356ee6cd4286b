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


package web

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/prajna-labs/prajna/ai"
	"github.com/prajna-labs/prajna/chat"
	"github.com/prajna-labs/prajna/core"
	"github.com/prajna-labs/prajna/quote"
)

//go:embed templates
var templateFS embed.FS

const defaultLanguage = ai.NativeLanguage

// queryErrorBanner is shown when the pipeline fails; the conversation
// continues from the same state on the next question.
const queryErrorBanner = "Something went wrong while answering. Please try again."

var (
	// ErrNilEngine is returned by NewServer when no chat engine is given.
	ErrNilEngine = errors.New("web: chat engine is required")

	// ErrNilQuoteService is returned by NewServer when no quote service
	// is given.
	ErrNilQuoteService = errors.New("web: quote service is required")
)

// Server serves the conversational web UI: a name gate, the question
// form, the translated conversation history, and a daily quote banner.
type Server struct {
	engine *chat.Engine
	quotes *quote.Service
	store  *sessionStore
	router chi.Router
	tmpl   *template.Template
	logger *slog.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewServer creates the web server. Both the engine and the quote
// service are required; build the quote service without a searcher to
// serve its static fallback.
func NewServer(engine *chat.Engine, quotes *quote.Service, opts ...Option) (*Server, error) {
	if engine == nil {
		return nil, ErrNilEngine
	}
	if quotes == nil {
		return nil, ErrNilQuoteService
	}

	tmpl, err := template.New("").Funcs(template.FuncMap{
		"seconds": func(turn *core.ConversationTurn) string {
			return fmt.Sprintf("%.2f", turn.Elapsed.Seconds())
		},
		"inc": func(i int) int { return i + 1 },
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	s := &Server{
		engine: engine,
		quotes: quotes,
		tmpl:   tmpl,
		logger: slog.Default().With("component", "web"),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.store = newSessionStore(func() *chat.Session {
		return chat.NewSession(engine)
	})

	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Get("/", s.handleIndex)
	router.Post("/start", s.handleStart)
	router.Post("/ask", s.handleAsk)
	s.router = router

	return s, nil
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// pageData is the template model for the index page.
type pageData struct {
	Name        string
	Started     bool
	Quote       string
	QuoteIsLink bool
	Languages   []string
	Language    string
	History     []*core.ConversationTurn
	Error       string
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	state := s.store.get(w, r)

	quoteText := s.quotes.Daily(r.Context())

	data := &pageData{
		Name:        state.session.Name(),
		Started:     state.session.Started(),
		Quote:       quoteText,
		QuoteIsLink: strings.HasPrefix(quoteText, "http"),
		Languages:   ai.Languages,
		Language:    state.getLanguage(),
		History:     state.session.History(),
		Error:       state.takeError(),
	}

	if err := s.tmpl.ExecuteTemplate(w, "index.html", data); err != nil {
		s.logger.Error("error rendering page", "err", err)
	}
}

func (s *Server) handleStart(w http.ResponseWriter, r *http.Request) {
	state := s.store.get(w, r)

	name := r.FormValue("name")
	if err := state.session.Start(name); err != nil {
		// A blank name leaves the gate in place, matching the form's behavior
		s.logger.Debug("ignored empty name")
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleAsk(w http.ResponseWriter, r *http.Request) {
	state := s.store.get(w, r)

	if language := r.FormValue("language"); language != "" {
		if _, ok := ai.LanguageCode(language); ok {
			state.setLanguage(language)
		}
	}

	question := r.FormValue("question")
	if _, err := state.session.Ask(r.Context(), question, state.getLanguage()); err != nil {
		s.logger.Error("error answering question", "err", err)
		state.setError(queryErrorBanner)
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
