package web

import (
	"net/http"
	"sync"

	"github.com/google/uuid"

	"github.com/prajna-labs/prajna/chat"
)

const sessionCookie = "prajna_session"

// sessionState is one browser's conversation, language choice, and the
// last pipeline error to surface on the next page render. Handlers for
// the same cookie run concurrently, so the mutable fields are
// mutex-guarded; the chat.Session synchronizes itself.
type sessionState struct {
	session *chat.Session

	mu        sync.Mutex
	language  string
	lastError string
}

func (s *sessionState) setLanguage(language string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.language = language
}

func (s *sessionState) getLanguage() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.language
}

func (s *sessionState) setError(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastError = msg
}

// takeError returns the pending error banner and clears it, so it
// renders exactly once.
func (s *sessionState) takeError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	msg := s.lastError
	s.lastError = ""
	return msg
}

// sessionStore maps session cookies to per-browser state.
// Sessions live for the process lifetime and are never evicted.
type sessionStore struct {
	newSession func() *chat.Session

	mu       sync.Mutex
	sessions map[string]*sessionState
}

func newSessionStore(newSession func() *chat.Session) *sessionStore {
	return &sessionStore{
		newSession: newSession,
		sessions:   make(map[string]*sessionState),
	}
}

// get returns the state for the request's session cookie, creating both
// the state and the cookie as needed.
func (s *sessionStore) get(w http.ResponseWriter, r *http.Request) *sessionState {
	var id string
	if cookie, err := r.Cookie(sessionCookie); err == nil {
		id = cookie.Value
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if id != "" {
		if state, ok := s.sessions[id]; ok {
			return state
		}
	}

	id = uuid.NewString()
	state := &sessionState{
		session:  s.newSession(),
		language: defaultLanguage,
	}
	s.sessions[id] = state

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return state
}
