package session

import (
	"context"
	"errors"
	"log"
	"sync"

	"golang.org/x/oauth2"
)

// ErrNoCredential is returned by Token when no credential is held.
var ErrNoCredential = errors.New("no credential")

// Session is the single source of truth for the active bearer credential.
type Session struct {
	mu       sync.RWMutex
	token    string
	store    Store
	logger   *log.Logger
	restored bool
}

// Option configures a Session.
type Option func(*Session)

// WithStore sets the persistence store.
func WithStore(store Store) Option {
	return func(s *Session) {
		s.store = store
	}
}

// WithLogger sets the logger used for persistence warnings.
func WithLogger(logger *log.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// New creates a session backed by an in-memory store unless WithStore is given.
func New(options ...Option) *Session {
	ret := &Session{store: NewMemoryStore(), logger: log.Default()}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}

// Restore loads the persisted token once; later calls are no-ops.
func (s *Session) Restore(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.restored {
		return
	}
	s.restored = true
	token, err := s.store.Load(ctx)
	if err != nil {
		s.warnf("unable to restore credential: %v", err)
		return
	}
	if s.token == "" {
		s.token = token
	}
}

// Get returns the current token or an empty string.
func (s *Session) Get() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Authenticated reports whether a credential is present. It does not check validity.
func (s *Session) Authenticated() bool {
	return s.Get() != ""
}

// Set replaces the credential. An empty token clears the session.
// Persistence failures are logged, the in-memory value is always updated.
func (s *Session) Set(ctx context.Context, token string) {
	if token == "" {
		s.Clear(ctx)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.restored = true
	if err := s.store.Save(ctx, token); err != nil {
		s.warnf("unable to persist credential: %v", err)
	}
}

// Clear removes the credential from memory and from the store.
func (s *Session) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.restored = true
	if err := s.store.Delete(ctx); err != nil {
		s.warnf("unable to remove persisted credential: %v", err)
	}
}

// Token implements oauth2.TokenSource over the current credential.
func (s *Session) Token() (*oauth2.Token, error) {
	token := s.Get()
	if token == "" {
		return nil, ErrNoCredential
	}
	return &oauth2.Token{AccessToken: token, TokenType: "Bearer"}, nil
}

func (s *Session) warnf(format string, args ...interface{}) {
	if s.logger == nil {
		return
	}
	s.logger.Printf("[portal/session] warning: "+format, args...)
}
