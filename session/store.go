package session

import (
	"context"
	"sync"
)

// Store is a pluggable persistence layer for the session token.
// Load returns an empty token and no error when nothing was persisted.
type Store interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
	Delete(ctx context.Context) error
}

type memoryStore struct {
	mu    sync.RWMutex
	token string
}

func (m *memoryStore) Load(_ context.Context) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token, nil
}

func (m *memoryStore) Save(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

func (m *memoryStore) Delete(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	return nil
}

// NewMemoryStore creates a process-local Store, optionally seeded with a token.
func NewMemoryStore(token ...string) Store {
	ret := &memoryStore{}
	if len(token) > 0 {
		ret.token = token[0]
	}
	return ret
}
