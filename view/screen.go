package view

import (
	"context"
	"sync"
)

// State is a snapshot of a screen.
type State[T any] struct {
	Value   T
	Err     error
	Loading bool
}

// Screen holds the state of one mounted view. Results of a load that finished
// after Unmount, or after a newer load started, are discarded.
type Screen[T any] struct {
	mu         sync.Mutex
	generation uint64
	mounted    bool
	state      State[T]
}

// Mount activates the screen and resets its state.
func (s *Screen[T]) Mount() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	s.mounted = true
	s.state = State[T]{}
}

// Unmount deactivates the screen; in-flight loads will be dropped.
func (s *Screen[T]) Unmount() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	s.mounted = false
}

// Load runs fn and stores its outcome. It reports whether the outcome was applied.
func (s *Screen[T]) Load(ctx context.Context, fn func(ctx context.Context) (T, error)) bool {
	s.mu.Lock()
	if !s.mounted {
		s.mu.Unlock()
		return false
	}
	s.generation++
	generation := s.generation
	s.state.Loading = true
	s.mu.Unlock()

	value, err := fn(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.mounted || generation != s.generation {
		return false
	}
	s.state = State[T]{Value: value, Err: err}
	return true
}

// State returns the current snapshot.
func (s *Screen[T]) State() State[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Mounted reports whether the screen is active.
func (s *Screen[T]) Mounted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mounted
}

func NewScreen[T any]() *Screen[T] {
	ret := &Screen[T]{}
	ret.Mount()
	return ret
}
