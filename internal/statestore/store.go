// Package statestore holds the persistent traversal state of every loop
// instance for the duration of a session.
//
// Each instance address owns exactly one loop.State: created on first use,
// mutated in place on every invocation, discarded when the session ends.
// Nothing is persisted to disk; a restart starts every loop from its initial
// state. Access is guarded by a mutex so callers may invoke instances from
// more than one goroutine.
package statestore

import (
	"sync"

	"github.com/vk/loopgridgo/internal/loop"
)

// Store maps instance addresses (e.g. "loop.sampler_loop.a") to their
// traversal state.
type Store struct {
	mu     sync.Mutex
	states map[string]*loop.State
}

// New creates a new, empty state store.
func New() *Store {
	return &Store{states: make(map[string]*loop.State)}
}

// GetOrCreate returns the state owned by the given instance, creating the
// initial state (index 0, forward) on first use.
func (s *Store) GetOrCreate(id string) *loop.State {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.states[id]
	if !ok {
		st = loop.NewState()
		s.states[id] = st
	}
	return st
}
