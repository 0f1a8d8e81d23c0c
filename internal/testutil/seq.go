// Package testutil provides deterministic helpers shared by tests.
package testutil

import (
	"fmt"
	"sync"
)

// SequentialIDSource is a thread-safe monotonic id source for tests.
//
// Unlike catalog.FixedIDSource it never exhausts, which suits scenario
// runs where the number of created entities is data-driven. Ids are
// "<prefix>-1", "<prefix>-2", ... in creation order, so golden files
// stay stable across runs.
//
// Thread-safety: all methods are safe for concurrent use via internal mutex.
type SequentialIDSource struct {
	mu     sync.Mutex
	prefix string
	seq    int64
}

// NewSequentialIDSource creates a source starting at 1.
//
// The first call to NewID returns "<prefix>-1".
func NewSequentialIDSource(prefix string) *SequentialIDSource {
	return &SequentialIDSource{prefix: prefix}
}

// NewID increments and returns the next id.
func (s *SequentialIDSource) NewID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	return fmt.Sprintf("%s-%d", s.prefix, s.seq)
}

// Count returns how many ids have been handed out.
func (s *SequentialIDSource) Count() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seq
}
