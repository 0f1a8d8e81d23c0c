package catalog

import (
	"sync"

	"github.com/google/uuid"
)

// IDSource produces unique ids for new products and sections.
//
// Injected into Catalog and the importer so tests can substitute a
// deterministic sequence.
type IDSource interface {
	NewID() string
}

// UUIDv7Source generates time-sortable UUIDv7 ids.
//
// UUIDv7 embeds a timestamp in the most significant bits, so ids sort
// by creation time. Helpful when eyeballing persisted catalogs.
//
// Thread-safety: UUIDv7Source is stateless and safe for concurrent use.
type UUIDv7Source struct{}

// NewID creates a new UUIDv7 and returns it as a hyphenated string.
//
// Panics if UUID generation fails (should never happen in practice).
func (UUIDv7Source) NewID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// FixedIDSource returns predetermined ids for testing.
//
// Enables deterministic catalogs and golden-file comparison. Tests
// provide a known sequence and verify exact output.
//
// Thread-safety: safe for concurrent use via internal mutex.
type FixedIDSource struct {
	mu  sync.Mutex
	ids []string
	idx int
}

// NewFixedIDSource creates a source that returns ids in order.
//
// Example:
//
//	ids := NewFixedIDSource("p-1", "p-2")
//	ids.NewID() // "p-1"
//	ids.NewID() // "p-2"
//	ids.NewID() // panic: all ids exhausted
func NewFixedIDSource(ids ...string) *FixedIDSource {
	return &FixedIDSource{ids: ids}
}

// NewID returns the next predetermined id.
//
// Panics when the sequence is exhausted. Fail-fast to catch test
// misconfiguration (test created more entities than expected).
func (s *FixedIDSource) NewID() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.idx >= len(s.ids) {
		panic("FixedIDSource: all ids exhausted")
	}
	id := s.ids[s.idx]
	s.idx++
	return id
}
