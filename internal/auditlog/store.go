package auditlog

import (
	"context"
	"sync"
)

// Store persists audit records.
type Store interface {
	Save(ctx context.Context, rec Record) error
}

// MemoryStore keeps records in memory. It backs tests and deployments
// without an audit database.
type MemoryStore struct {
	mu      sync.Mutex
	records []Record
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Save implements Store.
func (s *MemoryStore) Save(_ context.Context, rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, rec)
	return nil
}

// Records returns a copy of the saved records.
func (s *MemoryStore) Records() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

var _ Store = (*MemoryStore)(nil)
