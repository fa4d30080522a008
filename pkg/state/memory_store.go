package state

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	optioneer "github.com/goliatone/go-optioneer"
)

// MemoryStore is a minimal in-memory Store implementation. It makes no
// persistence assumptions; contents vanish with the process.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]memoryRecord
}

type memoryRecord struct {
	snapshot optioneer.Snapshot
	meta     Meta
}

// NewMemoryStore constructs an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: map[string]memoryRecord{}}
}

// Load returns the snapshot saved under name, if any.
func (s *MemoryStore) Load(_ context.Context, name string) (optioneer.Snapshot, Meta, bool, error) {
	if name == "" {
		return optioneer.Snapshot{}, Meta{}, false, ErrNameRequired
	}
	s.mu.RLock()
	record, ok := s.records[name]
	s.mu.RUnlock()
	if !ok {
		return optioneer.Snapshot{}, Meta{}, false, nil
	}
	return record.snapshot, cloneMeta(record.meta), true, nil
}

// Save stores the snapshot under name, stamping metadata when missing.
func (s *MemoryStore) Save(_ context.Context, name string, snapshot optioneer.Snapshot, meta Meta) (Meta, error) {
	if name == "" {
		return Meta{}, ErrNameRequired
	}
	if meta.SnapshotID == "" {
		meta.SnapshotID = uuid.NewString()
	}
	if meta.UpdatedAt.IsZero() {
		meta.UpdatedAt = time.Now()
	}
	s.mu.Lock()
	s.records[name] = memoryRecord{snapshot: snapshot, meta: cloneMeta(meta)}
	s.mu.Unlock()
	return cloneMeta(meta), nil
}

// Names returns the saved snapshot names, sorted.
func (s *MemoryStore) Names(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.records))
	for name := range s.records {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func cloneMeta(meta Meta) Meta {
	out := meta
	if meta.Extra == nil {
		return out
	}
	out.Extra = make(map[string]string, len(meta.Extra))
	for k, v := range meta.Extra {
		out.Extra[k] = v
	}
	return out
}
