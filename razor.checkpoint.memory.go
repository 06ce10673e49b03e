package razor

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryCheckpointStore is an in-memory CheckpointStore.
// All data is lost when the process terminates.
type MemoryCheckpointStore struct {
	mu     sync.RWMutex
	docs   map[string][]*Checkpoint // document -> checkpoints sorted by offset
	closed bool
}

// MemoryCheckpointDriver is the driver for MemoryCheckpointStore.
type MemoryCheckpointDriver struct{}

func init() {
	RegisterCheckpointDriver(CheckpointDriverMemory, &MemoryCheckpointDriver{})
}

// Open creates a new MemoryCheckpointStore. The connection string is ignored.
func (d *MemoryCheckpointDriver) Open(connectionString string) (CheckpointStore, error) {
	return NewMemoryCheckpointStore(), nil
}

// NewMemoryCheckpointStore creates an empty in-memory store.
func NewMemoryCheckpointStore() *MemoryCheckpointStore {
	return &MemoryCheckpointStore{
		docs: make(map[string][]*Checkpoint),
	}
}

// Save stores a copy of cp.
func (s *MemoryCheckpointStore) Save(ctx context.Context, cp *Checkpoint) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := cp.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return NewStoreClosedError()
	}

	stored := copyCheckpoint(cp)
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}

	list := s.docs[cp.Document]
	i := sort.Search(len(list), func(i int) bool { return list[i].Offset >= cp.Offset })
	if i < len(list) && list[i].Offset == cp.Offset {
		list[i] = stored
		return nil
	}
	list = append(list, nil)
	copy(list[i+1:], list[i:])
	list[i] = stored
	s.docs[cp.Document] = list
	return nil
}

// Nearest returns the last checkpoint at or before offset.
func (s *MemoryCheckpointStore) Nearest(ctx context.Context, document string, offset int) (*Checkpoint, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, NewStoreClosedError()
	}

	list := s.docs[document]
	i := sort.Search(len(list), func(i int) bool { return list[i].Offset > offset })
	if i == 0 {
		return nil, NewCheckpointNotFoundError(document, offset)
	}
	return copyCheckpoint(list[i-1]), nil
}

// List returns the checkpoints of document ordered by offset.
func (s *MemoryCheckpointStore) List(ctx context.Context, document string) ([]*Checkpoint, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, NewStoreClosedError()
	}

	list := s.docs[document]
	out := make([]*Checkpoint, len(list))
	for i, cp := range list {
		out[i] = copyCheckpoint(cp)
	}
	return out, nil
}

// Delete removes the checkpoints of document.
func (s *MemoryCheckpointStore) Delete(ctx context.Context, document string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return NewStoreClosedError()
	}

	delete(s.docs, document)
	return nil
}

// Close releases the stored checkpoints.
func (s *MemoryCheckpointStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	s.docs = nil
	return nil
}
