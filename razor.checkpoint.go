package razor

import (
	"context"
	"sort"
	"sync"
	"time"
)

// Checkpoint is a serialized scanner state at a byte offset of a document.
// An incremental driver restarts scanning from the nearest checkpoint before
// an edit instead of from the start of the document.
type Checkpoint struct {
	// Document names the source the checkpoint belongs to.
	Document string `json:"document"`

	// Offset is the byte offset the state is valid at.
	Offset int `json:"offset"`

	// State is the buffer written by Scanner.Serialize.
	State []byte `json:"state"`

	// Depth is the number of open code regions, kept for inspection.
	Depth int `json:"depth"`

	// CreatedAt is when the checkpoint was saved.
	CreatedAt time.Time `json:"created_at"`
}

// Validate checks the checkpoint identity fields.
func (c *Checkpoint) Validate() error {
	if c == nil {
		return NewCheckpointValidationError(ErrMsgNilCheckpoint, "")
	}
	if c.Document == "" {
		return NewCheckpointValidationError(ErrMsgEmptyDocument, "")
	}
	if c.Offset < 0 {
		return NewCheckpointValidationError(ErrMsgNegativeOffset, c.Document)
	}
	return nil
}

func copyCheckpoint(c *Checkpoint) *Checkpoint {
	out := *c
	out.State = append([]byte(nil), c.State...)
	return &out
}

// CheckpointStore keeps scanner checkpoints per document.
// Implementations must be safe for concurrent use.
type CheckpointStore interface {
	// Save stores a checkpoint, replacing any at the same document and
	// offset. CreatedAt is set by the store when zero.
	Save(ctx context.Context, cp *Checkpoint) error

	// Nearest returns the checkpoint with the largest offset not after
	// offset. Returns a not-found error when there is none.
	Nearest(ctx context.Context, document string, offset int) (*Checkpoint, error)

	// List returns the checkpoints of a document ordered by offset.
	List(ctx context.Context, document string) ([]*Checkpoint, error)

	// Delete removes all checkpoints of a document.
	Delete(ctx context.Context, document string) error

	// Close releases any resources held by the store.
	Close() error
}

// CheckpointDriver is a factory for checkpoint stores.
// Drivers register themselves during init().
type CheckpointDriver interface {
	// Open creates a store. The connection string is driver-specific.
	Open(connectionString string) (CheckpointStore, error)
}

// Checkpoint driver registry
var (
	checkpointDriversMu sync.RWMutex
	checkpointDrivers   = make(map[string]CheckpointDriver)
)

// RegisterCheckpointDriver registers a checkpoint driver by name.
// Panics if driver is nil or the name is already registered.
func RegisterCheckpointDriver(name string, driver CheckpointDriver) {
	checkpointDriversMu.Lock()
	defer checkpointDriversMu.Unlock()

	if driver == nil {
		panic(ErrMsgNilCheckpointDriver)
	}
	if _, exists := checkpointDrivers[name]; exists {
		panic(ErrMsgDriverRegistered + ": " + name)
	}
	checkpointDrivers[name] = driver
}

// OpenCheckpointStore opens a store using the named driver.
//
//	store, err := razor.OpenCheckpointStore("memory", "")
//	store, err := razor.OpenCheckpointStore("postgres", "postgres://...")
func OpenCheckpointStore(driverName, connectionString string) (CheckpointStore, error) {
	checkpointDriversMu.RLock()
	driver, ok := checkpointDrivers[driverName]
	checkpointDriversMu.RUnlock()

	if !ok {
		return nil, NewCheckpointDriverNotFoundError(driverName)
	}
	return driver.Open(connectionString)
}

// ListCheckpointDrivers returns the registered driver names, sorted.
func ListCheckpointDrivers() []string {
	checkpointDriversMu.RLock()
	defer checkpointDriversMu.RUnlock()

	names := make([]string, 0, len(checkpointDrivers))
	for name := range checkpointDrivers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Checkpoint captures the scanner state at offset of document.
func (s *Scanner) Checkpoint(document string, offset int) (*Checkpoint, error) {
	state, err := s.Snapshot()
	if err != nil {
		return nil, err
	}
	cp := &Checkpoint{
		Document: document,
		Offset:   offset,
		State:    state,
		Depth:    s.stack.Depth(),
	}
	if err := cp.Validate(); err != nil {
		return nil, err
	}
	return cp, nil
}

// Restore loads the state of a checkpoint.
func (s *Scanner) Restore(cp *Checkpoint) error {
	if s.closed {
		return NewScannerClosedError()
	}
	if err := cp.Validate(); err != nil {
		return err
	}
	s.Deserialize(cp.State)
	return nil
}
