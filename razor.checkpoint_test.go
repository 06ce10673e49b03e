package razor

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/itsatony/go-cuserr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckpointDriverRegistry(t *testing.T) {
	drivers := ListCheckpointDrivers()
	assert.Contains(t, drivers, CheckpointDriverMemory)
	assert.Contains(t, drivers, CheckpointDriverPostgres)

	store, err := OpenCheckpointStore(CheckpointDriverMemory, "")
	require.NoError(t, err)
	assert.IsType(t, &MemoryCheckpointStore{}, store)
	require.NoError(t, store.Close())

	_, err = OpenCheckpointStore("nope", "")
	require.Error(t, err)
	var customErr *cuserr.CustomError
	require.True(t, errors.As(err, &customErr))
	driver, ok := customErr.GetMetadata(MetaKeyDriver)
	assert.True(t, ok)
	assert.Equal(t, "nope", driver)
}

func TestRegisterCheckpointDriver_Panics(t *testing.T) {
	assert.Panics(t, func() {
		RegisterCheckpointDriver("nil-driver", nil)
	})
	assert.Panics(t, func() {
		RegisterCheckpointDriver(CheckpointDriverMemory, &MemoryCheckpointDriver{})
	})
}

func TestPostgresCheckpointStore_EmptyDSN(t *testing.T) {
	_, err := NewPostgresCheckpointStore(PostgresConfig{})
	require.Error(t, err)
}

func TestDefaultPostgresConfig(t *testing.T) {
	cfg := DefaultPostgresConfig()
	assert.Equal(t, PostgresDefaultMaxOpenConns, cfg.MaxOpenConns)
	assert.Equal(t, PostgresTablePrefix, cfg.TablePrefix)
	assert.Equal(t, PostgresDefaultQueryTimeout, cfg.QueryTimeout)
	assert.False(t, cfg.AutoMigrate)

	partial := PostgresConfig{MaxOpenConns: 3}
	partial.applyDefaults()
	assert.Equal(t, 3, partial.MaxOpenConns)
	assert.Equal(t, PostgresDefaultMaxIdleConns, partial.MaxIdleConns)
}

func TestMemoryCheckpointStore_SaveAndNearest(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryCheckpointStore()
	defer store.Close()

	for _, offset := range []int{40, 0, 20} {
		require.NoError(t, store.Save(ctx, &Checkpoint{
			Document: "page.cshtml",
			Offset:   offset,
			State:    []byte{0, 0, byte(offset)},
		}))
	}

	tests := []struct {
		offset   int
		expected int
	}{
		{0, 0},
		{19, 0},
		{20, 20},
		{39, 20},
		{1000, 40},
	}
	for _, tt := range tests {
		cp, err := store.Nearest(ctx, "page.cshtml", tt.offset)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, cp.Offset)
		assert.Equal(t, byte(tt.expected), cp.State[2])
		assert.False(t, cp.CreatedAt.IsZero())
	}

	_, err := store.Nearest(ctx, "page.cshtml", -1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgCheckpointNotFound)

	_, err = store.Nearest(ctx, "other.cshtml", 10)
	assert.Error(t, err)
}

func TestMemoryCheckpointStore_ReplaceAtSameOffset(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryCheckpointStore()
	defer store.Close()

	require.NoError(t, store.Save(ctx, &Checkpoint{Document: "d", Offset: 5, State: []byte{1}}))
	require.NoError(t, store.Save(ctx, &Checkpoint{Document: "d", Offset: 5, State: []byte{2}}))

	list, err := store.List(ctx, "d")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, []byte{2}, list[0].State)
}

func TestMemoryCheckpointStore_ListAndDelete(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryCheckpointStore()
	defer store.Close()

	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	require.NoError(t, store.Save(ctx, &Checkpoint{Document: "d", Offset: 9, CreatedAt: created}))
	require.NoError(t, store.Save(ctx, &Checkpoint{Document: "d", Offset: 3}))

	list, err := store.List(ctx, "d")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, 3, list[0].Offset)
	assert.Equal(t, 9, list[1].Offset)
	assert.Equal(t, created, list[1].CreatedAt)

	require.NoError(t, store.Delete(ctx, "d"))
	list, err = store.List(ctx, "d")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestMemoryCheckpointStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryCheckpointStore()
	defer store.Close()

	cp := &Checkpoint{Document: "d", Offset: 1, State: []byte{1, 2}}
	require.NoError(t, store.Save(ctx, cp))
	cp.State[0] = 9

	got, err := store.Nearest(ctx, "d", 1)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2}, got.State)

	got.State[1] = 9
	again, err := store.Nearest(ctx, "d", 1)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2}, again.State)
}

func TestMemoryCheckpointStore_Validation(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryCheckpointStore()
	defer store.Close()

	assert.Error(t, store.Save(ctx, nil))
	assert.Error(t, store.Save(ctx, &Checkpoint{Offset: 1}))
	assert.Error(t, store.Save(ctx, &Checkpoint{Document: "d", Offset: -1}))
}

func TestMemoryCheckpointStore_Closed(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryCheckpointStore()
	require.NoError(t, store.Close())

	assert.Error(t, store.Save(ctx, &Checkpoint{Document: "d"}))
	_, err := store.Nearest(ctx, "d", 0)
	assert.Error(t, err)
	_, err = store.List(ctx, "d")
	assert.Error(t, err)
	assert.Error(t, store.Delete(ctx, "d"))
}

func TestMemoryCheckpointStore_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	store := NewMemoryCheckpointStore()
	defer store.Close()

	assert.ErrorIs(t, store.Save(ctx, &Checkpoint{Document: "d"}), context.Canceled)
	_, err := store.Nearest(ctx, "d", 0)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMemoryCheckpointStore_Concurrent(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryCheckpointStore()
	defer store.Close()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(offset int) {
			defer wg.Done()
			_ = store.Save(ctx, &Checkpoint{Document: "d", Offset: offset})
			_, _ = store.Nearest(ctx, "d", offset)
		}(i)
	}
	wg.Wait()

	list, err := store.List(ctx, "d")
	require.NoError(t, err)
	assert.Len(t, list, 20)
}

func TestScanner_CheckpointRestore(t *testing.T) {
	s := MustNew()
	defer s.Close()
	openRegions(t, s, "@{@(")

	cp, err := s.Checkpoint("page.cshtml", 4)
	require.NoError(t, err)
	assert.Equal(t, 2, cp.Depth)
	assert.Equal(t, 4, cp.Offset)

	other := MustNew()
	defer other.Close()
	require.NoError(t, other.Restore(cp))
	assert.Equal(t, s.Contexts(), other.Contexts())

	_, err = s.Checkpoint("", 4)
	assert.Error(t, err)
	assert.Error(t, other.Restore(nil))
}
