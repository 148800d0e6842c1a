package storage

import (
	"io"
	"log/slog"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

// SetupTestStore initializes an in-memory Badger instance for testing
func SetupTestStore(t *testing.T) Store {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})
	return NewStore(db, slog.New(slog.NewTextHandler(io.Discard, nil)), DefaultRetries)
}

func TestEscape_KeepsSegmentsApart(t *testing.T) {
	req := require.New(t)

	// Given two user/recipe pairs that would collide once joined with ":"
	first := activeRatingKey("a:b", "c")
	second := activeRatingKey("a", "b:c")

	// Then their keys differ
	req.NotEqual(first, second)
	req.Equal("c", lastSegment([]byte("x:y:c")))
	req.Equal("plain", lastSegment([]byte("plain")))
}

func TestStore_RunGC_InMemory(t *testing.T) {
	store := SetupTestStore(t)

	// In-memory stores have no value log to compact
	require.NoError(t, store.RunGC(0.5))
}
