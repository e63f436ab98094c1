package benchmark

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	benchErrors "polybench/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "nested", "history.json")
	store := NewFileStore(path)

	// Test LoadAll on empty
	runs, err := store.LoadAll()
	assert.NoError(t, err)
	assert.Empty(t, runs)

	// Test Save
	run1 := Run{
		Timestamp:  time.Now().Add(-1 * time.Hour),
		Scope:      ScopeSingle,
		Iterations: 100,
		Results: []Measurement{
			{Category: "runtime", Workload: "fma", Iterations: 100, Elapsed: time.Millisecond},
		},
	}
	target, err := store.Save(run1)
	assert.NoError(t, err)
	assert.Equal(t, path, target)

	runs, err = store.LoadAll()
	assert.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, ScopeSingle, runs[0].Scope)

	// Test Save second run
	run2 := Run{
		Timestamp:  time.Now(),
		Scope:      ScopeAll,
		Iterations: 200,
		Results: []Measurement{
			{Category: "runtime", Workload: "fma", Iterations: 200, Elapsed: 3 * time.Millisecond},
		},
	}
	_, err = store.Save(run2)
	assert.NoError(t, err)

	// Verify persistence and order
	runs, err = store.LoadAll()
	assert.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, uint64(100), runs[0].Iterations)
	assert.Equal(t, uint64(200), runs[1].Iterations)
	assert.Equal(t, 3*time.Millisecond, runs[1].Results[0].Elapsed)
}

func TestFileStore_CorruptHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	store := NewFileStore(path)
	_, err := store.LoadAll()
	assert.Error(t, err)

	_, err = store.Save(Run{Timestamp: time.Now()})
	assert.ErrorIs(t, err, benchErrors.ErrSinkUnavailable)
}
