package db

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"polybench/internal/benchmark"
	benchErrors "polybench/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRun(ts time.Time, elapsed time.Duration) benchmark.Run {
	return benchmark.Run{
		Timestamp:  ts,
		Scope:      benchmark.ScopeAll,
		Iterations: 1000,
		Build:      benchmark.Build{GoVersion: "go1.25.0", GOOS: "linux", GOARCH: "amd64", Compiler: "gc"},
		Results: []benchmark.Measurement{
			{Category: "runtime", Workload: "fma", Iterations: 1000, Elapsed: elapsed},
			{Category: "crtp", Workload: "fma", Iterations: 1000, Elapsed: elapsed / 2},
		},
	}
}

func TestSQLiteStore(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "test.db")

	store, err := NewSQLiteStore(dbPath)
	require.NoError(t, err)
	defer store.Close()

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	target, err := store.Save(sampleRun(base, 2*time.Millisecond))
	require.NoError(t, err)
	assert.Equal(t, "sqlite:"+dbPath, target)

	_, err = store.Save(sampleRun(base.Add(time.Hour), 3*time.Millisecond))
	require.NoError(t, err)

	history, err := store.QueryHistory("runtime", "fma", 10)
	require.NoError(t, err)
	require.Len(t, history, 2)

	// Newest first
	assert.Equal(t, int64(3*time.Millisecond), history[0].ElapsedNs)
	assert.Equal(t, int64(2*time.Millisecond), history[1].ElapsedNs)
	assert.Equal(t, "all", history[0].Scope)
	assert.Equal(t, "go1.25.0", history[0].GoVersion)
	assert.Equal(t, uint64(1000), history[0].Iterations)

	m := history[0].Measurement()
	assert.Equal(t, "runtime/fma", m.Key())
	assert.Equal(t, 3*time.Millisecond, m.Elapsed)
}

func TestSQLiteStore_QueryHistoryLimitAndFilter(t *testing.T) {
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer store.Close()

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		_, err := store.Save(sampleRun(base.Add(time.Duration(i)*time.Minute), time.Millisecond))
		require.NoError(t, err)
	}

	history, err := store.QueryHistory("crtp", "fma", 2)
	require.NoError(t, err)
	assert.Len(t, history, 2)
	for _, rec := range history {
		assert.Equal(t, "crtp", rec.Category)
	}

	none, err := store.QueryHistory("concepts", "fma", 10)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestSQLiteStore_SaveAfterClose(t *testing.T) {
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, store.Close())

	_, err = store.Save(sampleRun(time.Now(), time.Millisecond))
	require.Error(t, err)
	assert.True(t, errors.Is(err, benchErrors.ErrSinkUnavailable))
}
