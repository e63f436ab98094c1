package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStore(t *testing.T) {
	t.Run("sqlite", func(t *testing.T) {
		store, err := NewStore(StoreConfig{Type: "sqlite", ConnectionString: filepath.Join(t.TempDir(), "f.db")})
		require.NoError(t, err)
		defer store.Close()
		assert.IsType(t, &SQLiteStore{}, store)
	})

	t.Run("postgres requires dsn", func(t *testing.T) {
		_, err := NewStore(StoreConfig{Type: "postgres"})
		assert.EqualError(t, err, "postgres connection string is required")
	})

	t.Run("unsupported", func(t *testing.T) {
		_, err := NewStore(StoreConfig{Type: "mongo"})
		assert.EqualError(t, err, "unsupported store type: mongo")
	})
}
