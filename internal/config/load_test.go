package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	defer viper.Reset()

	t.Run("Defaults Without Config File", func(t *testing.T) {
		viper.Reset()
		t.Chdir(t.TempDir())

		require.NoError(t, Load(""))

		cfg := FromViper()
		assert.Equal(t, DefaultIterations, cfg.Iterations)
		assert.Equal(t, 1, cfg.Repeat)
		assert.Equal(t, "data", cfg.OutputDir)
		assert.Equal(t, "data/history.json", cfg.HistoryFile)
		assert.Empty(t, cfg.StoreType)

		_, err := os.Stat("config.yaml")
		assert.True(t, os.IsNotExist(err), "Load must not create a config file")
	})

	t.Run("Load From Env", func(t *testing.T) {
		viper.Reset()
		t.Chdir(t.TempDir())
		t.Setenv("POLYBENCH_ITERATIONS", "5000")
		t.Setenv("POLYBENCH_STORE_TYPE", "sqlite")

		require.NoError(t, Load(""))

		cfg := FromViper()
		assert.Equal(t, uint64(5000), cfg.Iterations)
		assert.Equal(t, "sqlite", cfg.StoreType)
	})

	t.Run("Load From Dotenv", func(t *testing.T) {
		viper.Reset()
		dir := t.TempDir()
		t.Chdir(dir)
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("POLYBENCH_REPEAT=4\n"), 0644))
		defer os.Unsetenv("POLYBENCH_REPEAT")

		require.NoError(t, Load(""))
		assert.Equal(t, 4, FromViper().Repeat)
	})

	t.Run("Load From File", func(t *testing.T) {
		viper.Reset()
		t.Chdir(t.TempDir())
		path := filepath.Join(t.TempDir(), "polybench.yaml")
		content := "iterations: 250\noutput_dir: results\nstore:\n  type: postgres\n  dsn: postgres://localhost/bench\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		require.NoError(t, Load(path))

		cfg := FromViper()
		assert.Equal(t, uint64(250), cfg.Iterations)
		assert.Equal(t, "results", cfg.OutputDir)
		assert.Equal(t, "postgres", cfg.StoreType)
		assert.Equal(t, "postgres://localhost/bench", cfg.StoreDSN)
	})

	t.Run("Missing Explicit File", func(t *testing.T) {
		viper.Reset()
		t.Chdir(t.TempDir())

		err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})
}
