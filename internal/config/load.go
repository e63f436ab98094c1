package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultIterations is the iteration count used when none is configured.
const DefaultIterations uint64 = 1_000_000_000

// Config is the typed view of the loaded settings.
type Config struct {
	Iterations  uint64
	Repeat      int
	OutputDir   string
	HistoryFile string
	StoreType   string
	StoreDSN    string
	MetricsFile string
	LogFile     string
	Verbose     bool
}

// SetDefaults registers the default value of every key.
func SetDefaults() {
	viper.SetDefault("iterations", DefaultIterations)
	viper.SetDefault("repeat", 1)
	viper.SetDefault("output_dir", "data")
	viper.SetDefault("history_file", "data/history.json")
	viper.SetDefault("store.type", "")
	viper.SetDefault("store.dsn", "")
	viper.SetDefault("metrics_file", "")
	viper.SetDefault("log_file", "")
	viper.SetDefault("verbose", false)
}

// Load initializes the configuration from .env, an optional config file and
// POLYBENCH_* environment variables. Unlike an explicit cfgFile, a missing
// ./config.yaml is not an error. No file is ever written.
func Load(cfgFile string) error {
	// .env is optional
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("POLYBENCH")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	SetDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}
	fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	return nil
}

// FromViper returns the current settings.
func FromViper() Config {
	return Config{
		Iterations:  viper.GetUint64("iterations"),
		Repeat:      viper.GetInt("repeat"),
		OutputDir:   viper.GetString("output_dir"),
		HistoryFile: viper.GetString("history_file"),
		StoreType:   viper.GetString("store.type"),
		StoreDSN:    viper.GetString("store.dsn"),
		MetricsFile: viper.GetString("metrics_file"),
		LogFile:     viper.GetString("log_file"),
		Verbose:     viper.GetBool("verbose"),
	}
}
