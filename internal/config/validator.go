package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

var storeTypes = map[string]bool{
	"":           true,
	"sqlite":     true,
	"sqlite3":    true,
	"postgres":   true,
	"postgresql": true,
}

// ValidateConfig validates configuration values and returns an error if any are invalid.
// This function should be called after viper has loaded the configuration.
func ValidateConfig() error {
	var errors []string

	if viper.IsSet("iterations") {
		if n := viper.GetInt64("iterations"); n <= 0 {
			errors = append(errors, fmt.Sprintf("iterations must be positive, got: %v", viper.Get("iterations")))
		}
	}

	if viper.IsSet("repeat") {
		if r := viper.GetInt("repeat"); r < 1 {
			errors = append(errors, fmt.Sprintf("repeat must be at least 1, got: %v", viper.Get("repeat")))
		}
	}

	storeType := strings.ToLower(viper.GetString("store.type"))
	if !storeTypes[storeType] {
		errors = append(errors, fmt.Sprintf("store.type must be one of sqlite, postgres, got: %s", storeType))
	}
	if (storeType == "postgres" || storeType == "postgresql") && viper.GetString("store.dsn") == "" {
		errors = append(errors, "store.dsn is required for postgres")
	}

	if viper.IsSet("output_dir") && viper.GetString("output_dir") == "" {
		errors = append(errors, "output_dir must not be empty")
	}

	// If there are any errors, return them
	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n  %s", strings.Join(errors, "\n  "))
	}

	return nil
}
