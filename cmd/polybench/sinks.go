package main

import (
	"fmt"
	"io"

	"polybench/internal/benchmark"
	"polybench/internal/config"
	"polybench/internal/db"
	"polybench/internal/telemetry"
)

// newStore is swapped in tests.
var newStore = db.NewStore

// openSink builds the sink chain for a saving run: the Markdown report, the
// JSON history and, when configured, the SQL store. A store that cannot be
// opened is reported and skipped. The returned func releases the store.
func openSink(cfg config.Config, warn io.Writer) (benchmark.Sink, func()) {
	sinks := benchmark.MultiSink{
		benchmark.NewMarkdownSink(cfg.OutputDir),
		benchmark.NewFileStore(cfg.HistoryFile),
	}

	if cfg.StoreType == "" {
		return sinks, func() {}
	}

	store, err := newStore(db.StoreConfig{Type: cfg.StoreType, ConnectionString: cfg.StoreDSN})
	if err != nil {
		fmt.Fprintf(warn, "Warning: failed to open %s store: %v\n", cfg.StoreType, err)
		return sinks, func() {}
	}
	telemetry.LogDebug("Opened result store", "type", cfg.StoreType)

	return append(sinks, store), func() {
		if err := store.Close(); err != nil {
			telemetry.LogError("Failed to close store", err, "type", cfg.StoreType)
		}
	}
}
