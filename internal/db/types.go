package db

import (
	"time"

	"polybench/internal/benchmark"
)

// Record is one stored measurement together with its run metadata.
type Record struct {
	ID         int64     `json:"id"`
	RunID      int64     `json:"run_id"`
	RecordedAt time.Time `json:"recorded_at"`
	Scope      string    `json:"scope"`
	GoVersion  string    `json:"go_version"`
	Category   string    `json:"category"`
	Workload   string    `json:"workload"`
	Iterations uint64    `json:"iterations"`
	ElapsedNs  int64     `json:"elapsed_ns"`
}

// Measurement converts the record back to a benchmark measurement.
func (r Record) Measurement() benchmark.Measurement {
	return benchmark.Measurement{
		Category:   r.Category,
		Workload:   r.Workload,
		Iterations: r.Iterations,
		Elapsed:    time.Duration(r.ElapsedNs),
	}
}

// Store interface defines the methods for persistent storage
type Store interface {
	benchmark.Sink
	Close() error
	QueryHistory(category, workload string, limit int) ([]Record, error)
}
