package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"polybench/internal/benchmark"
	benchErrors "polybench/internal/errors"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// SQLiteStore implements Store using SQLite
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// NewSQLiteStore creates a new SQLite store and applies migrations
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &SQLiteStore{db: db, path: path}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

func (s *SQLiteStore) migrate() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			recorded_at DATETIME NOT NULL,
			scope TEXT NOT NULL,
			iterations INTEGER NOT NULL,
			go_version TEXT NOT NULL,
			goos TEXT NOT NULL,
			goarch TEXT NOT NULL,
			revision TEXT,
			flags TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS measurements (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id INTEGER NOT NULL REFERENCES runs(id),
			category TEXT NOT NULL,
			workload TEXT NOT NULL,
			iterations INTEGER NOT NULL,
			elapsed_ns INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_measurements_pair ON measurements(category, workload);`,
	}
	for _, q := range queries {
		if _, err := s.db.Exec(q); err != nil {
			return err
		}
	}
	return nil
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Save stores the run and its measurements in one transaction.
func (s *SQLiteStore) Save(run benchmark.Run) (string, error) {
	target := "sqlite:" + s.path

	tx, err := s.db.Begin()
	if err != nil {
		return "", benchErrors.NewSinkError(target, err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		`INSERT INTO runs (recorded_at, scope, iterations, go_version, goos, goarch, revision, flags) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.Timestamp, string(run.Scope), int64(run.Iterations),
		run.Build.GoVersion, run.Build.GOOS, run.Build.GOARCH, run.Build.Revision, run.Build.Flags,
	)
	if err != nil {
		return "", benchErrors.NewSinkError(target, fmt.Errorf("failed to insert run: %w", err))
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return "", benchErrors.NewSinkError(target, err)
	}

	for _, m := range run.Results {
		if _, err := tx.Exec(
			`INSERT INTO measurements (run_id, category, workload, iterations, elapsed_ns) VALUES (?, ?, ?, ?, ?)`,
			runID, m.Category, m.Workload, int64(m.Iterations), m.Elapsed.Nanoseconds(),
		); err != nil {
			return "", benchErrors.NewSinkError(target, fmt.Errorf("failed to insert measurement: %w", err))
		}
	}

	if err := tx.Commit(); err != nil {
		return "", benchErrors.NewSinkError(target, err)
	}
	return target, nil
}

// QueryHistory retrieves the most recent measurements of a pair
func (s *SQLiteStore) QueryHistory(category, workload string, limit int) ([]Record, error) {
	query := `SELECT m.id, m.run_id, r.recorded_at, r.scope, r.go_version, m.category, m.workload, m.iterations, m.elapsed_ns
		FROM measurements m JOIN runs r ON r.id = m.run_id
		WHERE m.category = ? AND m.workload = ?
		ORDER BY r.recorded_at DESC, m.id DESC LIMIT ?`
	rows, err := s.db.Query(query, category, workload, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRecords(rows)
}

func scanRecords(rows *sql.Rows) ([]Record, error) {
	var results []Record
	for rows.Next() {
		var rec Record
		var iterations int64
		if err := rows.Scan(&rec.ID, &rec.RunID, &rec.RecordedAt, &rec.Scope, &rec.GoVersion,
			&rec.Category, &rec.Workload, &iterations, &rec.ElapsedNs); err != nil {
			return nil, err
		}
		rec.Iterations = uint64(iterations)
		results = append(results, rec)
	}
	return results, rows.Err()
}
