package db

import (
	"database/sql"
	"fmt"
	"log/slog"

	"polybench/internal/benchmark"
	benchErrors "polybench/internal/errors"

	_ "github.com/lib/pq"
)

// PostgresStore implements Store using PostgreSQL
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore creates a new Postgres store and applies migrations
func NewPostgresStore(dsn string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &PostgresStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

func (s *PostgresStore) migrate() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id SERIAL PRIMARY KEY,
			recorded_at TIMESTAMP NOT NULL,
			scope TEXT NOT NULL,
			iterations BIGINT NOT NULL,
			go_version TEXT NOT NULL,
			goos TEXT NOT NULL,
			goarch TEXT NOT NULL,
			revision TEXT,
			flags TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS measurements (
			id SERIAL PRIMARY KEY,
			run_id INTEGER NOT NULL REFERENCES runs(id),
			category TEXT NOT NULL,
			workload TEXT NOT NULL,
			iterations BIGINT NOT NULL,
			elapsed_ns BIGINT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_measurements_pair ON measurements(category, workload);`,
	}
	for _, q := range queries {
		if _, err := s.db.Exec(q); err != nil {
			slog.Error("Migration failed", "query", q, "error", err)
			return err
		}
	}
	return nil
}

// Close closes the database connection
func (s *PostgresStore) Close() error {
	return s.db.Close()
}

// Save stores the run and its measurements in one transaction.
func (s *PostgresStore) Save(run benchmark.Run) (string, error) {
	const target = "postgres"

	tx, err := s.db.Begin()
	if err != nil {
		return "", benchErrors.NewSinkError(target, err)
	}
	defer tx.Rollback()

	var runID int64
	err = tx.QueryRow(
		`INSERT INTO runs (recorded_at, scope, iterations, go_version, goos, goarch, revision, flags) VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`,
		run.Timestamp, string(run.Scope), int64(run.Iterations),
		run.Build.GoVersion, run.Build.GOOS, run.Build.GOARCH, run.Build.Revision, run.Build.Flags,
	).Scan(&runID)
	if err != nil {
		return "", benchErrors.NewSinkError(target, fmt.Errorf("failed to insert run: %w", err))
	}

	for _, m := range run.Results {
		if _, err := tx.Exec(
			`INSERT INTO measurements (run_id, category, workload, iterations, elapsed_ns) VALUES ($1, $2, $3, $4, $5)`,
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
func (s *PostgresStore) QueryHistory(category, workload string, limit int) ([]Record, error) {
	query := `SELECT m.id, m.run_id, r.recorded_at, r.scope, r.go_version, m.category, m.workload, m.iterations, m.elapsed_ns
		FROM measurements m JOIN runs r ON r.id = m.run_id
		WHERE m.category = $1 AND m.workload = $2
		ORDER BY r.recorded_at DESC, m.id DESC LIMIT $3`
	rows, err := s.db.Query(query, category, workload, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRecords(rows)
}
