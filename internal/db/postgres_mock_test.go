package db

import (
	"errors"
	"testing"
	"time"

	benchErrors "polybench/internal/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func withMockStore(t *testing.T, fn func(*PostgresStore, sqlmock.Sqlmock)) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	store := &PostgresStore{db: db}
	fn(store, mock)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

func TestPostgresStore_Save(t *testing.T) {
	withMockStore(t, func(store *PostgresStore, mock sqlmock.Sqlmock) {
		run := sampleRun(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC), 2*time.Millisecond)

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO runs").
			WithArgs(sqlmock.AnyArg(), "all", int64(1000), "go1.25.0", "linux", "amd64", "", "").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))
		mock.ExpectExec("INSERT INTO measurements").
			WithArgs(int64(7), "runtime", "fma", int64(1000), int64(2*time.Millisecond)).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec("INSERT INTO measurements").
			WithArgs(int64(7), "crtp", "fma", int64(1000), int64(time.Millisecond)).
			WillReturnResult(sqlmock.NewResult(2, 1))
		mock.ExpectCommit()

		target, err := store.Save(run)
		assert.NoError(t, err)
		assert.Equal(t, "postgres", target)
	})
}

func TestPostgresStore_SaveFailureRollsBack(t *testing.T) {
	withMockStore(t, func(store *PostgresStore, mock sqlmock.Sqlmock) {
		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO runs").WillReturnError(errors.New("connection reset"))
		mock.ExpectRollback()

		_, err := store.Save(sampleRun(time.Now(), time.Millisecond))
		assert.ErrorIs(t, err, benchErrors.ErrSinkUnavailable)

		var sinkErr *benchErrors.SinkError
		assert.ErrorAs(t, err, &sinkErr)
		assert.Equal(t, "postgres", sinkErr.Target)
	})
}

func TestPostgresStore_QueryHistory(t *testing.T) {
	withMockStore(t, func(store *PostgresStore, mock sqlmock.Sqlmock) {
		recordedAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
		rows := sqlmock.NewRows([]string{"id", "run_id", "recorded_at", "scope", "go_version", "category", "workload", "iterations", "elapsed_ns"}).
			AddRow(int64(3), int64(2), recordedAt, "single", "go1.25.0", "runtime", "fma", int64(100), int64(1500))

		mock.ExpectQuery("SELECT m.id").
			WithArgs("runtime", "fma", int64(5)).
			WillReturnRows(rows)

		history, err := store.QueryHistory("runtime", "fma", 5)
		assert.NoError(t, err)
		if assert.Len(t, history, 1) {
			assert.Equal(t, int64(3), history[0].ID)
			assert.Equal(t, uint64(100), history[0].Iterations)
			assert.Equal(t, 1500*time.Nanosecond, history[0].Measurement().Elapsed)
			assert.True(t, recordedAt.Equal(history[0].RecordedAt))
		}
	})
}
