// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-memories/internal/config"
	"github.com/MKhiriev/go-memories/internal/logger"
	"github.com/MKhiriev/go-memories/models"
)

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

// newTestSQLite opens a migrated database file in a temp dir.
func newTestSQLite(t *testing.T) *DB {
	t.Helper()

	db, err := NewConnectSQLite(testContext(), config.ClientDB{DSN: filepath.Join(t.TempDir(), "memories.db")}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.Migrate())
	return db
}

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

// newDBFromSQL wraps a sqlmock connection.
func newDBFromSQL(db *sql.DB) *DB {
	return &DB{
		DB:                 db,
		errorClassificator: NewSQLiteErrorClassifier(),
		logger:             logger.Nop(),
	}
}

func ptr[T any](v T) *T { return &v }

func fixedTime(minute int) time.Time {
	return time.Date(2025, 3, 14, 9, minute, 0, 0, time.UTC)
}

func newLocalAlbum(title string, minute int) models.Album {
	return models.Album{
		LocalID:    models.NewLocalID(),
		Title:      title,
		CreatedAt:  fixedTime(minute),
		SyncStatus: models.SyncStatusPendingCreate,
	}
}

func newServerAlbum(serverID int64, title string, minute int) models.Album {
	return models.Album{
		ServerID:   ptr(serverID),
		LocalID:    models.NewLocalID(),
		Title:      title,
		CreatedAt:  fixedTime(minute),
		SyncStatus: models.SyncStatusSynced,
	}
}

func TestNewConnectSQLite_CreatesFile(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "nested", "memories.db")

	db, err := NewConnectSQLite(testContext(), config.ClientDB{DSN: dsn}, logger.Nop())
	require.NoError(t, err)
	defer db.Close()

	assert.FileExists(t, dsn)
	require.NoError(t, db.Migrate())
}

func TestWithBusyTimeout(t *testing.T) {
	tests := []struct {
		dsn  string
		want string
	}{
		{dsn: "memories.db", want: "memories.db?_busy_timeout=5000"},
		{dsn: "file:memories.db?cache=shared", want: "file:memories.db?cache=shared&_busy_timeout=5000"},
		{dsn: ":memory:", want: "file::memory:?_busy_timeout=5000"},
		{dsn: "memories.db?_busy_timeout=100", want: "memories.db?_busy_timeout=100"},
	}

	for _, tt := range tests {
		t.Run(tt.dsn, func(t *testing.T) {
			assert.Equal(t, tt.want, withBusyTimeout(tt.dsn))
		})
	}
}

func TestWithTx_RetriesBusyDatabase(t *testing.T) {
	sqlDB, mock := newTestDB(t)
	db := newDBFromSQL(sqlDB)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM albums").WillReturnError(sqlite3.Error{Code: sqlite3.ErrBusy})
	mock.ExpectRollback()
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM albums").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := db.withTx(testContext(), func(tx *sql.Tx) error {
		_, err := exec(testContext(), tx, "DELETE FROM albums")
		return err
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTx_DoesNotRetryConstraintViolation(t *testing.T) {
	sqlDB, mock := newTestDB(t)
	db := newDBFromSQL(sqlDB)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO albums").WillReturnError(sqlite3.Error{Code: sqlite3.ErrConstraint})
	mock.ExpectRollback()

	err := db.withTx(testContext(), func(tx *sql.Tx) error {
		_, err := exec(testContext(), tx, "INSERT INTO albums")
		return err
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTx_BeginError(t *testing.T) {
	sqlDB, mock := newTestDB(t)
	db := newDBFromSQL(sqlDB)

	mock.ExpectBegin().WillReturnError(errors.New("boom"))

	err := db.withTx(testContext(), func(tx *sql.Tx) error { return nil })

	assert.ErrorIs(t, err, ErrBeginningTransaction)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteErrorClassifier_Classify(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{name: "nil", err: nil, want: NonRetryable},
		{name: "busy", err: sqlite3.Error{Code: sqlite3.ErrBusy}, want: Retryable},
		{name: "locked", err: sqlite3.Error{Code: sqlite3.ErrLocked}, want: Retryable},
		{name: "wrapped busy", err: errors.Join(ErrExecutingStatement, sqlite3.Error{Code: sqlite3.ErrBusy}), want: Retryable},
		{name: "constraint", err: sqlite3.Error{Code: sqlite3.ErrConstraint}, want: NonRetryable},
		{name: "not a driver error", err: errors.New("plain"), want: NonRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}
