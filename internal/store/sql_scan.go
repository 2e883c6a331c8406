// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-memories/models"
)

// queryer is satisfied by both *sql.DB and *sql.Tx.
type queryer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type rowScanner interface {
	Scan(dest ...any) error
}

func fromUnixNano(n int64) time.Time {
	return time.Unix(0, n).UTC()
}

func scanAlbum(row rowScanner) (models.Album, error) {
	var (
		album     models.Album
		createdAt int64
	)
	err := row.Scan(
		&album.LocalID,
		&album.ServerID,
		&album.Title,
		&album.CoverImageURL,
		&album.CoverImageLocalPath,
		&createdAt,
		&album.SyncStatus,
	)
	if err != nil {
		return models.Album{}, err
	}
	album.CreatedAt = fromUnixNano(createdAt)
	return album, nil
}

func scanMemory(row rowScanner) (models.Memory, error) {
	var (
		memory    models.Memory
		createdAt int64
	)
	err := row.Scan(
		&memory.LocalID,
		&memory.ServerID,
		&memory.AlbumID,
		&memory.AlbumLocalID,
		&memory.Title,
		&memory.ImageURL,
		&memory.ImageLocalPath,
		&createdAt,
		&memory.SyncStatus,
	)
	if err != nil {
		return models.Memory{}, err
	}
	memory.CreatedAt = fromUnixNano(createdAt)
	return memory, nil
}

func scanUser(row rowScanner) (models.User, error) {
	var (
		user     models.User
		birthday *string
	)
	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Username,
		&birthday,
		&user.AvatarURL,
		&user.AvatarLocalPath,
		&user.SyncStatus,
	)
	if err != nil {
		return models.User{}, err
	}
	if birthday != nil {
		parsed, err := models.ParseBirthday(*birthday)
		if err != nil {
			return models.User{}, fmt.Errorf("stored birthday %q: %w", *birthday, err)
		}
		user.Birthday = parsed
	}
	return user, nil
}

func scanSyncOperation(row rowScanner) (models.SyncOperation, error) {
	var (
		op        models.SyncOperation
		createdAt int64
	)
	err := row.Scan(
		&op.ID,
		&op.EntityType,
		&op.OperationType,
		&op.LocalID,
		&createdAt,
		&op.Status,
		&op.ErrorMessage,
	)
	if err != nil {
		return models.SyncOperation{}, err
	}
	op.CreatedAt = fromUnixNano(createdAt)
	return op, nil
}

// queryAll runs query and scans every row with scan. Rows are fully read and
// closed before it returns.
func queryAll[T any](ctx context.Context, q queryer, scan func(rowScanner) (T, error), query string, args ...any) ([]T, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return items, nil
}

// queryOne returns nil when the query yields no row.
func queryOne[T any](ctx context.Context, q queryer, scan func(rowScanner) (T, error), query string, args ...any) (*T, error) {
	item, err := scan(q.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return &item, nil
}

func exec(ctx context.Context, q queryer, query string, args ...any) (int64, error) {
	res, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return affected, nil
}
