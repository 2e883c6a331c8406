// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-memories/internal/logger"
	"github.com/MKhiriev/go-memories/internal/utils"
	"github.com/MKhiriev/go-memories/models"
)

// albumRepository is the SQLite-backed implementation of [AlbumRepository].
// mu serialises every multi-statement sequence; change events are published
// after the write has been committed and mu released.
type albumRepository struct {
	*DB
	logger *logger.Logger

	mu      sync.Mutex
	changes *utils.Broadcaster[models.AlbumChange]
}

func NewAlbumRepository(db *DB, logger *logger.Logger) AlbumRepository {
	logger.Debug().Msg("creating album repository")
	return &albumRepository{
		DB:      db,
		logger:  logger,
		changes: utils.NewBroadcaster[models.AlbumChange](),
	}
}

func (r *albumRepository) GetAll(ctx context.Context) ([]models.Album, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAlbumsQuery(nil)
	if err != nil {
		log.Err(err).Str("func", "albumRepository.GetAll").Msg("failed to build select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	albums, err := queryAll(ctx, r.DB, scanAlbum, query, args...)
	if err != nil {
		log.Err(err).Str("func", "albumRepository.GetAll").Msg("failed to read albums")
		return nil, fmt.Errorf("failed to get albums: %w", err)
	}

	return albums, nil
}

func (r *albumRepository) GetByLocalID(ctx context.Context, localID models.LocalID) (*models.Album, error) {
	return r.getOne(ctx, "albumRepository.GetByLocalID", sq.Eq{"local_id": localID})
}

func (r *albumRepository) GetByServerID(ctx context.Context, serverID int64) (*models.Album, error) {
	return r.getOne(ctx, "albumRepository.GetByServerID", sq.Eq{"server_id": serverID})
}

func (r *albumRepository) getOne(ctx context.Context, funcName string, where sq.Sqlizer) (*models.Album, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAlbumsQuery(where)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to build select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	album, err := queryOne(ctx, r.DB, scanAlbum, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to read album")
		return nil, fmt.Errorf("failed to get album: %w", err)
	}

	return album, nil
}

func (r *albumRepository) SyncSet(ctx context.Context, albums []models.Album) error {
	log := logger.FromContext(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	serverIDs := make([]int64, 0, len(albums))
	for _, a := range albums {
		if a.ServerID != nil {
			serverIDs = append(serverIDs, *a.ServerID)
		}
	}

	err := r.withTx(ctx, func(tx *sql.Tx) error {
		query, args, err := buildDeleteStaleAlbumsQuery(serverIDs)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = exec(ctx, tx, query, args...); err != nil {
			return err
		}

		for i, album := range albums {
			if err := r.upsertFromServer(ctx, tx, album, int64(i)); err != nil {
				return err
			}
		}

		return r.prependLocalOnly(ctx, tx)
	})
	if err != nil {
		log.Err(err).Str("func", "albumRepository.SyncSet").Int("count", len(albums)).Msg("failed to replace albums")
		return fmt.Errorf("failed to sync albums: %w", err)
	}

	return nil
}

func (r *albumRepository) SyncAppend(ctx context.Context, albums []models.Album) error {
	log := logger.FromContext(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	err := r.withTx(ctx, func(tx *sql.Tx) error {
		query, args, err := buildMaxPositionQuery(albumsTable, nil)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		var next int64
		if err := tx.QueryRowContext(ctx, query, args...).Scan(&next); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		for _, album := range albums {
			next++
			if err := r.upsertFromServer(ctx, tx, album, next); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "albumRepository.SyncAppend").Int("count", len(albums)).Msg("failed to append albums")
		return fmt.Errorf("failed to append albums: %w", err)
	}

	return nil
}

// prependLocalOnly moves albums the server has never seen in front of the
// server rows, keeping their relative order.
func (r *albumRepository) prependLocalOnly(ctx context.Context, tx *sql.Tx) error {
	query, args, err := buildSelectAlbumsQuery(sq.Eq{"server_id": nil})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	locals, err := queryAll(ctx, tx, scanAlbum, query, args...)
	if err != nil {
		return err
	}

	for i, album := range locals {
		query, args, err := buildUpdatePositionQuery(albumsTable, album.LocalID, int64(i-len(locals)))
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err := exec(ctx, tx, query, args...); err != nil {
			return err
		}
	}
	return nil
}

// upsertFromServer writes a server album at position. A row already holding
// the same server id keeps its local id; when that row has local changes
// only its position moves.
func (r *albumRepository) upsertFromServer(ctx context.Context, tx *sql.Tx, album models.Album, position int64) error {
	if album.ServerID != nil {
		query, args, err := buildSelectAlbumsQuery(sq.Eq{"server_id": *album.ServerID})
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		existing, err := queryOne(ctx, tx, scanAlbum, query, args...)
		if err != nil {
			return err
		}

		if existing != nil {
			album.LocalID = existing.LocalID
			if !existing.IsSynced() {
				query, args, err := buildUpdatePositionQuery(albumsTable, existing.LocalID, position)
				if err != nil {
					return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
				}
				_, err = exec(ctx, tx, query, args...)
				return err
			}
			if album.CoverImageLocalPath == nil {
				album.CoverImageLocalPath = existing.CoverImageLocalPath
			}
		}
	}

	query, args, err := buildUpsertAlbumQuery(album, position)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	_, err = exec(ctx, tx, query, args...)
	return err
}

func (r *albumRepository) Insert(ctx context.Context, album models.Album) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertAlbumQuery(album)
	if err != nil {
		log.Err(err).Str("func", "albumRepository.Insert").Msg("failed to build insert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	r.mu.Lock()
	_, err = exec(ctx, r.DB, query, args...)
	r.mu.Unlock()
	if err != nil {
		log.Err(err).Str("func", "albumRepository.Insert").Str("local_id", album.LocalID.String()).Msg("failed to insert album")
		return fmt.Errorf("failed to insert album: %w", err)
	}

	r.changes.Publish(models.AlbumChange{Kind: models.ChangeCreated, Album: album})
	return nil
}

func (r *albumRepository) Update(ctx context.Context, album models.Album) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateAlbumQuery(album)
	if err != nil {
		log.Err(err).Str("func", "albumRepository.Update").Msg("failed to build update query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	r.mu.Lock()
	affected, err := exec(ctx, r.DB, query, args...)
	r.mu.Unlock()
	if err != nil {
		log.Err(err).Str("func", "albumRepository.Update").Str("local_id", album.LocalID.String()).Msg("failed to update album")
		return fmt.Errorf("failed to update album: %w", err)
	}

	if affected == 0 {
		log.Debug().Str("func", "albumRepository.Update").Str("local_id", album.LocalID.String()).Msg("album not found, nothing updated")
		return nil
	}

	r.changes.Publish(models.AlbumChange{Kind: models.ChangeUpdated, Album: album})
	return nil
}

func (r *albumRepository) Delete(ctx context.Context, localID models.LocalID) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteAlbumQuery(localID)
	if err != nil {
		log.Err(err).Str("func", "albumRepository.Delete").Msg("failed to build delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err = exec(ctx, r.DB, query, args...); err != nil {
		log.Err(err).Str("func", "albumRepository.Delete").Str("local_id", localID.String()).Msg("failed to delete album")
		return fmt.Errorf("failed to delete album: %w", err)
	}

	return nil
}

func (r *albumRepository) MarkAsSynced(ctx context.Context, localID models.LocalID, serverID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildMarkAlbumSyncedQuery(localID, serverID)
	if err != nil {
		log.Err(err).Str("func", "albumRepository.MarkAsSynced").Msg("failed to build update query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err = exec(ctx, r.DB, query, args...); err != nil {
		log.Err(err).
			Str("func", "albumRepository.MarkAsSynced").
			Str("local_id", localID.String()).
			Int64("server_id", serverID).
			Msg("failed to mark album as synced")
		return fmt.Errorf("failed to mark album as synced: %w", err)
	}

	return nil
}

func (r *albumRepository) UpdateCoverImageURL(ctx context.Context, localID models.LocalID, url string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateAlbumCoverURLQuery(localID, url)
	if err != nil {
		log.Err(err).Str("func", "albumRepository.UpdateCoverImageURL").Msg("failed to build update query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err = exec(ctx, r.DB, query, args...); err != nil {
		log.Err(err).Str("func", "albumRepository.UpdateCoverImageURL").Str("local_id", localID.String()).Msg("failed to update cover url")
		return fmt.Errorf("failed to update album cover url: %w", err)
	}

	return nil
}

func (r *albumRepository) Subscribe(fn func(models.AlbumChange)) func() {
	return r.changes.Subscribe(fn)
}
