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

// memoryRepository is the SQLite-backed implementation of [MemoryRepository].
// Ordering is kept per album.
type memoryRepository struct {
	*DB
	logger *logger.Logger

	mu      sync.Mutex
	changes *utils.Broadcaster[models.MemoryChange]
}

func NewMemoryRepository(db *DB, logger *logger.Logger) MemoryRepository {
	logger.Debug().Msg("creating memory repository")
	return &memoryRepository{
		DB:      db,
		logger:  logger,
		changes: utils.NewBroadcaster[models.MemoryChange](),
	}
}

func (r *memoryRepository) GetAll(ctx context.Context) ([]models.Memory, error) {
	return r.getMany(ctx, "memoryRepository.GetAll", nil)
}

func (r *memoryRepository) GetAllByAlbum(ctx context.Context, albumLocalID models.LocalID) ([]models.Memory, error) {
	return r.getMany(ctx, "memoryRepository.GetAllByAlbum", sq.Eq{"album_local_id": albumLocalID})
}

func (r *memoryRepository) getMany(ctx context.Context, funcName string, where sq.Sqlizer) ([]models.Memory, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectMemoriesQuery(where)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to build select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	memories, err := queryAll(ctx, r.DB, scanMemory, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to read memories")
		return nil, fmt.Errorf("failed to get memories: %w", err)
	}

	return memories, nil
}

func (r *memoryRepository) GetByLocalID(ctx context.Context, localID models.LocalID) (*models.Memory, error) {
	return r.getOne(ctx, "memoryRepository.GetByLocalID", sq.Eq{"local_id": localID})
}

func (r *memoryRepository) GetByServerID(ctx context.Context, serverID int64) (*models.Memory, error) {
	return r.getOne(ctx, "memoryRepository.GetByServerID", sq.Eq{"server_id": serverID})
}

func (r *memoryRepository) getOne(ctx context.Context, funcName string, where sq.Sqlizer) (*models.Memory, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectMemoriesQuery(where)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to build select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	memory, err := queryOne(ctx, r.DB, scanMemory, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to read memory")
		return nil, fmt.Errorf("failed to get memory: %w", err)
	}

	return memory, nil
}

func (r *memoryRepository) SyncSet(ctx context.Context, memories []models.Memory, albumLocalID models.LocalID) error {
	log := logger.FromContext(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	serverIDs := make([]int64, 0, len(memories))
	for _, m := range memories {
		if m.ServerID != nil {
			serverIDs = append(serverIDs, *m.ServerID)
		}
	}

	err := r.withTx(ctx, func(tx *sql.Tx) error {
		query, args, err := buildDeleteStaleMemoriesQuery(albumLocalID, serverIDs)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = exec(ctx, tx, query, args...); err != nil {
			return err
		}

		for i, memory := range memories {
			memory.AlbumLocalID = albumLocalID
			if err := r.upsertFromServer(ctx, tx, memory, int64(i)); err != nil {
				return err
			}
		}

		return r.prependLocalOnly(ctx, tx, albumLocalID)
	})
	if err != nil {
		log.Err(err).
			Str("func", "memoryRepository.SyncSet").
			Str("album_local_id", albumLocalID.String()).
			Int("count", len(memories)).
			Msg("failed to replace memories")
		return fmt.Errorf("failed to sync memories: %w", err)
	}

	return nil
}

func (r *memoryRepository) SyncAppend(ctx context.Context, memories []models.Memory) error {
	log := logger.FromContext(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	err := r.withTx(ctx, func(tx *sql.Tx) error {
		next := make(map[models.LocalID]int64)

		for _, memory := range memories {
			position, ok := next[memory.AlbumLocalID]
			if !ok {
				query, args, err := buildMaxPositionQuery(memoriesTable, sq.Eq{"album_local_id": memory.AlbumLocalID})
				if err != nil {
					return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
				}
				if err := tx.QueryRowContext(ctx, query, args...).Scan(&position); err != nil {
					return fmt.Errorf("%w: %w", ErrScanningRow, err)
				}
			}
			position++
			next[memory.AlbumLocalID] = position

			if err := r.upsertFromServer(ctx, tx, memory, position); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "memoryRepository.SyncAppend").Int("count", len(memories)).Msg("failed to append memories")
		return fmt.Errorf("failed to append memories: %w", err)
	}

	return nil
}

// prependLocalOnly moves the album's memories the server has never seen in
// front of the server rows.
func (r *memoryRepository) prependLocalOnly(ctx context.Context, tx *sql.Tx, albumLocalID models.LocalID) error {
	query, args, err := buildSelectMemoriesQuery(sq.Eq{"album_local_id": albumLocalID, "server_id": nil})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	locals, err := queryAll(ctx, tx, scanMemory, query, args...)
	if err != nil {
		return err
	}

	for i, memory := range locals {
		query, args, err := buildUpdatePositionQuery(memoriesTable, memory.LocalID, int64(i-len(locals)))
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err := exec(ctx, tx, query, args...); err != nil {
			return err
		}
	}
	return nil
}

// upsertFromServer mirrors albumRepository.upsertFromServer.
func (r *memoryRepository) upsertFromServer(ctx context.Context, tx *sql.Tx, memory models.Memory, position int64) error {
	if memory.ServerID != nil {
		query, args, err := buildSelectMemoriesQuery(sq.Eq{"server_id": *memory.ServerID})
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		existing, err := queryOne(ctx, tx, scanMemory, query, args...)
		if err != nil {
			return err
		}

		if existing != nil {
			memory.LocalID = existing.LocalID
			if !existing.IsSynced() {
				query, args, err := buildUpdatePositionQuery(memoriesTable, existing.LocalID, position)
				if err != nil {
					return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
				}
				_, err = exec(ctx, tx, query, args...)
				return err
			}
			if memory.ImageLocalPath == nil {
				memory.ImageLocalPath = existing.ImageLocalPath
			}
		}
	}

	query, args, err := buildUpsertMemoryQuery(memory, position)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	_, err = exec(ctx, tx, query, args...)
	return err
}

func (r *memoryRepository) Insert(ctx context.Context, memory models.Memory) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertMemoryQuery(memory)
	if err != nil {
		log.Err(err).Str("func", "memoryRepository.Insert").Msg("failed to build insert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	r.mu.Lock()
	_, err = exec(ctx, r.DB, query, args...)
	r.mu.Unlock()
	if err != nil {
		log.Err(err).Str("func", "memoryRepository.Insert").Str("local_id", memory.LocalID.String()).Msg("failed to insert memory")
		return fmt.Errorf("failed to insert memory: %w", err)
	}

	r.changes.Publish(models.MemoryChange{Kind: models.ChangeCreated, Memory: memory})
	return nil
}

func (r *memoryRepository) MarkAsSynced(ctx context.Context, localID models.LocalID, serverID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildMarkMemorySyncedQuery(localID, serverID)
	if err != nil {
		log.Err(err).Str("func", "memoryRepository.MarkAsSynced").Msg("failed to build update query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err = exec(ctx, r.DB, query, args...); err != nil {
		log.Err(err).
			Str("func", "memoryRepository.MarkAsSynced").
			Str("local_id", localID.String()).
			Int64("server_id", serverID).
			Msg("failed to mark memory as synced")
		return fmt.Errorf("failed to mark memory as synced: %w", err)
	}

	return nil
}

func (r *memoryRepository) Subscribe(fn func(models.MemoryChange)) func() {
	return r.changes.Subscribe(fn)
}
