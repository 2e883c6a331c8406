// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"sync/atomic"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-memories/internal/logger"
	"github.com/MKhiriev/go-memories/internal/utils"
	"github.com/MKhiriev/go-memories/models"
)

// syncQueueRepository is the SQLite-backed outbox. Insertion order is the
// AUTOINCREMENT seq column.
//
// Every mutation, together with the recount that follows it, runs under mu,
// and the new state is published before mu is released so subscribers see
// states in mutation order. Subscribers must not call back into the
// repository's mutating methods.
type syncQueueRepository struct {
	*DB
	logger *logger.Logger

	mu      sync.Mutex
	counts  models.SyncQueueState
	syncing atomic.Bool
	state   *utils.Broadcaster[models.SyncQueueState]
}

func NewSyncQueueRepository(db *DB, logger *logger.Logger) SyncQueueRepository {
	logger.Debug().Msg("creating sync queue repository")
	return &syncQueueRepository{
		DB:     db,
		logger: logger,
		state:  utils.NewReplayBroadcaster[models.SyncQueueState](),
	}
}

func (r *syncQueueRepository) Enqueue(ctx context.Context, op models.SyncOperation) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertSyncOperationQuery(op)
	if err != nil {
		log.Err(err).Str("func", "syncQueueRepository.Enqueue").Msg("failed to build insert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.mutate(ctx, func(tx *sql.Tx) error {
		_, err := exec(ctx, tx, query, args...)
		return err
	})
	if err != nil {
		log.Err(err).
			Str("func", "syncQueueRepository.Enqueue").
			Str("operation_id", op.ID.String()).
			Str("entity_type", string(op.EntityType)).
			Str("operation_type", string(op.OperationType)).
			Msg("failed to enqueue sync operation")
		return fmt.Errorf("failed to enqueue sync operation: %w", err)
	}

	log.Debug().
		Str("operation_id", op.ID.String()).
		Str("entity_type", string(op.EntityType)).
		Str("operation_type", string(op.OperationType)).
		Str("local_id", op.LocalID.String()).
		Msg("sync operation enqueued")
	return nil
}

func (r *syncQueueRepository) Peek(ctx context.Context) ([]models.SyncOperation, error) {
	return r.getMany(ctx, "syncQueueRepository.Peek", sq.Eq{"status": models.SyncOperationStatusPending})
}

func (r *syncQueueRepository) GetAll(ctx context.Context) ([]models.SyncOperation, error) {
	return r.getMany(ctx, "syncQueueRepository.GetAll", nil)
}

func (r *syncQueueRepository) getMany(ctx context.Context, funcName string, where sq.Sqlizer) ([]models.SyncOperation, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectSyncOperationsQuery(where)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to build select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	r.mu.Lock()
	ops, err := queryAll(ctx, r.DB, scanSyncOperation, query, args...)
	r.mu.Unlock()
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to read sync operations")
		return nil, fmt.Errorf("failed to get sync operations: %w", err)
	}

	return ops, nil
}

func (r *syncQueueRepository) Get(ctx context.Context, id models.LocalID) (*models.SyncOperation, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectSyncOperationsQuery(sq.Eq{"id": id})
	if err != nil {
		log.Err(err).Str("func", "syncQueueRepository.Get").Msg("failed to build select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	r.mu.Lock()
	op, err := queryOne(ctx, r.DB, scanSyncOperation, query, args...)
	r.mu.Unlock()
	if err != nil {
		log.Err(err).Str("func", "syncQueueRepository.Get").Str("operation_id", id.String()).Msg("failed to read sync operation")
		return nil, fmt.Errorf("failed to get sync operation: %w", err)
	}

	return op, nil
}

func (r *syncQueueRepository) Remove(ctx context.Context, id models.LocalID) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteSyncOperationQuery(id)
	if err != nil {
		log.Err(err).Str("func", "syncQueueRepository.Remove").Msg("failed to build delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.mutate(ctx, func(tx *sql.Tx) error {
		_, err := exec(ctx, tx, query, args...)
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "syncQueueRepository.Remove").Str("operation_id", id.String()).Msg("failed to remove sync operation")
		return fmt.Errorf("failed to remove sync operation: %w", err)
	}

	return nil
}

func (r *syncQueueRepository) UpdateStatus(ctx context.Context, id models.LocalID, status models.SyncOperationStatus, errorMessage *string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateSyncOperationStatusQuery(id, status, errorMessage)
	if err != nil {
		log.Err(err).Str("func", "syncQueueRepository.UpdateStatus").Msg("failed to build update query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.mutate(ctx, func(tx *sql.Tx) error {
		_, err := exec(ctx, tx, query, args...)
		return err
	})
	if err != nil {
		log.Err(err).
			Str("func", "syncQueueRepository.UpdateStatus").
			Str("operation_id", id.String()).
			Str("status", string(status)).
			Msg("failed to update sync operation status")
		return fmt.Errorf("failed to update sync operation status: %w", err)
	}

	return nil
}

func (r *syncQueueRepository) RetryFailed(ctx context.Context) (int, error) {
	return r.reset(ctx, "syncQueueRepository.RetryFailed", models.SyncOperationStatusFailed)
}

func (r *syncQueueRepository) Recover(ctx context.Context) (int, error) {
	return r.reset(ctx, "syncQueueRepository.Recover", models.SyncOperationStatusInProgress)
}

func (r *syncQueueRepository) reset(ctx context.Context, funcName string, from models.SyncOperationStatus) (int, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildResetSyncOperationsQuery(from)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to build update query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var affected int64
	err = r.mutate(ctx, func(tx *sql.Tx) error {
		n, execErr := exec(ctx, tx, query, args...)
		affected = n
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", funcName).Str("from", string(from)).Msg("failed to reset sync operations")
		return 0, fmt.Errorf("failed to reset %s sync operations: %w", from, err)
	}

	if affected > 0 {
		log.Info().Str("func", funcName).Str("from", string(from)).Int64("count", affected).Msg("sync operations moved back to pending")
	}
	return int(affected), nil
}

// TryStartSyncing claims the single drain slot. It returns false when a
// drain is already running.
func (r *syncQueueRepository) TryStartSyncing() bool {
	if !r.syncing.CompareAndSwap(false, true) {
		return false
	}
	r.publishCurrent()
	return true
}

func (r *syncQueueRepository) StopSyncing() {
	if r.syncing.CompareAndSwap(true, false) {
		r.publishCurrent()
	}
}

func (r *syncQueueRepository) State() models.SyncQueueState {
	r.mu.Lock()
	defer r.mu.Unlock()

	state := r.counts
	state.IsSyncing = r.syncing.Load()
	return state
}

func (r *syncQueueRepository) SubscribeState(fn func(models.SyncQueueState)) func() {
	return r.state.Subscribe(fn)
}

// mutate runs fn and the recount in one transaction, then publishes.
func (r *syncQueueRepository) mutate(ctx context.Context, fn func(tx *sql.Tx) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var counts models.SyncQueueState
	err := r.withTx(ctx, func(tx *sql.Tx) error {
		if err := fn(tx); err != nil {
			return err
		}

		var err error
		counts, err = countByStatus(ctx, tx)
		return err
	})
	if err != nil {
		return err
	}

	r.counts = counts
	r.publishLocked()
	return nil
}

func (r *syncQueueRepository) publishCurrent() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.publishLocked()
}

func (r *syncQueueRepository) publishLocked() {
	state := r.counts
	state.IsSyncing = r.syncing.Load()
	r.state.Publish(state)
}

// countByStatus counts pending and in-progress entries as pending.
func countByStatus(ctx context.Context, q queryer) (models.SyncQueueState, error) {
	rows, err := q.QueryContext(ctx, countSyncOperationsByStatus)
	if err != nil {
		return models.SyncQueueState{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var state models.SyncQueueState
	for rows.Next() {
		var (
			status models.SyncOperationStatus
			count  int
		)
		if err := rows.Scan(&status, &count); err != nil {
			return models.SyncQueueState{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		switch status {
		case models.SyncOperationStatusPending, models.SyncOperationStatusInProgress:
			state.PendingCount += count
		case models.SyncOperationStatusFailed:
			state.FailedCount += count
		}
	}
	if err := rows.Err(); err != nil {
		return models.SyncQueueState{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return state, nil
}
