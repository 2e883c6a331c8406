// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-memories/internal/logger"
	"github.com/MKhiriev/go-memories/models"
)

func newTestSyncQueueRepo(t *testing.T) SyncQueueRepository {
	t.Helper()
	return NewSyncQueueRepository(newTestSQLite(t), logger.Nop())
}

func newTestOperation(entityType models.EntityType, opType models.OperationType) models.SyncOperation {
	op := models.NewSyncOperation(entityType, opType, models.NewLocalID())
	op.CreatedAt = fixedTime(0)
	return op
}

func operationIDs(ops []models.SyncOperation) []models.LocalID {
	ids := make([]models.LocalID, 0, len(ops))
	for _, op := range ops {
		ids = append(ids, op.ID)
	}
	return ids
}

func TestSyncQueueRepository_Lifecycle(t *testing.T) {
	ctx := testContext()
	repo := newTestSyncQueueRepo(t)

	op := newTestOperation(models.EntityTypeAlbum, models.OperationTypeCreate)
	require.NoError(t, repo.Enqueue(ctx, op))

	peeked, err := repo.Peek(ctx)
	require.NoError(t, err)
	require.Len(t, peeked, 1)
	assert.Equal(t, op, peeked[0])

	require.NoError(t, repo.UpdateStatus(ctx, op.ID, models.SyncOperationStatusInProgress, nil))

	peeked, err = repo.Peek(ctx)
	require.NoError(t, err)
	assert.Empty(t, peeked)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, models.SyncOperationStatusInProgress, all[0].Status)

	require.NoError(t, repo.Remove(ctx, op.ID))

	all, err = repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	got, err := repo.Get(ctx, op.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSyncQueueRepository_PeekKeepsInsertionOrder(t *testing.T) {
	ctx := testContext()
	repo := newTestSyncQueueRepo(t)

	ops := []models.SyncOperation{
		newTestOperation(models.EntityTypeAlbum, models.OperationTypeCreate),
		newTestOperation(models.EntityTypeMemory, models.OperationTypeCreate),
		newTestOperation(models.EntityTypeUser, models.OperationTypeUpdate),
	}
	for _, op := range ops {
		require.NoError(t, repo.Enqueue(ctx, op))
	}

	peeked, err := repo.Peek(ctx)
	require.NoError(t, err)
	assert.Equal(t, operationIDs(ops), operationIDs(peeked))
}

func TestSyncQueueRepository_FailedAndRetry(t *testing.T) {
	ctx := testContext()
	repo := newTestSyncQueueRepo(t)

	op := newTestOperation(models.EntityTypeMemory, models.OperationTypeCreate)
	require.NoError(t, repo.Enqueue(ctx, op))

	msg := "Album not synced yet"
	require.NoError(t, repo.UpdateStatus(ctx, op.ID, models.SyncOperationStatusFailed, &msg))

	got, err := repo.Get(ctx, op.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, models.SyncOperationStatusFailed, got.Status)
	require.NotNil(t, got.ErrorMessage)
	assert.Equal(t, msg, *got.ErrorMessage)

	peeked, err := repo.Peek(ctx)
	require.NoError(t, err)
	assert.Empty(t, peeked)
	assert.Equal(t, models.SyncQueueState{PendingCount: 0, FailedCount: 1}, repo.State())

	n, err := repo.RetryFailed(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	peeked, err = repo.Peek(ctx)
	require.NoError(t, err)
	require.Len(t, peeked, 1)
	assert.Nil(t, peeked[0].ErrorMessage)
	assert.Equal(t, models.SyncQueueState{PendingCount: 1}, repo.State())
}

func TestSyncQueueRepository_Recover(t *testing.T) {
	ctx := testContext()
	repo := newTestSyncQueueRepo(t)

	stuck := newTestOperation(models.EntityTypeAlbum, models.OperationTypeUpdate)
	failed := newTestOperation(models.EntityTypeAlbum, models.OperationTypeCreate)
	require.NoError(t, repo.Enqueue(ctx, stuck))
	require.NoError(t, repo.Enqueue(ctx, failed))
	require.NoError(t, repo.UpdateStatus(ctx, stuck.ID, models.SyncOperationStatusInProgress, nil))
	require.NoError(t, repo.UpdateStatus(ctx, failed.ID, models.SyncOperationStatusFailed, ptr("boom")))

	n, err := repo.Recover(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	peeked, err := repo.Peek(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.LocalID{stuck.ID}, operationIDs(peeked))
}

func TestSyncQueueRepository_TryStartSyncing(t *testing.T) {
	repo := newTestSyncQueueRepo(t)

	assert.True(t, repo.TryStartSyncing())
	assert.False(t, repo.TryStartSyncing())
	assert.True(t, repo.State().IsSyncing)

	repo.StopSyncing()
	assert.False(t, repo.State().IsSyncing)
	assert.True(t, repo.TryStartSyncing())
	repo.StopSyncing()
}

func TestSyncQueueRepository_TryStartSyncingConcurrent(t *testing.T) {
	repo := newTestSyncQueueRepo(t)

	var (
		wg      sync.WaitGroup
		winners atomic.Int32
	)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if repo.TryStartSyncing() {
				winners.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), winners.Load())
}

func TestSyncQueueRepository_StatePublishedAfterEveryMutation(t *testing.T) {
	ctx := testContext()
	repo := newTestSyncQueueRepo(t)

	var states []models.SyncQueueState
	repo.SubscribeState(func(s models.SyncQueueState) { states = append(states, s) })

	op := newTestOperation(models.EntityTypeUser, models.OperationTypeUpdate)
	require.NoError(t, repo.Enqueue(ctx, op))
	require.True(t, repo.TryStartSyncing())
	require.NoError(t, repo.UpdateStatus(ctx, op.ID, models.SyncOperationStatusInProgress, nil))
	require.NoError(t, repo.Remove(ctx, op.ID))
	repo.StopSyncing()

	assert.Equal(t, []models.SyncQueueState{
		{PendingCount: 1},
		{PendingCount: 1, IsSyncing: true},
		{PendingCount: 1, IsSyncing: true},
		{PendingCount: 0, IsSyncing: true},
		{PendingCount: 0},
	}, states)

	var replayed []models.SyncQueueState
	repo.SubscribeState(func(s models.SyncQueueState) { replayed = append(replayed, s) })
	assert.Equal(t, []models.SyncQueueState{{}}, replayed)
}

func TestSyncQueueRepository_Enqueue_ExecError(t *testing.T) {
	sqlDB, mock := newTestDB(t)
	repo := NewSyncQueueRepository(newDBFromSQL(sqlDB), logger.Nop())

	var states []models.SyncQueueState
	repo.SubscribeState(func(s models.SyncQueueState) { states = append(states, s) })

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO sync_operations").WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := repo.Enqueue(testContext(), newTestOperation(models.EntityTypeAlbum, models.OperationTypeCreate))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.Empty(t, states)
	assert.NoError(t, mock.ExpectationsWereMet())
}
