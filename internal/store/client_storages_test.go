// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-memories/internal/config"
	"github.com/MKhiriev/go-memories/internal/logger"
	"github.com/MKhiriev/go-memories/models"
)

func TestNewClientStorages_RecoversInterruptedOperations(t *testing.T) {
	ctx := testContext()
	dir := t.TempDir()
	cfg := config.ClientStorage{
		DB:    config.ClientDB{DSN: filepath.Join(dir, "memories.db")},
		Blobs: config.ClientBlobs{Path: filepath.Join(dir, "images.db")},
	}

	storages, err := NewClientStorages(ctx, cfg, logger.Nop())
	require.NoError(t, err)

	op := newTestOperation(models.EntityTypeAlbum, models.OperationTypeCreate)
	require.NoError(t, storages.SyncQueueRepository.Enqueue(ctx, op))
	require.NoError(t, storages.SyncQueueRepository.UpdateStatus(ctx, op.ID, models.SyncOperationStatusInProgress, nil))
	require.NoError(t, storages.Close())

	storages, err = NewClientStorages(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	defer storages.Close()

	peeked, err := storages.SyncQueueRepository.Peek(ctx)
	require.NoError(t, err)
	require.Len(t, peeked, 1)
	assert.Equal(t, op.ID, peeked[0].ID)
	assert.Equal(t, models.SyncQueueState{PendingCount: 1}, storages.SyncQueueRepository.State())
}
