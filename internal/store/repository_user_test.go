// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-memories/internal/logger"
	"github.com/MKhiriev/go-memories/models"
)

func newTestUser() models.User {
	birthday := time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC)
	return models.User{
		ID:         7,
		Name:       "Demo User",
		Username:   "demo",
		Birthday:   &birthday,
		AvatarURL:  ptr("https://cdn/avatar.jpg"),
		SyncStatus: models.SyncStatusSynced,
	}
}

func TestUserRepository_GetBeforeSet(t *testing.T) {
	repo := NewUserRepository(newTestSQLite(t), logger.Nop())

	user, err := repo.Get(testContext())

	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserRepository_SetOverwrites(t *testing.T) {
	ctx := testContext()
	repo := NewUserRepository(newTestSQLite(t), logger.Nop())

	user := newTestUser()
	require.NoError(t, repo.Set(ctx, user))

	user.Name = "Renamed"
	user.Birthday = nil
	user.AvatarLocalPath = ptr("images/avatars/x.jpg")
	user.SyncStatus = models.SyncStatusPendingUpdate
	require.NoError(t, repo.Set(ctx, user))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, user, *got)
}

func TestUserRepository_SubscribeReplaysLatest(t *testing.T) {
	ctx := testContext()
	repo := NewUserRepository(newTestSQLite(t), logger.Nop())

	var early []models.User
	repo.Subscribe(func(u models.User) { early = append(early, u) })
	assert.Empty(t, early)

	user := newTestUser()
	require.NoError(t, repo.Set(ctx, user))
	require.Len(t, early, 1)

	var late []models.User
	unsubscribe := repo.Subscribe(func(u models.User) { late = append(late, u) })
	require.Len(t, late, 1)
	assert.Equal(t, user, late[0])

	unsubscribe()
	require.NoError(t, repo.Notify(ctx))
	assert.Len(t, late, 1)
	assert.Len(t, early, 2)
}

func TestUserRepository_NotifyWithoutUser(t *testing.T) {
	repo := NewUserRepository(newTestSQLite(t), logger.Nop())

	called := false
	repo.Subscribe(func(models.User) { called = true })

	require.NoError(t, repo.Notify(testContext()))
	assert.False(t, called)
}

func TestUserRepository_Get_QueryError(t *testing.T) {
	sqlDB, mock := newTestDB(t)
	repo := NewUserRepository(newDBFromSQL(sqlDB), logger.Nop())

	mock.ExpectQuery("SELECT id, name, username").WillReturnError(errors.New("no such table: users"))

	user, err := repo.Get(testContext())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrScanningRow)
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}
