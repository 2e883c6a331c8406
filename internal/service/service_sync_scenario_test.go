// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-memories/internal/config"
	"github.com/MKhiriev/go-memories/internal/logger"
	"github.com/MKhiriev/go-memories/internal/mock"
	"github.com/MKhiriev/go-memories/internal/reachability"
	"github.com/MKhiriev/go-memories/internal/store"
	"github.com/MKhiriev/go-memories/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// offlineFixture edits through the form services on real storages while the
// switch is off, then drains against a mocked server.
type offlineFixture struct {
	ctx        context.Context
	storages   *store.ClientStorages
	server     *mock.MockServerAdapter
	network    *reachability.Switch
	syncQueue  SyncQueueService
	albumForm  AlbumFormService
	memoryForm MemoryFormService
	profile    UserProfileService
}

func newOfflineFixture(t *testing.T) *offlineFixture {
	t.Helper()

	log := logger.Nop()
	ctx := log.WithContext(context.Background())
	dir := t.TempDir()

	storages, err := store.NewClientStorages(ctx, config.ClientStorage{
		DB:    config.ClientDB{DSN: filepath.Join(dir, "memories.db")},
		Blobs: config.ClientBlobs{Path: filepath.Join(dir, "images.db")},
	}, log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	server := mock.NewMockServerAdapter(gomock.NewController(t))
	network := reachability.NewSwitch(false)
	syncQueue := NewSyncQueueService(storages, server, network, log)

	return &offlineFixture{
		ctx:        ctx,
		storages:   storages,
		server:     server,
		network:    network,
		syncQueue:  syncQueue,
		albumForm:  NewAlbumFormService(storages, syncQueue, network, log),
		memoryForm: NewMemoryFormService(storages, syncQueue, network, log),
		profile:    NewUserProfileService(storages, syncQueue, network, log),
	}
}

func (f *offlineFixture) drain(t *testing.T) {
	t.Helper()
	f.network.Set(true)
	f.syncQueue.ProcessQueue(f.ctx)

	pending, err := f.storages.SyncQueueRepository.GetAll(f.ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestSyncQueueService_TwoOfflineAvatarEdits_UploadsBoth(t *testing.T) {
	f := newOfflineFixture(t)
	require.NoError(t, f.storages.UserRepository.Set(f.ctx, models.User{ID: 7, Name: "Demo", SyncStatus: models.SyncStatusSynced}))

	_, err := f.profile.Update(f.ctx, models.ProfileForm{Name: "Demo", Avatar: []byte("AVATAR-A")})
	require.NoError(t, err)
	_, err = f.profile.Update(f.ctx, models.ProfileForm{Name: "Demo", Avatar: []byte("AVATAR-B")})
	require.NoError(t, err)

	ops, err := f.storages.SyncQueueRepository.GetAll(f.ctx)
	require.NoError(t, err)
	require.Len(t, ops, 2)

	var uploaded []string
	f.server.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).Return(models.UserResponse{ID: 7, Name: "Demo"}, nil).Times(2)
	f.server.EXPECT().UploadAvatar(gomock.Any(), gomock.Any(), gomock.Any(), models.MimeTypeJPEG).
		DoAndReturn(func(_ context.Context, data []byte, _ string, _ models.MimeType) (models.UserResponse, error) {
			uploaded = append(uploaded, string(data))
			return models.UserResponse{ID: 7, Name: "Demo", AvatarURL: ptr("https://cdn/" + string(data) + ".jpg")}, nil
		}).Times(2)

	f.drain(t)

	assert.Equal(t, []string{"AVATAR-A", "AVATAR-B"}, uploaded)

	user, err := f.storages.UserRepository.Get(f.ctx)
	require.NoError(t, err)
	require.NotNil(t, user)
	require.NotNil(t, user.AvatarURL)
	assert.Equal(t, "https://cdn/AVATAR-B.jpg", *user.AvatarURL)
	assert.Nil(t, user.AvatarLocalPath)

	for _, op := range ops {
		blob, err := f.storages.ImageStorage.Get(f.ctx, models.ImageEntityTypeAvatar, op.LocalID)
		require.NoError(t, err)
		assert.Empty(t, blob)
	}
}

func TestSyncQueueService_OfflineAlbumEditsAndMemory_SyncInOnePass(t *testing.T) {
	f := newOfflineFixture(t)

	album, err := f.albumForm.Create(f.ctx, models.AlbumForm{Title: "Trip", Cover: []byte("COVER")})
	require.NoError(t, err)
	_, err = f.albumForm.Update(f.ctx, album.LocalID, models.AlbumForm{Title: "Trip 2"})
	require.NoError(t, err)
	memory, err := f.memoryForm.Create(f.ctx, models.MemoryForm{AlbumLocalID: album.LocalID, Title: "beach", Image: []byte("PHOTO")})
	require.NoError(t, err)
	assert.Nil(t, memory.AlbumID)

	coverURL := "https://cdn/cover.jpg"
	gomock.InOrder(
		f.server.EXPECT().CreateAlbum(gomock.Any(), models.AlbumRequest{Title: "Trip 2"}).
			Return(models.AlbumResponse{ID: 11, Title: "Trip 2"}, nil),
		f.server.EXPECT().UploadCoverImage(gomock.Any(), int64(11), []byte("COVER"), models.ImageFileName(album.LocalID), models.MimeTypeJPEG).
			Return(models.AlbumResponse{ID: 11, Title: "Trip 2", CoverImageURL: &coverURL}, nil),
		f.server.EXPECT().UpdateAlbum(gomock.Any(), int64(11), models.AlbumRequest{Title: "Trip 2", CoverImageURL: &coverURL}).
			Return(models.AlbumResponse{ID: 11, Title: "Trip 2", CoverImageURL: &coverURL}, nil),
		f.server.EXPECT().UploadMemory(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req models.UploadMemoryRequest) (models.MemoryResponse, error) {
				assert.Equal(t, int64(11), req.AlbumID)
				assert.Equal(t, "PHOTO", string(req.Data))
				return models.MemoryResponse{ID: 21, AlbumID: 11, Title: "beach"}, nil
			}),
	)

	f.drain(t)

	synced, err := f.storages.AlbumRepository.GetByLocalID(f.ctx, album.LocalID)
	require.NoError(t, err)
	require.NotNil(t, synced)
	assert.True(t, synced.IsSynced())
	assert.Equal(t, "Trip 2", synced.Title)
	require.NotNil(t, synced.CoverImageURL)
	assert.Equal(t, coverURL, *synced.CoverImageURL)

	cover, err := f.storages.ImageStorage.Get(f.ctx, models.ImageEntityTypeAlbumCover, album.LocalID)
	require.NoError(t, err)
	assert.Empty(t, cover)

	uploaded, err := f.storages.MemoryRepository.GetByLocalID(f.ctx, memory.LocalID)
	require.NoError(t, err)
	require.NotNil(t, uploaded)
	assert.True(t, uploaded.IsSynced())
	assert.Equal(t, int64(21), *uploaded.ServerID)
}
