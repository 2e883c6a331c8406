// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-memories/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SyncQueueService drains the sync outbox against the server.
type SyncQueueService interface {
	// Enqueue records a pending operation for the entity localID.
	Enqueue(ctx context.Context, entityType models.EntityType, operationType models.OperationType, localID models.LocalID) error

	// ProcessQueue runs one drain pass over the pending operations. It returns
	// immediately when offline or when another pass is already running.
	// Per-operation failures are recorded in the outbox, never returned.
	ProcessQueue(ctx context.Context)

	// RetryFailed moves failed operations back to pending and drains.
	RetryFailed(ctx context.Context)

	State() models.SyncQueueState
	SubscribeState(fn func(models.SyncQueueState)) (unsubscribe func())
}

// AlbumFormService creates and edits albums offline-first.
type AlbumFormService interface {
	Create(ctx context.Context, form models.AlbumForm) (models.Album, error)
	Update(ctx context.Context, localID models.LocalID, form models.AlbumForm) (models.Album, error)
}

// MemoryFormService adds memories to albums offline-first.
type MemoryFormService interface {
	Create(ctx context.Context, form models.MemoryForm) (models.Memory, error)
}

// UserProfileService reads and edits the signed-in profile.
type UserProfileService interface {
	// Get returns the cached profile, or ErrUserNotLoaded.
	Get(ctx context.Context) (models.User, error)
	Update(ctx context.Context, form models.ProfileForm) (models.User, error)
}

// AlbumListService pages through the albums, falling back to the local copy
// while offline.
type AlbumListService interface {
	Display(ctx context.Context) (models.AlbumPage, error)
	Next(ctx context.Context, page int) (models.AlbumPage, error)
}

// AlbumDetailService pages through the memories of one album.
type AlbumDetailService interface {
	Display(ctx context.Context, album models.Album) (models.MemoryPage, error)
	Next(ctx context.Context, album models.Album, page int) (models.MemoryPage, error)
	// ResolveAlbum finds an album by its server id, fetching it when online.
	ResolveAlbum(ctx context.Context, serverID int64) (models.Album, error)
}

// SyncQueuesService lists the outbox for inspection.
type SyncQueuesService interface {
	List(ctx context.Context) ([]models.SyncQueueItem, error)
}

// AuthService manages the login session.
type AuthService interface {
	Login(ctx context.Context, username, password string) (models.Session, error)
	// Restore loads a saved session into the gateway. It returns
	// ErrNotAuthenticated when nobody is logged in.
	Restore(ctx context.Context) (models.Session, error)
	Logout(ctx context.Context) error
}

// LaunchService prepares the profile at start-up.
type LaunchService interface {
	// Refresh loads the profile from the server when online and falls back
	// to the cached one otherwise.
	Refresh(ctx context.Context) (models.User, error)
}

// SyncJob periodically retries the outbox in the background.
type SyncJob interface {
	// Start launches the job, stopping any previous one. A non-positive
	// interval defaults to one minute.
	Start(ctx context.Context, interval time.Duration)
	// Stop cancels the job and waits for it to exit.
	Stop()
}

// AppInfoService reports build metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
