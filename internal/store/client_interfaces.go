// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-memories/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// AlbumRepository owns the local album table. Lookups by an absent id return
// nil without error; writes targeting an absent id are no-ops.
type AlbumRepository interface {
	GetAll(ctx context.Context) ([]models.Album, error)
	GetByLocalID(ctx context.Context, localID models.LocalID) (*models.Album, error)
	GetByServerID(ctx context.Context, serverID int64) (*models.Album, error)

	// SyncSet replaces the synced albums with albums. Rows with local changes
	// are kept. No change events are emitted.
	SyncSet(ctx context.Context, albums []models.Album) error
	// SyncAppend upserts a further page of albums. No change events are emitted.
	SyncAppend(ctx context.Context, albums []models.Album) error

	Insert(ctx context.Context, album models.Album) error
	Update(ctx context.Context, album models.Album) error
	Delete(ctx context.Context, localID models.LocalID) error
	MarkAsSynced(ctx context.Context, localID models.LocalID, serverID int64) error
	UpdateCoverImageURL(ctx context.Context, localID models.LocalID, url string) error

	Subscribe(fn func(models.AlbumChange)) (unsubscribe func())
}

// MemoryRepository owns the local memory table.
type MemoryRepository interface {
	GetAll(ctx context.Context) ([]models.Memory, error)
	GetAllByAlbum(ctx context.Context, albumLocalID models.LocalID) ([]models.Memory, error)
	GetByLocalID(ctx context.Context, localID models.LocalID) (*models.Memory, error)
	GetByServerID(ctx context.Context, serverID int64) (*models.Memory, error)

	// SyncSet replaces the synced memories of albumLocalID with memories.
	SyncSet(ctx context.Context, memories []models.Memory, albumLocalID models.LocalID) error
	SyncAppend(ctx context.Context, memories []models.Memory) error

	Insert(ctx context.Context, memory models.Memory) error
	MarkAsSynced(ctx context.Context, localID models.LocalID, serverID int64) error

	Subscribe(fn func(models.MemoryChange)) (unsubscribe func())
}

// UserRepository owns the single signed-in user. Subscribers receive the
// latest value immediately on subscription.
type UserRepository interface {
	Get(ctx context.Context) (*models.User, error)
	Set(ctx context.Context, user models.User) error
	// Notify re-publishes the stored user, if any.
	Notify(ctx context.Context) error

	Subscribe(fn func(models.User)) (unsubscribe func())
}

// SyncQueueRepository is the durable outbox of pending operations.
type SyncQueueRepository interface {
	Enqueue(ctx context.Context, op models.SyncOperation) error
	// Peek returns the pending entries in insertion order.
	Peek(ctx context.Context) ([]models.SyncOperation, error)
	GetAll(ctx context.Context) ([]models.SyncOperation, error)
	Get(ctx context.Context, id models.LocalID) (*models.SyncOperation, error)
	Remove(ctx context.Context, id models.LocalID) error
	UpdateStatus(ctx context.Context, id models.LocalID, status models.SyncOperationStatus, errorMessage *string) error

	// RetryFailed moves every failed entry back to pending.
	RetryFailed(ctx context.Context) (int, error)
	// Recover moves entries left in progress by an interrupted drain back to
	// pending and refreshes the published state.
	Recover(ctx context.Context) (int, error)

	TryStartSyncing() bool
	StopSyncing()

	State() models.SyncQueueState
	SubscribeState(fn func(models.SyncQueueState)) (unsubscribe func())
}

// ImageStorage keeps pending image uploads keyed by entity type and local id.
type ImageStorage interface {
	Save(ctx context.Context, data []byte, entityType models.ImageEntityType, localID models.LocalID) (string, error)
	// Get returns an empty payload for a missing key.
	Get(ctx context.Context, entityType models.ImageEntityType, localID models.LocalID) ([]byte, error)
	Delete(ctx context.Context, entityType models.ImageEntityType, localID models.LocalID) error
	GetPath(entityType models.ImageEntityType, localID models.LocalID) string
}

// SessionStore persists the login between runs.
type SessionStore interface {
	SaveSession(ctx context.Context, session models.Session) error
	// LoadSession returns nil when nobody is logged in.
	LoadSession(ctx context.Context) (*models.Session, error)
	ClearSession(ctx context.Context) error
}
