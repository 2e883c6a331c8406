// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-memories/internal/adapter"
	"github.com/MKhiriev/go-memories/internal/logger"
	"github.com/MKhiriev/go-memories/internal/reachability"
	"github.com/MKhiriev/go-memories/internal/store"
)

// ClientServices groups the use cases exposed to the CLI and the TUI.
type ClientServices struct {
	AuthService        AuthService
	LaunchService      LaunchService
	SyncQueueService   SyncQueueService
	SyncQueuesService  SyncQueuesService
	AlbumFormService   AlbumFormService
	MemoryFormService  MemoryFormService
	UserProfileService UserProfileService
	AlbumListService   AlbumListService
	AlbumDetailService AlbumDetailService
	SyncJob            SyncJob
}

// NewClientServices wires every use case. Form services are wrapped with
// input validation.
func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, oracle reachability.Oracle, logger *logger.Logger) *ClientServices {
	syncQueue := NewSyncQueueService(storages, serverAdapter, oracle, logger)

	return &ClientServices{
		AuthService:        NewAuthService(storages, serverAdapter, logger),
		LaunchService:      NewLaunchService(storages, serverAdapter, oracle, logger),
		SyncQueueService:   syncQueue,
		SyncQueuesService:  NewSyncQueuesService(storages, logger),
		AlbumFormService:   NewAlbumFormValidationService().Wrap(NewAlbumFormService(storages, syncQueue, oracle, logger)),
		MemoryFormService:  NewMemoryFormValidationService().Wrap(NewMemoryFormService(storages, syncQueue, oracle, logger)),
		UserProfileService: NewUserProfileValidationService().Wrap(NewUserProfileService(storages, syncQueue, oracle, logger)),
		AlbumListService:   NewAlbumListService(storages, serverAdapter, oracle, logger),
		AlbumDetailService: NewAlbumDetailService(storages, serverAdapter, oracle, logger),
		SyncJob:            NewSyncJob(syncQueue),
	}
}
