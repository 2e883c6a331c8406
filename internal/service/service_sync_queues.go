// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-memories/internal/logger"
	"github.com/MKhiriev/go-memories/internal/store"
	"github.com/MKhiriev/go-memories/models"
)

type syncQueuesService struct {
	queue    store.SyncQueueRepository
	albums   store.AlbumRepository
	memories store.MemoryRepository
	users    store.UserRepository

	logger *logger.Logger
}

func NewSyncQueuesService(storages *store.ClientStorages, logger *logger.Logger) SyncQueuesService {
	return &syncQueuesService{
		queue:    storages.SyncQueueRepository,
		albums:   storages.AlbumRepository,
		memories: storages.MemoryRepository,
		users:    storages.UserRepository,
		logger:   logger,
	}
}

// List returns every outbox entry, oldest first, joined with the title and
// server id of the entity it targets. Entities that are gone leave both nil.
func (s *syncQueuesService) List(ctx context.Context) ([]models.SyncQueueItem, error) {
	ops, err := s.queue.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load sync queue: %w", err)
	}

	items := make([]models.SyncQueueItem, 0, len(ops))
	for _, op := range ops {
		item := models.SyncQueueItem{Operation: op}
		if err = s.describe(ctx, &item); err != nil {
			s.logger.Err(err).Str("func", "syncQueuesService.List").
				Str("operation_id", op.ID.String()).
				Msg("failed to resolve queued entity")
		}
		items = append(items, item)
	}

	return items, nil
}

func (s *syncQueuesService) describe(ctx context.Context, item *models.SyncQueueItem) error {
	switch item.Operation.EntityType {
	case models.EntityTypeAlbum:
		album, err := s.albums.GetByLocalID(ctx, item.Operation.LocalID)
		if err != nil || album == nil {
			return err
		}
		item.EntityTitle, item.EntityID = &album.Title, album.ServerID
	case models.EntityTypeMemory:
		memory, err := s.memories.GetByLocalID(ctx, item.Operation.LocalID)
		if err != nil || memory == nil {
			return err
		}
		item.EntityTitle, item.EntityID = &memory.Title, memory.ServerID
	case models.EntityTypeUser:
		user, err := s.users.Get(ctx)
		if err != nil || user == nil {
			return err
		}
		id := user.ID
		item.EntityTitle, item.EntityID = &user.Name, &id
	}
	return nil
}
