// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-memories/internal/logger"
	"github.com/MKhiriev/go-memories/internal/reachability"
	"github.com/MKhiriev/go-memories/internal/store"
	"github.com/MKhiriev/go-memories/internal/utils"
	"github.com/MKhiriev/go-memories/models"
)

type memoryFormService struct {
	albums    store.AlbumRepository
	memories  store.MemoryRepository
	images    store.ImageStorage
	syncQueue SyncQueueService
	oracle    reachability.Oracle
	ids       *utils.LocalIDGenerator

	logger *logger.Logger
}

func NewMemoryFormService(storages *store.ClientStorages, syncQueue SyncQueueService, oracle reachability.Oracle, logger *logger.Logger) MemoryFormService {
	return &memoryFormService{
		albums:    storages.AlbumRepository,
		memories:  storages.MemoryRepository,
		images:    storages.ImageStorage,
		syncQueue: syncQueue,
		oracle:    oracle,
		ids:       utils.NewLocalIDGenerator(),
		logger:    logger,
	}
}

// Create stores the image and the memory locally, queues the upload and
// drains the queue when online. The memory records the album's server id
// when the album already has one.
func (s *memoryFormService) Create(ctx context.Context, form models.MemoryForm) (models.Memory, error) {
	album, err := s.albums.GetByLocalID(ctx, form.AlbumLocalID)
	if err != nil {
		return models.Memory{}, fmt.Errorf("load album: %w", err)
	}
	if album == nil {
		return models.Memory{}, ErrAlbumNotFound
	}

	localID := s.ids.Generate()
	path, err := s.images.Save(ctx, form.Image, models.ImageEntityTypeMemory, localID)
	if err != nil {
		return models.Memory{}, fmt.Errorf("save memory image: %w", err)
	}

	memory := models.Memory{
		LocalID:        localID,
		AlbumID:        album.ServerID,
		AlbumLocalID:   album.LocalID,
		Title:          strings.TrimSpace(form.Title),
		ImageLocalPath: &path,
		CreatedAt:      time.Now().UTC(),
		SyncStatus:     models.SyncStatusPendingCreate,
	}

	if err = s.memories.Insert(ctx, memory); err != nil {
		return models.Memory{}, fmt.Errorf("save memory: %w", err)
	}
	if err = s.syncQueue.Enqueue(ctx, models.EntityTypeMemory, models.OperationTypeCreate, localID); err != nil {
		return memory, err
	}

	if !s.oracle.IsConnected() {
		return memory, nil
	}
	s.syncQueue.ProcessQueue(ctx)

	fresh, err := s.memories.GetByLocalID(ctx, localID)
	if err != nil || fresh == nil {
		s.logger.Err(err).Str("func", "memoryFormService.Create").Msg("failed to reload memory after sync")
		return memory, nil
	}
	return *fresh, nil
}
