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

type albumFormService struct {
	albums    store.AlbumRepository
	images    store.ImageStorage
	syncQueue SyncQueueService
	oracle    reachability.Oracle
	ids       *utils.LocalIDGenerator

	logger *logger.Logger
}

func NewAlbumFormService(storages *store.ClientStorages, syncQueue SyncQueueService, oracle reachability.Oracle, logger *logger.Logger) AlbumFormService {
	return &albumFormService{
		albums:    storages.AlbumRepository,
		images:    storages.ImageStorage,
		syncQueue: syncQueue,
		oracle:    oracle,
		ids:       utils.NewLocalIDGenerator(),
		logger:    logger,
	}
}

// Create stores the album locally as pending, queues its creation and drains
// the queue when online.
func (s *albumFormService) Create(ctx context.Context, form models.AlbumForm) (models.Album, error) {
	album := models.Album{
		LocalID:    s.ids.Generate(),
		Title:      strings.TrimSpace(form.Title),
		CreatedAt:  time.Now().UTC(),
		SyncStatus: models.SyncStatusPendingCreate,
	}

	if form.Cover != nil {
		path, err := s.images.Save(ctx, form.Cover, models.ImageEntityTypeAlbumCover, album.LocalID)
		if err != nil {
			return models.Album{}, fmt.Errorf("save cover image: %w", err)
		}
		album.CoverImageLocalPath = &path
	}

	if err := s.albums.Insert(ctx, album); err != nil {
		return models.Album{}, fmt.Errorf("save album: %w", err)
	}
	if err := s.syncQueue.Enqueue(ctx, models.EntityTypeAlbum, models.OperationTypeCreate, album.LocalID); err != nil {
		return album, err
	}

	return s.syncAndReload(ctx, album), nil
}

// Update applies the form to the stored album, queues the update and drains
// the queue when online. An album whose creation is still queued stays
// pending-create.
func (s *albumFormService) Update(ctx context.Context, localID models.LocalID, form models.AlbumForm) (models.Album, error) {
	current, err := s.albums.GetByLocalID(ctx, localID)
	if err != nil {
		return models.Album{}, fmt.Errorf("load album: %w", err)
	}
	if current == nil {
		return models.Album{}, ErrAlbumNotFound
	}

	album := *current
	album.Title = strings.TrimSpace(form.Title)
	if album.SyncStatus != models.SyncStatusPendingCreate {
		album.SyncStatus = models.SyncStatusPendingUpdate
	}

	if form.Cover != nil {
		path, err := s.images.Save(ctx, form.Cover, models.ImageEntityTypeAlbumCover, localID)
		if err != nil {
			return models.Album{}, fmt.Errorf("save cover image: %w", err)
		}
		album.CoverImageLocalPath = &path
	}

	if err = s.albums.Update(ctx, album); err != nil {
		return models.Album{}, fmt.Errorf("save album: %w", err)
	}
	if err = s.syncQueue.Enqueue(ctx, models.EntityTypeAlbum, models.OperationTypeUpdate, localID); err != nil {
		return album, err
	}

	return s.syncAndReload(ctx, album), nil
}

func (s *albumFormService) syncAndReload(ctx context.Context, album models.Album) models.Album {
	if !s.oracle.IsConnected() {
		return album
	}

	s.syncQueue.ProcessQueue(ctx)

	fresh, err := s.albums.GetByLocalID(ctx, album.LocalID)
	if err != nil || fresh == nil {
		s.logger.Err(err).Str("func", "albumFormService.syncAndReload").Msg("failed to reload album after sync")
		return album
	}
	return *fresh
}
