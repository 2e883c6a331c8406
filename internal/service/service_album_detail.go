// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-memories/internal/adapter"
	"github.com/MKhiriev/go-memories/internal/logger"
	"github.com/MKhiriev/go-memories/internal/reachability"
	"github.com/MKhiriev/go-memories/internal/store"
	"github.com/MKhiriev/go-memories/models"
)

type albumDetailService struct {
	albums        store.AlbumRepository
	memories      store.MemoryRepository
	albumGateway  adapter.AlbumGateway
	memoryGateway adapter.MemoryGateway
	oracle        reachability.Oracle

	logger *logger.Logger
}

func NewAlbumDetailService(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, oracle reachability.Oracle, logger *logger.Logger) AlbumDetailService {
	return &albumDetailService{
		albums:        storages.AlbumRepository,
		memories:      storages.MemoryRepository,
		albumGateway:  serverAdapter,
		memoryGateway: serverAdapter,
		oracle:        oracle,
		logger:        logger,
	}
}

// Display loads the first page of album's memories. A local-only album and
// an offline client show every cached memory of the album.
func (s *albumDetailService) Display(ctx context.Context, album models.Album) (models.MemoryPage, error) {
	if album.ServerID == nil || !s.oracle.IsConnected() {
		return s.cached(ctx, album, nil)
	}

	resp, err := s.memoryGateway.GetMemories(ctx, *album.ServerID, 1, PageSize)
	if err != nil {
		s.logger.Warn().Err(err).Str("func", "albumDetailService.Display").Msg("fetching memories failed, using cache")
		return s.cached(ctx, album, mapAdapterError(err))
	}

	if err = s.memories.SyncSet(ctx, memoriesFromResponse(resp.Items, album.LocalID), album.LocalID); err != nil {
		s.logger.Err(err).Str("func", "albumDetailService.Display").Msg("failed to store memories")
	}

	return s.page(ctx, album, 1, resp.HasMore())
}

func (s *albumDetailService) Next(ctx context.Context, album models.Album, page int) (models.MemoryPage, error) {
	if !s.oracle.IsConnected() || album.ServerID == nil {
		return models.MemoryPage{}, ErrOffline
	}
	if page < 1 {
		page = 1
	}

	resp, err := s.memoryGateway.GetMemories(ctx, *album.ServerID, page, PageSize)
	if err != nil {
		return models.MemoryPage{}, fmt.Errorf("fetch memories page %d: %w", page, mapAdapterError(err))
	}

	if err = s.memories.SyncAppend(ctx, memoriesFromResponse(resp.Items, album.LocalID)); err != nil {
		s.logger.Err(err).Str("func", "albumDetailService.Next").Msg("failed to store memories")
	}

	return s.page(ctx, album, page, resp.HasMore())
}

// ResolveAlbum returns the album with serverID. Online it is fetched and
// merged into the cache without dropping other albums; offline only the
// cache is consulted.
func (s *albumDetailService) ResolveAlbum(ctx context.Context, serverID int64) (models.Album, error) {
	if s.oracle.IsConnected() {
		resp, err := s.albumGateway.GetAlbum(ctx, serverID)
		if err != nil {
			return models.Album{}, fmt.Errorf("fetch album %d: %w", serverID, mapAdapterError(err))
		}

		fetched := models.AlbumFromResponse(resp)
		if err = s.albums.SyncAppend(ctx, []models.Album{fetched}); err != nil {
			s.logger.Err(err).Str("func", "albumDetailService.ResolveAlbum").Msg("failed to store album")
		}

		cached, err := s.albums.GetByServerID(ctx, serverID)
		if err != nil || cached == nil {
			return fetched, nil
		}
		return *cached, nil
	}

	cached, err := s.albums.GetByServerID(ctx, serverID)
	if err != nil {
		return models.Album{}, fmt.Errorf("load album: %w", err)
	}
	if cached == nil {
		return models.Album{}, fmt.Errorf("%w: %w", ErrAlbumNotFound, ErrOffline)
	}
	return *cached, nil
}

func (s *albumDetailService) page(ctx context.Context, album models.Album, page int, hasMore bool) (models.MemoryPage, error) {
	all, err := s.memories.GetAllByAlbum(ctx, album.LocalID)
	if err != nil {
		return models.MemoryPage{}, fmt.Errorf("load memories: %w", err)
	}

	if limit := page * PageSize; len(all) > limit {
		all = all[:limit]
	}
	return models.MemoryPage{Memories: all, Page: page, HasMore: hasMore}, nil
}

// cached returns every cached memory of album. With a non-nil cause an empty
// cache is reported as that error.
func (s *albumDetailService) cached(ctx context.Context, album models.Album, cause error) (models.MemoryPage, error) {
	all, err := s.memories.GetAllByAlbum(ctx, album.LocalID)
	if err != nil {
		return models.MemoryPage{}, fmt.Errorf("load memories: %w", err)
	}
	if len(all) == 0 && cause != nil {
		return models.MemoryPage{}, cause
	}
	return models.MemoryPage{Memories: all, Page: 1}, nil
}

func memoriesFromResponse(items []models.MemoryResponse, albumLocalID models.LocalID) []models.Memory {
	memories := make([]models.Memory, 0, len(items))
	for _, item := range items {
		memories = append(memories, models.MemoryFromResponse(item, albumLocalID))
	}
	return memories
}
