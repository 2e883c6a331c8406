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

// PageSize is the number of albums or memories fetched per request.
const PageSize = 5

type albumListService struct {
	albums  store.AlbumRepository
	gateway adapter.AlbumGateway
	oracle  reachability.Oracle

	logger *logger.Logger
}

func NewAlbumListService(storages *store.ClientStorages, gateway adapter.AlbumGateway, oracle reachability.Oracle, logger *logger.Logger) AlbumListService {
	return &albumListService{
		albums:  storages.AlbumRepository,
		gateway: gateway,
		oracle:  oracle,
		logger:  logger,
	}
}

// Display loads the first page. Offline, or when the fetch fails, every
// cached album is shown instead; an empty cache yields the error.
func (s *albumListService) Display(ctx context.Context) (models.AlbumPage, error) {
	if !s.oracle.IsConnected() {
		return s.cached(ctx, ErrOffline)
	}

	resp, err := s.gateway.GetAlbums(ctx, 1, PageSize)
	if err != nil {
		s.logger.Warn().Err(err).Str("func", "albumListService.Display").Msg("fetching albums failed, using cache")
		return s.cached(ctx, mapAdapterError(err))
	}

	if err = s.albums.SyncSet(ctx, albumsFromResponse(resp.Items)); err != nil {
		return models.AlbumPage{}, fmt.Errorf("store albums: %w", err)
	}

	return s.page(ctx, 1, resp.HasMore())
}

// Next loads page and appends it to the cached list. Paging needs the server.
func (s *albumListService) Next(ctx context.Context, page int) (models.AlbumPage, error) {
	if !s.oracle.IsConnected() {
		return models.AlbumPage{}, ErrOffline
	}
	if page < 1 {
		page = 1
	}

	resp, err := s.gateway.GetAlbums(ctx, page, PageSize)
	if err != nil {
		return models.AlbumPage{}, fmt.Errorf("fetch albums page %d: %w", page, mapAdapterError(err))
	}

	if err = s.albums.SyncAppend(ctx, albumsFromResponse(resp.Items)); err != nil {
		return models.AlbumPage{}, fmt.Errorf("store albums: %w", err)
	}

	return s.page(ctx, page, resp.HasMore())
}

// page returns the first page*PageSize cached albums. Reading back from the
// store yields the local ids kept for albums already known.
func (s *albumListService) page(ctx context.Context, page int, hasMore bool) (models.AlbumPage, error) {
	all, err := s.albums.GetAll(ctx)
	if err != nil {
		return models.AlbumPage{}, fmt.Errorf("load albums: %w", err)
	}

	if limit := page * PageSize; len(all) > limit {
		all = all[:limit]
	}
	return models.AlbumPage{Albums: all, Page: page, HasMore: hasMore}, nil
}

func (s *albumListService) cached(ctx context.Context, cause error) (models.AlbumPage, error) {
	all, err := s.albums.GetAll(ctx)
	if err != nil {
		return models.AlbumPage{}, fmt.Errorf("load albums: %w", err)
	}
	if len(all) == 0 {
		return models.AlbumPage{}, cause
	}
	return models.AlbumPage{Albums: all, Page: 1}, nil
}

func albumsFromResponse(items []models.AlbumResponse) []models.Album {
	albums := make([]models.Album, 0, len(items))
	for _, item := range items {
		albums = append(albums, models.AlbumFromResponse(item))
	}
	return albums
}
