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

type launchService struct {
	users   store.UserRepository
	gateway adapter.UserGateway
	oracle  reachability.Oracle

	logger *logger.Logger
}

func NewLaunchService(storages *store.ClientStorages, gateway adapter.UserGateway, oracle reachability.Oracle, logger *logger.Logger) LaunchService {
	return &launchService{
		users:   storages.UserRepository,
		gateway: gateway,
		oracle:  oracle,
		logger:  logger,
	}
}

// Refresh replaces the cached profile with the server copy when online. A
// cached profile with unsent edits is kept so the queued update is not lost.
// Whenever the server copy cannot be used the cached profile is re-published.
func (s *launchService) Refresh(ctx context.Context) (models.User, error) {
	cached, err := s.users.Get(ctx)
	if err != nil {
		return models.User{}, fmt.Errorf("load user: %w", err)
	}

	if s.oracle.IsConnected() && (cached == nil || cached.IsSynced()) {
		resp, err := s.gateway.GetMe(ctx)
		if err == nil {
			user := models.UserFromResponse(resp)
			if err = s.users.Set(ctx, user); err != nil {
				return models.User{}, fmt.Errorf("store user: %w", err)
			}
			return user, nil
		}

		s.logger.Warn().Err(err).Str("func", "launchService.Refresh").Msg("fetching profile failed, using cache")
		if cached == nil {
			return models.User{}, fmt.Errorf("%w: %w", ErrUserNotLoaded, mapAdapterError(err))
		}
	}

	if cached == nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrUserNotLoaded, ErrOffline)
	}
	if err = s.users.Notify(ctx); err != nil {
		s.logger.Err(err).Str("func", "launchService.Refresh").Msg("failed to publish cached user")
	}
	return *cached, nil
}
