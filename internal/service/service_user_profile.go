// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-memories/internal/logger"
	"github.com/MKhiriev/go-memories/internal/reachability"
	"github.com/MKhiriev/go-memories/internal/store"
	"github.com/MKhiriev/go-memories/internal/utils"
	"github.com/MKhiriev/go-memories/models"
)

type userProfileService struct {
	users     store.UserRepository
	images    store.ImageStorage
	syncQueue SyncQueueService
	oracle    reachability.Oracle
	ids       *utils.LocalIDGenerator

	logger *logger.Logger
}

func NewUserProfileService(storages *store.ClientStorages, syncQueue SyncQueueService, oracle reachability.Oracle, logger *logger.Logger) UserProfileService {
	return &userProfileService{
		users:     storages.UserRepository,
		images:    storages.ImageStorage,
		syncQueue: syncQueue,
		oracle:    oracle,
		ids:       utils.NewLocalIDGenerator(),
		logger:    logger,
	}
}

func (s *userProfileService) Get(ctx context.Context) (models.User, error) {
	user, err := s.users.Get(ctx)
	if err != nil {
		return models.User{}, fmt.Errorf("load user: %w", err)
	}
	if user == nil {
		return models.User{}, ErrUserNotLoaded
	}
	return *user, nil
}

// Update stores the edited profile as pending and queues it. The user has no
// local id of its own, so the outbox entry's id keys the pending avatar.
func (s *userProfileService) Update(ctx context.Context, form models.ProfileForm) (models.User, error) {
	user, err := s.Get(ctx)
	if err != nil {
		return models.User{}, err
	}

	operationLocalID := s.ids.Generate()

	user.Name = strings.TrimSpace(form.Name)
	user.Birthday = form.Birthday
	user.SyncStatus = models.SyncStatusPendingUpdate

	if form.Avatar != nil {
		path, err := s.images.Save(ctx, form.Avatar, models.ImageEntityTypeAvatar, operationLocalID)
		if err != nil {
			return models.User{}, fmt.Errorf("save avatar: %w", err)
		}
		user.AvatarLocalPath = &path
		user.AvatarURL = nil
	}

	if err = s.users.Set(ctx, user); err != nil {
		return models.User{}, fmt.Errorf("save user: %w", err)
	}
	if err = s.syncQueue.Enqueue(ctx, models.EntityTypeUser, models.OperationTypeUpdate, operationLocalID); err != nil {
		return user, err
	}

	if !s.oracle.IsConnected() {
		return user, nil
	}
	s.syncQueue.ProcessQueue(ctx)

	fresh, err := s.Get(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "userProfileService.Update").Msg("failed to reload user after sync")
		return user, nil
	}
	return fresh, nil
}
