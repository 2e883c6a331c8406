// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-memories/internal/logger"
	"github.com/MKhiriev/go-memories/internal/utils"
	"github.com/MKhiriev/go-memories/models"
)

// userRepository is the SQLite-backed implementation of [UserRepository].
// The table holds at most one row.
//
// Subscribers are served by a replaying broadcaster, so a view that
// subscribes after the user was loaded still renders it straight away.
type userRepository struct {
	*DB
	logger *logger.Logger

	mu      sync.Mutex
	changes *utils.Broadcaster[models.User]
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		DB:      db,
		logger:  logger,
		changes: utils.NewReplayBroadcaster[models.User](),
	}
}

// Get returns the stored user, or nil when nobody has been loaded yet.
func (r *userRepository) Get(ctx context.Context) (*models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUserQuery()
	if err != nil {
		log.Err(err).Str("func", "userRepository.Get").Msg("failed to build select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user, err := queryOne(ctx, r.DB, scanUser, query, args...)
	if err != nil {
		log.Err(err).Str("func", "userRepository.Get").Msg("error reading user")
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

// Set overwrites the stored user and publishes it.
func (r *userRepository) Set(ctx context.Context, user models.User) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertUserQuery(user)
	if err != nil {
		log.Err(err).Str("func", "userRepository.Set").Msg("failed to build upsert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	r.mu.Lock()
	_, err = exec(ctx, r.DB, query, args...)
	r.mu.Unlock()
	if err != nil {
		log.Err(err).Str("func", "userRepository.Set").Int64("user_id", user.ID).Msg("error saving user")
		return fmt.Errorf("failed to save user: %w", err)
	}

	r.changes.Publish(user)
	return nil
}

func (r *userRepository) Notify(ctx context.Context) error {
	user, err := r.Get(ctx)
	if err != nil {
		return err
	}
	if user != nil {
		r.changes.Publish(*user)
	}
	return nil
}

func (r *userRepository) Subscribe(fn func(models.User)) func() {
	return r.changes.Subscribe(fn)
}
