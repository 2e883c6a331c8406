// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-memories/internal/adapter"
	"github.com/MKhiriev/go-memories/internal/logger"
	"github.com/MKhiriev/go-memories/internal/store"
	"github.com/MKhiriev/go-memories/models"
)

type authService struct {
	sessions      store.SessionStore
	serverAdapter adapter.ServerAdapter

	logger *logger.Logger
}

func NewAuthService(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, logger *logger.Logger) AuthService {
	return &authService{
		sessions:      storages.SessionStore,
		serverAdapter: serverAdapter,
		logger:        logger,
	}
}

// Login exchanges the credentials for a token and persists the session.
// The adapter keeps the token for subsequent requests.
func (s *authService) Login(ctx context.Context, username, password string) (models.Session, error) {
	resp, err := s.serverAdapter.Login(ctx, models.LoginRequest{Username: username, Password: password})
	if err != nil {
		if errors.Is(err, adapter.ErrUnauthorized) || errors.Is(err, adapter.ErrForbidden) {
			return models.Session{}, fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
		}
		return models.Session{}, fmt.Errorf("login: %w", err)
	}

	session := models.Session{Token: resp.Token, UserID: resp.UserID, SavedAt: time.Now().UTC()}
	if err = s.sessions.SaveSession(ctx, session); err != nil {
		return models.Session{}, fmt.Errorf("save session: %w", err)
	}

	s.logger.Info().Str("func", "authService.Login").Int64("user_id", resp.UserID).Msg("logged in")
	return session, nil
}

func (s *authService) Restore(ctx context.Context) (models.Session, error) {
	session, err := s.sessions.LoadSession(ctx)
	if err != nil {
		return models.Session{}, fmt.Errorf("load session: %w", err)
	}
	if session == nil || session.Token == "" {
		return models.Session{}, ErrNotAuthenticated
	}

	s.serverAdapter.SetToken(session.Token)
	return *session, nil
}

func (s *authService) Logout(ctx context.Context) error {
	s.serverAdapter.SetToken("")
	if err := s.sessions.ClearSession(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
