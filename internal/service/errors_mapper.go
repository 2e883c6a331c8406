// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-memories/internal/adapter"
)

// Outbox error messages.
const (
	MsgDependencyNotSynced = "Album not synced yet"
	MsgEntityNotFound      = "Entity not found in local DB"
	MsgImageNotFound       = "Image file not found"
	MsgUnknownError        = "Unknown error"
)

// mapSyncErrorMessage renders the message stored on a failed outbox entry.
func mapSyncErrorMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrDependencyNotSynced):
		return MsgDependencyNotSynced
	case errors.Is(err, ErrEntityNotFound):
		return MsgEntityNotFound
	case errors.Is(err, ErrImageNotFound):
		return MsgImageNotFound
	}

	if msg := err.Error(); msg != "" {
		return msg
	}
	return MsgUnknownError
}

// mapAdapterError translates the adapter's transport error into a service
// business error where one exists. The adapter error stays in the chain.
func mapAdapterError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, adapter.ErrUnauthorized), errors.Is(err, adapter.ErrForbidden):
		return fmt.Errorf("%w: %w", ErrNotAuthenticated, err)
	case errors.Is(err, adapter.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrAlbumNotFound, err)
	}
	return err
}
