// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrDependencyNotSynced is raised when a memory is synced before its
	// album got a server id.
	ErrDependencyNotSynced = errors.New("album not synced yet")
	// ErrEntityNotFound is raised when an outbox entry refers to an entity
	// missing from the local store.
	ErrEntityNotFound = errors.New("entity not found in local DB")
	// ErrImageNotFound is raised when a mandatory pending image is missing.
	ErrImageNotFound = errors.New("image file not found")

	ErrUserNotLoaded    = errors.New("user profile is not loaded")
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrAlbumNotFound    = errors.New("album not found")
	ErrOffline          = errors.New("offline")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// ErrInvalidCredentials is returned by Login when the server rejects the
// username or password.
var ErrInvalidCredentials = errors.New("invalid username or password")
