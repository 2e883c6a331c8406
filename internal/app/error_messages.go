// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing wording shared by the command line
// and the queue monitor.
//
// All Msg* constants are human-readable strings shown in place of a raw
// error. Keeping them in one place keeps the wording consistent between the
// two front ends.
package app

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-memories/internal/adapter"
	"github.com/MKhiriev/go-memories/internal/service"
	"github.com/MKhiriev/go-memories/internal/validators"
)

const (
	// MsgUnreachable is shown when the server cannot be reached, either
	// because the device is offline or because the request timed out.
	MsgUnreachable = "No network or the server is unreachable"

	// MsgNotLoggedIn is shown when a command needs a session and none is
	// saved, or when the server rejected the saved token.
	MsgNotLoggedIn = "Not logged in, run `memories login` first"

	// MsgInvalidCredentials is shown when the server rejects the supplied
	// username or password.
	MsgInvalidCredentials = "Invalid username or password"

	// MsgAlbumNotFound is shown when an album is neither cached nor known to
	// the server.
	MsgAlbumNotFound = "Album not found"

	// MsgProfileNotLoaded is shown when no profile was ever downloaded.
	MsgProfileNotLoaded = "Profile is not loaded yet, connect once to download it"

	// MsgServerFailed is shown when the server answered with a 5xx status.
	MsgServerFailed = "The server failed to process the request, try again later"
)

// Describe turns err into a message fit for the terminal. Validation errors
// and unknown errors keep their own text.
func Describe(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		return MsgInvalidCredentials
	case errors.Is(err, service.ErrNotAuthenticated),
		errors.Is(err, adapter.ErrUnauthorized):
		return MsgNotLoggedIn
	case errors.Is(err, service.ErrAlbumNotFound):
		return MsgAlbumNotFound
	case errors.Is(err, service.ErrUserNotLoaded):
		return MsgProfileNotLoaded
	case errors.Is(err, service.ErrOffline),
		errors.Is(err, adapter.ErrNetwork),
		errors.Is(err, adapter.ErrTimeout):
		return MsgUnreachable
	case errors.Is(err, adapter.ErrServer),
		errors.Is(err, adapter.ErrServiceUnavailable):
		return MsgServerFailed
	case isValidationError(err):
		return err.Error()
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "i/o timeout") {
		return MsgUnreachable
	}

	return err.Error()
}

func isValidationError(err error) bool {
	for _, target := range []error{
		validators.ErrEmptyTitle,
		validators.ErrTitleTooLong,
		validators.ErrEmptyImage,
		validators.ErrInvalidAlbumLocalID,
		validators.ErrEmptyName,
		validators.ErrNameTooLong,
		validators.ErrBirthdayInFuture,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
