// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-memories/internal/adapter"
	"github.com/MKhiriev/go-memories/internal/service"
	"github.com/MKhiriev/go-memories/internal/validators"
)

func TestDescribe(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "offline", err: fmt.Errorf("list albums: %w", service.ErrOffline), want: MsgUnreachable},
		{name: "timeout", err: fmt.Errorf("get /me: %w", adapter.ErrTimeout), want: MsgUnreachable},
		{name: "refused", err: errors.New("dial tcp 127.0.0.1:8000: connect: connection refused"), want: MsgUnreachable},
		{name: "no session", err: service.ErrNotAuthenticated, want: MsgNotLoggedIn},
		{name: "rejected token", err: fmt.Errorf("%w: expired", adapter.ErrUnauthorized), want: MsgNotLoggedIn},
		{name: "bad credentials", err: fmt.Errorf("login: %w", service.ErrInvalidCredentials), want: MsgInvalidCredentials},
		{name: "album missing", err: fmt.Errorf("%w: %w", service.ErrAlbumNotFound, service.ErrOffline), want: MsgAlbumNotFound},
		{name: "profile missing", err: service.ErrUserNotLoaded, want: MsgProfileNotLoaded},
		{name: "server", err: adapter.ErrServiceUnavailable, want: MsgServerFailed},
		{name: "validation", err: fmt.Errorf("invalid album: %w", validators.ErrEmptyTitle), want: "invalid album: title is required"},
		{name: "unknown", err: errors.New("disk full"), want: "disk full"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Describe(tt.err))
		})
	}
}
