// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-memories/internal/config"
	"github.com/MKhiriev/go-memories/internal/service"
	"github.com/MKhiriev/go-memories/models"
)

// Client defines the lifecycle contract the command line drives.
type Client interface {
	// Services exposes the use cases.
	Services() *service.ClientServices

	// Context attaches the client logger to ctx.
	Context(ctx context.Context) context.Context

	// Config returns the resolved configuration.
	Config() *config.ClientConfig

	// Connect refreshes the connectivity state once and reports it.
	Connect(ctx context.Context) bool

	// RestoreSession loads the saved login and refreshes the profile.
	RestoreSession(ctx context.Context) (models.User, error)

	// Run starts the background workers and blocks until ctx is done.
	Run(ctx context.Context) error

	// WatchQueue runs the background workers together with the queue
	// monitor until the user quits or ctx is done.
	WatchQueue(ctx context.Context) error

	Close() error
}
