// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-memories/internal/adapter"
	"github.com/MKhiriev/go-memories/internal/config"
	"github.com/MKhiriev/go-memories/internal/logger"
	"github.com/MKhiriev/go-memories/internal/reachability"
	"github.com/MKhiriev/go-memories/internal/service"
	"github.com/MKhiriev/go-memories/internal/store"
	"github.com/MKhiriev/go-memories/internal/tui"
	"github.com/MKhiriev/go-memories/internal/workers"
	"github.com/MKhiriev/go-memories/models"
	"golang.org/x/sync/errgroup"
)

// Options tune how the App is assembled.
type Options struct {
	// Offline pins connectivity to false and disables probing. Every change
	// stays in the outbox until a later online run.
	Offline bool
}

// App owns every long-lived client component.
type App struct {
	cfg       *config.ClientConfig
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	storages *store.ClientStorages
	oracle   reachability.Oracle
	prober   *reachability.Prober
	services *service.ClientServices
	tui      *tui.TUI
}

var _ Client = (*App)(nil)

// NewApp opens the local storage and builds the services on top of it.
// The caller must Close the App.
func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, opts Options, log *logger.Logger) (*App, error) {
	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		storages.Close()
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	app := &App{
		cfg:       cfg,
		buildInfo: buildInfo,
		logger:    log,
		storages:  storages,
	}

	if opts.Offline {
		app.oracle = reachability.NewSwitch(false)
	} else {
		prober, err := reachability.NewProber(cfg.Adapter, log)
		if err != nil {
			storages.Close()
			return nil, fmt.Errorf("create prober: %w", err)
		}
		app.prober = prober
		app.oracle = prober
	}

	app.services = service.NewClientServices(storages, serverAdapter, app.oracle, log)
	app.tui = tui.New(app.services, buildInfo, log)

	return app, nil
}

func (a *App) Services() *service.ClientServices {
	return a.services
}

func (a *App) Context(ctx context.Context) context.Context {
	return a.logger.WithContext(ctx)
}

func (a *App) Config() *config.ClientConfig {
	return a.cfg
}

func (a *App) Connect(ctx context.Context) bool {
	if a.prober == nil {
		return a.oracle.IsConnected()
	}
	return a.prober.Probe(ctx)
}

// RestoreSession returns ErrNotAuthenticated when nobody is logged in. A
// profile refresh failure is returned together with the cached profile when
// one exists.
func (a *App) RestoreSession(ctx context.Context) (models.User, error) {
	if _, err := a.services.AuthService.Restore(ctx); err != nil {
		return models.User{}, err
	}

	user, err := a.services.LaunchService.Refresh(ctx)
	if err != nil {
		return models.User{}, fmt.Errorf("refresh profile: %w", err)
	}
	return user, nil
}

func (a *App) Run(ctx context.Context) error {
	a.logger.Info().
		Str("version", a.buildInfo.BuildVersion()).
		Bool("offline", a.prober == nil).
		Msg("client workers started")

	err := a.workers().Run(ctx)

	a.logger.Info().Msg("client workers stopped")
	return err
}

// WatchQueue stops the workers as soon as the monitor exits.
func (a *App) WatchQueue(ctx context.Context) error {
	g, gCtx := errgroup.WithContext(ctx)
	workersCtx, stopWorkers := context.WithCancel(gCtx)

	g.Go(func() error {
		return a.workers().Run(workersCtx)
	})
	g.Go(func() error {
		defer stopWorkers()
		return a.tui.WatchQueue(gCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func (a *App) Close() error {
	a.services.SyncJob.Stop()
	return a.storages.Close()
}

func (a *App) workers() *workers.Workers {
	list := []workers.Worker{
		workers.NewReconnectWorker(a.oracle, a.services.SyncQueueService, a.logger.Component("reconnect")),
		workers.NewSyncJobWorker(a.services.SyncJob, a.cfg.Workers.SyncInterval),
	}
	if a.prober != nil {
		list = append(list, workers.NewProbeWorker(a.prober, a.cfg.Workers.ProbeInterval))
	}
	return workers.NewWorkers(list...)
}
