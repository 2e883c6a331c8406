// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the terminal sync queue monitor.
package tui

import (
	"context"

	"github.com/MKhiriev/go-memories/internal/logger"
	"github.com/MKhiriev/go-memories/internal/service"
	"github.com/MKhiriev/go-memories/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{services: services, buildInfo: buildInfo, logger: logger}
}

// WatchQueue runs the queue monitor until the user quits or ctx is done.
func (t *TUI) WatchQueue(ctx context.Context) error {
	states, unsubscribe := t.stateFeed()
	defer unsubscribe()

	model := newMonitorModel(ctx, t.services, states, t.buildInfo)
	if _, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		t.logger.Err(err).Str("func", "TUI.WatchQueue").Msg("queue monitor stopped with error")
		return err
	}
	return nil
}

// stateFeed subscribes to the outbox state. The channel holds only the
// newest state so a slow UI never blocks the publisher.
func (t *TUI) stateFeed() (<-chan models.SyncQueueState, func()) {
	ch := make(chan models.SyncQueueState, 1)
	unsubscribe := t.services.SyncQueueService.SubscribeState(func(state models.SyncQueueState) {
		for {
			select {
			case ch <- state:
				return
			default:
			}
			select {
			case <-ch:
			default:
			}
		}
	})
	return ch, unsubscribe
}
