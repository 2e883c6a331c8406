// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-memories/internal/logger"
	"github.com/MKhiriev/go-memories/internal/reachability"
	"github.com/MKhiriev/go-memories/internal/service"
)

// ProbeRunner is satisfied by reachability.Prober.
type ProbeRunner interface {
	Run(ctx context.Context, interval time.Duration) error
}

// NewProbeWorker keeps the reachability state fresh.
func NewProbeWorker(prober ProbeRunner, interval time.Duration) Worker {
	return WorkerFunc(func(ctx context.Context) error {
		return prober.Run(ctx, interval)
	})
}

// NewSyncJobWorker runs job for as long as the worker runs.
func NewSyncJobWorker(job service.SyncJob, interval time.Duration) Worker {
	return WorkerFunc(func(ctx context.Context) error {
		job.Start(ctx, interval)
		<-ctx.Done()
		job.Stop()
		return nil
	})
}

type reconnectWorker struct {
	oracle    reachability.Oracle
	syncQueue service.SyncQueueService
	logger    *logger.Logger
}

// NewReconnectWorker retries the outbox every time oracle reports that the
// server became reachable again.
func NewReconnectWorker(oracle reachability.Oracle, syncQueue service.SyncQueueService, logger *logger.Logger) Worker {
	return &reconnectWorker{oracle: oracle, syncQueue: syncQueue, logger: logger}
}

func (w *reconnectWorker) Run(ctx context.Context) error {
	reconnected := make(chan struct{}, 1)

	// the callback runs on the publisher's goroutine
	var online atomic.Bool
	unsubscribe := w.oracle.Subscribe(func(connected bool) {
		wasOnline := online.Swap(connected)
		if !connected || wasOnline {
			return
		}
		select {
		case reconnected <- struct{}{}:
		default:
		}
	})
	defer unsubscribe()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-reconnected:
			w.logger.Info().Str("func", "reconnectWorker.Run").Msg("server reachable, retrying sync queue")
			w.syncQueue.RetryFailed(ctx)
		}
	}
}
