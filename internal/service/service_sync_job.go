// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"
)

// DefaultSyncInterval is used by SyncJob.Start for non-positive intervals.
const DefaultSyncInterval = time.Minute

type syncJob struct {
	syncQueue SyncQueueService

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSyncJob creates a job that retries failed outbox entries and drains the
// queue on a ticker. The job is idle until Start is called.
func NewSyncJob(syncQueue SyncQueueService) SyncJob {
	return &syncJob{syncQueue: syncQueue}
}

// Start stops any previously running job, then launches a goroutine that
// calls RetryFailed every interval. The goroutine exits when ctx is cancelled
// or Stop is called.
func (j *syncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultSyncInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.syncQueue.RetryFailed(jobCtx)
			}
		}
	}()
}

// Stop cancels the goroutine and blocks until it has exited. Calling it on
// an idle job is a no-op.
func (j *syncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
