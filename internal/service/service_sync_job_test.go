// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-memories/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spySyncQueue counts RetryFailed calls.
type spySyncQueue struct {
	retries atomic.Int64
}

func (s *spySyncQueue) Enqueue(context.Context, models.EntityType, models.OperationType, models.LocalID) error {
	return nil
}
func (s *spySyncQueue) ProcessQueue(context.Context) {}
func (s *spySyncQueue) RetryFailed(context.Context) { s.retries.Add(1) }
func (s *spySyncQueue) State() models.SyncQueueState { return models.SyncQueueState{} }
func (s *spySyncQueue) SubscribeState(func(models.SyncQueueState)) func() {
	return func() {}
}

func TestNewSyncJob_ReturnsInterface(t *testing.T) {
	job := NewSyncJob(&spySyncQueue{})
	require.NotNil(t, job)
}

func TestSyncJob_Start_RetriesOnEveryTick(t *testing.T) {
	spy := &spySyncQueue{}
	job := NewSyncJob(spy)

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	assert.GreaterOrEqual(t, spy.retries.Load(), int64(3))
}

func TestSyncJob_Stop_StopsGoroutine(t *testing.T) {
	spy := &spySyncQueue{}
	job := NewSyncJob(spy)

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	callsAfterStop := spy.retries.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, callsAfterStop, spy.retries.Load())
}

func TestSyncJob_Stop_BeforeStart_NoPanic(t *testing.T) {
	job := NewSyncJob(&spySyncQueue{})
	assert.NotPanics(t, func() { job.Stop() })
}

func TestSyncJob_DoubleStop_NoPanic(t *testing.T) {
	job := NewSyncJob(&spySyncQueue{})
	job.Start(context.Background(), 10*time.Millisecond)
	job.Stop()

	assert.NotPanics(t, func() { job.Stop() })
}

func TestSyncJob_Start_DefaultInterval(t *testing.T) {
	spy := &spySyncQueue{}
	job := NewSyncJob(spy)

	job.Start(context.Background(), 0)
	time.Sleep(20 * time.Millisecond)
	job.Stop()

	assert.Equal(t, int64(0), spy.retries.Load())
}

func TestSyncJob_Restart_KeepsTicking(t *testing.T) {
	spy := &spySyncQueue{}
	job := NewSyncJob(spy)

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	before := spy.retries.Load()
	require.Greater(t, before, int64(0))

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	assert.Greater(t, spy.retries.Load(), before)
}

func TestSyncJob_ContextCancel_StopsJob(t *testing.T) {
	job := NewSyncJob(&spySyncQueue{})
	ctx, cancel := context.WithCancel(context.Background())

	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	cancel()

	done := make(chan struct{})
	go func() {
		job.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop hung after context cancellation")
	}
}
