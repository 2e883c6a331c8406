// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBroadcaster_FanOutInOrder(t *testing.T) {
	b := NewBroadcaster[int]()

	var got []string
	b.Subscribe(func(v int) { got = append(got, "a") })
	b.Subscribe(func(v int) { got = append(got, "b") })

	b.Publish(1)

	assert.Equal(t, []string{"a", "b"}, got)
}

func TestBroadcaster_NoReplayForLateSubscriber(t *testing.T) {
	b := NewBroadcaster[int]()
	b.Publish(1)

	var got []int
	b.Subscribe(func(v int) { got = append(got, v) })
	assert.Empty(t, got)

	b.Publish(2)
	assert.Equal(t, []int{2}, got)
}

func TestBroadcaster_ReplayLatest(t *testing.T) {
	b := NewReplayBroadcaster[string]()
	b.Publish("first")
	b.Publish("second")

	var got []string
	b.Subscribe(func(v string) { got = append(got, v) })

	assert.Equal(t, []string{"second"}, got)
}

func TestBroadcaster_ReplayNothingBeforeFirstPublish(t *testing.T) {
	b := NewReplayBroadcaster[string]()

	called := false
	b.Subscribe(func(string) { called = true })

	assert.False(t, called)
	_, ok := b.Latest()
	assert.False(t, ok)
}

func TestBroadcaster_Unsubscribe(t *testing.T) {
	b := NewBroadcaster[int]()

	calls := 0
	cancel := b.Subscribe(func(int) { calls++ })
	b.Publish(1)
	cancel()
	cancel()
	b.Publish(2)

	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, b.Len())
}

func TestBroadcaster_UnsubscribeFromCallback(t *testing.T) {
	b := NewBroadcaster[int]()

	calls := 0
	var cancel func()
	cancel = b.Subscribe(func(int) {
		calls++
		cancel()
	})

	b.Publish(1)
	b.Publish(2)

	assert.Equal(t, 1, calls)
}

func TestBroadcaster_ConcurrentPublish(t *testing.T) {
	b := NewBroadcaster[int]()

	var mu sync.Mutex
	total := 0
	b.Subscribe(func(v int) {
		mu.Lock()
		total += v
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b.Publish(1)
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, total)
}
