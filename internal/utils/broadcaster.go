// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "sync"

// Broadcaster is a synchronous observer registry. Publish calls every
// subscriber in subscription order on the publishing goroutine. A replaying
// broadcaster also hands the latest value to each new subscriber.
//
// Callbacks may unsubscribe themselves but must not publish or subscribe on
// the same broadcaster.
type Broadcaster[T any] struct {
	mu     sync.Mutex
	emitMu sync.Mutex

	nextID uint64
	subs   []subscriber[T]

	replay  bool
	latest  T
	hasLast bool
}

type subscriber[T any] struct {
	id uint64
	fn func(T)
}

// NewBroadcaster returns a broadcaster without replay.
func NewBroadcaster[T any]() *Broadcaster[T] {
	return &Broadcaster[T]{}
}

// NewReplayBroadcaster returns a broadcaster that replays the most recent
// value to late subscribers.
func NewReplayBroadcaster[T any]() *Broadcaster[T] {
	return &Broadcaster[T]{replay: true}
}

// Subscribe registers fn and returns a func that removes it. Calling the
// returned func more than once is safe.
func (b *Broadcaster[T]) Subscribe(fn func(T)) func() {
	b.emitMu.Lock()
	defer b.emitMu.Unlock()

	b.mu.Lock()
	b.nextID++
	id := b.nextID
	b.subs = append(b.subs, subscriber[T]{id: id, fn: fn})
	latest, hasLast := b.latest, b.hasLast && b.replay
	b.mu.Unlock()

	if hasLast {
		fn(latest)
	}

	var once sync.Once
	return func() {
		once.Do(func() { b.unsubscribe(id) })
	}
}

func (b *Broadcaster[T]) unsubscribe(id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, s := range b.subs {
		if s.id == id {
			b.subs = append(b.subs[:i:i], b.subs[i+1:]...)
			return
		}
	}
}

// Publish delivers v to every current subscriber.
func (b *Broadcaster[T]) Publish(v T) {
	b.emitMu.Lock()
	defer b.emitMu.Unlock()

	b.mu.Lock()
	b.latest, b.hasLast = v, true
	subs := make([]subscriber[T], len(b.subs))
	copy(subs, b.subs)
	b.mu.Unlock()

	for _, s := range subs {
		s.fn(v)
	}
}

// Latest returns the most recently published value.
func (b *Broadcaster[T]) Latest() (T, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.latest, b.hasLast
}

// Len returns the number of active subscribers.
func (b *Broadcaster[T]) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}
