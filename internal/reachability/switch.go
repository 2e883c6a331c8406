// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package reachability

import (
	"sync"

	"github.com/MKhiriev/go-memories/internal/utils"
)

// Switch is an [Oracle] whose value is set explicitly.
type Switch struct {
	mu        sync.Mutex
	connected bool
	changes   *utils.Broadcaster[bool]
}

// NewSwitch returns a Switch starting at connected.
func NewSwitch(connected bool) *Switch {
	s := &Switch{connected: connected, changes: utils.NewReplayBroadcaster[bool]()}
	s.changes.Publish(connected)
	return s
}

func (s *Switch) IsConnected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.connected
}

// Set updates the value. Subscribers hear about it only when it changed.
// It reports whether the value changed.
func (s *Switch) Set(connected bool) bool {
	s.mu.Lock()
	if s.connected == connected {
		s.mu.Unlock()
		return false
	}
	s.connected = connected
	s.mu.Unlock()

	s.changes.Publish(connected)
	return true
}

func (s *Switch) Subscribe(fn func(connected bool)) func() {
	return s.changes.Subscribe(fn)
}
