// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package reachability tells the sync engine whether the memories service
// can currently be reached.
//
// [Switch] is a manually driven oracle (used by the CLI's --offline mode and
// by tests). [Prober] flips a Switch by periodically probing the service base
// URL over HTTP.
package reachability

//go:generate mockgen -source=interfaces.go -destination=../mock/reachability_mock.go -package=mock

// Oracle is a boolean connectivity signal with a change stream.
type Oracle interface {
	// IsConnected reports the last known connectivity.
	IsConnected() bool
	// Subscribe registers fn for connectivity changes. The current value is
	// delivered immediately.
	Subscribe(fn func(connected bool)) (unsubscribe func())
}
