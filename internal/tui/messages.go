// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/go-memories/models"

type stateMsg struct {
	state models.SyncQueueState
}

type itemsLoadedMsg struct {
	items []models.SyncQueueItem
	err   error
}

type syncDoneMsg struct {
	retried bool
}

type clearStatusMsg struct{}
