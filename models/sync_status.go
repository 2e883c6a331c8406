// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SyncStatus is the local reconciliation state of an entity.
type SyncStatus string

const (
	SyncStatusSynced        SyncStatus = "synced"
	SyncStatusPendingCreate SyncStatus = "pendingCreate"
	SyncStatusPendingUpdate SyncStatus = "pendingUpdate"
	SyncStatusSyncing       SyncStatus = "syncing"
	SyncStatusFailed        SyncStatus = "failed"
)

// IsPending reports whether the entity carries local changes not yet
// accepted by the server.
func (s SyncStatus) IsPending() bool {
	return s == SyncStatusPendingCreate || s == SyncStatusPendingUpdate
}

// Valid reports whether s is one of the known statuses.
func (s SyncStatus) Valid() bool {
	switch s {
	case SyncStatusSynced, SyncStatusPendingCreate, SyncStatusPendingUpdate, SyncStatusSyncing, SyncStatusFailed:
		return true
	}
	return false
}
