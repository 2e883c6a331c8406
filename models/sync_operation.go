// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// EntityType names the kind of entity an outbox entry refers to.
type EntityType string

const (
	EntityTypeAlbum  EntityType = "album"
	EntityTypeMemory EntityType = "memory"
	EntityTypeUser   EntityType = "user"
)

// OperationType is the mutation recorded in the outbox.
type OperationType string

const (
	OperationTypeCreate OperationType = "create"
	OperationTypeUpdate OperationType = "update"
)

// SyncOperationStatus is the lifecycle state of an outbox entry.
// Completed entries are removed rather than marked.
type SyncOperationStatus string

const (
	SyncOperationStatusPending    SyncOperationStatus = "pending"
	SyncOperationStatusInProgress SyncOperationStatus = "inProgress"
	SyncOperationStatusFailed     SyncOperationStatus = "failed"
)

// SyncOperation is one outbox entry: a local change to EntityType LocalID
// waiting to be sent to the server.
type SyncOperation struct {
	ID            LocalID             `json:"id"`
	EntityType    EntityType          `json:"entity_type"`
	OperationType OperationType       `json:"operation_type"`
	LocalID       LocalID             `json:"local_id"`
	CreatedAt     time.Time           `json:"created_at"`
	Status        SyncOperationStatus `json:"status"`
	ErrorMessage  *string             `json:"error_message,omitempty"`
}

// NewSyncOperation builds a pending entry for the entity localID.
func NewSyncOperation(entityType EntityType, operationType OperationType, localID LocalID) SyncOperation {
	return SyncOperation{
		ID:            NewLocalID(),
		EntityType:    entityType,
		OperationType: operationType,
		LocalID:       localID,
		CreatedAt:     time.Now().UTC(),
		Status:        SyncOperationStatusPending,
	}
}

// SyncQueueState is the aggregate published after every outbox mutation.
type SyncQueueState struct {
	PendingCount int  `json:"pending_count"`
	FailedCount  int  `json:"failed_count"`
	IsSyncing    bool `json:"is_syncing"`
}

// SyncQueueItem is an outbox entry joined with the entity it refers to, for
// queue inspection.
type SyncQueueItem struct {
	Operation   SyncOperation `json:"operation"`
	EntityTitle *string       `json:"entity_title,omitempty"`
	EntityID    *int64        `json:"entity_server_id,omitempty"`
}
