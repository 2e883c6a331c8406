// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ChangeKind tells subscribers what a user-visible local write did.
type ChangeKind int

const (
	ChangeCreated ChangeKind = iota + 1
	ChangeUpdated
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeCreated:
		return "created"
	case ChangeUpdated:
		return "updated"
	default:
		return "unknown"
	}
}

// AlbumChange is emitted by the album repository on insert and update.
type AlbumChange struct {
	Kind  ChangeKind
	Album Album
}

// MemoryChange is emitted by the memory repository on insert.
type MemoryChange struct {
	Kind   ChangeKind
	Memory Memory
}
