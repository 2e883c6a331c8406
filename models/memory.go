// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Memory is a single photo inside an album. AlbumID is the server id of the
// owning album and may be nil while that album is still local-only;
// AlbumLocalID always points at the owner.
type Memory struct {
	ServerID       *int64     `json:"server_id,omitempty"`
	LocalID        LocalID    `json:"local_id"`
	AlbumID        *int64     `json:"album_id,omitempty"`
	AlbumLocalID   LocalID    `json:"album_local_id"`
	Title          string     `json:"title"`
	ImageURL       *string    `json:"image_url,omitempty"`
	ImageLocalPath *string    `json:"image_local_path,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	SyncStatus     SyncStatus `json:"sync_status"`
}

// IsSynced reports whether the server confirmed the memory.
func (m Memory) IsSynced() bool {
	return m.ServerID != nil && m.SyncStatus == SyncStatusSynced
}

// DisplayImage resolves the image to show, preferring the remote URL.
func (m Memory) DisplayImage() (string, bool) {
	if m.ImageURL != nil && *m.ImageURL != "" {
		return *m.ImageURL, true
	}
	if m.ImageLocalPath != nil && *m.ImageLocalPath != "" {
		return *m.ImageLocalPath, true
	}
	return "", false
}

// MemoryFromResponse maps a server memory owned by the album albumLocalID.
func MemoryFromResponse(resp MemoryResponse, albumLocalID LocalID) Memory {
	id, albumID := resp.ID, resp.AlbumID
	return Memory{
		ServerID:     &id,
		LocalID:      NewLocalID(),
		AlbumID:      &albumID,
		AlbumLocalID: albumLocalID,
		Title:        resp.Title,
		ImageURL:     resp.ImageRemoteURL,
		CreatedAt:    resp.CreatedAt.Time(),
		SyncStatus:   SyncStatusSynced,
	}
}
