// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Album groups memories. ServerID stays nil until the server accepted the
// album.
type Album struct {
	ServerID            *int64     `json:"server_id,omitempty"`
	LocalID             LocalID    `json:"local_id"`
	Title               string     `json:"title"`
	CoverImageURL       *string    `json:"cover_image_url,omitempty"`
	CoverImageLocalPath *string    `json:"cover_image_local_path,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	SyncStatus          SyncStatus `json:"sync_status"`
}

// IsSynced reports whether the server confirmed the album.
func (a Album) IsSynced() bool {
	return a.ServerID != nil && a.SyncStatus == SyncStatusSynced
}

// DisplayCoverImage resolves the cover to show: the remote URL, then the
// local path, then nothing.
func (a Album) DisplayCoverImage() (string, bool) {
	if a.CoverImageURL != nil && *a.CoverImageURL != "" {
		return *a.CoverImageURL, true
	}
	if a.CoverImageLocalPath != nil && *a.CoverImageLocalPath != "" {
		return *a.CoverImageLocalPath, true
	}
	return "", false
}

// AlbumFromResponse maps a server album onto a new local album. The caller
// decides whether an existing LocalID should be reused.
func AlbumFromResponse(resp AlbumResponse) Album {
	id := resp.ID
	return Album{
		ServerID:      &id,
		LocalID:       NewLocalID(),
		Title:         resp.Title,
		CoverImageURL: resp.CoverImageURL,
		CreatedAt:     resp.CreatedAt.Time(),
		SyncStatus:    SyncStatusSynced,
	}
}
