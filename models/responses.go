// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the opaque bearer token.
type LoginResponse struct {
	Token  string `json:"token"`
	UserID int64  `json:"user_id"`
}

// UserResponse is the server profile.
type UserResponse struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Username  string  `json:"username"`
	Birthday  *string `json:"birthday"`
	AvatarURL *string `json:"avatar_url"`
}

// UpdateUserRequest is the body of PUT /me.
type UpdateUserRequest struct {
	Name      string  `json:"name"`
	Birthday  *string `json:"birthday"`
	AvatarURL *string `json:"avatar_url"`
}

// AlbumResponse is a server album.
type AlbumResponse struct {
	ID            int64      `json:"id"`
	Title         string     `json:"title"`
	CoverImageURL *string    `json:"cover_image_url"`
	CreatedAt     ServerTime `json:"created_at"`
}

// AlbumRequest is the body of POST /albums and PUT /albums/{id}.
type AlbumRequest struct {
	Title         string  `json:"title"`
	CoverImageURL *string `json:"cover_image_url"`
}

// MemoryResponse is a server memory.
type MemoryResponse struct {
	ID             int64      `json:"id"`
	AlbumID        int64      `json:"album_id"`
	Title          string     `json:"title"`
	ImageLocalURI  *string    `json:"image_local_uri"`
	ImageRemoteURL *string    `json:"image_remote_url"`
	CreatedAt      ServerTime `json:"created_at"`
}

// UploadMemoryRequest describes the multipart POST /upload.
type UploadMemoryRequest struct {
	AlbumID        int64
	Title          string
	ImageRemoteURL *string
	Data           []byte
	FileName       string
	MimeType       MimeType
}

// Paginated is a page of server items.
type Paginated[T any] struct {
	Items    []T `json:"items"`
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
	Total    int `json:"total"`
}

// HasMore reports whether pages after this one exist.
func (p Paginated[T]) HasMore() bool {
	return p.Page*p.PageSize < p.Total
}

// ServerTime accepts RFC 3339 timestamps as well as the zone-less ISO form
// the server emits; zone-less values are taken as UTC.
type ServerTime time.Time

var serverTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
}

func (t *ServerTime) UnmarshalJSON(b []byte) error {
	var raw *string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if raw == nil || *raw == "" {
		*t = ServerTime{}
		return nil
	}

	for _, layout := range serverTimeLayouts {
		if parsed, err := time.Parse(layout, *raw); err == nil {
			*t = ServerTime(parsed.UTC())
			return nil
		}
	}

	return fmt.Errorf("unsupported time format %q", *raw)
}

func (t ServerTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(t).UTC().Format(time.RFC3339Nano))
}

// Time returns the value as time.Time in UTC.
func (t ServerTime) Time() time.Time {
	return time.Time(t).UTC()
}
