// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// AlbumForm is the user input for creating or editing an album. A nil Cover
// keeps the current cover.
type AlbumForm struct {
	Title string
	Cover []byte
}

// MemoryForm is the user input for adding a memory to an album.
type MemoryForm struct {
	AlbumLocalID LocalID
	Title        string
	Image        []byte
}

// ProfileForm is the user input for editing the profile. A nil Avatar keeps
// the current avatar.
type ProfileForm struct {
	Name     string
	Birthday *time.Time
	Avatar   []byte
}
