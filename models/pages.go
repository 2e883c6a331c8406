// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AlbumPage is what the album list shows: every album loaded so far, the
// last fetched page and whether the server holds more.
type AlbumPage struct {
	Albums  []Album `json:"albums"`
	Page    int     `json:"page"`
	HasMore bool    `json:"has_more"`
}

// MemoryPage is the album detail counterpart of AlbumPage.
type MemoryPage struct {
	Memories []Memory `json:"memories"`
	Page     int      `json:"page"`
	HasMore  bool     `json:"has_more"`
}
