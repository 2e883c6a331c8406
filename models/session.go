// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Session is the persisted login: the opaque bearer token and the id of the
// user it belongs to.
type Session struct {
	Token   string    `json:"token"`
	UserID  int64     `json:"user_id"`
	SavedAt time.Time `json:"saved_at"`
}
