// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// BirthdayLayout is the calendar-date format used on the wire and on disk.
const BirthdayLayout = "2006-01-02"

// User is the signed-in profile. ID is always assigned by the server: there
// is no local-only user.
type User struct {
	ID              int64      `json:"id"`
	Name            string     `json:"name"`
	Username        string     `json:"username"`
	Birthday        *time.Time `json:"birthday,omitempty"`
	AvatarURL       *string    `json:"avatar_url,omitempty"`
	AvatarLocalPath *string    `json:"avatar_local_path,omitempty"`
	SyncStatus      SyncStatus `json:"sync_status"`
}

// IsSynced reports whether the profile matches the server copy.
func (u User) IsSynced() bool {
	return u.SyncStatus == SyncStatusSynced
}

// BirthdayString renders the birthday as YYYY-MM-DD, or nil when unset.
func (u User) BirthdayString() *string {
	if u.Birthday == nil {
		return nil
	}
	s := u.Birthday.Format(BirthdayLayout)
	return &s
}

// ParseBirthday parses a YYYY-MM-DD string. Empty input yields nil.
func ParseBirthday(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(BirthdayLayout, s, time.UTC)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// UserFromResponse maps a server profile. An unparsable birthday is dropped.
func UserFromResponse(resp UserResponse) User {
	user := User{
		ID:         resp.ID,
		Name:       resp.Name,
		Username:   resp.Username,
		AvatarURL:  resp.AvatarURL,
		SyncStatus: SyncStatusSynced,
	}
	if resp.Birthday != nil {
		if b, err := ParseBirthday(*resp.Birthday); err == nil {
			user.Birthday = b
		}
	}
	return user
}
