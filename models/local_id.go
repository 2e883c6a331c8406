// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"

	"github.com/google/uuid"
)

// LocalID is the client-generated identity assigned to every entity and
// outbox entry before the server knows about it. It joins an entity, its
// outbox entries and its pending image blob.
//
// The embedded uuid.UUID supplies text, JSON and database/sql encoding.
type LocalID struct {
	uuid.UUID
}

// NewLocalID returns a fresh random LocalID.
func NewLocalID() LocalID {
	return LocalID{uuid.New()}
}

// ParseLocalID parses the canonical textual form of a LocalID.
func ParseLocalID(s string) (LocalID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return LocalID{}, fmt.Errorf("invalid local id %q: %w", s, err)
	}
	return LocalID{id}, nil
}

// MustParseLocalID is like ParseLocalID but panics on malformed input.
func MustParseLocalID(s string) LocalID {
	return LocalID{uuid.MustParse(s)}
}

// IsZero reports whether the id was never assigned.
func (l LocalID) IsZero() bool {
	return l.UUID == uuid.Nil
}
