// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"github.com/MKhiriev/go-memories/models"
	"github.com/google/uuid"
)

// LocalIDGenerator issues identities for new entities and outbox entries.
type LocalIDGenerator struct {
}

func NewLocalIDGenerator() *LocalIDGenerator {
	return &LocalIDGenerator{}
}

// Generate returns a random (version 4) LocalID. If the system randomness
// source fails it falls back to a time-ordered version 7 id.
func (g *LocalIDGenerator) Generate() models.LocalID {
	id, err := uuid.NewRandom()
	if err != nil {
		return models.LocalID{UUID: uuid.Must(uuid.NewV7())}
	}

	return models.LocalID{UUID: id}
}
