// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/MKhiriev/go-memories/internal/logger"
	"github.com/MKhiriev/go-memories/models"
)

var sessionKey = []byte("current")

// boltSessionStore implements [SessionStore] as one JSON value in the
// session bucket.
type boltSessionStore struct {
	db     *BoltDB
	logger *logger.Logger
}

func NewBoltSessionStore(db *BoltDB, logger *logger.Logger) SessionStore {
	return &boltSessionStore{
		db:     db,
		logger: logger,
	}
}

func (s *boltSessionStore) SaveSession(ctx context.Context, session models.Session) error {
	log := logger.FromContext(ctx)

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("%w: %s", ErrBucketNotFound, bucketSession)
		}
		return bucket.Put(sessionKey, data)
	})
	if err != nil {
		log.Err(err).Str("func", "boltSessionStore.SaveSession").Int64("user_id", session.UserID).Msg("failed to save session")
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

func (s *boltSessionStore) LoadSession(ctx context.Context) (*models.Session, error) {
	log := logger.FromContext(ctx)

	var session *models.Session
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("%w: %s", ErrBucketNotFound, bucketSession)
		}

		data := bucket.Get(sessionKey)
		if data == nil {
			return nil
		}

		session = &models.Session{}
		if err := json.Unmarshal(data, session); err != nil {
			return fmt.Errorf("failed to unmarshal session: %w", err)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "boltSessionStore.LoadSession").Msg("failed to load session")
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	return session, nil
}

func (s *boltSessionStore) ClearSession(ctx context.Context) error {
	log := logger.FromContext(ctx)

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("%w: %s", ErrBucketNotFound, bucketSession)
		}
		return bucket.Delete(sessionKey)
	})
	if err != nil {
		log.Err(err).Str("func", "boltSessionStore.ClearSession").Msg("failed to clear session")
		return fmt.Errorf("failed to clear session: %w", err)
	}

	return nil
}
