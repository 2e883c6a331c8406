// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"slices"

	"go.etcd.io/bbolt"

	"github.com/MKhiriev/go-memories/internal/logger"
	"github.com/MKhiriev/go-memories/models"
)

// boltImageStorage implements [ImageStorage]: one bucket per entity type,
// keyed by the local id.
type boltImageStorage struct {
	db     *BoltDB
	logger *logger.Logger
}

func NewBoltImageStorage(db *BoltDB, logger *logger.Logger) ImageStorage {
	return &boltImageStorage{
		db:     db,
		logger: logger,
	}
}

// Save stores data and returns the logical path of the blob.
func (s *boltImageStorage) Save(ctx context.Context, data []byte, entityType models.ImageEntityType, localID models.LocalID) (string, error) {
	log := logger.FromContext(ctx)

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := s.bucket(tx, entityType)
		if err != nil {
			return err
		}
		return bucket.Put([]byte(localID.String()), data)
	})
	if err != nil {
		log.Err(err).
			Str("func", "boltImageStorage.Save").
			Str("entity_type", string(entityType)).
			Str("local_id", localID.String()).
			Msg("failed to save image")
		return "", fmt.Errorf("failed to save image: %w", err)
	}

	return s.GetPath(entityType, localID), nil
}

// Get returns a copy of the blob, or an empty slice when there is none.
func (s *boltImageStorage) Get(ctx context.Context, entityType models.ImageEntityType, localID models.LocalID) ([]byte, error) {
	log := logger.FromContext(ctx)

	data := []byte{}
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket, err := s.bucket(tx, entityType)
		if err != nil {
			return err
		}

		// values are only valid inside the transaction
		if v := bucket.Get([]byte(localID.String())); v != nil {
			data = slices.Clone(v)
		}
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "boltImageStorage.Get").
			Str("entity_type", string(entityType)).
			Str("local_id", localID.String()).
			Msg("failed to read image")
		return nil, fmt.Errorf("failed to read image: %w", err)
	}

	return data, nil
}

func (s *boltImageStorage) Delete(ctx context.Context, entityType models.ImageEntityType, localID models.LocalID) error {
	log := logger.FromContext(ctx)

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := s.bucket(tx, entityType)
		if err != nil {
			return err
		}
		return bucket.Delete([]byte(localID.String()))
	})
	if err != nil {
		log.Err(err).
			Str("func", "boltImageStorage.Delete").
			Str("entity_type", string(entityType)).
			Str("local_id", localID.String()).
			Msg("failed to delete image")
		return fmt.Errorf("failed to delete image: %w", err)
	}

	return nil
}

func (s *boltImageStorage) GetPath(entityType models.ImageEntityType, localID models.LocalID) string {
	return models.ImagePath(entityType, localID)
}

func (s *boltImageStorage) bucket(tx *bbolt.Tx, entityType models.ImageEntityType) (*bbolt.Bucket, error) {
	if !slices.Contains(models.ImageEntityTypes, entityType) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownImageEntityType, entityType)
	}

	bucket := tx.Bucket(imageBucket(entityType))
	if bucket == nil {
		return nil, fmt.Errorf("%w: %s", ErrBucketNotFound, imageBucket(entityType))
	}
	return bucket, nil
}
