// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.etcd.io/bbolt"

	"github.com/MKhiriev/go-memories/internal/config"
	"github.com/MKhiriev/go-memories/internal/logger"
	"github.com/MKhiriev/go-memories/models"
)

const boltOpenTimeout = time.Second

var bucketSession = []byte("session")

// BoltDB is the key/value file holding pending image blobs and the session.
type BoltDB struct {
	*bbolt.DB
	logger *logger.Logger
}

// NewConnectBolt opens (creating if needed) the bbolt file at cfg.Path and
// makes sure every bucket exists.
func NewConnectBolt(cfg config.ClientBlobs, log *logger.Logger) (*BoltDB, error) {
	if dir := filepath.Dir(cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			log.Err(err).Str("func", "NewConnectBolt").Msg("error creating blob store directory")
			return nil, fmt.Errorf("error creating blob store directory: %w", err)
		}
	}

	db, err := bbolt.Open(cfg.Path, 0o600, &bbolt.Options{Timeout: boltOpenTimeout})
	if err != nil {
		log.Err(err).Str("func", "NewConnectBolt").Str("path", cfg.Path).Msg("error opening blob store")
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	boltDB := &BoltDB{DB: db, logger: log}
	if err := boltDB.initBuckets(); err != nil {
		db.Close()
		log.Err(err).Str("func", "NewConnectBolt").Msg("error initialising buckets")
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	log.Debug().Str("func", "NewConnectBolt").Str("path", cfg.Path).Msg("blob store opened")
	return boltDB, nil
}

// initBuckets creates one bucket per image entity type plus the session bucket.
func (b *BoltDB) initBuckets() error {
	return b.Update(func(tx *bbolt.Tx) error {
		for _, entityType := range models.ImageEntityTypes {
			if _, err := tx.CreateBucketIfNotExists(imageBucket(entityType)); err != nil {
				return fmt.Errorf("failed to create %s bucket: %w", entityType, err)
			}
		}

		if _, err := tx.CreateBucketIfNotExists(bucketSession); err != nil {
			return fmt.Errorf("failed to create session bucket: %w", err)
		}

		return nil
	})
}

func imageBucket(entityType models.ImageEntityType) []byte {
	return []byte("images/" + string(entityType))
}
