// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-memories/internal/config"
	"github.com/MKhiriev/go-memories/internal/logger"
)

// ClientStorages groups all client-side storage into a single value that can
// be passed around the service layer.
type ClientStorages struct {
	AlbumRepository     AlbumRepository
	MemoryRepository    MemoryRepository
	UserRepository      UserRepository
	SyncQueueRepository SyncQueueRepository
	ImageStorage        ImageStorage
	SessionStore        SessionStore

	db   *DB
	bolt *BoltDB
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens the SQLite database at cfg.DB.DSN, creating the file if needed.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Opens the bbolt blob store at cfg.Blobs.Path.
//  4. Moves outbox entries left in progress by a previous run back to
//     pending.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	bolt, err := NewConnectBolt(cfg.Blobs, logger)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("blob store error: %w", err)
	}

	storages := &ClientStorages{
		AlbumRepository:     NewAlbumRepository(db, logger),
		MemoryRepository:    NewMemoryRepository(db, logger),
		UserRepository:      NewUserRepository(db, logger),
		SyncQueueRepository: NewSyncQueueRepository(db, logger),
		ImageStorage:        NewBoltImageStorage(bolt, logger),
		SessionStore:        NewBoltSessionStore(bolt, logger),
		db:                  db,
		bolt:                bolt,
	}

	recovered, err := storages.SyncQueueRepository.Recover(ctx)
	if err != nil {
		storages.Close()
		return nil, fmt.Errorf("outbox recovery failed: %w", err)
	}
	if recovered > 0 {
		logger.Warn().Int("count", recovered).Msg("interrupted sync operations returned to the queue")
	}

	return storages, nil
}

// Close releases both database files.
func (s *ClientStorages) Close() error {
	var errs []error
	if s.bolt != nil {
		errs = append(errs, s.bolt.Close())
	}
	if s.db != nil {
		errs = append(errs, s.db.Close())
	}
	return errors.Join(errs...)
}
