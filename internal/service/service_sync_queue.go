// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-memories/internal/adapter"
	"github.com/MKhiriev/go-memories/internal/logger"
	"github.com/MKhiriev/go-memories/internal/reachability"
	"github.com/MKhiriev/go-memories/internal/store"
	"github.com/MKhiriev/go-memories/models"
)

type dispatchKey struct {
	entityType    models.EntityType
	operationType models.OperationType
}

type handlerFunc func(ctx context.Context, op models.SyncOperation) error

type syncQueueService struct {
	queue    store.SyncQueueRepository
	albums   store.AlbumRepository
	memories store.MemoryRepository
	users    store.UserRepository
	images   store.ImageStorage

	albumGateway  adapter.AlbumGateway
	memoryGateway adapter.MemoryGateway
	userGateway   adapter.UserGateway

	oracle   reachability.Oracle
	handlers map[dispatchKey]handlerFunc

	logger *logger.Logger
}

// NewSyncQueueService wires the outbox processor to the local storages, the
// server gateways and the reachability oracle.
func NewSyncQueueService(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, oracle reachability.Oracle, logger *logger.Logger) SyncQueueService {
	s := &syncQueueService{
		queue:         storages.SyncQueueRepository,
		albums:        storages.AlbumRepository,
		memories:      storages.MemoryRepository,
		users:         storages.UserRepository,
		images:        storages.ImageStorage,
		albumGateway:  serverAdapter,
		memoryGateway: serverAdapter,
		userGateway:   serverAdapter,
		oracle:        oracle,
		logger:        logger,
	}

	s.handlers = map[dispatchKey]handlerFunc{
		{models.EntityTypeAlbum, models.OperationTypeCreate}:  s.executeAlbumCreate,
		{models.EntityTypeAlbum, models.OperationTypeUpdate}:  s.executeAlbumUpdate,
		{models.EntityTypeMemory, models.OperationTypeCreate}: s.executeMemoryCreate,
		{models.EntityTypeMemory, models.OperationTypeUpdate}: s.unsupported,
		{models.EntityTypeUser, models.OperationTypeCreate}:   s.unsupported,
		{models.EntityTypeUser, models.OperationTypeUpdate}:   s.executeUserUpdate,
	}

	return s
}

func (s *syncQueueService) Enqueue(ctx context.Context, entityType models.EntityType, operationType models.OperationType, localID models.LocalID) error {
	op := models.NewSyncOperation(entityType, operationType, localID)
	if err := s.queue.Enqueue(ctx, op); err != nil {
		return fmt.Errorf("enqueue %s %s: %w", entityType, operationType, err)
	}

	s.logger.Debug().
		Str("func", "syncQueueService.Enqueue").
		Str("operation_id", op.ID.String()).
		Str("entity_type", string(entityType)).
		Str("operation_type", string(operationType)).
		Str("local_id", localID.String()).
		Msg("sync operation enqueued")

	return nil
}

func (s *syncQueueService) ProcessQueue(ctx context.Context) {
	log := s.logger.With().Str("func", "syncQueueService.ProcessQueue").Logger()

	if !s.oracle.IsConnected() {
		log.Debug().Msg("offline, skipping drain")
		return
	}
	if !s.queue.TryStartSyncing() {
		log.Debug().Msg("drain already in progress, skipping")
		return
	}
	defer s.queue.StopSyncing()

	operations, err := s.queue.Peek(ctx)
	if err != nil {
		log.Err(err).Msg("failed to read pending operations")
		return
	}
	if len(operations) == 0 {
		log.Debug().Msg("no pending operations")
		return
	}

	started := time.Now()
	var failed int
	for _, op := range operations {
		if ctx.Err() != nil {
			log.Warn().Err(ctx.Err()).Msg("drain interrupted")
			return
		}
		if !s.process(ctx, op) {
			failed++
		}
	}

	log.Info().
		Int("operations", len(operations)).
		Int("failed", failed).
		Dur("took", time.Since(started)).
		Msg("drain finished")
}

// process runs a single operation and records the outcome in the outbox. It
// reports whether the operation succeeded.
func (s *syncQueueService) process(ctx context.Context, op models.SyncOperation) bool {
	log := s.logger.With().
		Str("func", "syncQueueService.process").
		Str("operation_id", op.ID.String()).
		Str("entity_type", string(op.EntityType)).
		Str("operation_type", string(op.OperationType)).
		Str("local_id", op.LocalID.String()).
		Logger()

	if err := s.queue.UpdateStatus(ctx, op.ID, models.SyncOperationStatusInProgress, nil); err != nil {
		log.Err(err).Msg("failed to mark operation in progress")
	}

	if err := s.dispatch(ctx, op); err != nil {
		msg := mapSyncErrorMessage(err)
		log.Err(err).Str("error_message", msg).Msg("sync operation failed")

		if updErr := s.queue.UpdateStatus(ctx, op.ID, models.SyncOperationStatusFailed, &msg); updErr != nil {
			log.Err(updErr).Msg("failed to mark operation failed")
		}
		return false
	}

	if err := s.queue.Remove(ctx, op.ID); err != nil {
		log.Err(err).Msg("failed to remove completed operation")
	}
	log.Info().Msg("sync operation completed")
	return true
}

func (s *syncQueueService) dispatch(ctx context.Context, op models.SyncOperation) error {
	handler, ok := s.handlers[dispatchKey{op.EntityType, op.OperationType}]
	if !ok {
		return fmt.Errorf("no handler for %s %s", op.EntityType, op.OperationType)
	}
	return handler(ctx, op)
}

func (s *syncQueueService) RetryFailed(ctx context.Context) {
	n, err := s.queue.RetryFailed(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "syncQueueService.RetryFailed").Msg("failed to reset failed operations")
	} else if n > 0 {
		s.logger.Info().Str("func", "syncQueueService.RetryFailed").Int("count", n).Msg("failed operations returned to the queue")
	}

	s.ProcessQueue(ctx)
}

func (s *syncQueueService) State() models.SyncQueueState {
	return s.queue.State()
}

func (s *syncQueueService) SubscribeState(fn func(models.SyncQueueState)) func() {
	return s.queue.SubscribeState(fn)
}
