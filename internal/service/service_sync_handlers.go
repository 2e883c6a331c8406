// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-memories/models"
)

// Each handler re-reads the entity it syncs, so re-running it after a
// partial failure picks up where the previous attempt stopped.

func (s *syncQueueService) executeAlbumCreate(ctx context.Context, op models.SyncOperation) error {
	album, err := s.albums.GetByLocalID(ctx, op.LocalID)
	if err != nil {
		return fmt.Errorf("load album: %w", err)
	}
	if album == nil {
		s.logger.Warn().
			Str("func", "syncQueueService.executeAlbumCreate").
			Str("local_id", op.LocalID.String()).
			Msg("album not found, nothing to create")
		return nil
	}

	if album.ServerID == nil {
		resp, err := s.albumGateway.CreateAlbum(ctx, models.AlbumRequest{Title: album.Title})
		if err != nil {
			return fmt.Errorf("create album on server: %w", err)
		}
		if err = s.albums.MarkAsSynced(ctx, album.LocalID, resp.ID); err != nil {
			return fmt.Errorf("mark album synced: %w", err)
		}

		serverID := resp.ID
		album.ServerID = &serverID
		album.SyncStatus = models.SyncStatusSynced
	}

	if _, err = s.uploadPendingCover(ctx, *album); err != nil {
		return err
	}
	return nil
}

func (s *syncQueueService) executeAlbumUpdate(ctx context.Context, op models.SyncOperation) error {
	album, err := s.albums.GetByLocalID(ctx, op.LocalID)
	if err != nil {
		return fmt.Errorf("load album: %w", err)
	}
	if album == nil || album.ServerID == nil {
		s.logger.Warn().
			Str("func", "syncQueueService.executeAlbumUpdate").
			Str("local_id", op.LocalID.String()).
			Msg("album has no server id, nothing to update")
		return nil
	}

	req := models.AlbumRequest{Title: album.Title, CoverImageURL: album.CoverImageURL}
	if _, err = s.albumGateway.UpdateAlbum(ctx, *album.ServerID, req); err != nil {
		return fmt.Errorf("update album on server: %w", err)
	}

	coverURL, err := s.uploadPendingCover(ctx, *album)
	if err != nil {
		return err
	}
	if coverURL != nil {
		album.CoverImageURL = coverURL
	}

	album.SyncStatus = models.SyncStatusSynced
	if err = s.albums.Update(ctx, *album); err != nil {
		return fmt.Errorf("mark album synced: %w", err)
	}
	return nil
}

// uploadPendingCover uploads the locally stored cover of album, patches the
// remote URL and drops the blob. It returns the new URL, or nil when there
// was nothing to upload.
func (s *syncQueueService) uploadPendingCover(ctx context.Context, album models.Album) (*string, error) {
	if album.CoverImageLocalPath == nil || album.ServerID == nil {
		return nil, nil
	}

	data, err := s.images.Get(ctx, models.ImageEntityTypeAlbumCover, album.LocalID)
	if err != nil {
		return nil, fmt.Errorf("read pending cover: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	resp, err := s.albumGateway.UploadCoverImage(ctx, *album.ServerID, data, models.ImageFileName(album.LocalID), models.MimeTypeJPEG)
	if err != nil {
		return nil, fmt.Errorf("upload cover image: %w", err)
	}

	if resp.CoverImageURL != nil {
		if err = s.albums.UpdateCoverImageURL(ctx, album.LocalID, *resp.CoverImageURL); err != nil {
			return nil, fmt.Errorf("store cover url: %w", err)
		}
	}
	if err = s.images.Delete(ctx, models.ImageEntityTypeAlbumCover, album.LocalID); err != nil {
		return nil, fmt.Errorf("delete pending cover: %w", err)
	}

	return resp.CoverImageURL, nil
}

func (s *syncQueueService) executeMemoryCreate(ctx context.Context, op models.SyncOperation) error {
	memory, err := s.memories.GetByLocalID(ctx, op.LocalID)
	if err != nil {
		return fmt.Errorf("load memory: %w", err)
	}
	if memory == nil {
		return ErrEntityNotFound
	}
	if memory.IsSynced() {
		return nil
	}

	albumServerID, err := s.owningAlbumServerID(ctx, *memory)
	if err != nil {
		return err
	}

	data, err := s.images.Get(ctx, models.ImageEntityTypeMemory, op.LocalID)
	if err != nil {
		return fmt.Errorf("read pending image: %w", err)
	}
	if len(data) == 0 {
		return ErrImageNotFound
	}

	resp, err := s.memoryGateway.UploadMemory(ctx, models.UploadMemoryRequest{
		AlbumID:  albumServerID,
		Title:    memory.Title,
		Data:     data,
		FileName: models.ImageFileName(op.LocalID),
		MimeType: models.MimeTypeJPEG,
	})
	if err != nil {
		return fmt.Errorf("upload memory: %w", err)
	}

	if err = s.images.Delete(ctx, models.ImageEntityTypeMemory, op.LocalID); err != nil {
		return fmt.Errorf("delete pending image: %w", err)
	}
	if err = s.memories.MarkAsSynced(ctx, op.LocalID, resp.ID); err != nil {
		return fmt.Errorf("mark memory synced: %w", err)
	}
	return nil
}

// owningAlbumServerID resolves the server id of the album a memory belongs
// to. Memories created while their album was local-only carry no album id,
// so the album is looked up by its local id.
func (s *syncQueueService) owningAlbumServerID(ctx context.Context, memory models.Memory) (int64, error) {
	if memory.AlbumID != nil {
		return *memory.AlbumID, nil
	}

	album, err := s.albums.GetByLocalID(ctx, memory.AlbumLocalID)
	if err != nil {
		return 0, fmt.Errorf("load owning album: %w", err)
	}
	if album == nil || album.ServerID == nil {
		return 0, ErrDependencyNotSynced
	}
	return *album.ServerID, nil
}

func (s *syncQueueService) executeUserUpdate(ctx context.Context, op models.SyncOperation) error {
	user, err := s.users.Get(ctx)
	if err != nil {
		return fmt.Errorf("load user: %w", err)
	}
	if user == nil {
		s.logger.Warn().
			Str("func", "syncQueueService.executeUserUpdate").
			Msg("no user stored, nothing to update")
		return nil
	}

	resp, err := s.userGateway.UpdateUser(ctx, models.UpdateUserRequest{
		Name:      user.Name,
		Birthday:  user.BirthdayString(),
		AvatarURL: user.AvatarURL,
	})
	if err != nil {
		return fmt.Errorf("update user on server: %w", err)
	}

	// each profile edit owns its avatar blob, keyed by the entry id
	data, err := s.images.Get(ctx, models.ImageEntityTypeAvatar, op.LocalID)
	if err != nil {
		return fmt.Errorf("read pending avatar: %w", err)
	}
	if len(data) > 0 {
		// the avatar response is newer than the profile response
		resp, err = s.userGateway.UploadAvatar(ctx, data, models.ImageFileName(op.LocalID), models.MimeTypeJPEG)
		if err != nil {
			return fmt.Errorf("upload avatar: %w", err)
		}
		if err = s.images.Delete(ctx, models.ImageEntityTypeAvatar, op.LocalID); err != nil {
			return fmt.Errorf("delete pending avatar: %w", err)
		}
	}

	if err = s.users.Set(ctx, models.UserFromResponse(resp)); err != nil {
		return fmt.Errorf("store synced user: %w", err)
	}
	return nil
}

// unsupported completes memory-update and user-create entries without
// contacting the server.
func (s *syncQueueService) unsupported(_ context.Context, op models.SyncOperation) error {
	s.logger.Warn().
		Str("func", "syncQueueService.unsupported").
		Str("entity_type", string(op.EntityType)).
		Str("operation_type", string(op.OperationType)).
		Msg("sync operation is not supported, dropping")
	return nil
}
