// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-memories/models"
)

const (
	albumsTable         = "albums"
	memoriesTable       = "memories"
	usersTable          = "users"
	syncOperationsTable = "sync_operations"

	userSlot = 1
)

var (
	albumColumns = []string{
		"local_id", "server_id", "title", "cover_image_url",
		"cover_image_local_path", "created_at", "sync_status",
	}
	memoryColumns = []string{
		"local_id", "server_id", "album_id", "album_local_id", "title",
		"image_url", "image_local_path", "created_at", "sync_status",
	}
	userColumns = []string{
		"id", "name", "username", "birthday", "avatar_url",
		"avatar_local_path", "sync_status",
	}
	syncOperationColumns = []string{
		"id", "entity_type", "operation_type", "local_id", "created_at",
		"status", "error_message",
	}
)

const (
	upsertAlbumSuffix = `ON CONFLICT(local_id) DO UPDATE SET
		server_id = excluded.server_id,
		title = excluded.title,
		cover_image_url = excluded.cover_image_url,
		cover_image_local_path = excluded.cover_image_local_path,
		created_at = excluded.created_at,
		sync_status = excluded.sync_status,
		position = excluded.position`

	upsertMemorySuffix = `ON CONFLICT(local_id) DO UPDATE SET
		server_id = excluded.server_id,
		album_id = excluded.album_id,
		album_local_id = excluded.album_local_id,
		title = excluded.title,
		image_url = excluded.image_url,
		image_local_path = excluded.image_local_path,
		created_at = excluded.created_at,
		sync_status = excluded.sync_status,
		position = excluded.position`

	upsertUserSuffix = `ON CONFLICT(slot) DO UPDATE SET
		id = excluded.id,
		name = excluded.name,
		username = excluded.username,
		birthday = excluded.birthday,
		avatar_url = excluded.avatar_url,
		avatar_local_path = excluded.avatar_local_path,
		sync_status = excluded.sync_status`

	countSyncOperationsByStatus = `SELECT status, COUNT(*) FROM sync_operations GROUP BY status;`
)

// albums

func buildSelectAlbumsQuery(where sq.Sqlizer) (string, []any, error) {
	builder := sq.Select(albumColumns...).
		From(albumsTable).
		OrderBy("position ASC", "created_at DESC")
	if where != nil {
		builder = builder.Where(where)
	}
	return builder.ToSql()
}

// buildInsertAlbumQuery places the album before every existing row.
func buildInsertAlbumQuery(album models.Album) (string, []any, error) {
	return sq.Insert(albumsTable).
		Columns(append(albumColumns, "position")...).
		Values(
			album.LocalID,
			album.ServerID,
			album.Title,
			album.CoverImageURL,
			album.CoverImageLocalPath,
			album.CreatedAt.UnixNano(),
			album.SyncStatus,
			sq.Expr("(SELECT COALESCE(MIN(position), 1) - 1 FROM albums)"),
		).
		ToSql()
}

func buildUpsertAlbumQuery(album models.Album, position int64) (string, []any, error) {
	return sq.Insert(albumsTable).
		Columns(append(albumColumns, "position")...).
		Values(
			album.LocalID,
			album.ServerID,
			album.Title,
			album.CoverImageURL,
			album.CoverImageLocalPath,
			album.CreatedAt.UnixNano(),
			album.SyncStatus,
			position,
		).
		Suffix(upsertAlbumSuffix).
		ToSql()
}

func buildUpdateAlbumQuery(album models.Album) (string, []any, error) {
	return sq.Update(albumsTable).
		Set("server_id", album.ServerID).
		Set("title", album.Title).
		Set("cover_image_url", album.CoverImageURL).
		Set("cover_image_local_path", album.CoverImageLocalPath).
		Set("created_at", album.CreatedAt.UnixNano()).
		Set("sync_status", album.SyncStatus).
		Where(sq.Eq{"local_id": album.LocalID}).
		ToSql()
}

func buildMarkAlbumSyncedQuery(localID models.LocalID, serverID int64) (string, []any, error) {
	return sq.Update(albumsTable).
		Set("server_id", serverID).
		Set("sync_status", models.SyncStatusSynced).
		Where(sq.Eq{"local_id": localID}).
		ToSql()
}

func buildUpdateAlbumCoverURLQuery(localID models.LocalID, url string) (string, []any, error) {
	return sq.Update(albumsTable).
		Set("cover_image_url", url).
		Where(sq.Eq{"local_id": localID}).
		ToSql()
}

func buildDeleteAlbumQuery(localID models.LocalID) (string, []any, error) {
	return sq.Delete(albumsTable).Where(sq.Eq{"local_id": localID}).ToSql()
}

// buildDeleteStaleAlbumsQuery removes synced albums the server no longer
// lists. Rows with local changes are never touched, and neither are rows
// still referenced by an unsynced memory or an outbox entry.
func buildDeleteStaleAlbumsQuery(keepServerIDs []int64) (string, []any, error) {
	return sq.Delete(albumsTable).
		Where(sq.Eq{"sync_status": models.SyncStatusSynced}).
		Where(sq.NotEq{"server_id": keepServerIDs}).
		Where(sq.Expr(
			"NOT EXISTS (SELECT 1 FROM " + memoriesTable + " WHERE " + memoriesTable + ".album_local_id = " + albumsTable + ".local_id AND " + memoriesTable + ".sync_status <> ?)",
			models.SyncStatusSynced,
		)).
		Where(sq.Expr(
			"NOT EXISTS (SELECT 1 FROM " + syncOperationsTable + " WHERE " + syncOperationsTable + ".local_id = " + albumsTable + ".local_id)",
		)).
		ToSql()
}

func buildMaxPositionQuery(table string, where sq.Sqlizer) (string, []any, error) {
	builder := sq.Select("COALESCE(MAX(position), -1)").From(table)
	if where != nil {
		builder = builder.Where(where)
	}
	return builder.ToSql()
}

func buildUpdatePositionQuery(table string, localID models.LocalID, position int64) (string, []any, error) {
	return sq.Update(table).
		Set("position", position).
		Where(sq.Eq{"local_id": localID}).
		ToSql()
}

// memories

func buildSelectMemoriesQuery(where sq.Sqlizer) (string, []any, error) {
	builder := sq.Select(memoryColumns...).
		From(memoriesTable).
		OrderBy("position ASC", "created_at DESC")
	if where != nil {
		builder = builder.Where(where)
	}
	return builder.ToSql()
}

// buildInsertMemoryQuery places the memory before every other memory of the
// same album.
func buildInsertMemoryQuery(memory models.Memory) (string, []any, error) {
	return sq.Insert(memoriesTable).
		Columns(append(memoryColumns, "position")...).
		Values(
			memory.LocalID,
			memory.ServerID,
			memory.AlbumID,
			memory.AlbumLocalID,
			memory.Title,
			memory.ImageURL,
			memory.ImageLocalPath,
			memory.CreatedAt.UnixNano(),
			memory.SyncStatus,
			sq.Expr("(SELECT COALESCE(MIN(position), 1) - 1 FROM memories WHERE album_local_id = ?)", memory.AlbumLocalID),
		).
		ToSql()
}

func buildUpsertMemoryQuery(memory models.Memory, position int64) (string, []any, error) {
	return sq.Insert(memoriesTable).
		Columns(append(memoryColumns, "position")...).
		Values(
			memory.LocalID,
			memory.ServerID,
			memory.AlbumID,
			memory.AlbumLocalID,
			memory.Title,
			memory.ImageURL,
			memory.ImageLocalPath,
			memory.CreatedAt.UnixNano(),
			memory.SyncStatus,
			position,
		).
		Suffix(upsertMemorySuffix).
		ToSql()
}

func buildMarkMemorySyncedQuery(localID models.LocalID, serverID int64) (string, []any, error) {
	return sq.Update(memoriesTable).
		Set("server_id", serverID).
		Set("sync_status", models.SyncStatusSynced).
		Where(sq.Eq{"local_id": localID}).
		ToSql()
}

func buildDeleteStaleMemoriesQuery(albumLocalID models.LocalID, keepServerIDs []int64) (string, []any, error) {
	return sq.Delete(memoriesTable).
		Where(sq.Eq{"album_local_id": albumLocalID, "sync_status": models.SyncStatusSynced}).
		Where(sq.NotEq{"server_id": keepServerIDs}).
		ToSql()
}

// user

func buildSelectUserQuery() (string, []any, error) {
	return sq.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"slot": userSlot}).
		ToSql()
}

func buildUpsertUserQuery(user models.User) (string, []any, error) {
	return sq.Insert(usersTable).
		Columns(append([]string{"slot"}, userColumns...)...).
		Values(
			userSlot,
			user.ID,
			user.Name,
			user.Username,
			user.BirthdayString(),
			user.AvatarURL,
			user.AvatarLocalPath,
			user.SyncStatus,
		).
		Suffix(upsertUserSuffix).
		ToSql()
}

// sync operations

func buildSelectSyncOperationsQuery(where sq.Sqlizer) (string, []any, error) {
	builder := sq.Select(syncOperationColumns...).
		From(syncOperationsTable).
		OrderBy("seq ASC")
	if where != nil {
		builder = builder.Where(where)
	}
	return builder.ToSql()
}

func buildInsertSyncOperationQuery(op models.SyncOperation) (string, []any, error) {
	return sq.Insert(syncOperationsTable).
		Columns(syncOperationColumns...).
		Values(
			op.ID,
			op.EntityType,
			op.OperationType,
			op.LocalID,
			op.CreatedAt.UnixNano(),
			op.Status,
			op.ErrorMessage,
		).
		ToSql()
}

func buildDeleteSyncOperationQuery(id models.LocalID) (string, []any, error) {
	return sq.Delete(syncOperationsTable).Where(sq.Eq{"id": id}).ToSql()
}

func buildUpdateSyncOperationStatusQuery(id models.LocalID, status models.SyncOperationStatus, errorMessage *string) (string, []any, error) {
	return sq.Update(syncOperationsTable).
		Set("status", status).
		Set("error_message", errorMessage).
		Where(sq.Eq{"id": id}).
		ToSql()
}

// buildResetSyncOperationsQuery moves every entry in status from back to
// pending and clears its error message.
func buildResetSyncOperationsQuery(from models.SyncOperationStatus) (string, []any, error) {
	return sq.Update(syncOperationsTable).
		Set("status", models.SyncOperationStatusPending).
		Set("error_message", nil).
		Where(sq.Eq{"status": from}).
		ToSql()
}
