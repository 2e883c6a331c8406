// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestAlbum_IsSynced(t *testing.T) {
	tests := []struct {
		name  string
		album Album
		want  bool
	}{
		{name: "server id and synced", album: Album{ServerID: ptr(int64(1)), SyncStatus: SyncStatusSynced}, want: true},
		{name: "synced without server id", album: Album{SyncStatus: SyncStatusSynced}, want: false},
		{name: "server id but pending update", album: Album{ServerID: ptr(int64(1)), SyncStatus: SyncStatusPendingUpdate}, want: false},
		{name: "local only", album: Album{SyncStatus: SyncStatusPendingCreate}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.album.IsSynced())
		})
	}
}

func TestAlbum_DisplayCoverImage(t *testing.T) {
	remote, local := "https://cdn/x.jpg", "images/albums/x.jpg"

	got, ok := Album{CoverImageURL: &remote, CoverImageLocalPath: &local}.DisplayCoverImage()
	assert.True(t, ok)
	assert.Equal(t, remote, got)

	got, ok = Album{CoverImageLocalPath: &local}.DisplayCoverImage()
	assert.True(t, ok)
	assert.Equal(t, local, got)

	_, ok = Album{}.DisplayCoverImage()
	assert.False(t, ok)
}

func TestSyncStatus_IsPending(t *testing.T) {
	assert.True(t, SyncStatusPendingCreate.IsPending())
	assert.True(t, SyncStatusPendingUpdate.IsPending())
	assert.False(t, SyncStatusSynced.IsPending())
	assert.False(t, SyncStatusFailed.IsPending())
	assert.False(t, SyncStatus("bogus").Valid())
}

func TestLocalID_RoundTrip(t *testing.T) {
	id := NewLocalID()
	require.False(t, id.IsZero())

	parsed, err := ParseLocalID(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, parsed)

	b, err := json.Marshal(struct {
		ID LocalID `json:"id"`
	}{id})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"`+id.String()+`"}`, string(b))

	_, err = ParseLocalID("not-a-uuid")
	assert.Error(t, err)
	assert.True(t, LocalID{}.IsZero())
}

func TestImagePath(t *testing.T) {
	id := MustParseLocalID("0b9a4f7e-3a53-4c1e-9a10-6f2f2d1e6a11")
	assert.Equal(t, "images/albums/0b9a4f7e-3a53-4c1e-9a10-6f2f2d1e6a11.jpg", ImagePath(ImageEntityTypeAlbumCover, id))
	assert.Equal(t, "images/avatars/0b9a4f7e-3a53-4c1e-9a10-6f2f2d1e6a11.jpg", ImagePath(ImageEntityTypeAvatar, id))
	assert.Equal(t, "0b9a4f7e-3a53-4c1e-9a10-6f2f2d1e6a11.jpg", ImageFileName(id))
}

func TestServerTime_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{name: "rfc3339 with zone", input: `"2025-01-02T03:04:05Z"`, want: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)},
		{name: "offset converted to utc", input: `"2025-01-02T05:04:05+02:00"`, want: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)},
		{name: "zone-less fractional", input: `"2025-01-02T03:04:05.123456"`, want: time.Date(2025, 1, 2, 3, 4, 5, 123456000, time.UTC)},
		{name: "null", input: `null`, want: time.Time{}},
		{name: "garbage", input: `"yesterday"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var st ServerTime
			err := json.Unmarshal([]byte(tt.input), &st)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(time.Time(st)), "got %v", time.Time(st))
		})
	}
}

func TestPaginated_HasMore(t *testing.T) {
	assert.True(t, Paginated[AlbumResponse]{Page: 1, PageSize: 5, Total: 6}.HasMore())
	assert.False(t, Paginated[AlbumResponse]{Page: 2, PageSize: 5, Total: 10}.HasMore())
	assert.False(t, Paginated[AlbumResponse]{Page: 1, PageSize: 5, Total: 0}.HasMore())
}

func TestUserFromResponse(t *testing.T) {
	user := UserFromResponse(UserResponse{
		ID: 7, Name: "Demo", Username: "demo",
		Birthday:  ptr("1990-04-12"),
		AvatarURL: ptr("https://cdn/a.jpg"),
	})

	assert.Equal(t, int64(7), user.ID)
	assert.Equal(t, SyncStatusSynced, user.SyncStatus)
	require.NotNil(t, user.Birthday)
	assert.Equal(t, "1990-04-12", *user.BirthdayString())
	assert.Nil(t, user.AvatarLocalPath)

	bad := UserFromResponse(UserResponse{ID: 1, Birthday: ptr("12/04/1990")})
	assert.Nil(t, bad.Birthday)
}

func TestMemoryFromResponse(t *testing.T) {
	albumLocal := NewLocalID()
	m := MemoryFromResponse(MemoryResponse{ID: 3, AlbumID: 9, Title: "beach", ImageRemoteURL: ptr("https://cdn/m.jpg")}, albumLocal)

	require.NotNil(t, m.ServerID)
	assert.Equal(t, int64(3), *m.ServerID)
	require.NotNil(t, m.AlbumID)
	assert.Equal(t, int64(9), *m.AlbumID)
	assert.Equal(t, albumLocal, m.AlbumLocalID)
	assert.True(t, m.IsSynced())
}

func TestAppBuildInfo_WithDefaults(t *testing.T) {
	info := NewAppBuildInfo("1.2.0", "", "").WithDefaults()

	assert.Equal(t, "1.2.0", info.BuildVersion())
	assert.Equal(t, NotAvailable, info.BuildDate())
	assert.Equal(t, NotAvailable, info.BuildCommit())
	assert.Equal(t, "Build version: 1.2.0\nBuild date: N/A\nBuild commit: N/A", info.String())
}
