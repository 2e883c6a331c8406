// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-memories/internal/config"
	"github.com/MKhiriev/go-memories/internal/logger"
	"github.com/MKhiriev/go-memories/models"
)

// newTestAdapter creates an httpServerAdapter pointed at the test server.
// Retries are disabled so status mapping is observed directly.
func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	adapterCfg := config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second, RetryCount: -1}

	a, err := NewHTTPServerAdapter(adapterCfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

// ── Constructor ──────────────────────────────────────────────────────────────

func TestNewHTTPServerAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: "   "}, logger.Nop())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidURL)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "localhost:8000", want: "http://localhost:8000"},
		{raw: "https://api.example.com/", want: "https://api.example.com"},
		{raw: " http://10.0.2.2:8000 ", want: "http://10.0.2.2:8000"},
		{raw: "", wantErr: true},
		{raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := NormalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── Auth ─────────────────────────────────────────────────────────────────────

func TestLogin_StoresToken(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/auth/login", func(w http.ResponseWriter, req *http.Request) {
		var body models.LoginRequest
		require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
		assert.Equal(t, "demo", body.Username)
		assert.Equal(t, "secret", body.Password)
		writeJSON(t, w, http.StatusOK, models.LoginResponse{Token: "tok-123", UserID: 7})
	})
	r.Get("/me", func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "Bearer tok-123", req.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusOK, models.UserResponse{ID: 7, Name: "Demo", Username: "demo"})
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	login, err := a.Login(context.Background(), models.LoginRequest{Username: "demo", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, int64(7), login.UserID)
	assert.Equal(t, "tok-123", a.Token())

	me, err := a.GetMe(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "demo", me.Username)
}

func TestLogin_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("invalid credentials"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.LoginRequest{Username: "demo"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "invalid credentials")
	assert.Empty(t, a.Token())
}

// ── Status mapping ───────────────────────────────────────────────────────────

func TestStatusMapping(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{status: http.StatusNoContent, want: ErrEmptyResponse},
		{status: http.StatusBadRequest, want: ErrBadRequest},
		{status: http.StatusUnauthorized, want: ErrUnauthorized},
		{status: http.StatusForbidden, want: ErrForbidden},
		{status: http.StatusNotFound, want: ErrNotFound},
		{status: http.StatusUnprocessableEntity, want: ErrValidation},
		{status: http.StatusInternalServerError, want: ErrServer},
		{status: http.StatusServiceUnavailable, want: ErrServiceUnavailable},
		{status: http.StatusTeapot, want: ErrUnexpectedStatus},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			_, err := newTestAdapter(t, srv.URL).GetAlbum(context.Background(), 1)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestUnexpectedStatusError_CarriesCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte("duplicate"))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).CreateAlbum(context.Background(), models.AlbumRequest{Title: "x"})

	var statusErr *UnexpectedStatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusConflict, statusErr.StatusCode)
	assert.Equal(t, "duplicate", statusErr.Body)
}

func TestDecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("{not json"))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).GetMe(context.Background())

	assert.ErrorIs(t, err, ErrDecode)
}

func TestEmptyBodyOnSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).GetMe(context.Background())

	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	addr := srv.URL
	srv.Close()

	_, err := newTestAdapter(t, addr).GetMe(context.Background())

	assert.ErrorIs(t, err, ErrNetwork)
}

func TestTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := newTestAdapter(t, srv.URL).GetMe(ctx)

	assert.ErrorIs(t, err, ErrTimeout)
}

// ── Albums ───────────────────────────────────────────────────────────────────

func TestGetAlbums_Paginated(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/albums", func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "2", req.URL.Query().Get("page"))
		assert.Equal(t, "5", req.URL.Query().Get("page_size"))
		_, _ = w.Write([]byte(`{"items":[{"id":6,"title":"six","cover_image_url":null,"created_at":"2025-01-02T03:04:05"}],"page":2,"page_size":5,"total":6}`))
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	page, err := newTestAdapter(t, srv.URL).GetAlbums(context.Background(), 2, 5)

	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, int64(6), page.Items[0].ID)
	assert.Nil(t, page.Items[0].CoverImageURL)
	assert.Equal(t, time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC), page.Items[0].CreatedAt.Time())
	assert.False(t, page.HasMore())
}

func TestCreateAndUpdateAlbum(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/albums", func(w http.ResponseWriter, req *http.Request) {
		var body models.AlbumRequest
		require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
		writeJSON(t, w, http.StatusCreated, models.AlbumResponse{ID: 42, Title: body.Title})
	})
	r.Put("/albums/{id}", func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "42", chi.URLParam(req, "id"))
		var body models.AlbumRequest
		require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
		writeJSON(t, w, http.StatusOK, models.AlbumResponse{ID: 42, Title: body.Title, CoverImageURL: body.CoverImageURL})
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)

	created, err := a.CreateAlbum(context.Background(), models.AlbumRequest{Title: "Trip"})
	require.NoError(t, err)
	assert.Equal(t, int64(42), created.ID)

	cover := "https://cdn/c.jpg"
	updated, err := a.UpdateAlbum(context.Background(), 42, models.AlbumRequest{Title: "Trip 2", CoverImageURL: &cover})
	require.NoError(t, err)
	assert.Equal(t, "Trip 2", updated.Title)
	assert.Equal(t, cover, *updated.CoverImageURL)
}

func TestUploadCoverImage_Multipart(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/albums/{id}/cover", func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "42", chi.URLParam(req, "id"))
		require.NoError(t, req.ParseMultipartForm(1<<20))

		file, header, err := req.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		data, err := io.ReadAll(file)
		require.NoError(t, err)

		assert.Equal(t, "cover.jpg", header.Filename)
		assert.Equal(t, "image/jpeg", header.Header.Get("Content-Type"))
		assert.Equal(t, []byte("jpeg-bytes"), data)

		url := "https://cdn/42.jpg"
		writeJSON(t, w, http.StatusOK, models.AlbumResponse{ID: 42, CoverImageURL: &url})
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	resp, err := newTestAdapter(t, srv.URL).UploadCoverImage(context.Background(), 42, []byte("jpeg-bytes"), "cover.jpg", models.MimeTypeJPEG)

	require.NoError(t, err)
	assert.Equal(t, "https://cdn/42.jpg", *resp.CoverImageURL)
}

// ── Memories ─────────────────────────────────────────────────────────────────

func TestUploadMemory_Multipart(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/upload", func(w http.ResponseWriter, req *http.Request) {
		require.NoError(t, req.ParseMultipartForm(1<<20))
		assert.Equal(t, "9", req.FormValue("album_id"))
		assert.Equal(t, "beach", req.FormValue("title"))
		assert.Empty(t, req.FormValue("image_remote_url"))

		_, header, err := req.FormFile("file")
		require.NoError(t, err)
		assert.Equal(t, "m.jpg", header.Filename)

		url := "https://cdn/m.jpg"
		writeJSON(t, w, http.StatusCreated, models.MemoryResponse{ID: 3, AlbumID: 9, Title: "beach", ImageRemoteURL: &url})
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	resp, err := newTestAdapter(t, srv.URL).UploadMemory(context.Background(), models.UploadMemoryRequest{
		AlbumID:  9,
		Title:    "beach",
		Data:     []byte("img"),
		FileName: "m.jpg",
		MimeType: models.MimeTypeJPEG,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.ID)
}

func TestGetMemories(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/albums/{id}/memories", func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "9", chi.URLParam(req, "id"))
		assert.Equal(t, "1", req.URL.Query().Get("page"))
		writeJSON(t, w, http.StatusOK, models.Paginated[models.MemoryResponse]{
			Items:    []models.MemoryResponse{{ID: 1, AlbumID: 9, Title: "a"}, {ID: 2, AlbumID: 9, Title: "b"}},
			Page:     1,
			PageSize: 2,
			Total:    3,
		})
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	page, err := newTestAdapter(t, srv.URL).GetMemories(context.Background(), 9, 1, 2)

	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
	assert.True(t, page.HasMore())
}

// ── User ─────────────────────────────────────────────────────────────────────

func TestUpdateUserAndAvatar(t *testing.T) {
	r := chi.NewRouter()
	r.Put("/me", func(w http.ResponseWriter, req *http.Request) {
		raw, err := io.ReadAll(req.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"name":"New","birthday":"1990-04-12","avatar_url":null}`, string(raw))
		writeJSON(t, w, http.StatusOK, models.UserResponse{ID: 7, Name: "New"})
	})
	r.Post("/me/avatar", func(w http.ResponseWriter, req *http.Request) {
		_, header, err := req.FormFile("file")
		require.NoError(t, err)
		assert.Equal(t, "a.jpg", header.Filename)
		url := "https://cdn/a.jpg"
		writeJSON(t, w, http.StatusOK, models.UserResponse{ID: 7, Name: "New", AvatarURL: &url})
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	birthday := "1990-04-12"

	updated, err := a.UpdateUser(context.Background(), models.UpdateUserRequest{Name: "New", Birthday: &birthday})
	require.NoError(t, err)
	assert.Equal(t, "New", updated.Name)

	withAvatar, err := a.UploadAvatar(context.Background(), []byte("img"), "a.jpg", models.MimeTypeJPEG)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn/a.jpg", *withAvatar.AvatarURL)
}
