// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"strconv"

	"github.com/MKhiriev/go-memories/models"
)

// GetAlbums implements [AlbumGateway] via GET /albums?page=&page_size=.
func (h *httpServerAdapter) GetAlbums(ctx context.Context, page, pageSize int) (models.Paginated[models.AlbumResponse], error) {
	resp, err := h.authedRequest(ctx).
		SetQueryParams(pageParams(page, pageSize)).
		Get("/albums")
	return decodeResponse[models.Paginated[models.AlbumResponse]]("get albums", resp, err)
}

// GetAlbum implements [AlbumGateway] via GET /albums/{id}.
func (h *httpServerAdapter) GetAlbum(ctx context.Context, id int64) (models.AlbumResponse, error) {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Get("/albums/{id}")
	return decodeResponse[models.AlbumResponse]("get album", resp, err)
}

// CreateAlbum implements [AlbumGateway] via POST /albums.
func (h *httpServerAdapter) CreateAlbum(ctx context.Context, req models.AlbumRequest) (models.AlbumResponse, error) {
	resp, err := h.jsonRequest(ctx, req).Post("/albums")
	return decodeResponse[models.AlbumResponse]("create album", resp, err)
}

// UpdateAlbum implements [AlbumGateway] via PUT /albums/{id}.
func (h *httpServerAdapter) UpdateAlbum(ctx context.Context, id int64, req models.AlbumRequest) (models.AlbumResponse, error) {
	resp, err := h.jsonRequest(ctx, req).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Put("/albums/{id}")
	return decodeResponse[models.AlbumResponse]("update album", resp, err)
}

// UploadCoverImage implements [AlbumGateway]. The image is sent as the
// multipart field "file" to POST /albums/{id}/cover.
func (h *httpServerAdapter) UploadCoverImage(ctx context.Context, albumID int64, data []byte, fileName string, mimeType models.MimeType) (models.AlbumResponse, error) {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(albumID, 10)).
		SetMultipartField("file", fileName, string(mimeType), bytes.NewReader(data)).
		Post("/albums/{id}/cover")
	return decodeResponse[models.AlbumResponse]("upload cover image", resp, err)
}

func pageParams(page, pageSize int) map[string]string {
	return map[string]string{
		"page":      strconv.Itoa(page),
		"page_size": strconv.Itoa(pageSize),
	}
}
