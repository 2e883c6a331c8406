// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"strconv"

	"github.com/MKhiriev/go-memories/models"
)

// GetMemories implements [MemoryGateway] via
// GET /albums/{id}/memories?page=&page_size=.
func (h *httpServerAdapter) GetMemories(ctx context.Context, albumID int64, page, pageSize int) (models.Paginated[models.MemoryResponse], error) {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(albumID, 10)).
		SetQueryParams(pageParams(page, pageSize)).
		Get("/albums/{id}/memories")
	return decodeResponse[models.Paginated[models.MemoryResponse]]("get memories", resp, err)
}

// UploadMemory implements [MemoryGateway]. album_id, title and the optional
// image_remote_url go as form fields next to the "file" part of
// POST /upload.
func (h *httpServerAdapter) UploadMemory(ctx context.Context, req models.UploadMemoryRequest) (models.MemoryResponse, error) {
	fields := map[string]string{
		"album_id": strconv.FormatInt(req.AlbumID, 10),
		"title":    req.Title,
	}
	if req.ImageRemoteURL != nil {
		fields["image_remote_url"] = *req.ImageRemoteURL
	}

	resp, err := h.authedRequest(ctx).
		SetMultipartFormData(fields).
		SetMultipartField("file", req.FileName, string(req.MimeType), bytes.NewReader(req.Data)).
		Post("/upload")
	return decodeResponse[models.MemoryResponse]("upload memory", resp, err)
}
