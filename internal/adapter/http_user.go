// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"

	"github.com/MKhiriev/go-memories/models"
)

// GetMe implements [UserGateway] via GET /me.
func (h *httpServerAdapter) GetMe(ctx context.Context) (models.UserResponse, error) {
	resp, err := h.authedRequest(ctx).Get("/me")
	return decodeResponse[models.UserResponse]("get me", resp, err)
}

// UpdateUser implements [UserGateway] via PUT /me.
func (h *httpServerAdapter) UpdateUser(ctx context.Context, req models.UpdateUserRequest) (models.UserResponse, error) {
	resp, err := h.jsonRequest(ctx, req).Put("/me")
	return decodeResponse[models.UserResponse]("update user", resp, err)
}

// UploadAvatar implements [UserGateway]. The image is sent as the multipart
// field "file" to POST /me/avatar.
func (h *httpServerAdapter) UploadAvatar(ctx context.Context, data []byte, fileName string, mimeType models.MimeType) (models.UserResponse, error) {
	resp, err := h.authedRequest(ctx).
		SetMultipartField("file", fileName, string(mimeType), bytes.NewReader(data)).
		Post("/me/avatar")
	return decodeResponse[models.UserResponse]("upload avatar", resp, err)
}
