// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"

	"github.com/MKhiriev/go-memories/models"
)

// Login implements [AuthGateway]. It POSTs the credentials to
// POST /auth/login and stores the returned bearer token via SetToken.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/auth/login")

	login, err := decodeResponse[models.LoginResponse]("login", resp, err)
	if err != nil {
		return models.LoginResponse{}, err
	}

	h.SetToken(login.Token)
	return login, nil
}
