// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the gateways the client uses to talk to the
// memories REST service.
//
// The primary abstraction is [ServerAdapter], which groups the per-resource
// gateways and the bearer token. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError and from transport failures by mapTransportError so that
// callers can use [errors.Is] (e.g. [ErrNotFound] for 404, [ErrTimeout] for
// a deadline).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-memories/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// AuthGateway exchanges credentials for a bearer token.
type AuthGateway interface {
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)
}

// UserGateway reads and writes the signed-in profile.
type UserGateway interface {
	GetMe(ctx context.Context) (models.UserResponse, error)
	UpdateUser(ctx context.Context, req models.UpdateUserRequest) (models.UserResponse, error)
	// UploadAvatar replaces the avatar and returns the updated profile.
	UploadAvatar(ctx context.Context, data []byte, fileName string, mimeType models.MimeType) (models.UserResponse, error)
}

// AlbumGateway manages albums and their cover images.
type AlbumGateway interface {
	GetAlbums(ctx context.Context, page, pageSize int) (models.Paginated[models.AlbumResponse], error)
	GetAlbum(ctx context.Context, id int64) (models.AlbumResponse, error)
	CreateAlbum(ctx context.Context, req models.AlbumRequest) (models.AlbumResponse, error)
	UpdateAlbum(ctx context.Context, id int64, req models.AlbumRequest) (models.AlbumResponse, error)
	UploadCoverImage(ctx context.Context, albumID int64, data []byte, fileName string, mimeType models.MimeType) (models.AlbumResponse, error)
}

// MemoryGateway lists and uploads memories.
type MemoryGateway interface {
	GetMemories(ctx context.Context, albumID int64, page, pageSize int) (models.Paginated[models.MemoryResponse], error)
	UploadMemory(ctx context.Context, req models.UploadMemoryRequest) (models.MemoryResponse, error)
}

// ServerAdapter defines communication with the memories server.
// Implementations are responsible for serialisation, authentication header
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	AuthGateway
	UserGateway
	AlbumGateway
	MemoryGateway
}
