// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyTitle          = errors.New("title is required")
	ErrTitleTooLong        = errors.New("title is too long")
	ErrEmptyImage          = errors.New("image is required")
	ErrInvalidAlbumLocalID = errors.New("invalid album local id")
	ErrEmptyName           = errors.New("name is required")
	ErrNameTooLong         = errors.New("name is too long")
	ErrBirthdayInFuture    = errors.New("birthday cannot be in the future")
)
