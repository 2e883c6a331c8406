// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/MKhiriev/go-memories/models"
)

// Field name constants used to scope validation of the form models.
const (
	// FieldTitle targets the album or memory title.
	FieldTitle = "title"
	// FieldCover targets the optional album cover.
	FieldCover = "cover"
	// FieldAlbumLocalID targets the owning album of a new memory.
	FieldAlbumLocalID = "album_local_id"
	// FieldImage targets the mandatory memory image.
	FieldImage = "image"
	// FieldName targets the profile name.
	FieldName = "name"
	// FieldBirthday targets the optional profile birthday.
	FieldBirthday = "birthday"
	// FieldAvatar targets the optional profile avatar.
	FieldAvatar = "avatar"
)

const (
	maxTitleLength = 255
	maxNameLength  = 100
)

// FormValidator implements the Validator interface for the user input
// models: AlbumForm, MemoryForm and ProfileForm.
type FormValidator struct {
	now func() time.Time
}

// NewFormValidator constructs a new FormValidator and returns it as the
// Validator interface.
func NewFormValidator() Validator {
	return &FormValidator{now: time.Now}
}

// Validate dispatches validation to the type-specific method based on the
// dynamic type of obj. Both value and pointer forms are accepted.
//
// Returns ErrUnsupportedType if obj is not a form model. Optional fields
// restrict validation to the named subset.
func (v *FormValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.AlbumForm:
		return v.validateAlbumForm(ctx, value, fields...)
	case *models.AlbumForm:
		return v.validateAlbumForm(ctx, *value, fields...)
	case models.MemoryForm:
		return v.validateMemoryForm(ctx, value, fields...)
	case *models.MemoryForm:
		return v.validateMemoryForm(ctx, *value, fields...)
	case models.ProfileForm:
		return v.validateProfileForm(ctx, value, fields...)
	case *models.ProfileForm:
		return v.validateProfileForm(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *FormValidator) validateAlbumForm(_ context.Context, form models.AlbumForm, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldCover}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if err := validateTitle(form.Title); err != nil {
				return err
			}
		case FieldCover:
			// a nil cover keeps the current one; an empty non-nil one is a mistake
			if form.Cover != nil && len(form.Cover) == 0 {
				return ErrEmptyImage
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *FormValidator) validateMemoryForm(_ context.Context, form models.MemoryForm, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAlbumLocalID, FieldTitle, FieldImage}
	}

	for _, f := range fields {
		switch f {
		case FieldAlbumLocalID:
			if form.AlbumLocalID.IsZero() {
				return ErrInvalidAlbumLocalID
			}
		case FieldTitle:
			if err := validateTitle(form.Title); err != nil {
				return err
			}
		case FieldImage:
			if len(form.Image) == 0 {
				return ErrEmptyImage
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *FormValidator) validateProfileForm(_ context.Context, form models.ProfileForm, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldBirthday, FieldAvatar}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			name := strings.TrimSpace(form.Name)
			if name == "" {
				return ErrEmptyName
			}
			if utf8.RuneCountInString(name) > maxNameLength {
				return ErrNameTooLong
			}
		case FieldBirthday:
			if form.Birthday != nil && form.Birthday.After(v.now()) {
				return ErrBirthdayInFuture
			}
		case FieldAvatar:
			if form.Avatar != nil && len(form.Avatar) == 0 {
				return ErrEmptyImage
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrEmptyTitle
	}
	if utf8.RuneCountInString(title) > maxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}
