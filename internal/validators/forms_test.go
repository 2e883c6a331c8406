// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-memories/models"
)

func newTestValidator() *FormValidator {
	fixed := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	return &FormValidator{now: func() time.Time { return fixed }}
}

func TestNewFormValidator(t *testing.T) {
	require.NotNil(t, NewFormValidator())
}

func TestValidate_UnsupportedType(t *testing.T) {
	err := newTestValidator().Validate(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestValidate_AlbumForm(t *testing.T) {
	tests := []struct {
		name    string
		form    models.AlbumForm
		wantErr error
	}{
		{name: "valid without cover", form: models.AlbumForm{Title: "Trip"}},
		{name: "valid with cover", form: models.AlbumForm{Title: "Trip", Cover: []byte{1}}},
		{name: "blank title", form: models.AlbumForm{Title: "   "}, wantErr: ErrEmptyTitle},
		{name: "long title", form: models.AlbumForm{Title: strings.Repeat("a", 256)}, wantErr: ErrTitleTooLong},
		{name: "empty cover", form: models.AlbumForm{Title: "Trip", Cover: []byte{}}, wantErr: ErrEmptyImage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := newTestValidator().Validate(context.Background(), tt.form)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_MemoryForm(t *testing.T) {
	album := models.NewLocalID()

	tests := []struct {
		name    string
		form    *models.MemoryForm
		wantErr error
	}{
		{name: "valid", form: &models.MemoryForm{AlbumLocalID: album, Title: "beach", Image: []byte{1}}},
		{name: "no album", form: &models.MemoryForm{Title: "beach", Image: []byte{1}}, wantErr: ErrInvalidAlbumLocalID},
		{name: "no title", form: &models.MemoryForm{AlbumLocalID: album, Image: []byte{1}}, wantErr: ErrEmptyTitle},
		{name: "no image", form: &models.MemoryForm{AlbumLocalID: album, Title: "beach"}, wantErr: ErrEmptyImage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := newTestValidator().Validate(context.Background(), tt.form)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_ProfileForm(t *testing.T) {
	past := time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC)
	future := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		form    models.ProfileForm
		wantErr error
	}{
		{name: "valid", form: models.ProfileForm{Name: "Demo", Birthday: &past}},
		{name: "empty name", form: models.ProfileForm{Name: ""}, wantErr: ErrEmptyName},
		{name: "long name", form: models.ProfileForm{Name: strings.Repeat("n", 101)}, wantErr: ErrNameTooLong},
		{name: "future birthday", form: models.ProfileForm{Name: "Demo", Birthday: &future}, wantErr: ErrBirthdayInFuture},
		{name: "empty avatar", form: models.ProfileForm{Name: "Demo", Avatar: []byte{}}, wantErr: ErrEmptyImage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := newTestValidator().Validate(context.Background(), tt.form)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_FieldScoping(t *testing.T) {
	v := newTestValidator()
	form := models.MemoryForm{Title: "beach"}

	assert.NoError(t, v.Validate(context.Background(), form, FieldTitle))
	assert.ErrorIs(t, v.Validate(context.Background(), form, FieldTitle, FieldImage), ErrEmptyImage)
	assert.ErrorIs(t, v.Validate(context.Background(), form, "bogus"), ErrUnknownField)
}
