// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-memories/internal/validators"
	"github.com/MKhiriev/go-memories/models"
)

type AlbumFormValidationService struct {
	inner     AlbumFormService
	validator validators.Validator
}

func NewAlbumFormValidationService() AlbumFormServiceWrapper {
	return &AlbumFormValidationService{validator: validators.NewFormValidator()}
}

func (v *AlbumFormValidationService) Create(ctx context.Context, form models.AlbumForm) (models.Album, error) {
	if err := v.validator.Validate(ctx, form); err != nil {
		return models.Album{}, fmt.Errorf("invalid album: %w", err)
	}
	return v.inner.Create(ctx, form)
}

func (v *AlbumFormValidationService) Update(ctx context.Context, localID models.LocalID, form models.AlbumForm) (models.Album, error) {
	if err := v.validator.Validate(ctx, form); err != nil {
		return models.Album{}, fmt.Errorf("invalid album: %w", err)
	}
	return v.inner.Update(ctx, localID, form)
}

func (v *AlbumFormValidationService) Wrap(inner AlbumFormService) AlbumFormService {
	v.inner = inner
	return v
}

type MemoryFormValidationService struct {
	inner     MemoryFormService
	validator validators.Validator
}

func NewMemoryFormValidationService() MemoryFormServiceWrapper {
	return &MemoryFormValidationService{validator: validators.NewFormValidator()}
}

func (v *MemoryFormValidationService) Create(ctx context.Context, form models.MemoryForm) (models.Memory, error) {
	if err := v.validator.Validate(ctx, form); err != nil {
		return models.Memory{}, fmt.Errorf("invalid memory: %w", err)
	}
	return v.inner.Create(ctx, form)
}

func (v *MemoryFormValidationService) Wrap(inner MemoryFormService) MemoryFormService {
	v.inner = inner
	return v
}

type UserProfileValidationService struct {
	inner     UserProfileService
	validator validators.Validator
}

func NewUserProfileValidationService() UserProfileServiceWrapper {
	return &UserProfileValidationService{validator: validators.NewFormValidator()}
}

// Get needs no validation.
func (v *UserProfileValidationService) Get(ctx context.Context) (models.User, error) {
	return v.inner.Get(ctx)
}

func (v *UserProfileValidationService) Update(ctx context.Context, form models.ProfileForm) (models.User, error) {
	if err := v.validator.Validate(ctx, form); err != nil {
		return models.User{}, fmt.Errorf("invalid profile: %w", err)
	}
	return v.inner.Update(ctx, form)
}

func (v *UserProfileValidationService) Wrap(inner UserProfileService) UserProfileService {
	v.inner = inner
	return v
}
