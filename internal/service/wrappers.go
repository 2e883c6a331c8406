// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

// AlbumFormServiceWrapper decorates an AlbumFormService.
type AlbumFormServiceWrapper interface {
	AlbumFormService
	Wrap(inner AlbumFormService) AlbumFormService
}

// MemoryFormServiceWrapper decorates a MemoryFormService.
type MemoryFormServiceWrapper interface {
	MemoryFormService
	Wrap(inner MemoryFormService) MemoryFormService
}

// UserProfileServiceWrapper decorates a UserProfileService.
type UserProfileServiceWrapper interface {
	UserProfileService
	Wrap(inner UserProfileService) UserProfileService
}
