// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "path"

// ImageEntityType selects the blob namespace of a pending image.
type ImageEntityType string

const (
	ImageEntityTypeAlbumCover ImageEntityType = "albums"
	ImageEntityTypeMemory     ImageEntityType = "memories"
	ImageEntityTypeAvatar     ImageEntityType = "avatars"
)

// ImageEntityTypes lists every namespace.
var ImageEntityTypes = []ImageEntityType{
	ImageEntityTypeAlbumCover,
	ImageEntityTypeMemory,
	ImageEntityTypeAvatar,
}

// MimeType of uploaded images.
type MimeType string

const MimeTypeJPEG MimeType = "image/jpeg"

// ImageFileName is the upload file name for the blob of localID.
func ImageFileName(localID LocalID) string {
	return localID.String() + ".jpg"
}

// ImagePath is the logical location of the blob for (entityType, localID).
func ImagePath(entityType ImageEntityType, localID LocalID) string {
	return path.Join("images", string(entityType), ImageFileName(localID))
}
