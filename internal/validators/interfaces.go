// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks user input before it reaches the local store
// and the sync outbox.
//
// [FormValidator] covers the album, memory and profile forms. Validation can
// be scoped to a subset of fields by passing the Field* constants.
package validators

import "context"

// Validator validates obj, optionally restricted to the named fields.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
