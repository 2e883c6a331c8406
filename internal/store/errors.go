// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by the local storage layer. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrUnknownImageEntityType is returned when a blob is addressed with an
	// entity type that has no bucket.
	ErrUnknownImageEntityType = errors.New("unknown image entity type")

	// ErrBucketNotFound is returned when a bbolt bucket is missing, which
	// means the blob file was not initialised by this package.
	ErrBucketNotFound = errors.New("bucket not found")
)

// Low-level database operation errors. These wrap the driver error.
var (
	// ErrBuildingSQLQuery is returned when squirrel fails to render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the driver cannot start a
	// transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing fails. The
	// transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when an INSERT, UPDATE or DELETE fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when reading column values fails.
	ErrScanningRow = errors.New("failed to scan row")
)
