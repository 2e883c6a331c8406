// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
)

// Gateway failure categories. Every error returned by a gateway wraps exactly
// one of them; use [errors.Is] to branch.
var (
	ErrBadRequest         = errors.New("bad request")
	ErrUnauthorized       = errors.New("client unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrNotFound           = errors.New("not found")
	ErrValidation         = errors.New("validation failed")
	ErrServer             = errors.New("server error")
	ErrServiceUnavailable = errors.New("service unavailable")
	ErrEmptyResponse      = errors.New("empty response")
	ErrNetwork            = errors.New("network error")
	ErrDecode             = errors.New("failed to decode response")
	ErrInvalidURL         = errors.New("invalid url")
	ErrTimeout            = errors.New("request timed out")
	ErrUnexpectedStatus   = errors.New("unexpected status")
)

// UnexpectedStatusError is returned for a non-2xx status without a dedicated
// category. It matches [ErrUnexpectedStatus].
type UnexpectedStatusError struct {
	StatusCode int
	Body       string
}

func (e *UnexpectedStatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("unexpected status %d", e.StatusCode)
	}
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body)
}

func (e *UnexpectedStatusError) Is(target error) bool {
	return target == ErrUnexpectedStatus
}
