// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() == http.StatusNoContent {
		return ErrEmptyResponse
	}
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %s", ErrValidation, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrServer, body)
	case http.StatusServiceUnavailable:
		return fmt.Errorf("%w: %s", ErrServiceUnavailable, body)
	default:
		return &UnexpectedStatusError{StatusCode: resp.StatusCode(), Body: body}
	}
}

// mapTransportError categorises a failure that produced no HTTP response.
func mapTransportError(err error) error {
	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded),
		errors.As(err, &netErr) && netErr.Timeout():
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	default:
		return fmt.Errorf("%w: %w", ErrNetwork, err)
	}
}

// decodeResponse maps the status of resp and decodes its JSON body into T.
func decodeResponse[T any](op string, resp *resty.Response, reqErr error) (T, error) {
	var result T

	if reqErr != nil {
		return result, fmt.Errorf("%s request: %w", op, mapTransportError(reqErr))
	}
	if err := mapHTTPError(resp); err != nil {
		return result, fmt.Errorf("%s: %w", op, err)
	}

	body := bytes.TrimSpace(resp.Body())
	if len(body) == 0 {
		return result, fmt.Errorf("%s: %w", op, ErrEmptyResponse)
	}

	if err := json.Unmarshal(body, &result); err != nil {
		return result, fmt.Errorf("decode %s response: %w: %w", op, ErrDecode, err)
	}

	return result, nil
}
