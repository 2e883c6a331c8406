// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helpers shared across the client:
// the resty HTTP client, LocalID generation and the state broadcaster.
package utils

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a new HTTPClient with a default-configured
// resty.Client. Each call returns an independent client.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}

// WithTransientRetries makes the client repeat a request up to count more
// times when it failed at the transport level or the server answered 503.
// Waits grow from wait up to maxWait. A non-positive count disables retries.
func (c *HTTPClient) WithTransientRetries(count int, wait, maxWait time.Duration) *HTTPClient {
	if count <= 0 {
		c.SetRetryCount(0)
		return c
	}

	c.SetRetryCount(count).
		SetRetryWaitTime(wait).
		SetRetryMaxWaitTime(maxWait).
		AddRetryCondition(isTransientFailure)

	return c
}

func isTransientFailure(resp *resty.Response, err error) bool {
	if err != nil {
		return !errors.Is(err, context.Canceled)
	}
	return resp != nil && resp.StatusCode() == http.StatusServiceUnavailable
}
