// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnvKeys = []string{
	"CONFIG",

	"APP_USERNAME",
	"APP_PASSWORD",
	"APP_LOG_FILE",

	"ADAPTER_ADDRESS",
	"ADAPTER_REQUEST_TIMEOUT",
	"ADAPTER_RETRY_COUNT",

	"STORAGE_DB_DSN",
	"STORAGE_BLOBS_PATH",

	"WORKERS_SYNC_INTERVAL",
	"WORKERS_PROBE_INTERVAL",
}

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_USERNAME": "demo",
		"APP_PASSWORD": "password",
		"APP_LOG_FILE": "/var/log/memories.log",

		"ADAPTER_ADDRESS":         "localhost:8000",
		"ADAPTER_REQUEST_TIMEOUT": "15s",
		"ADAPTER_RETRY_COUNT":     "4",

		// Storage has nested prefixes: STORAGE_ + DB_ / BLOBS_
		"STORAGE_DB_DSN":     "/data/memories.db",
		"STORAGE_BLOBS_PATH": "/data/images.db",

		"WORKERS_SYNC_INTERVAL":  "2m",
		"WORKERS_PROBE_INTERVAL": "5s",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "demo", cfg.App.Username)
	assert.Equal(t, "password", cfg.App.Password)
	assert.Equal(t, "/var/log/memories.log", cfg.App.LogFile)
	assert.Equal(t, "localhost:8000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 4, cfg.Adapter.RetryCount)
	assert.Equal(t, "/data/memories.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/data/images.db", cfg.Storage.Blobs.Path)
	assert.Equal(t, 2*time.Minute, cfg.Workers.SyncInterval)
	assert.Equal(t, 5*time.Second, cfg.Workers.ProbeInterval)
}

func TestParseEnv_PartialFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"ADAPTER_ADDRESS": "10.0.0.2:9000",
	})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "10.0.0.2:9000", cfg.Adapter.HTTPAddress)
	assert.Zero(t, cfg.Adapter.RequestTimeout)
	assert.Empty(t, cfg.Storage.DB.DSN)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{
		"WORKERS_SYNC_INTERVAL": "soon",
	})

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

// Helpers

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, k := range configEnvKeys {
		if old, ok := os.LookupEnv(k); ok {
			t.Cleanup(func() { _ = os.Setenv(k, old) })
		}
		_ = os.Unsetenv(k)
	}
}
