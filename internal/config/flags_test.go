// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNetAddress_String tests the String method of NetAddress
func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 8000}, expected: "localhost:8000"},
		{name: "IP address with port", addr: NetAddress{Host: "127.0.0.1", Port: 9090}, expected: "127.0.0.1:9090"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    NetAddress
		wantErr bool
	}{
		{name: "localhost", input: "localhost:8000", want: NetAddress{Host: "localhost", Port: 8000}},
		{name: "ipv4", input: "192.168.1.10:80", want: NetAddress{Host: "192.168.1.10", Port: 80}},
		{name: "dns name", input: "api.memories.dev:443", want: NetAddress{Host: "api.memories.dev", Port: 443}},
		{name: "missing port", input: "localhost", wantErr: true},
		{name: "non numeric port", input: "localhost:http", wantErr: true},
		{name: "port out of range", input: "localhost:70000", wantErr: true},
		{name: "empty host", input: ":8000", wantErr: true},
		{name: "bad host", input: "bad_host!:8000", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			err := a.Set(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, a)
		})
	}
}

func TestBindFlags_ParsesIntoConfig(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	values := BindFlags(fs)

	err := fs.Parse([]string{
		"-a", "localhost:9000",
		"-d", "/tmp/m.db",
		"--blobs", "/tmp/b.db",
		"-c", "/tmp/cfg.json",
		"--request-timeout", "5s",
		"--retry-count", "-1",
		"--sync-interval", "30s",
		"--probe-interval", "2s",
		"--username", "demo",
	})
	require.NoError(t, err)

	cfg := values.Config()
	assert.Equal(t, "localhost:9000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "/tmp/m.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/tmp/b.db", cfg.Storage.Blobs.Path)
	assert.Equal(t, "/tmp/cfg.json", cfg.JSONFilePath)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, -1, cfg.Adapter.RetryCount)
	assert.Equal(t, 30*time.Second, cfg.Workers.SyncInterval)
	assert.Equal(t, 2*time.Second, cfg.Workers.ProbeInterval)
	assert.Equal(t, "demo", cfg.App.Username)
}

func TestBindFlags_InvalidAddress(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	BindFlags(fs)

	err := fs.Parse([]string{"-a", "nohost"})
	assert.Error(t, err)
}

func TestFlagValues_ConfigNil(t *testing.T) {
	var v *FlagValues
	assert.Nil(t, v.Config())
}
