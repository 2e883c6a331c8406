// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"net"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// NetAddress holds structured network address data for host and port.
// It implements the pflag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// FlagValues keeps the flag targets registered by [BindFlags] until the
// command line has been parsed.
type FlagValues struct {
	address NetAddress
	cfg     StructuredConfig
}

// BindFlags registers every configuration flag on fs and returns the holder
// the parsed values land in. Call [FlagValues.Config] after fs was parsed.
//
// Flags:
//
//	-a, --address        server address in format host:port
//	-d, --dsn            SQLite database path
//	    --blobs          pending image store path
//	-c, --config         JSON config file path
//	    --log-file       client log file
//	    --username       default login user name
//	    --password       default login password
//	    --request-timeout request timeout (e.g. "30s")
//	    --retry-count    transport retries per request
//	    --sync-interval  outbox retry interval (e.g. "1m")
//	    --probe-interval reachability probe interval (e.g. "10s")
func BindFlags(fs *pflag.FlagSet) *FlagValues {
	v := &FlagValues{}

	fs.VarP(&v.address, "address", "a", "Server address host:port")
	fs.StringVarP(&v.cfg.Storage.DB.DSN, "dsn", "d", "", "SQLite database path")
	fs.StringVar(&v.cfg.Storage.Blobs.Path, "blobs", "", "Pending image store path")
	fs.StringVarP(&v.cfg.JSONFilePath, "config", "c", "", "JSON config file path")
	fs.StringVar(&v.cfg.App.LogFile, "log-file", "", "Client log file")
	fs.StringVar(&v.cfg.App.Username, "username", "", "Default login user name")
	fs.StringVar(&v.cfg.App.Password, "password", "", "Default login password")
	fs.DurationVar(&v.cfg.Adapter.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.IntVar(&v.cfg.Adapter.RetryCount, "retry-count", 0, "Transport retries per request (negative disables)")
	fs.DurationVar(&v.cfg.Workers.SyncInterval, "sync-interval", 0, "Outbox retry interval (e.g., 1m)")
	fs.DurationVar(&v.cfg.Workers.ProbeInterval, "probe-interval", 0, "Reachability probe interval (e.g., 10s)")

	return v
}

// Config returns the flag values as a partial [StructuredConfig].
func (v *FlagValues) Config() *StructuredConfig {
	if v == nil {
		return nil
	}
	cfg := v.cfg
	cfg.Adapter.HTTPAddress = v.address.String()
	return &cfg
}

// String returns a canonical host:port string for a NetAddress, or an empty
// string when neither part is set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Type implements pflag.Value.
func (a *NetAddress) Type() string {
	return "host:port"
}

// Set parses the input string of form host:port and populates the NetAddress.
// The host must be "localhost", an IP address or a DNS name.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host == "" {
		return errors.New("host is empty")
	}

	if host != "localhost" && net.ParseIP(host) == nil && !isDNSName(host) {
		return errors.New("incorrect host provided")
	}

	a.Host = host
	a.Port = port
	return nil
}

func isDNSName(host string) bool {
	for _, label := range strings.Split(host, ".") {
		if label == "" || len(label) > 63 || strings.HasPrefix(label, "-") || strings.HasSuffix(label, "-") {
			return false
		}
		for _, r := range label {
			if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '-') {
				return false
			}
		}
	}
	return true
}
