// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package reachability

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-memories/internal/adapter"
	"github.com/MKhiriev/go-memories/internal/config"
	"github.com/MKhiriev/go-memories/internal/logger"
	"github.com/MKhiriev/go-memories/internal/utils"
)

const (
	defaultProbeInterval = 10 * time.Second
	probeTimeout         = 3 * time.Second
)

// Prober is an [Oracle] fed by HTTP probes of the service base URL. Any HTTP
// response, whatever its status, counts as connected; a transport failure
// counts as disconnected.
type Prober struct {
	*Switch

	client  *utils.HTTPClient
	baseURL string
	logger  *logger.Logger
}

// NewProber builds a Prober for adapterCfg.HTTPAddress. The initial state is
// disconnected until the first probe completes.
func NewProber(adapterCfg config.ClientAdapter, logger *logger.Logger) (*Prober, error) {
	baseURL, err := adapter.NormalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid probe address: %w: %w", adapter.ErrInvalidURL, err)
	}

	timeout := probeTimeout
	if adapterCfg.RequestTimeout > 0 && adapterCfg.RequestTimeout < timeout {
		timeout = adapterCfg.RequestTimeout
	}

	client := utils.NewHTTPClient()
	client.SetTimeout(timeout)

	return &Prober{
		Switch:  NewSwitch(false),
		client:  client,
		baseURL: baseURL,
		logger:  logger,
	}, nil
}

// Probe performs a single probe, updates the state and returns it. A probe
// cut short by ctx leaves the state untouched.
func (p *Prober) Probe(ctx context.Context) bool {
	_, err := p.client.R().SetContext(ctx).Get(p.baseURL)
	if ctx.Err() != nil {
		return p.IsConnected()
	}
	connected := err == nil

	if p.Set(connected) {
		p.logger.Info().
			Str("func", "Prober.Probe").
			Bool("connected", connected).
			Msg("reachability changed")
	}
	if err != nil {
		p.logger.Debug().Err(err).Str("func", "Prober.Probe").Msg("probe failed")
	}

	return connected
}

// Run probes immediately and then every interval until ctx is done.
func (p *Prober) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = defaultProbeInterval
	}

	p.Probe(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			p.Probe(ctx)
		}
	}
}
