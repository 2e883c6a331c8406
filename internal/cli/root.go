// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli implements the memories command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-memories/internal/client"
	"github.com/MKhiriev/go-memories/internal/config"
	"github.com/MKhiriev/go-memories/internal/logger"
	"github.com/MKhiriev/go-memories/internal/service"
	"github.com/MKhiriev/go-memories/models"
)

const (
	formatText = "text"
	formatJSON = "json"
)

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{formatText, formatJSON}

// ClientFactory opens the client runtime for one command.
type ClientFactory func(ctx context.Context, opts *RootOptions) (client.Client, error)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Format    string
	Offline   bool
	BuildInfo models.AppBuildInfo

	// NewClient allows overriding the client runtime (for testing).
	// If nil, defaults to [OpenClient].
	NewClient ClientFactory

	flags *config.FlagValues
}

// NewRootCommand creates the root command of the memories client.
func NewRootCommand(buildInfo models.AppBuildInfo) *cobra.Command {
	return newRootCommand(&RootOptions{BuildInfo: buildInfo})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "memories",
		Short: "Offline-first client for the memories photo service",
		Long: `Manage albums, memories and your profile from the terminal.

Every change is saved locally first and queued for upload. The queue is
drained as soon as the server is reachable; use "memories run" to keep a
background sync going or "memories queue watch" to follow it live.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			return nil
		},
	}

	opts.flags = config.BindFlags(cmd.PersistentFlags())
	cmd.PersistentFlags().StringVar(&opts.Format, "format", formatText, "output format (json|text)")
	cmd.PersistentFlags().BoolVar(&opts.Offline, "offline", false, "work from the local copy only and keep every change queued")

	cmd.AddCommand(NewLoginCommand(opts))
	cmd.AddCommand(NewLogoutCommand(opts))
	cmd.AddCommand(NewAlbumCommand(opts))
	cmd.AddCommand(NewMemoryCommand(opts))
	cmd.AddCommand(NewProfileCommand(opts))
	cmd.AddCommand(NewQueueCommand(opts))
	cmd.AddCommand(NewSyncCommand(opts))
	cmd.AddCommand(NewRunCommand(opts))
	cmd.AddCommand(NewVersionCommand(opts))

	return cmd
}

// OpenClient loads the configuration and opens the client runtime.
func OpenClient(ctx context.Context, opts *RootOptions) (client.Client, error) {
	cfg, err := config.GetClientConfig(opts.flags.Config())
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to load configuration", err)
	}

	log := logger.NewClientLogger("client", cfg.App.LogFile)

	c, err := client.NewApp(ctx, cfg, opts.BuildInfo, client.Options{Offline: opts.Offline}, log)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to open local storage", err)
	}
	return c, nil
}

// withClient opens the client, runs fn with the client's logger attached to
// ctx and closes the client again.
func withClient(ctx context.Context, opts *RootOptions, fn func(ctx context.Context, c client.Client) error) error {
	factory := opts.NewClient
	if factory == nil {
		factory = OpenClient
	}

	c, err := factory(ctx, opts)
	if err != nil {
		return err
	}
	defer c.Close()

	return fn(c.Context(ctx), c)
}

// withSession is withClient for commands that act on behalf of the user.
// A failed profile refresh is tolerated: commands fall back to the local copy.
func withSession(ctx context.Context, opts *RootOptions, fn func(ctx context.Context, c client.Client) error) error {
	return withClient(ctx, opts, func(ctx context.Context, c client.Client) error {
		c.Connect(ctx)

		if _, err := c.RestoreSession(ctx); err != nil && errors.Is(err, service.ErrNotAuthenticated) {
			return WrapExitError(ExitCommandError, "no session", err)
		}

		return fn(ctx, c)
	})
}
