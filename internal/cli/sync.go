// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-memories/internal/client"
	"github.com/MKhiriev/go-memories/internal/service"
)

// NewSyncCommand creates the sync command.
func NewSyncCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Upload queued changes now",
		Long: `Run one pass over the sync queue.

Failed changes stay failed; use "memories queue retry" to requeue them.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return withSession(ctx, opts, func(ctx context.Context, c client.Client) error {
				if !c.Connect(ctx) {
					return WrapExitError(ExitFailure, "sync skipped", service.ErrOffline)
				}

				syncQueue := c.Services().SyncQueueService
				syncQueue.ProcessQueue(ctx)

				state := syncQueue.State()
				if err := newFormatter(opts, cmd.OutOrStdout()).Print(state, func(w io.Writer) {
					printState(w, state)
				}); err != nil {
					return err
				}

				if state.FailedCount > 0 {
					return NewExitError(ExitFailure, fmt.Sprintf("%d change(s) failed, see \"memories queue list\"", state.FailedCount))
				}
				return nil
			})
		},
	}
}

// NewRunCommand creates the run command.
func NewRunCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Keep syncing in the background",
		Long: `Start the background workers and block until interrupted.

The workers probe the server, drain the queue as soon as it becomes
reachable and retry failed changes every --sync-interval.

Example:
  memories run --sync-interval 30s --probe-interval 5s`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return withSession(ctx, opts, func(ctx context.Context, c client.Client) error {
				fmt.Fprintln(cmd.OutOrStdout(), "Syncing in the background, press Ctrl+C to stop")

				if err := c.Run(ctx); err != nil {
					return WrapExitError(ExitFailure, "background sync failed", err)
				}

				fmt.Fprintln(cmd.OutOrStdout(), "Stopped")
				return nil
			})
		},
	}
}
