// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-memories/internal/client"
	"github.com/MKhiriev/go-memories/models"
)

// NewQueueCommand creates the queue command group.
func NewQueueCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "queue",
		Short: "Inspect and drive the sync queue",
	}

	cmd.AddCommand(newQueueListCommand(rootOpts))
	cmd.AddCommand(newQueueRetryCommand(rootOpts))
	cmd.AddCommand(newQueueWatchCommand(rootOpts))

	return cmd
}

func newQueueListCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "list",
		Short:         "List queued changes",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return withClient(ctx, opts, func(ctx context.Context, c client.Client) error {
				services := c.Services()

				items, err := services.SyncQueuesService.List(ctx)
				if err != nil {
					return WrapExitError(ExitFailure, "failed to list the queue", err)
				}
				state := services.SyncQueueService.State()

				data := struct {
					State models.SyncQueueState  `json:"state"`
					Items []models.SyncQueueItem `json:"items"`
				}{state, items}

				return newFormatter(opts, cmd.OutOrStdout()).Print(data, func(w io.Writer) {
					if len(items) == 0 {
						fmt.Fprintln(w, "Queue is empty")
						return
					}
					fmt.Fprintln(w, queueTable(items))
					printState(w, state)
				})
			})
		},
	}
}

func newQueueRetryCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "retry",
		Short: "Retry failed changes",
		Long: `Move failed changes back to the queue and drain it.

While offline the changes are requeued and uploaded on the next online run.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return withSession(ctx, opts, func(ctx context.Context, c client.Client) error {
				syncQueue := c.Services().SyncQueueService
				syncQueue.RetryFailed(ctx)

				state := syncQueue.State()
				return newFormatter(opts, cmd.OutOrStdout()).Print(state, func(w io.Writer) {
					printState(w, state)
				})
			})
		},
	}
}

func newQueueWatchCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Follow the sync queue live",
		Long: `Open the interactive queue monitor.

Background sync keeps running while the monitor is open.
Keys: s sync, r retry failed, c copy error, v version, q quit.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return withSession(ctx, opts, func(ctx context.Context, c client.Client) error {
				if err := c.WatchQueue(ctx); err != nil {
					return WrapExitError(ExitFailure, "queue monitor failed", err)
				}
				return nil
			})
		},
	}
}
