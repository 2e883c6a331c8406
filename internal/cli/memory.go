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
	"github.com/MKhiriev/go-memories/models"
)

// MemoryOptions holds flags for the memory subcommands.
type MemoryOptions struct {
	*RootOptions
	Album string
	Title string
	Image string
	All   bool
}

// NewMemoryCommand creates the memory command group.
func NewMemoryCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "memory",
		Short: "Add and browse memories",
	}

	cmd.AddCommand(newMemoryAddCommand(&MemoryOptions{RootOptions: rootOpts}))
	cmd.AddCommand(newMemoryListCommand(&MemoryOptions{RootOptions: rootOpts}))

	return cmd
}

func newMemoryAddCommand(opts *MemoryOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a photo to an album",
		Long: `Add a memory locally and queue it for upload.

The album is addressed by its LOCAL ID so photos can be added to albums that
were not uploaded yet. The memory is uploaded after its album.

Example:
  memories memory add --album 0b9a4f7e-3a53-4c1e-9a10-6f2f2d1e6a11 --title Beach --image ./beach.jpg`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			albumID, err := parseLocalIDArg("album id", opts.Album)
			if err != nil {
				return err
			}
			image, err := readImage(opts.Image)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			return withSession(ctx, opts.RootOptions, func(ctx context.Context, c client.Client) error {
				memory, err := c.Services().MemoryFormService.Create(ctx, models.MemoryForm{
					AlbumLocalID: albumID,
					Title:        opts.Title,
					Image:        image,
				})
				if err != nil {
					return WrapExitError(ExitFailure, "failed to add memory", err)
				}

				return newFormatter(opts.RootOptions, cmd.OutOrStdout()).Print(memory, func(w io.Writer) {
					fmt.Fprintf(w, "Memory %q saved\n", memory.Title)
					fmt.Fprintf(w, "Local ID: %s\n", memory.LocalID)
					fmt.Fprintf(w, "ID:       %s\n", idOrDash(memory.ServerID))
					fmt.Fprintf(w, "Status:   %s\n", memory.SyncStatus)
				})
			})
		},
	}

	cmd.Flags().StringVar(&opts.Album, "album", "", "local id of the album (required)")
	cmd.Flags().StringVarP(&opts.Title, "title", "t", "", "memory title (required)")
	cmd.Flags().StringVar(&opts.Image, "image", "", "path to the photo (required)")
	_ = cmd.MarkFlagRequired("album")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("image")

	return cmd
}

func newMemoryListCommand(opts *MemoryOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "list <album-id>",
		Short:         "List the memories of an album by its server ID",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			serverID, err := parseServerIDArg("album id", args[0])
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			return withSession(ctx, opts.RootOptions, func(ctx context.Context, c client.Client) error {
				details := c.Services().AlbumDetailService

				album, err := details.ResolveAlbum(ctx, serverID)
				if err != nil {
					return WrapExitError(ExitFailure, "failed to load album", err)
				}

				page, err := loadMemories(ctx, details, album, opts.All)
				if err != nil {
					return WrapExitError(ExitFailure, "failed to load memories", err)
				}

				return newFormatter(opts.RootOptions, cmd.OutOrStdout()).Print(page, func(w io.Writer) {
					printMemories(w, page)
				})
			})
		},
	}

	cmd.Flags().BoolVar(&opts.All, "all", false, "load every page")

	return cmd
}

func loadMemories(ctx context.Context, details service.AlbumDetailService, album models.Album, all bool) (models.MemoryPage, error) {
	page, err := details.Display(ctx, album)
	if err != nil {
		return models.MemoryPage{}, err
	}
	for all && page.HasMore {
		if page, err = details.Next(ctx, album, page.Page+1); err != nil {
			return models.MemoryPage{}, err
		}
	}
	return page, nil
}

func printMemories(w io.Writer, page models.MemoryPage) {
	if len(page.Memories) == 0 {
		fmt.Fprintln(w, "No memories yet")
		return
	}
	fmt.Fprintln(w, memoriesTable(page.Memories))
	if page.HasMore {
		fmt.Fprintln(w, "More memories on the server, use --all to load them")
	}
}
