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

// AlbumOptions holds flags for the album subcommands.
type AlbumOptions struct {
	*RootOptions
	Title string
	Cover string
	All   bool
}

// NewAlbumCommand creates the album command group.
func NewAlbumCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "album",
		Short: "Create, edit and browse albums",
	}

	cmd.AddCommand(newAlbumCreateCommand(&AlbumOptions{RootOptions: rootOpts}))
	cmd.AddCommand(newAlbumUpdateCommand(&AlbumOptions{RootOptions: rootOpts}))
	cmd.AddCommand(newAlbumListCommand(&AlbumOptions{RootOptions: rootOpts}))
	cmd.AddCommand(newAlbumShowCommand(&AlbumOptions{RootOptions: rootOpts}))

	return cmd
}

func newAlbumCreateCommand(opts *AlbumOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an album",
		Long: `Create an album locally and queue it for upload.

Example:
  memories album create --title "Summer 2025" --cover ./beach.jpg`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cover, err := readImage(opts.Cover)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			return withSession(ctx, opts.RootOptions, func(ctx context.Context, c client.Client) error {
				album, err := c.Services().AlbumFormService.Create(ctx, models.AlbumForm{Title: opts.Title, Cover: cover})
				if err != nil {
					return WrapExitError(ExitFailure, "failed to create album", err)
				}
				return printSavedAlbum(opts.RootOptions, cmd.OutOrStdout(), album)
			})
		},
	}

	cmd.Flags().StringVarP(&opts.Title, "title", "t", "", "album title (required)")
	cmd.Flags().StringVar(&opts.Cover, "cover", "", "path to the cover image")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newAlbumUpdateCommand(opts *AlbumOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <local-id>",
		Short: "Rename an album or replace its cover",
		Long: `Edit an album locally and queue the change for upload.

The album is addressed by the LOCAL ID shown by "memories album list".
Without --cover the current cover is kept.

Example:
  memories album update 0b9a4f7e-3a53-4c1e-9a10-6f2f2d1e6a11 --title "Summer"`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			localID, err := parseLocalIDArg("album id", args[0])
			if err != nil {
				return err
			}
			cover, err := readImage(opts.Cover)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			return withSession(ctx, opts.RootOptions, func(ctx context.Context, c client.Client) error {
				album, err := c.Services().AlbumFormService.Update(ctx, localID, models.AlbumForm{Title: opts.Title, Cover: cover})
				if err != nil {
					return WrapExitError(ExitFailure, "failed to update album", err)
				}
				return printSavedAlbum(opts.RootOptions, cmd.OutOrStdout(), album)
			})
		},
	}

	cmd.Flags().StringVarP(&opts.Title, "title", "t", "", "album title (required)")
	cmd.Flags().StringVar(&opts.Cover, "cover", "", "path to a new cover image")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newAlbumListCommand(opts *AlbumOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "list",
		Short:         "List albums",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return withSession(ctx, opts.RootOptions, func(ctx context.Context, c client.Client) error {
				page, err := loadAlbums(ctx, c.Services().AlbumListService, opts.All)
				if err != nil {
					return WrapExitError(ExitFailure, "failed to list albums", err)
				}

				return newFormatter(opts.RootOptions, cmd.OutOrStdout()).Print(page, func(w io.Writer) {
					if len(page.Albums) == 0 {
						fmt.Fprintln(w, "No albums yet")
						return
					}
					fmt.Fprintln(w, albumsTable(page.Albums))
					if page.HasMore {
						fmt.Fprintln(w, "More albums on the server, use --all to load them")
					}
				})
			})
		},
	}

	cmd.Flags().BoolVar(&opts.All, "all", false, "load every page")

	return cmd
}

func newAlbumShowCommand(opts *AlbumOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <album-id>",
		Short: "Show an album and its memories",
		Long: `Show an album by its server ID together with its memories.

Example:
  memories album show 42 --all`,
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

				data := struct {
					Album    models.Album      `json:"album"`
					Memories models.MemoryPage `json:"memories"`
				}{album, page}

				return newFormatter(opts.RootOptions, cmd.OutOrStdout()).Print(data, func(w io.Writer) {
					fmt.Fprintf(w, "%s (id %s, %s)\n", album.Title, idOrDash(album.ServerID), album.SyncStatus)
					printMemories(w, page)
				})
			})
		},
	}

	cmd.Flags().BoolVar(&opts.All, "all", false, "load every page of memories")

	return cmd
}

func printSavedAlbum(opts *RootOptions, w io.Writer, album models.Album) error {
	return newFormatter(opts, w).Print(album, func(w io.Writer) {
		fmt.Fprintf(w, "Album %q saved\n", album.Title)
		fmt.Fprintf(w, "Local ID: %s\n", album.LocalID)
		fmt.Fprintf(w, "ID:       %s\n", idOrDash(album.ServerID))
		fmt.Fprintf(w, "Status:   %s\n", album.SyncStatus)
	})
}

func loadAlbums(ctx context.Context, albums service.AlbumListService, all bool) (models.AlbumPage, error) {
	page, err := albums.Display(ctx)
	if err != nil {
		return models.AlbumPage{}, err
	}
	for all && page.HasMore {
		if page, err = albums.Next(ctx, page.Page+1); err != nil {
			return models.AlbumPage{}, err
		}
	}
	return page, nil
}
