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

// ProfileOptions holds flags for the profile subcommands.
type ProfileOptions struct {
	*RootOptions
	Name     string
	Birthday string
	Avatar   string
}

// NewProfileCommand creates the profile command group.
func NewProfileCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show and edit your profile",
	}

	cmd.AddCommand(newProfileShowCommand(&ProfileOptions{RootOptions: rootOpts}))
	cmd.AddCommand(newProfileUpdateCommand(&ProfileOptions{RootOptions: rootOpts}))

	return cmd
}

func newProfileShowCommand(opts *ProfileOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "show",
		Short:         "Show the profile",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return withSession(ctx, opts.RootOptions, func(ctx context.Context, c client.Client) error {
				user, err := c.Services().UserProfileService.Get(ctx)
				if err != nil {
					return WrapExitError(ExitFailure, "failed to load profile", err)
				}
				return newFormatter(opts.RootOptions, cmd.OutOrStdout()).Print(user, func(w io.Writer) {
					printUser(w, user)
				})
			})
		},
	}
}

func newProfileUpdateCommand(opts *ProfileOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Edit the profile",
		Long: `Edit the profile locally and queue the change for upload.

Fields without a flag keep their current value. Pass --birthday "" to clear
the birthday.

Example:
  memories profile update --name "Jane Doe" --birthday 1990-04-12 --avatar ./me.jpg`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			avatar, err := readImage(opts.Avatar)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			return withSession(ctx, opts.RootOptions, func(ctx context.Context, c client.Client) error {
				profiles := c.Services().UserProfileService

				current, err := profiles.Get(ctx)
				if err != nil {
					return WrapExitError(ExitFailure, "failed to load profile", err)
				}

				form := models.ProfileForm{Name: current.Name, Birthday: current.Birthday, Avatar: avatar}
				if cmd.Flags().Changed("name") {
					form.Name = opts.Name
				}
				if cmd.Flags().Changed("birthday") {
					birthday, err := models.ParseBirthday(opts.Birthday)
					if err != nil {
						return WrapExitError(ExitCommandError, fmt.Sprintf("invalid birthday %q, expected YYYY-MM-DD", opts.Birthday), err)
					}
					form.Birthday = birthday
				}

				user, err := profiles.Update(ctx, form)
				if err != nil {
					return WrapExitError(ExitFailure, "failed to update profile", err)
				}
				return newFormatter(opts.RootOptions, cmd.OutOrStdout()).Print(user, func(w io.Writer) {
					printUser(w, user)
				})
			})
		},
	}

	cmd.Flags().StringVarP(&opts.Name, "name", "n", "", "display name")
	cmd.Flags().StringVar(&opts.Birthday, "birthday", "", "birthday as YYYY-MM-DD")
	cmd.Flags().StringVar(&opts.Avatar, "avatar", "", "path to a new avatar image")

	return cmd
}
