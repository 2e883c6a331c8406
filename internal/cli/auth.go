// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-memories/internal/app"
	"github.com/MKhiriev/go-memories/internal/client"
	"github.com/MKhiriev/go-memories/internal/service"
)

// NewLoginCommand creates the login command.
func NewLoginCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Sign in and download the profile",
		Long: `Sign in with the configured credentials and save the session.

Credentials come from --username/--password, APP_USERNAME/APP_PASSWORD or
the JSON config file.

Example:
  memories login --username demo --password secret`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return withClient(ctx, opts, func(ctx context.Context, c client.Client) error {
				creds := c.Config().App
				if creds.Username == "" || creds.Password == "" {
					return NewExitError(ExitCommandError, "username and password are required")
				}

				if !c.Connect(ctx) {
					return WrapExitError(ExitFailure, "login failed", service.ErrOffline)
				}

				services := c.Services()
				if _, err := services.AuthService.Login(ctx, creds.Username, creds.Password); err != nil {
					return WrapExitError(ExitFailure, "login failed", err)
				}

				user, err := services.LaunchService.Refresh(ctx)
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "Logged in, but the profile could not be loaded: %s\n", app.Describe(err))
					return nil
				}

				fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s (%s)\n", user.Name, user.Username)
				return nil
			})
		},
	}
}

// NewLogoutCommand creates the logout command.
func NewLogoutCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "logout",
		Short:         "Forget the saved session",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return withClient(ctx, opts, func(ctx context.Context, c client.Client) error {
				if err := c.Services().AuthService.Logout(ctx); err != nil {
					return WrapExitError(ExitFailure, "logout failed", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
				return nil
			})
		},
	}
}
