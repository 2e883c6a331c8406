// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-memories/internal/logger"
	"github.com/MKhiriev/go-memories/internal/service"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "version",
		Short:         "Print build information",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			appInfo, err := service.NewAppInfoService(opts.BuildInfo.WithDefaults(), logger.Nop())
			if err != nil {
				return WrapExitError(ExitFailure, "failed to read build info", err)
			}

			info := appInfo.GetBuildInfo(cmd.Context())
			data := map[string]string{
				"version": info.BuildVersion(),
				"date":    info.BuildDate(),
				"commit":  info.BuildCommit(),
			}

			return newFormatter(opts, cmd.OutOrStdout()).Print(data, func(w io.Writer) {
				fmt.Fprintln(w, info.String())
			})
		},
	}
}
