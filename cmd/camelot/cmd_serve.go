// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/AleutianAI/camelot/pkg/ux"
	"github.com/AleutianAI/camelot/services/harmony"
)

func (a *app) serveCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the Camelot API over HTTP",
		Long: `Serve the /v1/camelot API until interrupted.

The port, timeouts and telemetry exporters come from the config file.
When the prometheus metric exporter is active, /metrics is served too.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("port") {
				a.cfg.Server.Port = port
			}
			if a.cfg.Telemetry.Environment == "production" {
				gin.SetMode(gin.ReleaseMode)
			}

			router, err := harmony.NewRouter(a.svc, a.cfg.Telemetry.ServiceName)
			if err != nil {
				return err
			}

			parent := cmd.Context()
			if parent == nil {
				parent = context.Background()
			}
			ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if err := harmony.Serve(ctx, a.cfg.Server, router); err != nil {
				return err
			}
			ux.Success(cmd.ErrOrStderr(), "Camelot API stopped")
			return nil
		},
	}
	cmd.Flags().IntVarP(&port, "port", "p", 0, "Override the configured port")
	return cmd
}
