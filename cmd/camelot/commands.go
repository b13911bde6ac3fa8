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
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/camelot/pkg/ux"
	"github.com/AleutianAI/camelot/services/harmony"
	"github.com/AleutianAI/camelot/services/harmony/config"
	"github.com/AleutianAI/camelot/services/harmony/telemetry"
)

// app carries state shared by every subcommand of one invocation.
type app struct {
	configPath string
	jsonOutput bool
	plain      bool

	cfg      config.Config
	svc      *harmony.Service
	shutdown func(context.Context) error
}

// newRootCmd builds the command tree.
func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "camelot",
		Short: "Explore harmonic transitions on the Camelot wheel",
		Long: `camelot answers questions about the Camelot wheel: which keys mix
with a key, how to walk from one key to another, and which groups of keys
are all mutually compatible.

Keys are written as a number 1-12 followed by A (minor) or B (major),
for example 8A or 12B.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return a.teardown(cmd.Context())
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", config.DefaultPath, "Path to the YAML config file")
	rootCmd.PersistentFlags().BoolVar(&a.jsonOutput, "json", false, "Write results as JSON")
	rootCmd.PersistentFlags().BoolVar(&a.plain, "plain", false, "Plain text output, no colors or boxes")

	rootCmd.AddCommand(
		a.decodeCmd(),
		a.applyCmd(),
		a.transitionsCmd(),
		a.neighborsCmd(),
		a.pathCmd(),
		a.cliquesCmd(),
		a.statsCmd(),
		a.serveCmd(),
	)
	return rootCmd
}

// setup loads config, installs the logger, picks the output personality
// and starts telemetry.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	logger, err := telemetry.NewLogger(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	if a.plain || a.jsonOutput {
		ux.SetPersonalityLevel(ux.PersonalityMachine)
	} else {
		ux.InitPersonality(cfg.Output.Personality)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	shutdown, err := telemetry.Init(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("init telemetry: %w", err)
	}
	a.shutdown = shutdown

	svcCfg := harmony.DefaultServiceConfig()
	svcCfg.PathCacheCapacity = cfg.Cache.PathCapacity
	a.svc = harmony.NewService(svcCfg)
	return nil
}

func (a *app) teardown(ctx context.Context) error {
	if a.shutdown == nil {
		return nil
	}
	if ctx == nil {
		ctx = context.Background()
	}
	return a.shutdown(ctx)
}

// emit writes v as indented JSON when --json is set and otherwise calls render.
func (a *app) emit(w io.Writer, v any, render func()) error {
	if !a.jsonOutput {
		render()
		return nil
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
