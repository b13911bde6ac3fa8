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
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/camelot/pkg/ux"
	"github.com/AleutianAI/camelot/services/harmony/camelot"
	"github.com/AleutianAI/camelot/services/harmony/graph"
)

func (a *app) decodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode KEY",
		Short: "Decode a key into its tonic and mode",
		Example: `  camelot decode 8B
  camelot decode 12A --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := a.svc.Decode(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			return a.emit(w, info, func() {
				ux.Field(w, "key", info.Key)
				ux.Field(w, "number", info.Number)
				ux.Field(w, "mode", info.Mode)
			})
		},
	}
}

func (a *app) applyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "apply KEY TRANSITION",
		Short: "Follow one named transition from a key",
		Long: `Follow one transition from KEY and print the key it leads to.

Transitions:
  vertical          same tonic, other ring
  diagonal          other ring, one step around
  major-to-minor    other ring, three steps around
  flat-to-minor     other ring, four steps around
  change-index(N)   same ring, N steps around (N may be negative)`,
		Example: `  camelot apply 8B diagonal
  camelot apply 5A "change-index(+7)"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.svc.Apply(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			return a.emit(w, resp, func() {
				if ux.GetPersonality().Level == ux.PersonalityMachine {
					fmt.Fprintln(w, resp.Result)
					return
				}
				fmt.Fprintln(w, ux.RenderPath(graph.Path{
					Cost:  1,
					Keys:  []camelot.Key{resp.Key, resp.Result},
					Steps: []graph.Step{{From: resp.Key, To: resp.Result, Transition: resp.Transition}},
				}))
			})
		},
	}
}

func (a *app) transitionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "transitions",
		Short: "List the harmonic transition catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog := camelot.Catalog()
			w := cmd.OutOrStdout()
			return a.emit(w, catalog, func() {
				ux.Title(w, fmt.Sprintf("%d transitions", len(catalog)))
				for _, t := range catalog {
					fmt.Fprintln(w, t)
				}
			})
		},
	}
}

func (a *app) neighborsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "neighbors KEY",
		Short: "Show the keys one transition away",
		Long: `Show KEY and every key one catalog transition away, highlighted on
the wheel. Plain output lists the keys in wheel order.`,
		Example: `  camelot neighbors 8B
  camelot neighbors 1A --plain`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.svc.Neighbors(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			return a.emit(w, resp, func() {
				ux.Box(w, "Neighbors of "+resp.Key.String(), ux.RenderWheel(resp.Neighbors))
			})
		},
	}
}

func (a *app) pathCmd() *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "path FROM TO",
		Short: "Find the shortest transition paths between two keys",
		Example: `  camelot path 1A 7B
  camelot path 8B 3A --count 5`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.svc.Paths(cmd.Context(), args[0], args[1], count)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			return a.emit(w, resp, func() {
				ux.Title(w, fmt.Sprintf("%s %s %s", resp.From, ux.IconArrow, resp.To))
				for _, p := range resp.Paths {
					fmt.Fprintln(w, ux.RenderPath(p))
				}
			})
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 1, "Number of paths to return")
	return cmd
}

func (a *app) cliquesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cliques",
		Short: "List every maximal group of mutually compatible keys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp := a.svc.Cliques(cmd.Context())
			w := cmd.OutOrStdout()
			return a.emit(w, resp, func() {
				ux.Title(w, fmt.Sprintf("%d maximal cliques", resp.Count))
				for _, c := range resp.Cliques {
					fmt.Fprintln(w, ux.JoinKeys(c))
				}
			})
		},
	}
}

func (a *app) statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Summarize the transition graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := a.svc.Stats(cmd.Context())
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			return a.emit(w, resp, func() {
				ux.Field(w, "nodes", resp.Graph.NodeCount)
				ux.Field(w, "edges", resp.Graph.EdgeCount)
				ux.Field(w, "unique_pairs", resp.Graph.UniquePairs)
				ux.Field(w, "min_degree", resp.Graph.MinDegree)
				ux.Field(w, "max_degree", resp.Graph.MaxDegree)
				ux.Field(w, "diameter", resp.Diameter)
				ux.Field(w, "connected", resp.Connected)
			})
		},
	}
}
