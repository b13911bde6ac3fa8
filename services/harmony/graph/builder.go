// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package graph

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/AleutianAI/camelot/services/harmony/camelot"
	"github.com/AleutianAI/camelot/services/harmony/telemetry"
)

// Build constructs the full Camelot graph from the standard keys and the
// harmonic transition catalog.
//
// Description:
//
//	Creates one node per key, then applies every catalog transition to
//	every key and adds an edge labeled with that transition. The result
//	has 24 nodes and 240 edges and is frozen before it is returned.
//
// Inputs:
//
//	ctx - Context for tracing. Build is bounded and does not block.
//
// Outputs:
//
//	*ScaleTransitions - The frozen graph. Never nil.
//
// Limitations:
//
//	Panics if the catalog maps a key outside the standard key set, which
//	would mean the fixed rule set is inconsistent with itself.
func Build(ctx context.Context) *ScaleTransitions {
	g, err := BuildWith(ctx, camelot.StandardKeys(), camelot.Catalog())
	if err != nil {
		panic(fmt.Sprintf("graph: standard catalog is inconsistent: %v", err))
	}
	return g
}

// BuildWith constructs a graph over an arbitrary key set and rule list.
//
// Description:
//
//	Same algorithm as Build. Every transition must map every key to a key
//	that is also in keys; otherwise ErrKeyNotFound is returned. Duplicate
//	keys return ErrDuplicateNode.
//
// Outputs:
//
//	*ScaleTransitions - The frozen graph, or nil on error.
//	error - Non-nil if the inputs do not form a closed graph.
func BuildWith(ctx context.Context, keys []camelot.Key, transitions []camelot.Transition) (*ScaleTransitions, error) {
	start := time.Now()
	ctx, span := startBuildSpan(ctx, len(keys), len(transitions))
	defer span.End()

	g := newScaleTransitions(len(keys), len(keys)*len(transitions))

	for _, k := range keys {
		if _, err := g.addNode(k); err != nil {
			telemetry.RecordError(span, err)
			return nil, fmt.Errorf("add node: %w", err)
		}
	}

	for _, k := range keys {
		for _, t := range transitions {
			if _, err := g.addEdge(k, k.Apply(t), t); err != nil {
				telemetry.RecordError(span, err, attribute.String("transition", t.String()))
				return nil, fmt.Errorf("add edge %v via %v: %w", k, t, err)
			}
		}
	}

	g.freeze()

	duration := time.Since(start)
	span.SetAttributes(
		attribute.Int("graph.node_count", g.NodeCount()),
		attribute.Int("graph.edge_count", g.EdgeCount()),
	)
	recordBuildMetrics(ctx, duration, g.NodeCount(), g.EdgeCount())

	telemetry.LoggerWithTrace(ctx, slog.Default()).Info("transition graph built",
		slog.Int("nodes", g.NodeCount()),
		slog.Int("edges", g.EdgeCount()),
		slog.Duration("duration", duration),
	)

	return g, nil
}
