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
	"slices"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/AleutianAI/camelot/services/harmony/camelot"
	"github.com/AleutianAI/camelot/services/harmony/telemetry"
)

// Neighbors returns k together with every key one catalog transition away.
//
// Description:
//
//	Follows the edges built from k (each catalog rule applied to k) and
//	adds k itself, so callers can highlight "compatible or identical"
//	keys as one set. The result is sorted and free of duplicates.
//
// Outputs:
//
//	[]camelot.Key - Sorted keys, never empty on success.
//	error - ErrKeyNotFound if k is not a node.
func (g *ScaleTransitions) Neighbors(ctx context.Context, k camelot.Key) ([]camelot.Key, error) {
	start := time.Now()
	ctx, span := startQuerySpan(ctx, "Neighbors", attribute.String("graph.key", k.String()))
	defer span.End()
	defer func() { recordQueryMetrics(ctx, "neighbors", time.Since(start)) }()

	id, err := g.lookup(k)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	out := []camelot.Key{k}
	for _, e := range g.nodes[id].Edges {
		if e.from == id {
			out = append(out, e.To)
		}
	}

	slices.SortFunc(out, camelot.Key.Compare)
	out = slices.Compact(out)

	span.SetAttributes(attribute.Int("graph.neighbor_count", len(out)))
	return out, nil
}

// Degree returns the number of distinct keys adjacent to k, ignoring
// labels and edge direction.
func (g *ScaleTransitions) Degree(k camelot.Key) (int, error) {
	id, err := g.lookup(k)
	if err != nil {
		return 0, fmt.Errorf("degree: %w", err)
	}
	return g.adjacency[id].len(), nil
}
