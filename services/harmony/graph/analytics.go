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
	"runtime"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"github.com/AleutianAI/camelot/services/harmony/camelot"
	"github.com/AleutianAI/camelot/services/harmony/telemetry"
)

// Unreachable is the distance reported between disconnected keys.
const Unreachable = -1

// Stats summarizes the shape of the graph.
type Stats struct {
	NodeCount         int            `json:"node_count"`
	EdgeCount         int            `json:"edge_count"`
	UniquePairs       int            `json:"unique_pairs"`
	EdgesByTransition map[string]int `json:"edges_by_transition"`
	MinDegree         int            `json:"min_degree"`
	MaxDegree         int            `json:"max_degree"`
	BuiltAtMilli      int64          `json:"built_at_milli"`
}

// Stats returns node, edge and degree counts.
func (g *ScaleTransitions) Stats() Stats {
	s := Stats{
		NodeCount:         g.NodeCount(),
		EdgeCount:         g.EdgeCount(),
		EdgesByTransition: make(map[string]int, len(g.edgesByTransition)),
		BuiltAtMilli:      g.BuiltAtMilli,
	}
	for t, edges := range g.edgesByTransition {
		s.EdgesByTransition[t.String()] = len(edges)
	}

	degreeSum := 0
	for id, adj := range g.adjacency {
		d := adj.len()
		degreeSum += d
		if id == 0 || d < s.MinDegree {
			s.MinDegree = d
		}
		if d > s.MaxDegree {
			s.MaxDegree = d
		}
	}
	s.UniquePairs = degreeSum / 2
	return s
}

// DistanceMatrix holds hop distances between every pair of keys.
type DistanceMatrix struct {
	keys  []camelot.Key
	index map[camelot.Key]int
	dist  [][]int
}

// Distances computes all-pairs hop distances.
//
// Description:
//
//	Runs one breadth-first search per node, fanned out over an errgroup
//	bounded by GOMAXPROCS. Each search writes only its own row.
//
// Outputs:
//
//	*DistanceMatrix - Distances; Unreachable for disconnected pairs.
//	error - The context error if cancelled.
func (g *ScaleTransitions) Distances(ctx context.Context) (*DistanceMatrix, error) {
	start := time.Now()
	ctx, span := startQuerySpan(ctx, "Distances")
	defer span.End()
	defer func() { recordQueryMetrics(ctx, "distances", time.Since(start)) }()

	m := &DistanceMatrix{
		keys:  g.Keys(),
		index: g.index,
		dist:  make([][]int, len(g.nodes)),
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for id := range g.nodes {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			m.dist[id] = g.bfs(id)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		telemetry.RecordError(span, err)
		return nil, fmt.Errorf("distances: %w", err)
	}

	span.SetAttributes(attribute.Int("graph.diameter", m.Diameter()))
	return m, nil
}

// bfs returns hop distances from source over the simple adjacency.
func (g *ScaleTransitions) bfs(source int) []int {
	dist := make([]int, len(g.nodes))
	for i := range dist {
		dist[i] = Unreachable
	}
	dist[source] = 0

	queue := []int{source}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for next := range g.nodes {
			if dist[next] == Unreachable && g.adjacency[current].has(next) {
				dist[next] = dist[current] + 1
				queue = append(queue, next)
			}
		}
	}
	return dist
}

// Distance returns the hop distance between a and b.
func (m *DistanceMatrix) Distance(a, b camelot.Key) (int, error) {
	aID, ok := m.index[a]
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrKeyNotFound, a)
	}
	bID, ok := m.index[b]
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrKeyNotFound, b)
	}
	return m.dist[aID][bID], nil
}

// Eccentricity returns the largest distance from k to any reachable key.
func (m *DistanceMatrix) Eccentricity(k camelot.Key) (int, error) {
	id, ok := m.index[k]
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrKeyNotFound, k)
	}
	ecc := 0
	for _, d := range m.dist[id] {
		ecc = max(ecc, d)
	}
	return ecc, nil
}

// Diameter returns the largest finite distance in the matrix.
func (m *DistanceMatrix) Diameter() int {
	diameter := 0
	for _, row := range m.dist {
		for _, d := range row {
			diameter = max(diameter, d)
		}
	}
	return diameter
}

// Connected reports whether every key can reach every other key.
func (m *DistanceMatrix) Connected() bool {
	for _, row := range m.dist {
		for _, d := range row {
			if d == Unreachable {
				return false
			}
		}
	}
	return true
}
