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
	"math/bits"
	"slices"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/AleutianAI/camelot/services/harmony/camelot"
)

// MaximalCliques enumerates every maximal clique of the graph.
//
// Description:
//
//	Works on the simple undirected graph underneath the labeled
//	multigraph: parallel edges collapse into one adjacency and labels are
//	ignored. Uses Bron–Kerbosch with pivoting over bitset neighbor sets.
//	Each clique is sorted by key, and the cliques are sorted
//	lexicographically so repeated calls return identical output.
//
// Outputs:
//
//	[][]camelot.Key - All maximal cliques. Non-nil on a non-empty graph.
func (g *ScaleTransitions) MaximalCliques(ctx context.Context) [][]camelot.Key {
	start := time.Now()
	ctx, span := startQuerySpan(ctx, "MaximalCliques")
	defer span.End()
	defer func() { recordQueryMetrics(ctx, "maximal_cliques", time.Since(start)) }()

	if len(g.nodes) == 0 {
		return [][]camelot.Key{}
	}

	var all keySet
	for id := range g.nodes {
		all |= 1 << uint(id)
	}

	var found []keySet
	g.bronKerbosch(0, all, 0, &found)

	cliques := make([][]camelot.Key, 0, len(found))
	for _, set := range found {
		cliques = append(cliques, g.keysOf(set))
	}
	slices.SortFunc(cliques, func(a, b []camelot.Key) int {
		return slices.CompareFunc(a, b, camelot.Key.Compare)
	})

	span.SetAttributes(attribute.Int("graph.clique_count", len(cliques)))
	return cliques
}

// bronKerbosch reports every maximal clique containing all of r, some of
// p and none of x.
func (g *ScaleTransitions) bronKerbosch(r, p, x keySet, out *[]keySet) {
	if p == 0 && x == 0 {
		*out = append(*out, r)
		return
	}

	pivot := g.choosePivot(p, x)
	for candidates := p &^ g.adjacency[pivot]; candidates != 0; candidates &= candidates - 1 {
		v := bits.TrailingZeros32(uint32(candidates))
		bit := keySet(1) << uint(v)
		g.bronKerbosch(r|bit, p&g.adjacency[v], x&g.adjacency[v], out)
		p &^= bit
		x |= bit
	}
}

// choosePivot picks the vertex of p ∪ x with the most neighbors in p.
func (g *ScaleTransitions) choosePivot(p, x keySet) int {
	best, bestCount := -1, -1
	for rest := p | x; rest != 0; rest &= rest - 1 {
		u := bits.TrailingZeros32(uint32(rest))
		if c := (p & g.adjacency[u]).len(); c > bestCount {
			best, bestCount = u, c
		}
	}
	return best
}

// keysOf converts a node bitset into sorted keys.
func (g *ScaleTransitions) keysOf(set keySet) []camelot.Key {
	keys := make([]camelot.Key, 0, set.len())
	for rest := set; rest != 0; rest &= rest - 1 {
		keys = append(keys, g.nodes[bits.TrailingZeros32(uint32(rest))].Key)
	}
	slices.SortFunc(keys, camelot.Key.Compare)
	return keys
}

// IsClique reports whether every pair of keys is adjacent.
func (g *ScaleTransitions) IsClique(keys []camelot.Key) bool {
	for i := range keys {
		for j := i + 1; j < len(keys); j++ {
			if !g.Adjacent(keys[i], keys[j]) {
				return false
			}
		}
	}
	return true
}
