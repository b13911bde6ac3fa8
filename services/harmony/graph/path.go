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

	"github.com/emirpasic/gods/queues/priorityqueue"
	"github.com/emirpasic/gods/utils"
	"go.opentelemetry.io/otel/attribute"

	"github.com/AleutianAI/camelot/services/harmony/camelot"
	"github.com/AleutianAI/camelot/services/harmony/telemetry"
)

// Step is one traversed edge of a path.
type Step struct {
	// From is the key the step leaves.
	From camelot.Key `json:"from"`

	// To is the key the step arrives at.
	To camelot.Key `json:"to"`

	// Transition is the label of the traversed edge.
	Transition camelot.Transition `json:"transition"`

	// Reversed is true when the edge was followed against the direction
	// it was built in, i.e. Transition applied to To yields From.
	Reversed bool `json:"reversed,omitempty"`
}

// Path is a sequence of keys joined by transitions.
type Path struct {
	// Cost is the number of transitions.
	Cost int `json:"cost"`

	// Keys includes both endpoints; len(Keys) == Cost+1.
	Keys []camelot.Key `json:"keys"`

	// Steps has one entry per transition.
	Steps []Step `json:"steps"`
}

// partialPath is a frontier entry of the multi-path search.
type partialPath struct {
	cost  int
	seq   uint64
	node  int
	nodes []int
	edges []*Edge
}

// byCostThenDiscovery orders the frontier by cost, breaking ties in the
// order entries were discovered.
func byCostThenDiscovery(a, b interface{}) int {
	pa := a.(*partialPath)
	pb := b.(*partialPath)
	if c := utils.IntComparator(pa.cost, pb.cost); c != 0 {
		return c
	}
	return utils.UInt64Comparator(pa.seq, pb.seq)
}

// ShortestPath returns a minimum-transition path from source to target.
//
// Description:
//
//	The returned slice includes both endpoints. ShortestPath(k, k) returns
//	[k]. When several minimum paths exist, the first one discovered wins;
//	discovery order follows each node's edge insertion order, so the
//	result is deterministic for a given graph.
//
// Outputs:
//
//	[]camelot.Key - The path, source first.
//	error - ErrKeyNotFound if either key is not a node.
func (g *ScaleTransitions) ShortestPath(ctx context.Context, source, target camelot.Key) ([]camelot.Key, error) {
	paths, err := g.ShortestPaths(ctx, source, target, 1)
	if err != nil {
		return nil, err
	}
	return paths[0].Keys, nil
}

// ShortestPaths returns up to n shortest paths from source to target.
//
// Description:
//
//	Runs a priority-queue search over partial paths with unit edge cost.
//	The cheapest partial path is expanded first by appending every
//	incident edge. A partial path is accepted the first time its node is
//	the target; the search stops once n paths are accepted. Each node is
//	expanded at most n times, which bounds the frontier while still
//	yielding the n cheapest walks. Paths are returned in increasing cost.
//
// Inputs:
//
//	ctx - Context for tracing and cancellation.
//	source, target - Graph keys.
//	n - Number of paths wanted. Must be >= 1.
//
// Outputs:
//
//	[]Path - Between 1 and n paths.
//	error - ErrInvalidPathCount, ErrKeyNotFound, ErrNoPath, or the context error.
func (g *ScaleTransitions) ShortestPaths(ctx context.Context, source, target camelot.Key, n int) ([]Path, error) {
	start := time.Now()
	ctx, span := startQuerySpan(ctx, "ShortestPaths",
		attribute.String("graph.source", source.String()),
		attribute.String("graph.target", target.String()),
		attribute.Int("graph.path_count", n),
	)
	defer span.End()
	defer func() { recordQueryMetrics(ctx, "shortest_paths", time.Since(start)) }()

	if n < 1 {
		telemetry.RecordError(span, ErrInvalidPathCount)
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPathCount, n)
	}
	sourceID, err := g.lookup(source)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, fmt.Errorf("source: %w", err)
	}
	targetID, err := g.lookup(target)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, fmt.Errorf("target: %w", err)
	}

	paths, err := g.multiPathSearch(ctx, sourceID, targetID, n)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("graph.paths_found", len(paths)),
		attribute.Int("graph.best_cost", paths[0].Cost),
	)
	telemetry.LoggerWithTrace(ctx, slog.Default()).Debug("shortest paths found",
		slog.String("source", source.String()),
		slog.String("target", target.String()),
		slog.Int("paths", len(paths)),
		slog.Int("cost", paths[0].Cost),
	)
	return paths, nil
}

// multiPathSearch is the frontier search behind ShortestPaths.
func (g *ScaleTransitions) multiPathSearch(ctx context.Context, source, target, n int) ([]Path, error) {
	frontier := priorityqueue.NewWith(byCostThenDiscovery)
	var seq uint64
	frontier.Enqueue(&partialPath{node: source, nodes: []int{source}})

	expanded := make([]int, len(g.nodes))
	paths := make([]Path, 0, n)

	for !frontier.Empty() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("path search: %w", err)
		}

		v, _ := frontier.Dequeue()
		current := v.(*partialPath)

		if expanded[current.node] >= n {
			continue
		}
		expanded[current.node]++

		if current.node == target {
			paths = append(paths, g.materialize(current))
			if len(paths) >= n {
				break
			}
		}

		for _, e := range g.nodes[current.node].Edges {
			next := e.to
			if next == current.node {
				next = e.from
			}
			seq++
			frontier.Enqueue(&partialPath{
				cost:  current.cost + 1,
				seq:   seq,
				node:  next,
				nodes: appendCopy(current.nodes, next),
				edges: appendCopy(current.edges, e),
			})
		}
	}

	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: %v -> %v", ErrNoPath, g.nodes[source].Key, g.nodes[target].Key)
	}
	return paths, nil
}

// materialize converts node ids and edges into a Path.
func (g *ScaleTransitions) materialize(p *partialPath) Path {
	keys := make([]camelot.Key, len(p.nodes))
	for i, id := range p.nodes {
		keys[i] = g.nodes[id].Key
	}

	steps := make([]Step, len(p.edges))
	for i, e := range p.edges {
		from := keys[i]
		steps[i] = Step{
			From:       from,
			To:         keys[i+1],
			Transition: e.Transition,
			Reversed:   e.From != from,
		}
	}

	return Path{Cost: p.cost, Keys: keys, Steps: steps}
}

// appendCopy returns a new slice holding s followed by v.
// Frontier entries share prefixes, so each must own its backing array.
func appendCopy[T any](s []T, v T) []T {
	out := make([]T, len(s), len(s)+1)
	copy(out, s)
	return append(out, v)
}
