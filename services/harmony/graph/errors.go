// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package graph builds and queries the Camelot transition graph.
//
// The graph has one node per wheel key (24 in total) and one edge for every
// (key, catalog transition) pair, labeled with the transition that produced
// it. Edges are stored undirected: each edge appears in the incidence list
// of both endpoints. Parallel edges with different labels are kept.
//
// # Thread Safety
//
// ScaleTransitions is built once and frozen. After Build returns, the
// graph is read-only and safe for concurrent use without locking.
//
// # Lifecycle
//
// Most callers use Default(), which builds the graph on first use and
// shares it for the rest of the process:
//
//	path, err := graph.Default().ShortestPath(ctx, from, to)
package graph

import "errors"

// Sentinel errors for graph operations.
var (
	// ErrGraphFrozen is returned when attempting to modify a frozen graph.
	ErrGraphFrozen = errors.New("graph is frozen and cannot be modified")

	// ErrKeyNotFound is returned when a query names a key that is not a
	// node of the graph (for example a tonic outside 0..11).
	ErrKeyNotFound = errors.New("key not found in graph")

	// ErrDuplicateNode is returned when the same key is added twice.
	ErrDuplicateNode = errors.New("duplicate node key")

	// ErrInvalidPathCount is returned when fewer than one path is requested.
	ErrInvalidPathCount = errors.New("path count must be at least 1")

	// ErrNoPath is returned when the search frontier is exhausted before
	// reaching the target.
	ErrNoPath = errors.New("no path between keys")
)
