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
	"sync"

	"github.com/AleutianAI/camelot/services/harmony/camelot"
)

var (
	defaultGraph *ScaleTransitions
	defaultOnce  sync.Once
)

// Default returns the process-wide Camelot graph, building it on first use.
//
// Thread Safety: Safe for concurrent use. The graph is built exactly once
// and never modified afterwards.
func Default() *ScaleTransitions {
	defaultOnce.Do(func() {
		defaultGraph = Build(context.Background())
	})
	return defaultGraph
}

// ShortestPath finds a minimum-transition path on the default graph.
func ShortestPath(ctx context.Context, source, target camelot.Key) ([]camelot.Key, error) {
	return Default().ShortestPath(ctx, source, target)
}

// Neighbors returns the key and its one-transition neighbors on the default graph.
func Neighbors(ctx context.Context, k camelot.Key) ([]camelot.Key, error) {
	return Default().Neighbors(ctx, k)
}

// MaximalCliques enumerates the maximal cliques of the default graph.
func MaximalCliques(ctx context.Context) [][]camelot.Key {
	return Default().MaximalCliques(ctx)
}
