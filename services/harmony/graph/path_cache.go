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

	"golang.org/x/sync/singleflight"

	"github.com/AleutianAI/camelot/services/harmony/camelot"
)

// pathCacheKey identifies a ShortestPaths request.
type pathCacheKey struct {
	source camelot.Key
	target camelot.Key
	count  int
}

func (k pathCacheKey) String() string {
	return fmt.Sprintf("%v>%v#%d", k.source, k.target, k.count)
}

// PathCache memoizes ShortestPaths results for one graph.
//
// Concurrent misses for the same request are collapsed with singleflight
// so each distinct search runs once. Errors are not cached.
//
// Thread Safety: Safe for concurrent use.
type PathCache struct {
	graph  *ScaleTransitions
	lru    *LRUCache[pathCacheKey, []Path]
	flight singleflight.Group
}

// PathCacheStats reports cache effectiveness.
type PathCacheStats struct {
	Size      int   `json:"size"`
	Capacity  int   `json:"capacity"`
	Hits      int64 `json:"hits"`
	Misses    int64 `json:"misses"`
	Evictions int64 `json:"evictions"`
}

// NewPathCache wraps g with an LRU of the given capacity.
func NewPathCache(g *ScaleTransitions, capacity int) *PathCache {
	return &PathCache{
		graph: g,
		lru:   NewLRUCache[pathCacheKey, []Path](capacity),
	}
}

// Graph returns the underlying graph.
func (c *PathCache) Graph() *ScaleTransitions {
	return c.graph
}

// ShortestPaths is ScaleTransitions.ShortestPaths with memoization.
//
// Concurrent misses for the same query share one search, and that search
// ignores caller cancellation. A caller whose context is already done gets
// its context error.
//
// The returned paths are shared between callers and must not be modified.
func (c *PathCache) ShortestPaths(ctx context.Context, source, target camelot.Key, n int) ([]Path, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	key := pathCacheKey{source: source, target: target, count: n}
	if paths, ok := c.lru.Get(key); ok {
		recordCacheLookup(ctx, true)
		return paths, nil
	}
	recordCacheLookup(ctx, false)

	v, err, _ := c.flight.Do(key.String(), func() (interface{}, error) {
		paths, err := c.graph.ShortestPaths(context.WithoutCancel(ctx), source, target, n)
		if err != nil {
			return nil, err
		}
		c.lru.Set(key, paths)
		return paths, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]Path), nil
}

// ShortestPath is the single-path form of ShortestPaths.
func (c *PathCache) ShortestPath(ctx context.Context, source, target camelot.Key) ([]camelot.Key, error) {
	paths, err := c.ShortestPaths(ctx, source, target, 1)
	if err != nil {
		return nil, err
	}
	return paths[0].Keys, nil
}

// Stats returns the current cache counters.
func (c *PathCache) Stats() PathCacheStats {
	hits, misses := c.lru.Stats()
	return PathCacheStats{
		Size:      c.lru.Len(),
		Capacity:  c.lru.Capacity(),
		Hits:      hits,
		Misses:    misses,
		Evictions: c.lru.Evictions(),
	}
}

// Purge empties the cache.
func (c *PathCache) Purge() {
	c.lru.Purge()
}
