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
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AleutianAI/camelot/services/harmony/camelot"
)

func TestNeighbors(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		key  string
		want []string
	}{
		{key: "1A", want: []string{"1A", "1B", "2A", "3A", "4B", "6A", "8A", "9B", "11A", "12A", "12B"}},
		{key: "8B", want: []string{"1B", "3B", "5A", "6B", "7B", "8A", "8B", "9A", "9B", "10B", "12A"}},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, err := Neighbors(ctx, camelot.MustParseKey(tt.key))
			require.NoError(t, err)
			assert.Equal(t, keys(t, tt.want...), got)
		})
	}
}

func TestNeighbors_Complete(t *testing.T) {
	ctx := context.Background()
	g := Build(ctx)

	for _, k := range g.Keys() {
		got, err := g.Neighbors(ctx, k)
		require.NoError(t, err)

		assert.Contains(t, got, k)
		for _, target := range camelot.Targets(k) {
			assert.Contains(t, got, target, "%v missing %v", k, target)
		}
		assert.True(t, slices.IsSortedFunc(got, camelot.Key.Compare))
		assert.Len(t, got, 11)

		for _, n := range got {
			if n != k {
				assert.True(t, g.Adjacent(k, n))
			}
		}
	}
}

func TestNeighbors_UnknownKey(t *testing.T) {
	_, err := Default().Neighbors(context.Background(), camelot.Key{Tonic: 15})
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestMaximalCliques(t *testing.T) {
	ctx := context.Background()
	g := Build(ctx)

	cliques := g.MaximalCliques(ctx)
	require.Len(t, cliques, 96)

	for _, c := range cliques {
		assert.Len(t, c, 3)
		assert.True(t, g.IsClique(c), "%v is not a clique", c)
		assert.True(t, slices.IsSortedFunc(c, camelot.Key.Compare))

		for _, other := range g.Keys() {
			if slices.Contains(c, other) {
				continue
			}
			assert.False(t, g.IsClique(append(slices.Clone(c), other)),
				"%v extends with %v", c, other)
		}
	}

	assert.True(t, slices.IsSortedFunc(cliques, func(a, b []camelot.Key) int {
		return slices.CompareFunc(a, b, camelot.Key.Compare)
	}))
}

func TestMaximalCliques_Membership(t *testing.T) {
	cliques := MaximalCliques(context.Background())

	count := make(map[camelot.Key]int)
	var with1A [][]camelot.Key
	for _, c := range cliques {
		for _, k := range c {
			count[k]++
		}
		if slices.Contains(c, camelot.MustParseKey("1A")) {
			with1A = append(with1A, c)
		}
	}

	for _, k := range camelot.StandardKeys() {
		assert.Equal(t, 12, count[k], "cliques containing %v", k)
	}

	want := [][]string{
		{"1A", "1B", "2A"},
		{"1A", "1B", "12B"},
		{"1A", "2A", "3A"},
		{"1A", "2A", "12A"},
		{"1A", "3A", "8A"},
		{"1A", "4B", "8A"},
		{"1A", "4B", "9B"},
		{"1A", "6A", "8A"},
		{"1A", "6A", "9B"},
		{"1A", "6A", "11A"},
		{"1A", "11A", "12A"},
		{"1A", "12A", "12B"},
	}
	require.Len(t, with1A, len(want))
	for i, w := range want {
		assert.Equal(t, keys(t, w...), with1A[i])
	}
}

func TestMaximalCliques_Deterministic(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, Build(ctx).MaximalCliques(ctx), Build(ctx).MaximalCliques(ctx))
}

func TestIsClique(t *testing.T) {
	g := Default()
	assert.True(t, g.IsClique(nil))
	assert.True(t, g.IsClique(keys(t, "1A")))
	assert.True(t, g.IsClique(keys(t, "1A", "1B", "2A")))
	assert.False(t, g.IsClique(keys(t, "1A", "1B", "7B")))
}

func TestDistances(t *testing.T) {
	ctx := context.Background()
	g := Build(ctx)

	m, err := g.Distances(ctx)
	require.NoError(t, err)

	assert.True(t, m.Connected())
	assert.Equal(t, 2, m.Diameter())

	d, err := m.Distance(camelot.MustParseKey("8B"), camelot.MustParseKey("8A"))
	require.NoError(t, err)
	assert.Equal(t, 1, d)

	d, err = m.Distance(camelot.MustParseKey("1A"), camelot.MustParseKey("1A"))
	require.NoError(t, err)
	assert.Zero(t, d)

	for _, k := range g.Keys() {
		ecc, err := m.Eccentricity(k)
		require.NoError(t, err)
		assert.Equal(t, 2, ecc)
	}

	_, err = m.Distance(camelot.Key{Tonic: 15}, camelot.MustParseKey("1A"))
	assert.ErrorIs(t, err, ErrKeyNotFound)
	_, err = m.Eccentricity(camelot.Key{Tonic: 15})
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestDistances_Disconnected(t *testing.T) {
	ctx := context.Background()
	g, err := BuildWith(ctx, camelot.StandardKeys(), []camelot.Transition{camelot.Vertical})
	require.NoError(t, err)

	m, err := g.Distances(ctx)
	require.NoError(t, err)
	assert.False(t, m.Connected())
	assert.Equal(t, 1, m.Diameter())

	d, err := m.Distance(camelot.MustParseKey("1A"), camelot.MustParseKey("2A"))
	require.NoError(t, err)
	assert.Equal(t, Unreachable, d)
}

func TestDistances_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Default().Distances(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
