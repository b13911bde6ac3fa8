// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package camelot

import (
	"testing"

	"github.com/go-openapi/strfmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApply_Scenario(t *testing.T) {
	assert.Equal(t, MustParseKey("1B"), Apply(MustParseKey("1A"), Vertical))
}

func TestApply_Rules(t *testing.T) {
	tests := []struct {
		from string
		tr   Transition
		want string
	}{
		{"8B", Vertical, "8A"},
		{"8A", Vertical, "8B"},
		{"8B", Diagonal, "9A"},
		{"8A", Diagonal, "7B"},
		{"1A", FlatToMinor, "9B"},
		{"9B", FlatToMinor, "1A"},
		{"1A", MajorToMinor, "4B"},
		{"4B", MajorToMinor, "1A"},
		{"12A", ChangeIndex(1), "1A"},
		{"1B", ChangeIndex(-2), "11B"},
		{"5A", ChangeIndex(7), "12A"},
		{"5A", ChangeIndex(-7), "10A"},
	}

	for _, tt := range tests {
		t.Run(tt.from+" "+tt.tr.String(), func(t *testing.T) {
			assert.Equal(t, MustParseKey(tt.want), MustParseKey(tt.from).Apply(tt.tr))
		})
	}
}

// Every catalog rule has an inverse in the catalog, so the graph would be
// symmetric even if edges were stored directed.
func TestApply_CatalogHasInverses(t *testing.T) {
	for _, k := range StandardKeys() {
		for _, tr := range Catalog() {
			target := k.Apply(tr)
			assert.Contains(t, Targets(target), k, "no catalog rule leads back from %v to %v (via %v)", target, k, tr)
		}
	}
}

// The mode-dependent rules return to the origin when re-applied from the
// opposite mode.
func TestApply_CrossRingRulesAreInvolutions(t *testing.T) {
	for _, k := range StandardKeys() {
		for _, tr := range []Transition{Vertical, Diagonal, FlatToMinor, MajorToMinor} {
			target := k.Apply(tr)
			assert.NotEqual(t, k.Mode, target.Mode)
			assert.Equal(t, k, target.Apply(tr), "%v twice from %v", tr, k)
		}
	}
}

func TestApply_PanicsOnUnknownKind(t *testing.T) {
	assert.Panics(t, func() {
		MustParseKey("1A").Apply(Transition{Kind: NumTransitionKinds})
	})
}

func TestCatalog(t *testing.T) {
	c := Catalog()
	require.Len(t, c, 10)
	assert.Equal(t, Vertical, c[0])
	assert.Equal(t, Diagonal, c[1])
	assert.Equal(t, MajorToMinor, c[2])
	assert.Equal(t, FlatToMinor, c[3])
	assert.Equal(t, []Transition{
		ChangeIndex(1), ChangeIndex(2), ChangeIndex(7),
		ChangeIndex(-1), ChangeIndex(-2), ChangeIndex(-7),
	}, c[4:])

	// Returned slice is a copy.
	c[0] = ChangeIndex(5)
	assert.Equal(t, Vertical, Catalog()[0])
}

func TestTargets_NoSelfLoops(t *testing.T) {
	for _, k := range StandardKeys() {
		targets := Targets(k)
		assert.Len(t, targets, CatalogSize)
		assert.NotContains(t, targets, k)
	}
}

func TestTransition_StringAndParse(t *testing.T) {
	for _, tr := range append(Catalog(), ChangeIndex(0), ChangeIndex(23)) {
		parsed, err := ParseTransition(tr.String())
		require.NoError(t, err, tr.String())
		assert.Equal(t, tr, parsed)
	}

	assert.Equal(t, "change-index(+7)", ChangeIndex(7).String())
	assert.Equal(t, "change-index(-2)", ChangeIndex(-2).String())
	assert.Equal(t, "major-to-minor", MajorToMinor.String())

	for _, bad := range []string{"", "Vertical", "change-index", "change-index()", "change-index(x)", "sideways"} {
		_, err := ParseTransition(bad)
		assert.ErrorIs(t, err, ErrInvalidTransition, bad)
	}

	parsed, err := ParseTransition("change-index(3)")
	require.NoError(t, err)
	assert.Equal(t, ChangeIndex(3), parsed)
}

func TestRegisterFormats(t *testing.T) {
	reg := strfmt.NewFormats()
	RegisterFormats(reg)

	assert.True(t, reg.ContainsName(KeyFormat))
	assert.True(t, reg.ContainsName(TransitionFormat))
	assert.True(t, reg.Validates(KeyFormat, "8B"))
	assert.False(t, reg.Validates(KeyFormat, "13A"))
	assert.True(t, reg.Validates(TransitionFormat, "diagonal"))
	assert.False(t, reg.Validates(TransitionFormat, "up"))
}
