// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package ux

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AleutianAI/camelot/services/harmony/camelot"
	"github.com/AleutianAI/camelot/services/harmony/graph"
)

func TestOutput_Machine(t *testing.T) {
	withLevel(t, PersonalityMachine)
	var buf bytes.Buffer

	Title(&buf, "ignored")
	Success(&buf, "done")
	Error(&buf, "bad")
	Field(&buf, "edges", 240)
	Box(&buf, "Title", "body")

	assert.Equal(t, "OK: done\nERROR: bad\nedges=240\nbody\n", buf.String())
}

func TestOutput_Minimal(t *testing.T) {
	withLevel(t, PersonalityMinimal)
	var buf bytes.Buffer

	Title(&buf, "Wheel")
	Success(&buf, "done")
	Field(&buf, "edges", 240)
	Box(&buf, "Path", "8B 8A")

	assert.Equal(t, "Wheel\n✓ done\nedges: 240\nPath\n8B 8A\n", buf.String())
}

func TestOutput_BoxFull(t *testing.T) {
	withLevel(t, PersonalityFull)
	var buf bytes.Buffer

	Box(&buf, "Path", "8B 8A")
	assert.Contains(t, buf.String(), "Path")
	assert.Contains(t, buf.String(), "8B 8A")
	assert.Contains(t, buf.String(), "╭")
}

func TestRenderWheel_Machine(t *testing.T) {
	withLevel(t, PersonalityMachine)

	got := RenderWheel([]camelot.Key{camelot.MustParseKey("9A"), camelot.MustParseKey("8B"), camelot.MustParseKey("8A")})
	assert.Equal(t, "8A 8B 9A", got)
	assert.Empty(t, RenderWheel(nil))
}

func TestRenderWheel_Minimal(t *testing.T) {
	withLevel(t, PersonalityMinimal)

	got := RenderWheel([]camelot.Key{camelot.MustParseKey("8B"), camelot.MustParseKey("12A")})
	lines := strings.Split(got, "\n")
	require.Len(t, lines, 2)

	assert.True(t, strings.HasPrefix(lines[0], "A "))
	assert.True(t, strings.HasPrefix(lines[1], "B "))
	assert.Contains(t, lines[0], "[12A]")
	assert.Contains(t, lines[0], " 8A ")
	assert.Contains(t, lines[1], "[8B]")
	assert.NotContains(t, lines[1], "[8A]")

	// Every cell has the same width, so both rows line up.
	assert.Equal(t, len(lines[0]), len(lines[1]))
	assert.Equal(t, 2+camelot.NumTonics*cellWidth, len(lines[1]))
}

func TestRenderWheel_FullLegend(t *testing.T) {
	withLevel(t, PersonalityFull)

	got := RenderWheel([]camelot.Key{camelot.MustParseKey("1A")})
	assert.Contains(t, got, "1 of 24 keys highlighted")
	assert.Contains(t, got, "[1A]")
}

func TestRenderPath(t *testing.T) {
	p := graph.Path{
		Cost: 2,
		Keys: []camelot.Key{camelot.MustParseKey("8B"), camelot.MustParseKey("8A"), camelot.MustParseKey("7B")},
		Steps: []graph.Step{
			{From: camelot.MustParseKey("8B"), To: camelot.MustParseKey("8A"), Transition: camelot.Vertical},
			{From: camelot.MustParseKey("8A"), To: camelot.MustParseKey("7B"), Transition: camelot.Diagonal, Reversed: true},
		},
	}

	t.Run("machine", func(t *testing.T) {
		withLevel(t, PersonalityMachine)
		assert.Equal(t, "8B 8A 7B", RenderPath(p))
	})

	t.Run("minimal", func(t *testing.T) {
		withLevel(t, PersonalityMinimal)
		assert.Equal(t, "8B ─vertical→ 8A ─diagonal⁻¹→ 7B", RenderPath(p))
	})

	t.Run("empty", func(t *testing.T) {
		withLevel(t, PersonalityMinimal)
		assert.Empty(t, RenderPath(graph.Path{}))
	})
}
