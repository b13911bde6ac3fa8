// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AleutianAI/camelot/services/harmony"
	"github.com/AleutianAI/camelot/services/harmony/camelot"
	"github.com/AleutianAI/camelot/services/harmony/config"
	"github.com/AleutianAI/camelot/services/harmony/graph"
)

// run executes the CLI with a config path that does not exist, so every
// setting comes from defaults.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("OTEL_TRACES_EXPORTER", "none")
	t.Setenv("OTEL_METRICS_EXPORTER", "none")

	cfgPath := filepath.Join(t.TempDir(), "camelot.yaml")
	return runWithConfig(t, cfgPath, args...)
}

func runWithConfig(t *testing.T, cfgPath string, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer

	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--config", cfgPath}, args...))

	err := cmd.Execute()
	return stdout.String(), err
}

func TestDecode(t *testing.T) {
	out, err := run(t, "decode", "8B", "--plain")
	require.NoError(t, err)
	assert.Equal(t, "key=8B\nnumber=8\nmode=major\n", out)
}

func TestDecode_JSON(t *testing.T) {
	out, err := run(t, "decode", "12A", "--json")
	require.NoError(t, err)

	var info harmony.KeyInfo
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, camelot.MustParseKey("12A"), info.Key)
	assert.Equal(t, 12, info.Number)
	assert.Equal(t, "minor", info.Mode)
}

func TestDecode_InvalidKey(t *testing.T) {
	_, err := run(t, "decode", "13A", "--plain")
	require.Error(t, err)
	assert.ErrorIs(t, err, camelot.ErrInvalidScaleString)
}

func TestApply(t *testing.T) {
	tests := []struct {
		key        string
		transition string
		want       string
	}{
		{"8B", "vertical", "8A"},
		{"8B", "diagonal", "9A"},
		{"8A", "diagonal", "7B"},
		{"5A", "change-index(+7)", "12A"},
		{"6A", "change-index(+9223372036854775807)", "1A"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"/"+tt.transition, func(t *testing.T) {
			out, err := run(t, "apply", tt.key, tt.transition, "--plain")
			require.NoError(t, err)
			assert.Equal(t, tt.want+"\n", out)
		})
	}
}

func TestApply_InvalidTransition(t *testing.T) {
	_, err := run(t, "apply", "8B", "sideways", "--plain")
	assert.ErrorIs(t, err, camelot.ErrInvalidTransition)
}

func TestTransitions(t *testing.T) {
	out, err := run(t, "transitions", "--plain")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, camelot.CatalogSize)
	assert.Contains(t, lines, "vertical")
}

func TestNeighbors(t *testing.T) {
	out, err := run(t, "neighbors", "1A", "--plain")
	require.NoError(t, err)
	assert.Equal(t, "1A 1B 2A 3A 4B 6A 8A 9B 11A 12A 12B\n", out)
}

func TestPath(t *testing.T) {
	out, err := run(t, "path", "1A", "7B", "--plain")
	require.NoError(t, err)

	fields := strings.Fields(strings.TrimSpace(out))
	require.Len(t, fields, 3)
	assert.Equal(t, "1A", fields[0])
	assert.Equal(t, "7B", fields[2])
}

func TestPath_Count(t *testing.T) {
	out, err := run(t, "path", "8B", "3A", "--count", "4", "--json")
	require.NoError(t, err)

	var resp harmony.PathResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.NotEmpty(t, resp.Paths)
	assert.LessOrEqual(t, len(resp.Paths), 4)
	for i := 1; i < len(resp.Paths); i++ {
		assert.LessOrEqual(t, resp.Paths[i-1].Cost, resp.Paths[i].Cost)
	}
}

func TestPath_CountTooLarge(t *testing.T) {
	_, err := run(t, "path", "8B", "3A", "--count", "1000", "--plain")
	assert.ErrorIs(t, err, graph.ErrInvalidPathCount)
}

func TestCliques(t *testing.T) {
	out, err := run(t, "cliques", "--plain")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 96)
	for _, line := range lines {
		assert.Len(t, strings.Fields(line), 3)
	}
}

func TestStats(t *testing.T) {
	out, err := run(t, "stats", "--plain")
	require.NoError(t, err)
	assert.Equal(t, "nodes=24\nedges=240\nunique_pairs=120\nmin_degree=10\nmax_degree=10\ndiameter=2\nconnected=true\n", out)
}

func TestStats_JSON(t *testing.T) {
	out, err := run(t, "stats", "--json")
	require.NoError(t, err)

	var resp harmony.StatsResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, 24, resp.Graph.NodeCount)
	assert.Equal(t, 240, resp.Graph.EdgeCount)
	assert.Equal(t, 2, resp.Diameter)
	assert.True(t, resp.Connected)
}

func TestInvalidConfig(t *testing.T) {
	t.Setenv("OTEL_TRACES_EXPORTER", "none")
	t.Setenv("OTEL_METRICS_EXPORTER", "none")

	cfgPath := filepath.Join(t.TempDir(), "camelot.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("server:\n  port: 0\n"), 0o644))

	_, err := runWithConfig(t, cfgPath, "stats", "--plain")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestExecute_ReportsError(t *testing.T) {
	t.Setenv("OTEL_TRACES_EXPORTER", "none")
	t.Setenv("OTEL_METRICS_EXPORTER", "none")

	var stdout, cobraErr, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&cobraErr)
	cmd.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "camelot.yaml"), "decode", "13A", "--plain"})

	code := execute(cmd, &stderr)

	assert.Equal(t, 1, code)
	assert.Empty(t, stdout.String())
	assert.NotContains(t, cobraErr.String(), "Error: ")
	assert.True(t, strings.HasPrefix(stderr.String(), "ERROR: "), stderr.String())
	assert.Contains(t, stderr.String(), "13A")
	assert.Equal(t, 1, strings.Count(stderr.String(), "\n"))
}

func TestExecute_Success(t *testing.T) {
	t.Setenv("OTEL_TRACES_EXPORTER", "none")
	t.Setenv("OTEL_METRICS_EXPORTER", "none")

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "camelot.yaml"), "apply", "8B", "vertical", "--plain"})

	assert.Equal(t, 0, execute(cmd, &stderr))
	assert.Equal(t, "8A\n", stdout.String())
	assert.NotContains(t, stderr.String(), "ERROR: ")
}
