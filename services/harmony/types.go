// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package harmony

import (
	"github.com/AleutianAI/camelot/services/harmony/camelot"
	"github.com/AleutianAI/camelot/services/harmony/graph"
)

// =============================================================================
// Requests
// =============================================================================

// ApplyRequest is the body of POST /v1/camelot/apply.
type ApplyRequest struct {
	// Key is the starting key, e.g. "8B".
	Key string `json:"key" binding:"required,camelotkey"`

	// Transition is a rule name, e.g. "diagonal" or "change-index(+7)".
	Transition string `json:"transition" binding:"required,camelottransition"`
}

// PathRequest is the body of POST /v1/camelot/path.
type PathRequest struct {
	// From is the source key.
	From string `json:"from" binding:"required,camelotkey"`

	// To is the target key.
	To string `json:"to" binding:"required,camelotkey"`

	// Count is the number of paths wanted. Zero means 1.
	Count int `json:"count" binding:"omitempty,min=1"`
}

// =============================================================================
// Responses
// =============================================================================

// KeyInfo describes one wheel position.
type KeyInfo struct {
	Key    camelot.Key `json:"key"`
	Number int         `json:"number"`
	Tonic  int         `json:"tonic"`
	Mode   string      `json:"mode"`
}

// KeysResponse lists every key.
type KeysResponse struct {
	Keys []KeyInfo `json:"keys"`
}

// NeighborsResponse is returned by GET /v1/camelot/keys/:key/neighbors.
type NeighborsResponse struct {
	Key       camelot.Key   `json:"key"`
	Neighbors []camelot.Key `json:"neighbors"`
}

// ApplyResponse is returned by POST /v1/camelot/apply.
type ApplyResponse struct {
	Key        camelot.Key        `json:"key"`
	Transition camelot.Transition `json:"transition"`
	Result     camelot.Key        `json:"result"`
}

// PathResponse is returned by POST /v1/camelot/path.
type PathResponse struct {
	From  camelot.Key  `json:"from"`
	To    camelot.Key  `json:"to"`
	Paths []graph.Path `json:"paths"`
}

// CliquesResponse is returned by GET /v1/camelot/cliques.
type CliquesResponse struct {
	Count   int             `json:"count"`
	Cliques [][]camelot.Key `json:"cliques"`
}

// StatsResponse is returned by GET /v1/camelot/stats.
type StatsResponse struct {
	Graph     graph.Stats          `json:"graph"`
	Diameter  int                  `json:"diameter"`
	Connected bool                 `json:"connected"`
	PathCache graph.PathCacheStats `json:"path_cache"`
}

// HealthResponse is returned by GET /v1/camelot/health.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	// Error is the error message.
	Error string `json:"error"`

	// Code is a stable machine-readable error code.
	Code string `json:"code,omitempty"`

	// Details provides additional error context (optional).
	Details string `json:"details,omitempty"`
}
