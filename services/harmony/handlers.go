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
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/AleutianAI/camelot/services/harmony/camelot"
	"github.com/AleutianAI/camelot/services/harmony/graph"
	"github.com/AleutianAI/camelot/services/harmony/telemetry"
)

// Error codes returned in ErrorResponse.Code.
const (
	codeInvalidRequest    = "INVALID_REQUEST"
	codeInvalidKey        = "INVALID_KEY"
	codeInvalidTransition = "INVALID_TRANSITION"
	codeKeyNotFound       = "KEY_NOT_FOUND"
	codeNoPath            = "NO_PATH"
	codeInternal          = "INTERNAL_ERROR"
)

// Handlers contains the HTTP handlers for the Camelot API.
type Handlers struct {
	svc *Service
}

// NewHandlers creates handlers for the given service.
func NewHandlers(svc *Service) *Handlers {
	return &Handlers{svc: svc}
}

// HandleKeys handles GET /v1/camelot/keys.
//
// Response:
//
//	200 OK: KeysResponse
func (h *Handlers) HandleKeys(c *gin.Context) {
	getOrCreateRequestID(c)
	c.JSON(http.StatusOK, KeysResponse{Keys: h.svc.Keys()})
}

// HandleDecode handles GET /v1/camelot/keys/:key.
//
// Response:
//
//	200 OK: KeyInfo
//	400 Bad Request: INVALID_KEY
func (h *Handlers) HandleDecode(c *gin.Context) {
	logger := h.logger(c, "HandleDecode")

	info, err := h.svc.Decode(c.Request.Context(), c.Param("key"))
	if err != nil {
		writeError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, info)
}

// HandleNeighbors handles GET /v1/camelot/keys/:key/neighbors.
//
// Response:
//
//	200 OK: NeighborsResponse
//	400 Bad Request: INVALID_KEY
func (h *Handlers) HandleNeighbors(c *gin.Context) {
	logger := h.logger(c, "HandleNeighbors")

	resp, err := h.svc.Neighbors(c.Request.Context(), c.Param("key"))
	if err != nil {
		writeError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// HandleApply handles POST /v1/camelot/apply.
//
// Request Body:
//
//	ApplyRequest
//
// Response:
//
//	200 OK: ApplyResponse
//	400 Bad Request: INVALID_REQUEST, INVALID_KEY or INVALID_TRANSITION
func (h *Handlers) HandleApply(c *gin.Context) {
	logger := h.logger(c, "HandleApply")

	var req ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, logger, err)
		return
	}

	resp, err := h.svc.Apply(c.Request.Context(), req.Key, req.Transition)
	if err != nil {
		writeError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// HandlePath handles POST /v1/camelot/path.
//
// Description:
//
//	Finds up to Count shortest transition paths between two keys.
//
// Request Body:
//
//	PathRequest
//
// Response:
//
//	200 OK: PathResponse
//	400 Bad Request: INVALID_REQUEST or INVALID_KEY
//	404 Not Found: NO_PATH
func (h *Handlers) HandlePath(c *gin.Context) {
	logger := h.logger(c, "HandlePath")

	var req PathRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, logger, err)
		return
	}

	resp, err := h.svc.Paths(c.Request.Context(), req.From, req.To, req.Count)
	if err != nil {
		writeError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// HandleCliques handles GET /v1/camelot/cliques.
//
// Response:
//
//	200 OK: CliquesResponse
func (h *Handlers) HandleCliques(c *gin.Context) {
	getOrCreateRequestID(c)
	c.JSON(http.StatusOK, h.svc.Cliques(c.Request.Context()))
}

// HandleStats handles GET /v1/camelot/stats.
//
// Response:
//
//	200 OK: StatsResponse
func (h *Handlers) HandleStats(c *gin.Context) {
	logger := h.logger(c, "HandleStats")

	resp, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		writeError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// HandleHealth handles GET /v1/camelot/health. Always 200 while running.
func (h *Handlers) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:  "healthy",
		Version: ServiceVersion,
	})
}

// logger returns a trace-aware request logger and sets the request ID header.
func (h *Handlers) logger(c *gin.Context, handler string) *slog.Logger {
	requestID := getOrCreateRequestID(c)
	return telemetry.LoggerWithRequest(c.Request.Context(), slog.Default(), requestID).
		With(slog.String("handler", handler))
}

// getOrCreateRequestID gets the request ID from header or creates one.
func getOrCreateRequestID(c *gin.Context) string {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = uuid.NewString()
	}
	c.Header("X-Request-ID", requestID)
	return requestID
}

// writeBindError reports a malformed or invalid request body.
func writeBindError(c *gin.Context, logger *slog.Logger, err error) {
	logger.Warn("Invalid request body", "error", err)
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   "Invalid request body",
		Code:    bindErrorCode(err),
		Details: err.Error(),
	})
}

// writeError maps a service error onto a status code and ErrorResponse.
func writeError(c *gin.Context, logger *slog.Logger, err error) {
	status := http.StatusInternalServerError
	code := codeInternal

	switch {
	case errors.Is(err, camelot.ErrInvalidScaleString):
		status, code = http.StatusBadRequest, codeInvalidKey
	case errors.Is(err, camelot.ErrInvalidTransition):
		status, code = http.StatusBadRequest, codeInvalidTransition
	case errors.Is(err, graph.ErrInvalidPathCount):
		status, code = http.StatusBadRequest, codeInvalidRequest
	case errors.Is(err, graph.ErrKeyNotFound):
		status, code = http.StatusNotFound, codeKeyNotFound
	case errors.Is(err, graph.ErrNoPath):
		status, code = http.StatusNotFound, codeNoPath
	}

	if status >= http.StatusInternalServerError {
		logger.Error("Request failed", "error", err)
	} else {
		logger.Warn("Request rejected", "error", err, "code", code)
	}

	c.JSON(status, ErrorResponse{Error: err.Error(), Code: code})
}
