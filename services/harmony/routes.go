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
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/AleutianAI/camelot/services/harmony/telemetry"
)

// RegisterRoutes registers all Camelot routes with the router.
//
// Description:
//
//	Registers all /v1/camelot/* endpoints with the given Gin router group.
//	The router group should already have any required middleware applied.
//
// Inputs:
//
//	rg - Gin router group (typically /v1)
//	handlers - The handlers instance
//
// Endpoints:
//
//	GET  /v1/camelot/keys - List all 24 keys
//	GET  /v1/camelot/keys/:key - Decode a key
//	GET  /v1/camelot/keys/:key/neighbors - Key and its one-step neighbors
//	POST /v1/camelot/apply - Apply a named transition
//	POST /v1/camelot/path - Shortest transition paths
//	GET  /v1/camelot/cliques - Maximal cliques
//	GET  /v1/camelot/stats - Graph and cache statistics
//	GET  /v1/camelot/health - Health check
//
// Example:
//
//	handlers := harmony.NewHandlers(harmony.NewService(harmony.DefaultServiceConfig()))
//	v1 := router.Group("/v1")
//	harmony.RegisterRoutes(v1, handlers)
func RegisterRoutes(rg *gin.RouterGroup, handlers *Handlers) {
	camelot := rg.Group("/camelot")
	{
		camelot.GET("/keys", handlers.HandleKeys)
		camelot.GET("/keys/:key", handlers.HandleDecode)
		camelot.GET("/keys/:key/neighbors", handlers.HandleNeighbors)

		camelot.POST("/apply", handlers.HandleApply)
		camelot.POST("/path", handlers.HandlePath)

		camelot.GET("/cliques", handlers.HandleCliques)
		camelot.GET("/stats", handlers.HandleStats)

		camelot.GET("/health", handlers.HandleHealth)
	}
}

// NewRouter builds the gin engine for the Camelot API.
//
// Description:
//
//	Installs recovery and otelgin middleware, registers the custom
//	validators, mounts the /v1/camelot routes, and exposes /metrics when
//	the prometheus exporter is active.
//
// Outputs:
//
//	*gin.Engine - The router.
//	error - Validator registration failure.
func NewRouter(svc *Service, serviceName string) (*gin.Engine, error) {
	if err := RegisterValidators(); err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware(serviceName))

	v1 := router.Group("/v1")
	RegisterRoutes(v1, NewHandlers(svc))

	if h := telemetry.MetricsHandler(); h != nil {
		router.GET("/metrics", gin.WrapH(h))
	}
	return router, nil
}
