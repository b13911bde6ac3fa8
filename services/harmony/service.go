// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package harmony exposes the Camelot transition graph as a service.
//
// Service holds the shared graph and a path cache and turns string inputs
// into graph queries. Handlers and RegisterRoutes put it behind gin.
//
// # Thread Safety
//
// Service is safe for concurrent use. The graph is immutable and the path
// cache synchronizes internally.
package harmony

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/AleutianAI/camelot/services/harmony/camelot"
	"github.com/AleutianAI/camelot/services/harmony/graph"
	"github.com/AleutianAI/camelot/services/harmony/telemetry"
)

// ServiceVersion is the harmony service version.
const ServiceVersion = "1.0.0"

const tracerName = "aleutian.harmony"

// ServiceConfig configures a Service.
type ServiceConfig struct {
	// PathCacheCapacity bounds the number of memoized path queries.
	PathCacheCapacity int

	// MaxPathCount caps the count accepted by Paths.
	MaxPathCount int
}

// DefaultServiceConfig returns the defaults used by the CLI and server.
func DefaultServiceConfig() ServiceConfig {
	return ServiceConfig{
		PathCacheCapacity: 1024,
		MaxPathCount:      32,
	}
}

// Service answers Camelot queries against the shared graph.
type Service struct {
	graph  *graph.ScaleTransitions
	paths  *graph.PathCache
	config ServiceConfig
	logger *slog.Logger
}

// NewService creates a service over the process-wide default graph.
func NewService(cfg ServiceConfig) *Service {
	if cfg.MaxPathCount < 1 {
		cfg.MaxPathCount = DefaultServiceConfig().MaxPathCount
	}
	g := graph.Default()
	return &Service{
		graph:  g,
		paths:  graph.NewPathCache(g, cfg.PathCacheCapacity),
		config: cfg,
		logger: slog.Default().With(slog.String("component", "harmony")),
	}
}

// Graph returns the underlying graph.
func (s *Service) Graph() *graph.ScaleTransitions {
	return s.graph
}

// Keys lists every key in wheel order.
func (s *Service) Keys() []KeyInfo {
	keys := s.graph.Keys()
	out := make([]KeyInfo, len(keys))
	for i, k := range keys {
		out[i] = keyInfo(k)
	}
	return out
}

// Decode parses a key string and describes it.
func (s *Service) Decode(ctx context.Context, key string) (KeyInfo, error) {
	_, span := s.startSpan(ctx, "Service.Decode", attribute.String("key", key))
	defer span.End()

	k, err := camelot.ParseKey(key)
	if err != nil {
		telemetry.RecordError(span, err)
		return KeyInfo{}, err
	}
	return keyInfo(k), nil
}

// Neighbors returns the key and every key one transition away.
func (s *Service) Neighbors(ctx context.Context, key string) (NeighborsResponse, error) {
	ctx, span := s.startSpan(ctx, "Service.Neighbors", attribute.String("key", key))
	defer span.End()

	k, err := camelot.ParseKey(key)
	if err != nil {
		telemetry.RecordError(span, err)
		return NeighborsResponse{}, err
	}
	neighbors, err := s.graph.Neighbors(ctx, k)
	if err != nil {
		telemetry.RecordError(span, err)
		return NeighborsResponse{}, err
	}
	return NeighborsResponse{Key: k, Neighbors: neighbors}, nil
}

// Apply follows one named transition from key.
func (s *Service) Apply(ctx context.Context, key, transition string) (ApplyResponse, error) {
	_, span := s.startSpan(ctx, "Service.Apply",
		attribute.String("key", key),
		attribute.String("transition", transition),
	)
	defer span.End()

	k, err := camelot.ParseKey(key)
	if err != nil {
		telemetry.RecordError(span, err)
		return ApplyResponse{}, err
	}
	t, err := camelot.ParseTransition(transition)
	if err != nil {
		telemetry.RecordError(span, err)
		return ApplyResponse{}, err
	}
	return ApplyResponse{Key: k, Transition: t, Result: k.Apply(t)}, nil
}

// Paths returns up to count shortest paths between two keys.
//
// Results are served from the path cache when possible. A count of zero
// means one path; counts above MaxPathCount are rejected.
func (s *Service) Paths(ctx context.Context, from, to string, count int) (PathResponse, error) {
	ctx, span := s.startSpan(ctx, "Service.Paths",
		attribute.String("from", from),
		attribute.String("to", to),
		attribute.Int("count", count),
	)
	defer span.End()

	if count == 0 {
		count = 1
	}
	if count > s.config.MaxPathCount {
		err := fmt.Errorf("%w: %d exceeds limit %d", graph.ErrInvalidPathCount, count, s.config.MaxPathCount)
		telemetry.RecordError(span, err)
		return PathResponse{}, err
	}

	source, err := camelot.ParseKey(from)
	if err != nil {
		telemetry.RecordError(span, err)
		return PathResponse{}, fmt.Errorf("from: %w", err)
	}
	target, err := camelot.ParseKey(to)
	if err != nil {
		telemetry.RecordError(span, err)
		return PathResponse{}, fmt.Errorf("to: %w", err)
	}

	paths, err := s.paths.ShortestPaths(ctx, source, target, count)
	if err != nil {
		telemetry.RecordError(span, err)
		return PathResponse{}, err
	}

	telemetry.LoggerWithTrace(ctx, s.logger).Debug("paths served",
		slog.String("from", from),
		slog.String("to", to),
		slog.Int("count", len(paths)),
	)
	return PathResponse{From: source, To: target, Paths: paths}, nil
}

// Cliques enumerates the maximal cliques of the graph.
func (s *Service) Cliques(ctx context.Context) CliquesResponse {
	ctx, span := s.startSpan(ctx, "Service.Cliques")
	defer span.End()

	cliques := s.graph.MaximalCliques(ctx)
	return CliquesResponse{Count: len(cliques), Cliques: cliques}
}

// Stats summarizes the graph, its distances and the path cache.
func (s *Service) Stats(ctx context.Context) (StatsResponse, error) {
	ctx, span := s.startSpan(ctx, "Service.Stats")
	defer span.End()

	distances, err := s.graph.Distances(ctx)
	if err != nil {
		telemetry.RecordError(span, err)
		return StatsResponse{}, err
	}
	return StatsResponse{
		Graph:     s.graph.Stats(),
		Diameter:  distances.Diameter(),
		Connected: distances.Connected(),
		PathCache: s.paths.Stats(),
	}, nil
}

func (s *Service) startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return telemetry.StartSpan(ctx, tracerName, name, trace.WithAttributes(attrs...))
}

func keyInfo(k camelot.Key) KeyInfo {
	return KeyInfo{
		Key:    k,
		Number: k.Tonic + 1,
		Tonic:  k.Tonic,
		Mode:   k.Mode.Name(),
	}
}
