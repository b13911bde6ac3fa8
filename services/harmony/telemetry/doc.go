// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package telemetry wires OpenTelemetry tracing and metrics for the
// harmony services and provides trace-aware logging helpers.
//
// # Initialization
//
// Call Init once at process start and defer the returned shutdown:
//
//	shutdown, err := telemetry.Init(ctx, telemetry.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//	defer shutdown(context.Background())
//
// Without Init, otel's global no-op providers are used and every span and
// instrument in the module becomes free.
//
// # Exporters
//
// Traces: "otlp" (gRPC), "stdout", or "none".
// Metrics: "prometheus" (served by MetricsHandler), "stdout", or "none".
// Stdout exporters write to stderr so command output stays clean.
//
// # Logging
//
// LoggerWithTrace adds trace_id and span_id to a *slog.Logger when the
// context carries a valid span. NewLogger builds the process logger from
// level and format strings.
package telemetry
