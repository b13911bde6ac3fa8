// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package config loads the camelot.yaml configuration shared by the CLI
// and the HTTP server.
package config

import (
	"time"

	"github.com/AleutianAI/camelot/services/harmony/telemetry"
)

// DefaultPath is the config file looked up when no path is given.
const DefaultPath = "camelot.yaml"

// Config is the root configuration document.
type Config struct {
	Server    ServerConfig     `yaml:"server"`
	Telemetry telemetry.Config `yaml:"telemetry"`
	Cache     CacheConfig      `yaml:"cache"`
	Log       LogConfig        `yaml:"log"`
	Output    OutputConfig     `yaml:"output"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Port         int           `yaml:"port" validate:"min=1,max=65535"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// CacheConfig sizes the path query cache.
type CacheConfig struct {
	PathCapacity int `yaml:"path_capacity" validate:"min=1"`
}

// LogConfig selects the process logger.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error DEBUG INFO WARN ERROR"`
	Format string `yaml:"format" validate:"oneof=json text"`
}

// OutputConfig controls terminal rendering.
type OutputConfig struct {
	// Personality is one of full, standard, minimal or machine.
	// Empty means detect from the terminal.
	Personality string `yaml:"personality" validate:"omitempty,oneof=full standard minimal machine"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:         8080,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
		Telemetry: telemetry.DefaultConfig(),
		Cache: CacheConfig{
			PathCapacity: 1024,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}
