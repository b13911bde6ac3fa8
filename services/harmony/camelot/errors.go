// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package camelot provides the Camelot wheel key model and transition rules.
//
// A Key is one of the 24 wheel positions: a tonic in [0, 11] paired with a
// Mode (Minor or Major). Keys are written as "{tonic+1}{A|B}", for example
// "8B" or "1A". A Transition is a named harmonic rule mapping one key to
// another; the fixed set of rules used to build the wheel graph is returned
// by Catalog().
//
// # Thread Safety
//
// All types in this package are immutable values. Every function is pure
// and safe for concurrent use.
package camelot

import (
	"errors"
	"fmt"
)

// Sentinel errors for key and transition decoding.
var (
	// ErrInvalidScaleString is returned when a key string does not match
	// "<1-12><A|B>" exactly.
	ErrInvalidScaleString = errors.New("invalid scale string provided")

	// ErrInvalidTransition is returned when a transition name cannot be parsed.
	ErrInvalidTransition = errors.New("invalid transition")
)

// ParseError describes a string that could not be decoded.
//
// It wraps ErrInvalidScaleString or ErrInvalidTransition so callers can
// match with errors.Is, and carries the rejected input for logging.
type ParseError struct {
	// Input is the rejected string.
	Input string

	// Err is the underlying sentinel.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%v: %q", e.Err, e.Input)
}

// Unwrap returns the underlying sentinel error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
