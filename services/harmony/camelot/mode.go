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

// Mode is the major/minor quality of a key.
//
// Minor sorts before Major. On the wheel Minor is the "A" ring and Major
// is the "B" ring.
type Mode int

const (
	// Minor is the inner "A" ring.
	Minor Mode = iota

	// Major is the outer "B" ring.
	Major
)

// NumModes is the number of modes on the wheel.
const NumModes = 2

// Swap returns the opposite mode. Swap is its own inverse.
func (m Mode) Swap() Mode {
	switch m {
	case Minor:
		return Major
	case Major:
		return Minor
	default:
		panic("camelot: invalid mode")
	}
}

// String returns the single-letter wheel token: "A" for Minor, "B" for Major.
func (m Mode) String() string {
	switch m {
	case Minor:
		return "A"
	case Major:
		return "B"
	default:
		return "?"
	}
}

// Name returns the musical name of the mode ("minor" or "major").
func (m Mode) Name() string {
	if m == Major {
		return "major"
	}
	return "minor"
}

// IsValid reports whether m is Minor or Major.
func (m Mode) IsValid() bool {
	return m == Minor || m == Major
}

// ParseMode decodes a single-letter wheel token.
//
// Only "A" and "B" are accepted; anything else returns a *ParseError
// wrapping ErrInvalidScaleString.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "A":
		return Minor, nil
	case "B":
		return Major, nil
	default:
		return 0, &ParseError{Input: s, Err: ErrInvalidScaleString}
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if !m.IsValid() {
		return nil, &ParseError{Input: m.String(), Err: ErrInvalidScaleString}
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
