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

import (
	"cmp"
	"regexp"
	"strconv"
)

// NumTonics is the number of pitch classes on the wheel.
const NumTonics = 12

// NumKeys is the number of wheel positions (NumTonics × NumModes).
const NumKeys = NumTonics * NumModes

// keyPattern accepts exactly "1".."12" followed by "A" or "B".
var keyPattern = regexp.MustCompile(`^(1[0-2]|[1-9])([AB])$`)

// Key is one of the 24 positions on the Camelot wheel.
//
// Tonic is zero-based ([0, 11]); the textual form is one-based. Key is a
// comparable value and is used directly as a graph node identity.
type Key struct {
	// Tonic is the pitch class, 0..11.
	Tonic int

	// Mode is Minor or Major.
	Mode Mode
}

// NewKey returns the key with the given zero-based tonic and mode.
//
// The tonic is reduced modulo 12 so the result is always a wheel position.
func NewKey(tonic int, mode Mode) Key {
	return Key{Tonic: modCyclic(tonic, NumTonics), Mode: mode}
}

// StandardKeys returns all 24 keys ordered by tonic, Minor before Major.
func StandardKeys() []Key {
	keys := make([]Key, 0, NumKeys)
	for tonic := 0; tonic < NumTonics; tonic++ {
		keys = append(keys, Key{Tonic: tonic, Mode: Minor}, Key{Tonic: tonic, Mode: Major})
	}
	return keys
}

// SwapKind returns the key with the same tonic and the opposite mode.
func (k Key) SwapKind() Key {
	return Key{Tonic: k.Tonic, Mode: k.Mode.Swap()}
}

// ChangeIndex returns the key with its tonic shifted by amount, modulo 12.
//
// The shift wraps in both directions: ChangeIndex(-1) on tonic 0 gives
// tonic 11. The mode is unchanged. Every int amount is accepted,
// math.MinInt and math.MaxInt included.
func (k Key) ChangeIndex(amount int) Key {
	return Key{Tonic: modCyclic(modCyclic(k.Tonic, NumTonics)+amount%NumTonics, NumTonics), Mode: k.Mode}
}

// IsValid reports whether k is one of the 24 wheel positions.
func (k Key) IsValid() bool {
	return k.Tonic >= 0 && k.Tonic < NumTonics && k.Mode.IsValid()
}

// Index returns a dense identifier in [0, 24): tonic*2 + mode.
//
// Index agrees with the key ordering, so StandardKeys()[k.Index()] == k.
func (k Key) Index() int {
	return k.Tonic*NumModes + int(k.Mode)
}

// Compare orders keys by tonic, then mode.
//
// Returns -1, 0 or +1, matching the cmp.Compare convention so keys can be
// sorted with slices.SortFunc(keys, Key.Compare).
func (k Key) Compare(other Key) int {
	if c := cmp.Compare(k.Tonic, other.Tonic); c != 0 {
		return c
	}
	return cmp.Compare(k.Mode, other.Mode)
}

// String encodes the key as "{tonic+1}{A|B}", for example "8B".
func (k Key) String() string {
	return strconv.Itoa(k.Tonic+1) + k.Mode.String()
}

// MarshalText implements encoding.TextMarshaler.
func (k Key) MarshalText() ([]byte, error) {
	if !k.IsValid() {
		return nil, &ParseError{Input: k.String(), Err: ErrInvalidScaleString}
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Key) UnmarshalText(text []byte) error {
	parsed, err := ParseKey(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// ParseKey decodes the textual form of a key.
//
// Description:
//
//	Accepts exactly a number 1..12 followed by "A" (minor) or "B" (major).
//	Leading zeros, whitespace, lower-case letters and trailing characters
//	are all rejected.
//
// Outputs:
//
//	Key - The decoded key with a zero-based tonic.
//	error - *ParseError wrapping ErrInvalidScaleString on malformed input.
//
// Example:
//
//	k, err := camelot.ParseKey("1A") // Key{Tonic: 0, Mode: Minor}
func ParseKey(s string) (Key, error) {
	m := keyPattern.FindStringSubmatch(s)
	if m == nil {
		return Key{}, &ParseError{Input: s, Err: ErrInvalidScaleString}
	}

	number, err := strconv.Atoi(m[1])
	if err != nil {
		return Key{}, &ParseError{Input: s, Err: ErrInvalidScaleString}
	}
	mode, err := ParseMode(m[2])
	if err != nil {
		return Key{}, &ParseError{Input: s, Err: ErrInvalidScaleString}
	}

	return Key{Tonic: number - 1, Mode: mode}, nil
}

// MustParseKey is like ParseKey but panics on malformed input.
// Intended for constants and tests.
func MustParseKey(s string) Key {
	k, err := ParseKey(s)
	if err != nil {
		panic(err)
	}
	return k
}

// modCyclic is a true modulus: the result is always in [0, modulus).
func modCyclic(num, modulus int) int {
	return ((num % modulus) + modulus) % modulus
}
