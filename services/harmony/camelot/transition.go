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
	"fmt"
	"regexp"
	"strconv"
)

// TransitionKind identifies a harmonic rule.
type TransitionKind int

const (
	// KindVertical moves between the rings at the same position (relative major/minor).
	KindVertical TransitionKind = iota

	// KindDiagonal crosses rings one step around the wheel.
	KindDiagonal

	// KindMajorToMinor crosses rings three steps around the wheel.
	KindMajorToMinor

	// KindFlatToMinor crosses rings four steps around the wheel.
	KindFlatToMinor

	// KindChangeIndex moves around the current ring by Transition.Amount.
	KindChangeIndex

	// NumTransitionKinds is the number of transition kinds (for array sizing).
	NumTransitionKinds
)

// transitionKindNames maps TransitionKind values to their string representations.
var transitionKindNames = map[TransitionKind]string{
	KindVertical:     "vertical",
	KindDiagonal:     "diagonal",
	KindMajorToMinor: "major-to-minor",
	KindFlatToMinor:  "flat-to-minor",
	KindChangeIndex:  "change-index",
}

// String returns the string representation of the TransitionKind.
func (k TransitionKind) String() string {
	if name, ok := transitionKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Transition is a named rule mapping one key to another.
//
// Amount carries the payload of KindChangeIndex and is zero for every
// other kind. Transition is comparable and can be used as a map key.
type Transition struct {
	Kind   TransitionKind
	Amount int
}

// Predefined payload-free transitions.
var (
	Vertical     = Transition{Kind: KindVertical}
	Diagonal     = Transition{Kind: KindDiagonal}
	MajorToMinor = Transition{Kind: KindMajorToMinor}
	FlatToMinor  = Transition{Kind: KindFlatToMinor}
)

// ChangeIndex returns the transition that shifts the tonic by amount.
func ChangeIndex(amount int) Transition {
	return Transition{Kind: KindChangeIndex, Amount: amount}
}

// catalog is the fixed rule set used to build the wheel graph.
var catalog = [...]Transition{
	Vertical,
	Diagonal,
	MajorToMinor,
	FlatToMinor,
	ChangeIndex(1),
	ChangeIndex(2),
	ChangeIndex(7),
	ChangeIndex(-1),
	ChangeIndex(-2),
	ChangeIndex(-7),
}

// CatalogSize is the number of harmonic transitions in Catalog().
const CatalogSize = len(catalog)

// Catalog returns the harmonic transitions in their canonical order.
//
// The returned slice is a fresh copy; callers may modify it.
func Catalog() []Transition {
	out := make([]Transition, CatalogSize)
	copy(out, catalog[:])
	return out
}

// String returns the rule name, e.g. "diagonal" or "change-index(+7)".
func (t Transition) String() string {
	if t.Kind == KindChangeIndex {
		return fmt.Sprintf("change-index(%+d)", t.Amount)
	}
	return t.Kind.String()
}

// MarshalText implements encoding.TextMarshaler.
func (t Transition) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Transition) UnmarshalText(text []byte) error {
	parsed, err := ParseTransition(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

var changeIndexPattern = regexp.MustCompile(`^change-index\(([+-]?[0-9]+)\)$`)

// ParseTransition decodes a transition name as produced by Transition.String.
//
// Any integer amount is accepted for change-index, not only the catalog
// values, since Apply is total over all amounts.
func ParseTransition(s string) (Transition, error) {
	switch s {
	case "vertical":
		return Vertical, nil
	case "diagonal":
		return Diagonal, nil
	case "major-to-minor":
		return MajorToMinor, nil
	case "flat-to-minor":
		return FlatToMinor, nil
	}

	m := changeIndexPattern.FindStringSubmatch(s)
	if m == nil {
		return Transition{}, &ParseError{Input: s, Err: ErrInvalidTransition}
	}
	amount, err := strconv.Atoi(m[1])
	if err != nil {
		return Transition{}, &ParseError{Input: s, Err: ErrInvalidTransition}
	}
	return ChangeIndex(amount), nil
}

// Apply returns the key reached from k by following t.
//
// Description:
//
//	Vertical and ChangeIndex act uniformly. Diagonal, FlatToMinor and
//	MajorToMinor cross to the other ring and shift the tonic in a
//	direction that depends on k's mode, so that applying the same rule
//	from the target leads back to k.
//
// Limitations:
//
//	Panics on a transition kind or mode outside the closed sets. That is
//	a programming error, not an input error.
func (k Key) Apply(t Transition) Key {
	switch t.Kind {
	case KindVertical:
		return k.SwapKind()
	case KindChangeIndex:
		return k.ChangeIndex(t.Amount)
	}

	switch {
	case t.Kind == KindDiagonal && k.Mode == Major:
		return k.SwapKind().ChangeIndex(1)
	case t.Kind == KindDiagonal && k.Mode == Minor:
		return k.SwapKind().ChangeIndex(-1)
	case t.Kind == KindFlatToMinor && k.Mode == Minor:
		return k.SwapKind().ChangeIndex(-4)
	case t.Kind == KindFlatToMinor && k.Mode == Major:
		return k.SwapKind().ChangeIndex(4)
	case t.Kind == KindMajorToMinor && k.Mode == Minor:
		return k.SwapKind().ChangeIndex(3)
	case t.Kind == KindMajorToMinor && k.Mode == Major:
		return k.SwapKind().ChangeIndex(-3)
	}

	panic(fmt.Sprintf("camelot: unreachable transition %v from mode %d", t, k.Mode))
}

// Apply is the function form of Key.Apply.
func Apply(k Key, t Transition) Key {
	return k.Apply(t)
}

// Targets returns Apply(k, t) for every catalog transition, in catalog order.
// Duplicates are kept.
func Targets(k Key) []Key {
	out := make([]Key, 0, CatalogSize)
	for _, t := range catalog {
		out = append(out, k.Apply(t))
	}
	return out
}
