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
	"github.com/go-openapi/strfmt"
)

// KeyFormat is the string format name under which keys are registered.
const KeyFormat = "camelot-key"

// TransitionFormat is the string format name under which transitions are registered.
const TransitionFormat = "camelot-transition"

// IsKey reports whether s is a well-formed key string.
func IsKey(s string) bool {
	_, err := ParseKey(s)
	return err == nil
}

// IsTransition reports whether s is a well-formed transition name.
func IsTransition(s string) bool {
	_, err := ParseTransition(s)
	return err == nil
}

// RegisterFormats adds the camelot string formats to a strfmt registry.
//
// Description:
//
//	Makes "camelot-key" and "camelot-transition" available to OpenAPI
//	schema validation, so request schemas can declare
//	`format: camelot-key` instead of repeating the pattern.
//
// Inputs:
//
//	reg - Target registry, typically strfmt.Default.
//
// Thread Safety: strfmt registries are internally locked.
func RegisterFormats(reg strfmt.Registry) {
	reg.Add(KeyFormat, &Key{}, IsKey)
	reg.Add(TransitionFormat, &Transition{}, IsTransition)
}
