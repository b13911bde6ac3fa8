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
	"fmt"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-openapi/strfmt"
	"github.com/go-playground/validator/v10"

	"github.com/AleutianAI/camelot/services/harmony/camelot"
)

// Validation tags usable in binding struct tags.
const (
	tagCamelotKey        = "camelotkey"
	tagCamelotTransition = "camelottransition"
)

var (
	registerOnce sync.Once
	registerErr  error
)

// RegisterValidators installs the camelot string formats on strfmt.Default
// and the camelotkey / camelottransition tags on gin's validator engine.
//
// Safe to call more than once; registration happens on the first call.
func RegisterValidators() error {
	registerOnce.Do(func() {
		camelot.RegisterFormats(strfmt.Default)

		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = fmt.Errorf("unexpected gin validator engine %T", binding.Validator.Engine())
			return
		}
		if err := v.RegisterValidation(tagCamelotKey, validateFormat(camelot.KeyFormat)); err != nil {
			registerErr = err
			return
		}
		registerErr = v.RegisterValidation(tagCamelotTransition, validateFormat(camelot.TransitionFormat))
	})
	return registerErr
}

// validateFormat checks a string field against a registered strfmt format.
func validateFormat(format string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return strfmt.Default.Validates(format, fl.Field().String())
	}
}

// bindErrorCode picks the error code for a request binding failure.
func bindErrorCode(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return codeInvalidRequest
	}
	for _, fe := range verrs {
		switch fe.Tag() {
		case tagCamelotKey:
			return codeInvalidKey
		case tagCamelotTransition:
			return codeInvalidTransition
		}
	}
	return codeInvalidRequest
}
