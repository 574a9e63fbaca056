// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-service-template/models"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
)

// ValidationErrors is returned when one or more input values are rejected.
// Match it with errors.As.
type ValidationErrors []models.FieldError

func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for _, fe := range v {
		parts = append(parts, strings.Join(fe.Loc, ".")+": "+fe.Msg)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// NewValidationError builds a single-entry ValidationErrors.
func NewValidationError(msg, errType string, loc ...string) ValidationErrors {
	return ValidationErrors{{Loc: loc, Msg: msg, Type: errType}}
}

// IntParsingError reports a value that should have been an integer.
func IntParsingError(loc ...string) ValidationErrors {
	return NewValidationError("Input should be a valid integer, unable to parse string as an integer", "int_parsing", loc...)
}

// JSONInvalidError reports a request body that is not valid JSON.
func JSONInvalidError(msg string) ValidationErrors {
	return NewValidationError(msg, "json_invalid", "body")
}

// TypeError reports a JSON value of the wrong type, e.g. a number where a
// string is expected. expected is a JSON kind such as "string" or "bool".
// An empty field refers to the whole body.
func TypeError(field, expected string) ValidationErrors {
	if field == "" {
		field = "body"
	}
	msg := "Input should be a valid " + expected
	switch expected {
	case "bool":
		msg = "Input should be a valid boolean"
	case "int", "int64":
		expected = "int"
		msg = "Input should be a valid integer"
	case "dict":
		msg = "Input should be a valid dictionary"
	}
	return NewValidationError(msg, expected+"_type", field)
}
