// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// FieldError describes one rejected input value.
//
// Loc is the path to the value (for example ["name"] or ["query", "page"]),
// Msg is a human readable explanation and Type is a stable machine-readable
// code such as "missing" or "string_too_short".
type FieldError struct {
	Loc  []string `json:"loc" doc:"Location of the invalid value"`
	Msg  string   `json:"msg" doc:"Human readable message"`
	Type string   `json:"type" doc:"Error code"`
}

// ValidationErrorResponse is the body returned with HTTP 400 when request
// validation fails.
type ValidationErrorResponse struct {
	ValidationErrors []FieldError `json:"validation_errors" doc:"List of validation errors"`
}

// DetailResponse is the body returned for non-validation errors.
type DetailResponse struct {
	Detail string `json:"detail" doc:"Error description"`
}
