// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"

	"github.com/MKhiriev/go-service-template/internal/validators"
	"github.com/go-chi/chi/v5"
)

const maxBodyBytes = 1 << 20

// decodeJSON reads the request body into dst. An empty body decodes as {}.
// Malformed JSON and values of the wrong JSON type are reported as
// validators.ValidationErrors so they render like any other 400.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return validators.JSONInvalidError(fmt.Sprintf("Request body exceeds %d bytes", tooLarge.Limit))
		}
		return fmt.Errorf("error reading request body: %w", err)
	}

	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		body = []byte("{}")
	}

	if err = json.Unmarshal(body, dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return validators.TypeError(typeErr.Field, jsonKind(typeErr.Type))
		}
		return validators.JSONInvalidError("Invalid JSON: " + err.Error())
	}

	return nil
}

// jsonKind names the JSON kind a Go type decodes from.
func jsonKind(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "bool"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "int"
	case reflect.Float32, reflect.Float64:
		return "float"
	case reflect.Struct, reflect.Map:
		return "dict"
	case reflect.Slice, reflect.Array:
		return "list"
	default:
		return t.String()
	}
}

// exampleIDParam parses the {id} path parameter. Anything but a positive
// integer yields ErrInvalidExampleID.
func exampleIDParam(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidExampleID, raw)
	}
	return id, nil
}

// pageParam parses the optional ?page= query parameter, defaulting to 1.
func pageParam(r *http.Request) (int, error) {
	values, ok := r.URL.Query()["page"]
	if !ok || len(values) == 0 {
		return 1, nil
	}

	page, err := strconv.Atoi(values[0])
	if err != nil {
		return 0, validators.IntParsingError("query", "page")
	}
	return page, nil
}
