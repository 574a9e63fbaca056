// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-service-template/internal/validators"
	"github.com/MKhiriev/go-service-template/models"
	"github.com/go-resty/resty/v2"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusNotFound:            ErrNotFound,
	http.StatusMethodNotAllowed:    ErrMethodNotAllowed,
	http.StatusConflict:            ErrConflict,
	http.StatusInternalServerError: ErrInternalServerError,
	http.StatusServiceUnavailable:  ErrServiceUnavailable,
}

// mapHTTPError returns nil for 2xx responses. Otherwise it wraps the
// sentinel for the status code together with the server's message.
func mapHTTPError(resp *resty.Response) error {
	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	sentinel, ok := statusErrors[status]
	if !ok {
		sentinel = fmt.Errorf("%w %d", ErrUnexpectedStatus, status)
	}

	var validation models.ValidationErrorResponse
	if err := json.Unmarshal(resp.Body(), &validation); err == nil && len(validation.ValidationErrors) > 0 {
		return fmt.Errorf("%w: %w", sentinel, validators.ValidationErrors(validation.ValidationErrors))
	}

	return fmt.Errorf("%w: %s", sentinel, responseMessage(resp))
}

func responseMessage(resp *resty.Response) string {
	var detail models.DetailResponse
	if err := json.Unmarshal(resp.Body(), &detail); err == nil && detail.Detail != "" {
		return detail.Detail
	}

	if body := strings.TrimSpace(string(resp.Body())); body != "" {
		return body
	}
	return http.StatusText(resp.StatusCode())
}
