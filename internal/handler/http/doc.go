// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST API of the service.
//
// It wires chi routes to the service layer, maps service and store errors
// to HTTP responses, serves a generated OpenAPI 3 document with a Swagger
// UI page and carries the request middleware: panic recovery, trace ids,
// access logging, CORS, gzip, request timeouts and bearer authentication.
package http
