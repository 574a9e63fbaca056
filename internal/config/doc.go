// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// Fields left empty by every source receive the Default* values.
//
// Environment variables:
//
//	APP_DEBUG                 -debug
//	APP_TOKEN_SIGN_KEY        -token-sign-key
//	APP_TOKEN_ISSUER          -token-issuer
//	APP_TOKEN_DURATION        -token-duration
//	APP_VERSION
//	STORAGE_DB_DATABASE_URI   -d
//	STORAGE_CACHE_REDIS_URL   -redis-url
//	STORAGE_CACHE_TTL         -cache-ttl
//	SERVER_ADDRESS            -a
//	SERVER_GRPC_ADDRESS       -grpc-address
//	SERVER_REQUEST_TIMEOUT    -request-timeout
//	SERVER_ALLOWED_ORIGINS    -allowed-origins
//	ADAPTER_ADDRESS
//	ADAPTER_REQUEST_TIMEOUT
//	ADAPTER_LOGIN, ADAPTER_PASSWORD, ADAPTER_TOKEN (client only)
//	CONFIG                    -c, -config
//
// The main entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the API client.
package config
