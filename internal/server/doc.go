// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the HTTP API and, when an address is configured, the
// gRPC health endpoint. The combined [Server] returned by [NewServer]
// blocks in RunServer until SIGINT, SIGTERM or SIGQUIT arrives and then
// shuts every listener down.
package server
