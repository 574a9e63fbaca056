// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

// Server is a running transport. RunServer blocks while serving; Shutdown
// makes it return and releases the listener.
type Server interface {
	RunServer()
	Shutdown()
}
