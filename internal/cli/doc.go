// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli implements the command-line client for the example API.
//
// [App] parses a subcommand with its own flag set, calls the API through an
// adapter.ServerAdapter and prints the result styled with lipgloss.
//
//	client -token "$TOKEN" list -page 2
//	client login -login alice -password secret
//	client create -name "First" -description "hello"
//	client update -name "Renamed" 7
//	client delete 7
package cli
