// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package admin serves server-rendered pages for managing registered
// resources: a searchable, filterable list plus add, change and delete
// pages. Every page is behind HTTP basic auth checked against the user
// store.
//
// A resource is registered with a [ModelAdmin] value; [ExampleAdmin] is
// the registration of the example resource.
package admin
