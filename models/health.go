// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Component states reported by the health endpoint.
const (
	HealthOK          = "ok"
	HealthDegraded    = "degraded"
	HealthUnavailable = "unavailable"
	HealthDisabled    = "disabled"
)

// HealthStatus is the body of GET /api/health/.
type HealthStatus struct {
	Status   string `json:"status" doc:"Overall service state"`
	Database string `json:"database" doc:"Database state"`
	Cache    string `json:"cache" doc:"Cache state"`
}

// VersionResponse is the body of GET /api/version/.
type VersionResponse struct {
	Version string `json:"version" doc:"Application version"`
}
