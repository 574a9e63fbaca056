// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-service-template/internal/config"
	"github.com/MKhiriev/go-service-template/internal/logger"
)

type appInfoService struct {
	version string
}

// NewAppInfoService reports the version reported by /api/version/. The
// config layer defaults it to "dev", so an empty value means the config was
// built by hand and is rejected with ErrVersionIsNotSpecified.
func NewAppInfoService(cfg config.App, log *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	log.Debug().Str("version", cfg.Version).Msg("app info service created")
	return &appInfoService{version: cfg.Version}, nil
}

func (s *appInfoService) GetAppVersion(context.Context) string {
	return s.version
}
