// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// Defaults applied to fields left empty by every source.
const (
	DefaultHTTPAddress    = "localhost:8080"
	DefaultDSN            = "db.sqlite3"
	DefaultTokenIssuer    = "go-service-template"
	DefaultTokenDuration  = 24 * time.Hour
	DefaultRequestTimeout = 30 * time.Second
	DefaultCacheTTL       = 5 * time.Minute
	DefaultVersion        = "dev"

	// debugTokenSignKey is only ever used with App.Debug set.
	debugTokenSignKey = "insecure-debug-sign-key"
)

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.Version == "" {
		cfg.App.Version = DefaultVersion
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = DefaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = DefaultTokenDuration
	}
	if cfg.App.TokenSignKey == "" && cfg.App.Debug {
		cfg.App.TokenSignKey = debugTokenSignKey
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = DefaultDSN
	}
	if cfg.Storage.Cache.TTL == 0 {
		cfg.Storage.Cache.TTL = DefaultCacheTTL
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required outside debug mode", ErrInvalidAppConfigs)
	}
	if cfg.App.TokenDuration < 0 {
		return fmt.Errorf("%w: negative token duration", ErrInvalidAppConfigs)
	}
	if cfg.Storage.Cache.TTL < 0 {
		return fmt.Errorf("%w: negative cache ttl", ErrInvalidStorageConfigs)
	}
	if cfg.Server.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidServerConfigs)
	}
	if cfg.Server.HTTPAddress == cfg.Server.GRPCAddress {
		return fmt.Errorf("%w: http and grpc servers share an address", ErrInvalidServerConfigs)
	}

	return nil
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.Adapter.HTTPAddress == "" {
		cfg.Adapter.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
