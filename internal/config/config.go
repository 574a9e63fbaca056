// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is everything the server needs to start. Values come
// from the environment, command-line flags and an optional JSON file; the
// envPrefix and env tags drive caarlos0/env.
type StructuredConfig struct {
	App     App     `envPrefix:"APP_"`
	Storage Storage `envPrefix:"STORAGE_"`
	Server  Server  `envPrefix:"SERVER_"`
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath names a JSON file merged over the env and flag values.
	// Set with CONFIG, -c or -config.
	JSONFilePath string `env:"CONFIG"`
}

type Storage struct {
	DB    DB    `envPrefix:"DB_"`
	Cache Cache `envPrefix:"CACHE_"`
}

// App carries token parameters, the debug switch and the version reported
// by /api/version/.
type App struct {
	// Debug lowers the log level to debug and lets CORS accept any origin.
	Debug bool `env:"DEBUG"`

	TokenSignKey  string        `env:"TOKEN_SIGN_KEY"` // HMAC secret
	TokenIssuer   string        `env:"TOKEN_ISSUER"`   // "iss" claim
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
	Version       string        `env:"VERSION"`
}

type Server struct {
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress enables the gRPC health server when set.
	GRPCAddress string `env:"GRPC_ADDRESS"`

	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// AllowedOrigins is consulted by CORS outside debug mode.
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
}

// DB selects the driver by DSN: postgres:// and postgresql:// URLs open
// PostgreSQL, anything else (":memory:" included) is a SQLite file name.
type DB struct {
	DSN string `env:"DATABASE_URI"`
}

// Cache is disabled while RedisURL is empty.
type Cache struct {
	RedisURL string        `env:"REDIS_URL"` // redis://host:port/db
	TTL      time.Duration `env:"TTL"`
}

// Adapter configures the outbound API client.
type Adapter struct {
	HTTPAddress    string        `env:"ADDRESS"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads the server configuration. Sources are merged in
// the order env, flags, JSON file; a non-zero value from a later source
// wins. Defaults are applied before validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
