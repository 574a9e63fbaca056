// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the API server address used by the client.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientCredentials authenticate the command-line client. A token wins
// over login and password.
type ClientCredentials struct {
	// Env: ADAPTER_LOGIN
	Login string `env:"LOGIN"`
	// Env: ADAPTER_PASSWORD
	Password string `env:"PASSWORD"`
	// Env: ADAPTER_TOKEN
	Token string `env:"TOKEN"`
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Debug enables debug logging of outbound requests.
	Debug bool

	// Adapter contains client transport addresses and timeouts.
	Adapter ClientAdapter

	// Credentials are read from the environment only.
	Credentials ClientCredentials
}

// GetClientConfig builds and validates a client-specific config view.
//
// Only environment variables and the JSON file are consulted: the client
// command owns its own flag set.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withJSON().
		merge()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg, err := newClientConfig(cfg)
	if err != nil {
		return nil, err
	}

	if err = parseEnvWithPrefix(&clientCfg.Credentials, "ADAPTER_"); err != nil {
		return nil, err
	}

	return clientCfg, nil
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		Debug: cfg.App.Debug,
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
	}
	clientCfg.applyDefaults()

	return clientCfg, clientCfg.validate()
}
