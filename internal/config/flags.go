// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
)

var (
	errAddressFormat = errors.New("need address in a form `host:port`")
	errPortRange     = errors.New("port must be between 1 and 65535")
	errInvalidHost   = errors.New("host must be localhost or an IP address")
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// String renders the address as host:port, bracketing IPv6 hosts. The zero
// value renders as "" so that an unset flag does not override other sources.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses "host:port". The host may be empty, "localhost", or an IPv4 or
// bracketed IPv6 literal.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return fmt.Errorf("%w: %w", errAddressFormat, err)
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return fmt.Errorf("%w: %w", errAddressFormat, err)
	}
	if port < 1 || port > 65535 {
		return errPortRange
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return fmt.Errorf("%w: %q", errInvalidHost, host)
	}

	a.Host = host
	a.Port = port
	return nil
}

// originsFlag collects a comma separated origin list. Repeating the flag
// appends.
type originsFlag []string

func (o *originsFlag) String() string {
	return strings.Join(*o, ",")
}

func (o *originsFlag) Set(s string) error {
	for _, origin := range strings.Split(s, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			*o = append(*o, origin)
		}
	}
	return nil
}

// ParseFlags parses the process arguments with the global flag set, which
// exits the program on a malformed flag.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-grpc-address grpc server address in format [host]:[port]
//	-d database DSN
//	-redis-url redis cache URL
//	-cache-ttl cache entry lifetime (e.g., "5m")
//	-c/-config json file path with configs
//	-debug debug mode
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-allowed-origins comma separated CORS origins
func ParseFlags() *StructuredConfig {
	cfg, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		// only reachable with a ContinueOnError flag set
		return &StructuredConfig{}
	}
	return cfg
}

func parseFlags(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	var (
		serverAddress, grpcServerAddress NetAddress
		allowedOrigins                   originsFlag
		cfg                              StructuredConfig
	)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Database DSN")
	fs.StringVar(&cfg.Storage.Cache.RedisURL, "redis-url", "", "Redis cache URL")
	fs.DurationVar(&cfg.Storage.Cache.TTL, "cache-ttl", 0, "Cache entry lifetime (e.g., 5m)")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")
	fs.BoolVar(&cfg.App.Debug, "debug", false, "Debug mode")
	fs.StringVar(&cfg.App.TokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&cfg.App.TokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.Var(&allowedOrigins, "allowed-origins", "Comma separated CORS origins")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg.Server.HTTPAddress = serverAddress.String()
	cfg.Server.GRPCAddress = grpcServerAddress.String()
	cfg.Server.AllowedOrigins = allowedOrigins

	return &cfg, nil
}
