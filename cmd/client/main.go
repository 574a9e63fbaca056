// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-service-template/internal/adapter"
	"github.com/MKhiriev/go-service-template/internal/cli"
	"github.com/MKhiriev/go-service-template/internal/config"
	"github.com/MKhiriev/go-service-template/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "build-info" {
		fmt.Println(cli.RenderBuildInfo(buildVersion, buildDate, buildCommit))
		return
	}

	log := logger.NewConsoleLogger("go-service-template-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	logger.SetDebug(cfg.Debug)

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server adapter")
	}

	app, err := cli.NewApp(serverAdapter, cfg.Credentials, os.Stdout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating client app")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if err = app.Run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, cli.RenderError(err))
		stop()
		os.Exit(1)
	}
}
