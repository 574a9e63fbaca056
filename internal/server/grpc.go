// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/MKhiriev/go-service-template/internal/config"
	myGRPC "github.com/MKhiriev/go-service-template/internal/handler/grpc"
	"github.com/MKhiriev/go-service-template/internal/logger"
	"google.golang.org/grpc"
)

type grpcServer struct {
	handler *myGRPC.Handler

	address         string
	server          *grpc.Server
	gRPCNetListener net.Listener

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	server := grpc.NewServer()
	handler.Register(server)

	return &grpcServer{
		handler: handler,
		address: cfg.GRPCAddress,
		server:  server,
		logger:  logger,
	}
}

func (g *grpcServer) listen() error {
	listener, err := net.Listen("tcp", g.address)
	if err != nil {
		return fmt.Errorf("%w on %s: %w", errListen, g.address, err)
	}
	g.gRPCNetListener = listener
	return nil
}

func (g *grpcServer) addr() string {
	return g.gRPCNetListener.Addr().String()
}

// serve blocks until the server is stopped.
func (g *grpcServer) serve() error {
	g.logger.Info().Str("address", g.addr()).Msg("gRPC server listening")
	if err := g.server.Serve(g.gRPCNetListener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("gRPC server Serve: %w", err)
	}
	return nil
}

// watchHealth keeps the health service in sync with the database until ctx
// is done.
func (g *grpcServer) watchHealth(ctx context.Context) {
	g.handler.WatchHealth(ctx, myGRPC.DefaultCheckInterval)
}

func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("gRPC server Shutdown")
	g.handler.Shutdown()
	g.server.GracefulStop()
}
