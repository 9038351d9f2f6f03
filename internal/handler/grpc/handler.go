// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package grpc implements the gRPC transport of the application. It exposes
// the standard grpc.health.v1.Health service so the process can be probed
// by orchestrators.
package grpc

import (
	"github.com/MKhiriev/go-account-checker/internal/logger"
	"github.com/MKhiriev/go-account-checker/internal/service"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// LookupServiceName is the health-check service name reported for the batch
// lookup service.
const LookupServiceName = "accountchecker.v1.LookupService"

// Handler is the root gRPC transport handler.
//
// It stores references to the service layer and structured logger and owns
// the health server whose status follows the lifecycle of the lookup
// service. A handler instance is created once at startup and shared by the
// gRPC server.
type Handler struct {
	// services provides access to all application business operations.
	services *service.Services

	health *health.Server

	// logger is used for request-scoped and diagnostic log output.
	logger *logger.Logger
}

// NewHandler constructs a [Handler] with the provided service container and
// logger. The lookup service is reported as SERVING when services carries
// one, NOT_SERVING otherwise.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	h := &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}

	status := healthpb.HealthCheckResponse_NOT_SERVING
	if services != nil && services.LookupService != nil {
		status = healthpb.HealthCheckResponse_SERVING
	}
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(LookupServiceName, status)

	logger.Debug().Str("status", status.String()).Msg("gRPC handler created")
	return h
}

// Register attaches the handler's services to s.
func (h *Handler) Register(s grpc.ServiceRegistrar) {
	healthpb.RegisterHealthServer(s, h.health)
}

// Health returns the health server, mainly for tests.
func (h *Handler) Health() healthpb.HealthServer {
	return h.health
}

// Shutdown switches every service to NOT_SERVING and ignores later updates.
func (h *Handler) Shutdown() {
	h.logger.Debug().Msg("gRPC health set to NOT_SERVING")
	h.health.Shutdown()
}
