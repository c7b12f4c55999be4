package grpc

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/go-delta-sync/internal/logger"
	"github.com/MKhiriev/go-delta-sync/internal/service"
)

// Handler is the root gRPC transport handler.
//
// It stores references to the service layer and structured logger so that
// gRPC method handlers can delegate business logic and emit consistent logs.
// A handler instance is created once at startup and shared by the gRPC server.
//
// The gRPC surface currently exposes only the standard health service; feed
// RPCs mirroring the HTTP API are reserved for a later iteration.
type Handler struct {
	// services provides access to all application business operations.
	services *service.Services

	// health answers grpc_health_v1 probes for load balancers and
	// orchestrators.
	health *health.Server

	// logger is used for request-scoped and diagnostic log output.
	logger *logger.Logger
}

// NewHandler constructs a [Handler] with the provided service container and
// logger, and returns the initialized instance.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}
}

// Register attaches all gRPC services handled by this handler to server.
func (h *Handler) Register(server *grpc.Server) {
	grpc_health_v1.RegisterHealthServer(server, h.health)
	h.health.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
}

// Shutdown flips every registered service to NOT_SERVING so health probes
// drain traffic before the listener closes.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}
