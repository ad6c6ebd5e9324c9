// Package grpc exposes the service health over the standard gRPC health
// protocol.
package grpc

import (
	"context"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Service names reported by the health server.
const (
	VillaServiceName       = "villa.v1.VillaService"
	VillaNumberServiceName = "villa.v1.VillaNumberService"
)

// Services lists every service whose status is tracked. The empty name is
// the overall server status.
var Services = []string{"", VillaServiceName, VillaNumberServiceName}

// CheckFunc reports whether the dependencies behind the services are usable.
type CheckFunc func(ctx context.Context) error

// HealthReporter keeps a grpc health.Server in sync with a dependency check.
type HealthReporter struct {
	server *health.Server
	check  CheckFunc
	log    *zap.Logger
}

// NewHealthReporter creates a reporter whose services start NOT_SERVING.
func NewHealthReporter(check CheckFunc, log *zap.Logger) *HealthReporter {
	hs := health.NewServer()
	for _, svc := range Services {
		hs.SetServingStatus(svc, healthpb.HealthCheckResponse_NOT_SERVING)
	}
	return &HealthReporter{server: hs, check: check, log: log}
}

// Server returns the health server to register on a grpc.Server.
func (r *HealthReporter) Server() *health.Server {
	return r.server
}

// Refresh runs the check once and publishes the resulting status.
func (r *HealthReporter) Refresh(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	status := healthpb.HealthCheckResponse_SERVING
	if err := r.check(ctx); err != nil {
		r.log.Warn("health check failed", zap.Error(err))
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}
	for _, svc := range Services {
		r.server.SetServingStatus(svc, status)
	}
	return status
}

// Run refreshes the status every interval until ctx is done, then marks
// every service NOT_SERVING for good.
func (r *HealthReporter) Run(ctx context.Context, interval time.Duration) {
	r.Refresh(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.server.Shutdown()
			return
		case <-ticker.C:
			r.Refresh(ctx)
		}
	}
}
