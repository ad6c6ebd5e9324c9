package server

import (
	"go.uber.org/zap"
	"google.golang.org/grpc"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpcadapter "villa-service/internal/adapter/grpc"
	"villa-service/internal/adapter/grpc/middleware"
	"villa-service/internal/adapter/ratelimit"
	"villa-service/pkg/logger"
)

// SetupGRPC creates the gRPC server that publishes service health
func SetupGRPC(health *grpcadapter.HealthReporter, rateLimiter *ratelimit.Limiter, l *zap.Logger) *grpc.Server {
	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			logger.RequestIDInterceptor(),
			middleware.RateLimit(rateLimiter),
		),
	)
	healthpb.RegisterHealthServer(grpcServer, health.Server())
	reflection.Register(grpcServer)

	l.Info("gRPC health server configured", zap.Strings("services", grpcadapter.Services))

	return grpcServer
}
