package middleware

import (
	"context"
	"fmt"
	"net"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"

	"villa-service/internal/adapter/ratelimit"
)

// RateLimit returns a gRPC unary interceptor backed by the shared token
// bucket. Buckets are keyed by full method and client IP.
func RateLimit(limiter *ratelimit.Limiter) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req any,
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (any, error) {
		if !limiter.Enabled() {
			return handler(ctx, req)
		}

		key := fmt.Sprintf("grpc:%s:%s", info.FullMethod, clientIP(ctx))
		if allowed, _ := limiter.Allow(ctx, key); !allowed {
			cfg := limiter.Config()
			return nil, status.Errorf(codes.ResourceExhausted,
				"rate limit exceeded: %.2f requests/second (burst capacity: %d)",
				cfg.RequestsPerSecond, cfg.Burst)
		}

		return handler(ctx, req)
	}
}

// clientIP returns the original caller's address: the first
// x-forwarded-for hop, then x-real-ip, then the peer host.
func clientIP(ctx context.Context) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if xff := md.Get("x-forwarded-for"); len(xff) > 0 {
			if first, _, _ := strings.Cut(xff[0], ","); strings.TrimSpace(first) != "" {
				return strings.TrimSpace(first)
			}
		}
		if xri := md.Get("x-real-ip"); len(xri) > 0 && xri[0] != "" {
			return xri[0]
		}
	}

	p, ok := peer.FromContext(ctx)
	if !ok || p.Addr == nil {
		return "unknown"
	}
	if host, _, err := net.SplitHostPort(p.Addr.String()); err == nil {
		return host
	}
	return p.Addr.String()
}
