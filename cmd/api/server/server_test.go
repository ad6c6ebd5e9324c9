package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	grpcadapter "villa-service/internal/adapter/grpc"
	"villa-service/internal/adapter/ratelimit"
	"villa-service/internal/config"
)

func listen(t *testing.T) net.Listener {
	t.Helper()
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	return lis
}

func TestServer_ServeAndShutdown(t *testing.T) {
	log := zaptest.NewLogger(t)
	cfg := &config.Config{App: config.AppConfig{HTTPPort: "0", GRPCPort: "0", ShutdownTimeoutSeconds: 5}}

	router := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	health := grpcadapter.NewHealthReporter(func(context.Context) error { return nil }, log)
	srv := New(cfg, log, router, ratelimit.New(nil, ratelimit.Config{}, log), health)

	httpLis, grpcLis := listen(t), listen(t)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, httpLis, grpcLis) }()

	resp, err := http.Get("http://" + httpLis.Addr().String() + "/")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	conn, err := grpc.NewClient(grpcLis.Addr().String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	client := healthpb.NewHealthClient(conn)

	assert.Eventually(t, func() bool {
		res, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{Service: grpcadapter.VillaServiceName})
		return err == nil && res.GetStatus() == healthpb.HealthCheckResponse_SERVING
	}, 2*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}

	_, err = http.Get("http://" + httpLis.Addr().String() + "/")
	assert.Error(t, err)
}

func TestServer_RunFailsOnBusyPort(t *testing.T) {
	log := zaptest.NewLogger(t)

	busy, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = busy.Close() })
	_, port, err := net.SplitHostPort(busy.Addr().String())
	require.NoError(t, err)

	cfg := &config.Config{App: config.AppConfig{HTTPPort: port, GRPCPort: "0", ShutdownTimeoutSeconds: 1}}
	health := grpcadapter.NewHealthReporter(func(context.Context) error { return nil }, log)
	srv := New(cfg, log, http.NotFoundHandler(), nil, health)

	err = srv.Run(context.Background())
	assert.ErrorContains(t, err, "failed to listen on :"+port)
}
