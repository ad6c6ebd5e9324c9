package router

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"villa-service/internal/adapter/cache"
	"villa-service/internal/adapter/db/postgres"
	"villa-service/internal/adapter/gin/handler"
	"villa-service/internal/adapter/ratelimit"
	"villa-service/internal/adapter/repository/cached"
	domain "villa-service/internal/domain/villa"
	"villa-service/internal/testutil"
	villauc "villa-service/internal/usecase/villa"
	"villa-service/internal/usecase/villanumber"
)

func setupBenchmarkRouter(b *testing.B, withCache bool) *gin.Engine {
	b.Helper()
	log := zap.NewNop()

	db := testutil.NewSeededDB(b)

	var villas domain.Repository[domain.Villa] = postgres.NewVillaRepoPG(db, log)
	var numbers domain.Repository[domain.VillaNumber] = postgres.NewVillaNumberRepoPG(db, log)
	if withCache {
		mr := miniredis.RunT(b)
		client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		b.Cleanup(func() { _ = client.Close() })

		villas = cached.NewVillaRepository(villas,
			cache.NewRedisEntityCache[domain.Villa](client, "villa", time.Minute, log), log)
		numbers = cached.NewVillaNumberRepository(numbers,
			cache.NewRedisEntityCache[domain.VillaNumber](client, "villa_number", time.Minute, log), log)
	}

	return SetupRouter(
		handler.NewVillaHandler(villauc.New(villas, numbers, log), log),
		handler.NewVillaNumberHandler(villanumber.New(numbers, villas, log), log),
		ratelimit.New(nil, ratelimit.Config{}, log),
		HealthChecks{},
		log,
	)
}

func benchmarkRequest(b *testing.B, r *gin.Engine, method string, path func(i int) string, body func(i int) string, want int) {
	b.Helper()
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		payload := ""
		if body != nil {
			payload = body(i)
		}
		req := httptest.NewRequest(method, path(i), bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		if rec.Code != want {
			b.Fatalf("%s %s: status %d, want %d: %s", method, path(i), rec.Code, want, rec.Body.String())
		}
	}
}

func fixed(path string) func(int) string {
	return func(int) string { return path }
}

func BenchmarkGetVillaNumber(b *testing.B) {
	for _, withCache := range []bool{false, true} {
		b.Run(fmt.Sprintf("cache=%t", withCache), func(b *testing.B) {
			r := setupBenchmarkRouter(b, withCache)
			benchmarkRequest(b, r, http.MethodGet, fixed("/api/v1/villa-numbers/101"), nil, http.StatusOK)
		})
	}
}

func BenchmarkListVillas(b *testing.B) {
	r := setupBenchmarkRouter(b, false)
	benchmarkRequest(b, r, http.MethodGet, fixed("/api/v1/villas?search=villa&pageSize=10"), nil, http.StatusOK)
}

var benchVillaNo int64 = 10_000

func BenchmarkCreateVillaNumber(b *testing.B) {
	r := setupBenchmarkRouter(b, false)
	benchmarkRequest(b, r, http.MethodPost, fixed("/api/v1/villa-numbers"), func(int) string {
		no := atomic.AddInt64(&benchVillaNo, 1)
		return fmt.Sprintf(`{"villaNo":%d,"villaID":1,"specialDetails":"bench"}`, no)
	}, http.StatusCreated)
}
