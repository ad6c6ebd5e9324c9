package router

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"

	"villa-service/api/openapi"
	"villa-service/internal/adapter/gin/handler"
	"villa-service/internal/adapter/gin/middleware"
	"villa-service/internal/adapter/ratelimit"
)

const (
	serviceName = "villa-service-gin"
	openAPIPath = "/openapi/villa.json"

	healthTimeout = 2 * time.Second
)

// HealthChecks maps a dependency name to a probe that fails when the
// dependency is unreachable.
type HealthChecks map[string]func(ctx context.Context) error

// All runs every check and joins the failures.
func (h HealthChecks) All(ctx context.Context) error {
	var errs []error
	for name, check := range h {
		if err := check(ctx); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}
	return errors.Join(errs...)
}

// SetupRouter configures and returns a Gin router with all routes and middleware
func SetupRouter(
	villaHandler *handler.VillaHandler,
	villaNumberHandler *handler.VillaNumberHandler,
	rateLimiter *ratelimit.Limiter,
	checks HealthChecks,
	log *zap.Logger,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery(log))
	router.Use(middleware.Logger(log))
	router.Use(middleware.RateLimiter(rateLimiter))

	router.GET("/health", health(checks))

	router.GET(openAPIPath, func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json", openapi.Spec)
	})
	router.GET("/swagger/*any", gin.WrapH(httpSwagger.Handler(httpSwagger.URL(openAPIPath))))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		villas := v1.Group("/villas")
		{
			villas.GET("", villaHandler.ListVillas)
			villas.POST("", villaHandler.CreateVilla)
			villas.GET("/:id", villaHandler.GetVilla)
			villas.PUT("/:id", villaHandler.UpdateVilla)
			villas.DELETE("/:id", villaHandler.DeleteVilla)
		}

		numbers := v1.Group("/villa-numbers")
		{
			numbers.GET("", villaNumberHandler.ListVillaNumbers)
			numbers.POST("", villaNumberHandler.CreateVillaNumber)
			numbers.GET("/:id", villaNumberHandler.GetVillaNumber)
			numbers.PUT("/:id", villaNumberHandler.UpdateVillaNumber)
			numbers.DELETE("/:id", villaNumberHandler.DeleteVillaNumber)
		}
	}

	return router
}

// health reports 200 when every check passes and 503 otherwise.
func health(checks HealthChecks) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
		defer cancel()

		status := http.StatusOK
		results := make(gin.H, len(checks))
		for name, check := range checks {
			if err := check(ctx); err != nil {
				status = http.StatusServiceUnavailable
				results[name] = "down: " + err.Error()
				continue
			}
			results[name] = "up"
		}

		state := "healthy"
		if status != http.StatusOK {
			state = "unhealthy"
		}
		c.JSON(status, gin.H{
			"status":  state,
			"service": serviceName,
			"checks":  results,
		})
	}
}
