package di

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"villa-service/cmd/api/infrastructure"
	"villa-service/internal/adapter/cache"
	"villa-service/internal/adapter/db/postgres"
	ginhandler "villa-service/internal/adapter/gin/handler"
	ginrouter "villa-service/internal/adapter/gin/router"
	grpcadapter "villa-service/internal/adapter/grpc"
	"villa-service/internal/adapter/ratelimit"
	"villa-service/internal/adapter/repository/cached"
	"villa-service/internal/config"
	domain "villa-service/internal/domain/villa"
	villauc "villa-service/internal/usecase/villa"
	"villa-service/internal/usecase/villanumber"
	redisclient "villa-service/pkg/redis"
)

// Container holds all application dependencies
type Container struct {
	Config             *config.Config
	Logger             *zap.Logger
	DB                 *gorm.DB
	RedisClient        *redisclient.Client
	VillaUC            villauc.Service
	VillaNumberUC      villanumber.Service
	RateLimiter        *ratelimit.Limiter
	VillaHandler       *ginhandler.VillaHandler
	VillaNumberHandler *ginhandler.VillaNumberHandler
	HealthChecks       ginrouter.HealthChecks
	Health             *grpcadapter.HealthReporter
}

// NewContainer creates and initializes all application dependencies
func NewContainer(ctx context.Context, cfg *config.Config, l *zap.Logger) (*Container, error) {
	// Validate configuration before initializing any dependencies
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	db, err := infrastructure.NewDatabase(ctx, cfg, l)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	rdb, err := infrastructure.NewRedisClient(ctx, cfg, l)
	if err != nil {
		_ = infrastructure.CloseDatabase(db)
		return nil, fmt.Errorf("failed to initialize Redis: %w", err)
	}

	var (
		villas  domain.Repository[domain.Villa]       = postgres.NewVillaRepoPG(db, l)
		numbers domain.Repository[domain.VillaNumber] = postgres.NewVillaNumberRepoPG(db, l)
		client  *redis.Client
	)

	checks := ginrouter.HealthChecks{"database": infrastructure.PingDatabase(db)}

	if rdb != nil {
		client = rdb.Client
		ttl := time.Duration(cfg.Redis.CacheTTL) * time.Second

		villas = cached.NewVillaRepository(villas,
			cache.NewRedisEntityCache[domain.Villa](client, "villa", ttl, l), l)
		numbers = cached.NewVillaNumberRepository(numbers,
			cache.NewRedisEntityCache[domain.VillaNumber](client, "villa_number", ttl, l), l)

		checks["redis"] = rdb.Ping
	}

	villaUC := villauc.New(villas, numbers, l)
	villaNumberUC := villanumber.New(numbers, villas, l)

	rateLimiter := ratelimit.New(client, ratelimit.Config{
		Enabled:           cfg.RateLimit.Enabled,
		RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
		Burst:             cfg.RateLimit.BurstCapacity,
	}, l)

	return &Container{
		Config:             cfg,
		Logger:             l,
		DB:                 db,
		RedisClient:        rdb,
		VillaUC:            villaUC,
		VillaNumberUC:      villaNumberUC,
		RateLimiter:        rateLimiter,
		VillaHandler:       ginhandler.NewVillaHandler(villaUC, l),
		VillaNumberHandler: ginhandler.NewVillaNumberHandler(villaNumberUC, l),
		HealthChecks:       checks,
		Health:             grpcadapter.NewHealthReporter(checks.All, l),
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	var errs []error

	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close Redis: %w", err))
		}
	}

	if c.DB != nil {
		if err := infrastructure.CloseDatabase(c.DB); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		}
	}

	return errors.Join(errs...)
}
