package cached

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"villa-service/internal/adapter/cache"
	"villa-service/internal/domain/villa"
)

// Repository implements villa.Repository with caching support.
// It wraps a persistent repository (DB) and a cache implementation. Only
// single-key lookups on keyColumn go through the cache; every other read
// is delegated.
type Repository[T any] struct {
	dbRepo    villa.Repository[T]
	cache     cache.EntityCache[T]
	keyColumn string
	keyOf     func(*T) int
	log       *zap.Logger
	group     singleflight.Group
}

// New creates a cached repository. keyOf extracts the cache key from an
// entity and must agree with keyColumn.
func New[T any](dbRepo villa.Repository[T], c cache.EntityCache[T], keyColumn string, keyOf func(*T) int, log *zap.Logger) *Repository[T] {
	return &Repository[T]{
		dbRepo:    dbRepo,
		cache:     c,
		keyColumn: keyColumn,
		keyOf:     keyOf,
		log:       log,
	}
}

// NewVillaRepository caches villas by id.
func NewVillaRepository(dbRepo villa.Repository[villa.Villa], c cache.EntityCache[villa.Villa], log *zap.Logger) *Repository[villa.Villa] {
	return New(dbRepo, c, "id", func(v *villa.Villa) int { return v.ID }, log)
}

// NewVillaNumberRepository caches villa numbers by villa number.
func NewVillaNumberRepository(dbRepo villa.Repository[villa.VillaNumber], c cache.EntityCache[villa.VillaNumber], log *zap.Logger) *Repository[villa.VillaNumber] {
	return New(dbRepo, c, "villa_no", func(vn *villa.VillaNumber) int { return vn.VillaNo }, log)
}

// GetAll delegates to the DB repository.
func (r *Repository[T]) GetAll(ctx context.Context, page villa.Page, filters ...villa.Filter) ([]T, error) {
	return r.dbRepo.GetAll(ctx, page, filters...)
}

// Get retrieves an entity using the cache-aside pattern when filters select
// by key; otherwise it goes straight to the database.
func (r *Repository[T]) Get(ctx context.Context, filters ...villa.Filter) (*T, error) {
	id, ok := villa.PrimaryKey(r.keyColumn, filters)
	if !ok || r.cache == nil {
		return r.dbRepo.Get(ctx, filters...)
	}

	if cached, err := r.cache.Get(ctx, id); err != nil {
		r.log.Warn("cache get error, falling back to database", zap.Int("key", id), zap.Error(err))
	} else if cached != nil {
		return cached, nil
	}

	// Cache miss - use single-flight to prevent stampede
	key := fmt.Sprintf("%s:%d", r.keyColumn, id)
	result, err, _ := r.group.Do(key, func() (any, error) {
		if cached, err := r.cache.Get(ctx, id); err == nil && cached != nil {
			return cached, nil
		}

		entity, err := r.dbRepo.Get(ctx, filters...)
		if err != nil || entity == nil {
			return entity, err
		}

		if err := r.cache.Set(ctx, id, entity); err != nil {
			r.log.Warn("failed to cache entity", zap.Int("key", id), zap.Error(err))
		}
		return entity, nil
	})
	if err != nil {
		return nil, err
	}

	return result.(*T), nil
}

// Create delegates to the DB repository.
func (r *Repository[T]) Create(ctx context.Context, entity *T) error {
	return r.dbRepo.Create(ctx, entity)
}

// Update updates the entity in DB and invalidates the cache.
func (r *Repository[T]) Update(ctx context.Context, entity *T) error {
	if err := r.dbRepo.Update(ctx, entity); err != nil {
		return err
	}
	r.invalidate(ctx, entity, "update")
	return nil
}

// Remove deletes the entity from DB and invalidates the cache.
func (r *Repository[T]) Remove(ctx context.Context, entity *T) error {
	if err := r.dbRepo.Remove(ctx, entity); err != nil {
		return err
	}
	r.invalidate(ctx, entity, "remove")
	return nil
}

func (r *Repository[T]) invalidate(ctx context.Context, entity *T, op string) {
	if r.cache == nil {
		return
	}
	id := r.keyOf(entity)
	if err := r.cache.Delete(ctx, id); err != nil {
		r.log.Warn("failed to invalidate cache", zap.String("op", op), zap.Int("key", id), zap.Error(err))
	}
}
