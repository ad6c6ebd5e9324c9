package villa

import "context"

// Repository is the data access contract shared by both resources.
// Get returns (nil, nil) when nothing matches; store failures are returned
// as errors and never converted here.
type Repository[T any] interface {
	GetAll(ctx context.Context, page Page, filters ...Filter) ([]T, error)
	Get(ctx context.Context, filters ...Filter) (*T, error)
	Create(ctx context.Context, entity *T) error
	Update(ctx context.Context, entity *T) error
	Remove(ctx context.Context, entity *T) error
}
