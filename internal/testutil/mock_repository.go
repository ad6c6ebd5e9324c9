package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"villa-service/internal/domain/villa"
)

// MockRepository is a testify mock of villa.Repository. Filters are
// recorded as a single []villa.Filter argument.
type MockRepository[T any] struct {
	mock.Mock
}

func (m *MockRepository[T]) GetAll(ctx context.Context, page villa.Page, filters ...villa.Filter) ([]T, error) {
	args := m.Called(ctx, page, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

func (m *MockRepository[T]) Get(ctx context.Context, filters ...villa.Filter) (*T, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockRepository[T]) Create(ctx context.Context, entity *T) error {
	return m.Called(ctx, entity).Error(0)
}

func (m *MockRepository[T]) Update(ctx context.Context, entity *T) error {
	return m.Called(ctx, entity).Error(0)
}

func (m *MockRepository[T]) Remove(ctx context.Context, entity *T) error {
	return m.Called(ctx, entity).Error(0)
}

// Filters builds the argument matched against a recorded filter list.
func Filters(filters ...villa.Filter) []villa.Filter {
	return filters
}
