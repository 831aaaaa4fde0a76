package mocks

import (
	"context"

	"book-my-property/internal/data/repository"

	"github.com/stretchr/testify/mock"
)

type MockSoftDeleteRepository[T any] struct {
	mock.Mock
}

func (m *MockSoftDeleteRepository[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	args := m.MethodCalled("GetByID", ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockSoftDeleteRepository[T]) GetAll(ctx context.Context) ([]*T, error) {
	args := m.MethodCalled("GetAll", ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*T), args.Error(1)
}

func (m *MockSoftDeleteRepository[T]) GetAllIncludingDeleted(ctx context.Context) ([]*T, error) {
	args := m.MethodCalled("GetAllIncludingDeleted", ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*T), args.Error(1)
}

func (m *MockSoftDeleteRepository[T]) GetPaged(ctx context.Context, pageNumber, pageSize int) (*repository.Page[*T], error) {
	args := m.MethodCalled("GetPaged", ctx, pageNumber, pageSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.Page[*T]), args.Error(1)
}

func (m *MockSoftDeleteRepository[T]) Add(ctx context.Context, e *T) error {
	args := m.MethodCalled("Add", ctx, e)
	return args.Error(0)
}

func (m *MockSoftDeleteRepository[T]) Update(ctx context.Context, e *T) error {
	args := m.MethodCalled("Update", ctx, e)
	return args.Error(0)
}

func (m *MockSoftDeleteRepository[T]) Delete(ctx context.Context, e *T) error {
	args := m.MethodCalled("Delete", ctx, e)
	return args.Error(0)
}

func (m *MockSoftDeleteRepository[T]) DeleteByID(ctx context.Context, id int64) (bool, error) {
	args := m.MethodCalled("DeleteByID", ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockSoftDeleteRepository[T]) Count(ctx context.Context) (int64, error) {
	args := m.MethodCalled("Count", ctx)
	return args.Get(0).(int64), args.Error(1)
}
