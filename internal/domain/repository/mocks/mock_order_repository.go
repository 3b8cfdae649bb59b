package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jhoicas/stocksync-dashboard/internal/domain/entity"
)

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) List(ctx context.Context) ([]entity.Order, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]entity.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) Create(ctx context.Context, order entity.Order) (*entity.Order, error) {
	args := m.Called(ctx, order)
	if v := args.Get(0); v != nil {
		return v.(*entity.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) Update(ctx context.Context, id string, order entity.Order) (*entity.Order, error) {
	args := m.Called(ctx, id, order)
	if v := args.Get(0); v != nil {
		return v.(*entity.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
