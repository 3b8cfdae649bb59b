package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jhoicas/stocksync-dashboard/internal/domain/entity"
)

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) List(ctx context.Context) ([]entity.Product, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]entity.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductRepository) Create(ctx context.Context, product entity.Product) (*entity.Product, error) {
	args := m.Called(ctx, product)
	if v := args.Get(0); v != nil {
		return v.(*entity.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductRepository) Update(ctx context.Context, id string, product entity.Product) (*entity.Product, error) {
	args := m.Called(ctx, id, product)
	if v := args.Get(0); v != nil {
		return v.(*entity.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
