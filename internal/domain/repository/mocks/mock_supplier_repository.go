package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jhoicas/stocksync-dashboard/internal/domain/entity"
)

type MockSupplierRepository struct {
	mock.Mock
}

func (m *MockSupplierRepository) List(ctx context.Context) ([]entity.Supplier, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]entity.Supplier), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSupplierRepository) Create(ctx context.Context, supplier entity.Supplier) (*entity.Supplier, error) {
	args := m.Called(ctx, supplier)
	if v := args.Get(0); v != nil {
		return v.(*entity.Supplier), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSupplierRepository) Update(ctx context.Context, id string, supplier entity.Supplier) (*entity.Supplier, error) {
	args := m.Called(ctx, id, supplier)
	if v := args.Get(0); v != nil {
		return v.(*entity.Supplier), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSupplierRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
