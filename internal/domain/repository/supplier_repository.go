package repository

import (
	"context"

	"github.com/jhoicas/stocksync-dashboard/internal/domain/entity"
)

// SupplierRepository puerto hacia la colección remota /suppliers.
type SupplierRepository interface {
	List(ctx context.Context) ([]entity.Supplier, error)
	Create(ctx context.Context, supplier entity.Supplier) (*entity.Supplier, error)
	Update(ctx context.Context, id string, supplier entity.Supplier) (*entity.Supplier, error)
	Delete(ctx context.Context, id string) error
}
