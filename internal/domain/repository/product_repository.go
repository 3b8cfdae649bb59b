package repository

import (
	"context"

	"github.com/jhoicas/stocksync-dashboard/internal/domain/entity"
)

// ProductRepository puerto hacia la colección remota /products (DIP).
type ProductRepository interface {
	List(ctx context.Context) ([]entity.Product, error)
	Create(ctx context.Context, product entity.Product) (*entity.Product, error)
	Update(ctx context.Context, id string, product entity.Product) (*entity.Product, error)
	Delete(ctx context.Context, id string) error
}
