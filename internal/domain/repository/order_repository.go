package repository

import (
	"context"

	"github.com/jhoicas/stocksync-dashboard/internal/domain/entity"
)

// OrderRepository puerto hacia la colección remota /orders.
type OrderRepository interface {
	List(ctx context.Context) ([]entity.Order, error)
	Create(ctx context.Context, order entity.Order) (*entity.Order, error)
	Update(ctx context.Context, id string, order entity.Order) (*entity.Order, error)
	Delete(ctx context.Context, id string) error
}
