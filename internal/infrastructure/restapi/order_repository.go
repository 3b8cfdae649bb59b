package restapi

import (
	"context"
	"net/http"
	"net/url"

	"github.com/jhoicas/stocksync-dashboard/internal/domain"
	"github.com/jhoicas/stocksync-dashboard/internal/domain/entity"
	"github.com/jhoicas/stocksync-dashboard/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre la API REST.
// supplierId y productId pueden llegar como id o como objeto embebido.
type OrderRepo struct {
	c *Client
}

// NewOrderRepository construye el adaptador para /orders.
func NewOrderRepository(c *Client) *OrderRepo {
	return &OrderRepo{c: c}
}

// List GET /orders.
func (r *OrderRepo) List(ctx context.Context) ([]entity.Order, error) {
	var raw []orderJSON
	if err := r.c.Do(ctx, http.MethodGet, "/orders", nil, &raw); err != nil {
		return nil, err
	}
	out := make([]entity.Order, 0, len(raw))
	for _, o := range raw {
		order, err := o.toEntity()
		if err != nil {
			return nil, &domain.ParseError{Op: "GET /orders", Err: err}
		}
		out = append(out, order)
	}
	return out, nil
}

// Create POST /orders.
func (r *OrderRepo) Create(ctx context.Context, order entity.Order) (*entity.Order, error) {
	return r.save(ctx, http.MethodPost, "/orders", order)
}

// Update PUT /orders/{id}.
func (r *OrderRepo) Update(ctx context.Context, id string, order entity.Order) (*entity.Order, error) {
	return r.save(ctx, http.MethodPut, "/orders/"+url.PathEscape(id), order)
}

// Delete DELETE /orders/{id}.
func (r *OrderRepo) Delete(ctx context.Context, id string) error {
	return r.c.Do(ctx, http.MethodDelete, "/orders/"+url.PathEscape(id), nil, nil)
}

func (r *OrderRepo) save(ctx context.Context, method, path string, order entity.Order) (*entity.Order, error) {
	var saved orderJSON
	if err := r.c.Do(ctx, method, path, newOrderRequest(order), &saved); err != nil {
		return nil, err
	}
	o, err := saved.toEntity()
	if err != nil {
		return nil, &domain.ParseError{Op: method + " " + path, Err: err}
	}
	return &o, nil
}
