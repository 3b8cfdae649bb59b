package restapi

import (
	"context"
	"net/http"
	"net/url"

	"github.com/jhoicas/stocksync-dashboard/internal/domain/entity"
	"github.com/jhoicas/stocksync-dashboard/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre la API REST.
type ProductRepo struct {
	c *Client
}

// NewProductRepository construye el adaptador para /products.
func NewProductRepository(c *Client) *ProductRepo {
	return &ProductRepo{c: c}
}

// List GET /products.
func (r *ProductRepo) List(ctx context.Context) ([]entity.Product, error) {
	var raw []productJSON
	if err := r.c.Do(ctx, http.MethodGet, "/products", nil, &raw); err != nil {
		return nil, err
	}
	out := make([]entity.Product, 0, len(raw))
	for _, p := range raw {
		out = append(out, p.toEntity())
	}
	return out, nil
}

// Create POST /products.
func (r *ProductRepo) Create(ctx context.Context, product entity.Product) (*entity.Product, error) {
	var created productJSON
	if err := r.c.Do(ctx, http.MethodPost, "/products", newProductRequest(product), &created); err != nil {
		return nil, err
	}
	p := created.toEntity()
	return &p, nil
}

// Update PUT /products/{id}.
func (r *ProductRepo) Update(ctx context.Context, id string, product entity.Product) (*entity.Product, error) {
	var updated productJSON
	if err := r.c.Do(ctx, http.MethodPut, "/products/"+url.PathEscape(id), newProductRequest(product), &updated); err != nil {
		return nil, err
	}
	p := updated.toEntity()
	return &p, nil
}

// Delete DELETE /products/{id}.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	return r.c.Do(ctx, http.MethodDelete, "/products/"+url.PathEscape(id), nil, nil)
}
