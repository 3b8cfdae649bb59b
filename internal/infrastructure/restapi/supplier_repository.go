package restapi

import (
	"context"
	"net/http"
	"net/url"

	"github.com/jhoicas/stocksync-dashboard/internal/domain/entity"
	"github.com/jhoicas/stocksync-dashboard/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación del puerto SupplierRepository sobre la API REST.
type SupplierRepo struct {
	c *Client
}

// NewSupplierRepository construye el adaptador para /suppliers.
func NewSupplierRepository(c *Client) *SupplierRepo {
	return &SupplierRepo{c: c}
}

// List GET /suppliers.
func (r *SupplierRepo) List(ctx context.Context) ([]entity.Supplier, error) {
	var raw []supplierJSON
	if err := r.c.Do(ctx, http.MethodGet, "/suppliers", nil, &raw); err != nil {
		return nil, err
	}
	out := make([]entity.Supplier, 0, len(raw))
	for _, s := range raw {
		out = append(out, s.toEntity())
	}
	return out, nil
}

// Create POST /suppliers.
func (r *SupplierRepo) Create(ctx context.Context, supplier entity.Supplier) (*entity.Supplier, error) {
	var created supplierJSON
	body := supplierRequest{Name: supplier.Name, Contact: supplier.Contact}
	if err := r.c.Do(ctx, http.MethodPost, "/suppliers", body, &created); err != nil {
		return nil, err
	}
	s := created.toEntity()
	return &s, nil
}

// Update PUT /suppliers/{id}.
func (r *SupplierRepo) Update(ctx context.Context, id string, supplier entity.Supplier) (*entity.Supplier, error) {
	var updated supplierJSON
	body := supplierRequest{Name: supplier.Name, Contact: supplier.Contact}
	if err := r.c.Do(ctx, http.MethodPut, "/suppliers/"+url.PathEscape(id), body, &updated); err != nil {
		return nil, err
	}
	s := updated.toEntity()
	return &s, nil
}

// Delete DELETE /suppliers/{id}.
func (r *SupplierRepo) Delete(ctx context.Context, id string) error {
	return r.c.Do(ctx, http.MethodDelete, "/suppliers/"+url.PathEscape(id), nil, nil)
}
