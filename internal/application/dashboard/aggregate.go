// Package dashboard calcula los contadores del panel principal.
package dashboard

import (
	"context"

	"github.com/jhoicas/stocksync-dashboard/internal/application/dto"
	"github.com/jhoicas/stocksync-dashboard/internal/domain/entity"
	"github.com/jhoicas/stocksync-dashboard/internal/domain/repository"
	"github.com/jhoicas/stocksync-dashboard/pkg/logger"
)

// Aggregate pide las tres colecciones en paralelo. Las cachés de la sesión no se tocan:
// el panel solo necesita los tamaños.
type Aggregate struct {
	products  repository.ProductRepository
	suppliers repository.SupplierRepository
	orders    repository.OrderRepository
	log       *logger.Logger
}

// NewAggregate construye el agregado.
func NewAggregate(
	products repository.ProductRepository,
	suppliers repository.SupplierRepository,
	orders repository.OrderRepository,
	log *logger.Logger,
) *Aggregate {
	if log == nil {
		log = logger.Nop()
	}
	return &Aggregate{products: products, suppliers: suppliers, orders: orders, log: log.Component("dashboard")}
}

// Load espera a las tres peticiones. Cada fallo solo anula sus propios contadores:
// si fallan los productos, total y low-stock quedan en 0 y el resto conserva su valor real.
func (a *Aggregate) Load(ctx context.Context) dto.DashboardCounts {
	type productsResult struct {
		items []entity.Product
		err   error
	}
	type countResult struct {
		n   int
		err error
	}

	productsCh := make(chan productsResult, 1)
	suppliersCh := make(chan countResult, 1)
	ordersCh := make(chan countResult, 1)

	go func() {
		items, err := a.products.List(ctx)
		productsCh <- productsResult{items, err}
	}()
	go func() {
		items, err := a.suppliers.List(ctx)
		suppliersCh <- countResult{len(items), err}
	}()
	go func() {
		items, err := a.orders.List(ctx)
		ordersCh <- countResult{len(items), err}
	}()

	products := <-productsCh
	suppliers := <-suppliersCh
	orders := <-ordersCh

	var out dto.DashboardCounts
	if products.err != nil {
		a.fail(&out, entity.KindProduct, products.err)
	} else {
		out.TotalProducts = len(products.items)
		out.LowStock = entity.CountLowStock(products.items)
	}
	if suppliers.err != nil {
		a.fail(&out, entity.KindSupplier, suppliers.err)
	} else {
		out.TotalSuppliers = suppliers.n
	}
	if orders.err != nil {
		a.fail(&out, entity.KindOrder, orders.err)
	} else {
		out.TotalOrders = orders.n
	}
	return out
}

func (a *Aggregate) fail(out *dto.DashboardCounts, kind entity.Kind, err error) {
	a.log.Warn().Err(err).Str("collection", kind.Collection()).Msg("dashboard: colección no disponible")
	out.Failed = append(out.Failed, kind.Collection())
}
