package view_test

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stocksync-dashboard/internal/application/dto"
	"github.com/jhoicas/stocksync-dashboard/internal/application/view"
	"github.com/jhoicas/stocksync-dashboard/internal/domain"
	"github.com/jhoicas/stocksync-dashboard/internal/domain/entity"
)

func price(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// ──────────────────────────────────────────────────────────────────────────────
// Estados vacío / error
// ──────────────────────────────────────────────────────────────────────────────

func TestRender_ListaVaciaEsEstadoVacio(t *testing.T) {
	v := view.RenderProducts([]entity.Product{}, nil)
	assert.Equal(t, dto.ViewEmpty, v.State)
	assert.NotEmpty(t, v.Message)
	assert.Empty(t, v.Rows)
}

func TestRender_ErrorHTTPEmbebeMensaje(t *testing.T) {
	err := domain.NewHTTPError(503, "")
	for _, v := range []dto.ListView{
		view.RenderProducts(nil, err),
		view.RenderSuppliers(nil, err),
		view.RenderOrders(nil, nil, err),
	} {
		assert.Equal(t, dto.ViewError, v.State, v.Entity)
		assert.Contains(t, v.Message, "HTTP 503: Service Unavailable", v.Entity)
	}
}

func TestRender_ErrorNoMuestraFilasAnteriores(t *testing.T) {
	products := []entity.Product{{ID: "p1", Name: "Widget"}}
	v := view.RenderProducts(products, errors.New("network error"))
	assert.Equal(t, dto.ViewError, v.State)
	assert.Empty(t, v.Rows)
}

// ──────────────────────────────────────────────────────────────────────────────
// Productos
// ──────────────────────────────────────────────────────────────────────────────

func TestRenderProducts_FilasYAcciones(t *testing.T) {
	v := view.RenderProducts([]entity.Product{
		{ID: "p1", SKU: "W-1", Name: "Widget", Price: price("5"), Stock: 0},
		{ID: "p2", SKU: "B-1", Name: "Bolt", Price: price("0.5"), Stock: 9, Category: "Hardware"},
		{ID: "p3", SKU: "N-1", Name: "Nut", Price: price("1.25"), Stock: 10},
	}, nil)

	require.Equal(t, dto.ViewReady, v.State)
	require.Len(t, v.Rows, 3)
	assert.Equal(t, 3, v.Count)

	assert.Equal(t, []string{"W-1", "Widget", "N/A", "$5.00", "0"}, v.Rows[0].Cells)
	assert.Equal(t, "Out of Stock", v.Rows[0].Badge.Text)
	assert.Equal(t, "Low Stock", v.Rows[1].Badge.Text)
	assert.Equal(t, "In Stock", v.Rows[2].Badge.Text)

	assert.Equal(t, []dto.Action{
		{Kind: dto.ActionEdit, Target: "p1", Label: "Edit Widget"},
		{Kind: dto.ActionDelete, Target: "p1", Label: "Delete Widget"},
	}, v.Rows[0].Actions)
}

func TestRender_Idempotente(t *testing.T) {
	products := []entity.Product{{ID: "p1", SKU: "W-1", Name: "Widget", Price: price("5"), Stock: 3}}
	assert.Equal(t, view.RenderProducts(products, nil), view.RenderProducts(products, nil))
}

// ──────────────────────────────────────────────────────────────────────────────
// Órdenes
// ──────────────────────────────────────────────────────────────────────────────

func TestRenderOrders_TotalYProveedor(t *testing.T) {
	suppliers := []entity.Supplier{{ID: "s1", Name: "ACME"}}
	orders := []entity.Order{
		{
			ID:        "6650f0c2a1b2c3d4",
			Supplier:  entity.Ref{ID: "s1"},
			Status:    entity.OrderCompleted,
			Items:     []entity.OrderItem{{Product: entity.Ref{ID: "p1"}, Qty: 2, Price: price("9.99")}},
			CreatedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		},
		{ID: "o2", Supplier: entity.Ref{ID: "s2", Name: "Globex"}},
		{ID: "o3", Supplier: entity.Ref{ID: "desconocido"}},
	}

	v := view.RenderOrders(orders, suppliers, nil)
	require.Len(t, v.Rows, 3)

	assert.Equal(t, []string{"6650f0c2...", "ACME", "1 item(s)", "$19.98", "2024-05-01"}, v.Rows[0].Cells)
	assert.Equal(t, &dto.Badge{Class: "status-completed", Text: "Completed"}, v.Rows[0].Badge)

	assert.Equal(t, "Globex", v.Rows[1].Cells[1])
	assert.Equal(t, "0 items", v.Rows[1].Cells[2])
	assert.Equal(t, "$0.00", v.Rows[1].Cells[3], "sin items el total es 0.00")
	assert.Equal(t, "Pending", v.Rows[1].Badge.Text)

	assert.Equal(t, "N/A", v.Rows[2].Cells[1])
}

func TestRenderOrderDetail(t *testing.T) {
	o := entity.Order{
		ID:       "o1",
		Supplier: entity.Ref{ID: "s1"},
		Items: []entity.OrderItem{
			{Product: entity.Ref{ID: "p1"}, Qty: 2, Price: price("9.99")},
			{Product: entity.Ref{ID: "p9"}, Qty: 1, Price: price("1")},
		},
	}
	d := view.RenderOrderDetail(o, nil, []entity.Product{{ID: "p1", Name: "Widget"}})

	require.Len(t, d.Lines, 2)
	assert.Equal(t, "Widget", d.Lines[0].Product)
	assert.Equal(t, "$19.98", d.Lines[0].Subtotal)
	assert.Equal(t, "Product ID: p9", d.Lines[1].Product)
	assert.Equal(t, "$20.98", d.Total)
	assert.Equal(t, "N/A", d.Supplier)
}

// ──────────────────────────────────────────────────────────────────────────────
// Filtro
// ──────────────────────────────────────────────────────────────────────────────

func TestFilter_PorTerminoYEstado(t *testing.T) {
	orders := []entity.Order{
		{ID: "o1", Supplier: entity.Ref{ID: "s1", Name: "ACME"}, Status: entity.OrderPending},
		{ID: "o2", Supplier: entity.Ref{ID: "s2", Name: "Globex"}, Status: entity.OrderCancelled},
		{ID: "o3", Supplier: entity.Ref{ID: "s1", Name: "ACME"}, Status: entity.OrderCancelled},
	}
	v := view.RenderOrders(orders, nil, nil)

	byTerm := view.Filter(v, "acme", "")
	assert.Equal(t, 2, byTerm.Count)
	assert.Equal(t, 3, byTerm.Total)

	both := view.Filter(v, "ACME", "cancelled")
	require.Equal(t, 1, both.Count)
	assert.Equal(t, "o3", both.Rows[0].ID)

	assert.Equal(t, v, view.Filter(v, "  ", ""), "sin criterios no cambia nada")
}

func TestFilter_EstadoSoloAplicaAOrdenes(t *testing.T) {
	products := view.RenderProducts([]entity.Product{
		{ID: "p1", SKU: "W-1", Name: "Widget", Price: price("5"), Stock: 3},
		{ID: "p2", SKU: "B-1", Name: "Bolt", Price: price("1"), Stock: 40},
	}, nil)
	assert.Equal(t, 2, view.Filter(products, "", "pending").Count)

	suppliers := view.RenderSuppliers([]entity.Supplier{{ID: "s1", Name: "ACME"}}, nil)
	assert.Equal(t, 1, view.Filter(suppliers, "acme", "completed").Count)
}

func TestShortID_CortaPorRunas(t *testing.T) {
	assert.Equal(t, "pedido-ñ...", view.ShortID("pedido-ñandú-42"))
	assert.Equal(t, "ñandú", view.ShortID("ñandú"))
	assert.Equal(t, "N/A", view.ShortID(""))
}

func TestProductOptions(t *testing.T) {
	opts := view.ProductOptions([]entity.Product{{ID: "p1", SKU: "W-1", Name: "Widget", Price: price("5")}}, "p1")
	require.Len(t, opts, 1)
	assert.Equal(t, "Widget (W-1) - $5.00", opts[0].Label)
	assert.Equal(t, "5.00", opts[0].Price)
	assert.True(t, opts[0].Selected)
}
