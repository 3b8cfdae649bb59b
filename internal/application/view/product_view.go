package view

import (
	"github.com/jhoicas/stocksync-dashboard/internal/application/dto"
	"github.com/jhoicas/stocksync-dashboard/internal/domain"
	"github.com/jhoicas/stocksync-dashboard/internal/domain/entity"
)

// ProductColumns cabeceras del listado de productos.
var ProductColumns = []string{"SKU", "Name", "Category", "Price", "Stock", "Status"}

// RenderProducts produce la vista completa del listado de productos.
func RenderProducts(products []entity.Product, loadErr error) dto.ListView {
	v := dto.ListView{Entity: string(entity.KindProduct), Columns: ProductColumns, Rows: []dto.Row{}}
	if loadErr != nil {
		v.State = dto.ViewError
		v.Message = "Error loading products: " + domain.UserMessage(loadErr)
		return v
	}
	if len(products) == 0 {
		v.State = dto.ViewEmpty
		v.Message = "No products found. Add your first product to get started."
		return v
	}

	v.State = dto.ViewReady
	for _, p := range products {
		v.Rows = append(v.Rows, dto.Row{
			ID: p.ID,
			Cells: []string{
				orNA(p.SKU),
				orNA(p.Name),
				orNA(p.Category),
				Money(p.Price),
				Itoa(p.Stock),
			},
			Badge: stockBadge(p.Status()),
			Actions: []dto.Action{
				{Kind: dto.ActionEdit, Target: p.ID, Label: "Edit " + p.Name},
				{Kind: dto.ActionDelete, Target: p.ID, Label: "Delete " + p.Name},
			},
		})
	}
	v.Count = len(v.Rows)
	v.Total = len(products)
	return v
}

func stockBadge(s entity.StockStatus) *dto.Badge {
	switch s {
	case entity.StockOut:
		return &dto.Badge{Class: "status-cancelled", Text: "Out of Stock"}
	case entity.StockLow:
		return &dto.Badge{Class: "status-pending", Text: "Low Stock"}
	default:
		return &dto.Badge{Class: "status-completed", Text: "In Stock"}
	}
}

// ProductOptions opciones del select de producto: "Widget (W-1) - $5.00".
func ProductOptions(products []entity.Product, selected string) []dto.Option {
	out := make([]dto.Option, 0, len(products))
	for _, p := range products {
		out = append(out, dto.Option{
			Value:    p.ID,
			Label:    p.Name + " (" + p.SKU + ") - " + Money(p.Price),
			Price:    p.Price.StringFixed(2),
			Selected: p.ID == selected,
		})
	}
	return out
}
