package view

import (
	"fmt"

	"github.com/jhoicas/stocksync-dashboard/internal/application/dto"
	"github.com/jhoicas/stocksync-dashboard/internal/domain"
	"github.com/jhoicas/stocksync-dashboard/internal/domain/entity"
)

// OrderColumns cabeceras del listado de órdenes.
var OrderColumns = []string{"Order ID", "Supplier", "Items", "Total", "Status", "Created"}

// RenderOrders produce la vista de órdenes. suppliers solo se lee para resolver nombres
// cuando la API envía supplierId como id plano.
func RenderOrders(orders []entity.Order, suppliers []entity.Supplier, loadErr error) dto.ListView {
	v := dto.ListView{Entity: string(entity.KindOrder), Columns: OrderColumns, Rows: []dto.Row{}}
	if loadErr != nil {
		v.State = dto.ViewError
		v.Message = "Error loading orders: " + domain.UserMessage(loadErr)
		return v
	}
	if len(orders) == 0 {
		v.State = dto.ViewEmpty
		v.Message = "No orders found. Create your first order to get started."
		return v
	}

	v.State = dto.ViewReady
	for _, o := range orders {
		status := o.Status.OrDefault()
		v.Rows = append(v.Rows, dto.Row{
			ID: o.ID,
			Cells: []string{
				ShortID(o.ID),
				SupplierName(o.Supplier, suppliers),
				itemsLabel(len(o.Items)),
				Money(o.Total()),
				Date(o.CreatedAt),
			},
			Badge:  &dto.Badge{Class: "status-" + string(status), Text: Title(string(status))},
			Status: string(status),
			Actions: []dto.Action{
				{Kind: dto.ActionView, Target: o.ID, Label: "View order"},
				{Kind: dto.ActionEdit, Target: o.ID, Label: "Edit order"},
				{Kind: dto.ActionDelete, Target: o.ID, Label: "Delete order"},
			},
		})
	}
	v.Count = len(v.Rows)
	v.Total = len(orders)
	return v
}

// SupplierName nombre embebido, o buscado en la caché de proveedores, o N/A.
func SupplierName(ref entity.Ref, suppliers []entity.Supplier) string {
	if ref.Embedded() {
		return ref.Name
	}
	for _, s := range suppliers {
		if s.ID == ref.ID && ref.ID != "" {
			return orNA(s.Name)
		}
	}
	return notAvailable
}

func productName(ref entity.Ref, products []entity.Product) string {
	if ref.Embedded() {
		return ref.Name
	}
	for _, p := range products {
		if p.ID == ref.ID && ref.ID != "" {
			return p.Name
		}
	}
	return "Product ID: " + orNA(ref.ID)
}

func itemsLabel(n int) string {
	if n == 0 {
		return "0 items"
	}
	return fmt.Sprintf("%d item(s)", n)
}

// RenderOrderDetail detalle de una orden con subtotales y total.
func RenderOrderDetail(o entity.Order, suppliers []entity.Supplier, products []entity.Product) dto.OrderDetailView {
	d := dto.OrderDetailView{
		ID:       o.ID,
		Supplier: SupplierName(o.Supplier, suppliers),
		Status:   Title(string(o.Status.OrDefault())),
		Created:  Date(o.CreatedAt),
		Lines:    make([]dto.OrderDetailLine, 0, len(o.Items)),
		Total:    Money(o.Total()),
	}
	for i, it := range o.Items {
		d.Lines = append(d.Lines, dto.OrderDetailLine{
			Number:   i + 1,
			Product:  productName(it.Product, products),
			Qty:      it.Qty,
			Price:    Money(it.Price),
			Subtotal: Money(it.Subtotal()),
		})
	}
	return d
}
