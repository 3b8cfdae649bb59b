package view

import (
	"github.com/jhoicas/stocksync-dashboard/internal/application/dto"
	"github.com/jhoicas/stocksync-dashboard/internal/domain"
	"github.com/jhoicas/stocksync-dashboard/internal/domain/entity"
)

// SupplierColumns cabeceras del listado de proveedores.
var SupplierColumns = []string{"Name", "Contact", "Created"}

// RenderSuppliers produce la vista completa del listado de proveedores.
func RenderSuppliers(suppliers []entity.Supplier, loadErr error) dto.ListView {
	v := dto.ListView{Entity: string(entity.KindSupplier), Columns: SupplierColumns, Rows: []dto.Row{}}
	if loadErr != nil {
		v.State = dto.ViewError
		v.Message = "Error loading suppliers: " + domain.UserMessage(loadErr)
		return v
	}
	if len(suppliers) == 0 {
		v.State = dto.ViewEmpty
		v.Message = "No suppliers found. Add your first supplier to get started."
		return v
	}

	v.State = dto.ViewReady
	for _, s := range suppliers {
		v.Rows = append(v.Rows, dto.Row{
			ID:    s.ID,
			Cells: []string{orNA(s.Name), orNA(s.Contact), Date(s.CreatedAt)},
			Actions: []dto.Action{
				{Kind: dto.ActionEdit, Target: s.ID, Label: "Edit " + s.Name},
				{Kind: dto.ActionDelete, Target: s.ID, Label: "Delete " + s.Name},
			},
		})
	}
	v.Count = len(v.Rows)
	v.Total = len(suppliers)
	return v
}

// SupplierOptions opciones del select de proveedor.
func SupplierOptions(suppliers []entity.Supplier, selected string) []dto.Option {
	out := make([]dto.Option, 0, len(suppliers))
	for _, s := range suppliers {
		out = append(out, dto.Option{Value: s.ID, Label: s.Name, Selected: s.ID == selected})
	}
	return out
}
