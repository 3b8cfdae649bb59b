package entity

import "github.com/shopspring/decimal"

// LowStockThreshold por debajo de este stock (estricto) el producto cuenta como "low stock".
const LowStockThreshold = 10

// StockStatus estado derivado del stock de un producto.
type StockStatus string

const (
	StockOut StockStatus = "out of stock"
	StockLow StockStatus = "low stock"
	StockIn  StockStatus = "in stock"
)

// Product representa un producto del catálogo remoto. El ID lo asigna la API.
type Product struct {
	ID       string
	SKU      string // único por convención; no se valida en el cliente
	Name     string
	Price    decimal.Decimal
	Stock    int
	Category string // opcional
}

// Status deriva el estado de stock: 0 → agotado, <10 → bajo, resto → disponible.
func (p Product) Status() StockStatus {
	switch {
	case p.Stock <= 0:
		return StockOut
	case p.Stock < LowStockThreshold:
		return StockLow
	default:
		return StockIn
	}
}

// IsLowStock true si stock < 10 (incluye agotados).
func (p Product) IsLowStock() bool {
	return p.Stock < LowStockThreshold
}

// EntityID implementa Identifiable.
func (p Product) EntityID() string { return p.ID }

// CountLowStock cuenta los productos con stock estrictamente menor a 10.
func CountLowStock(products []Product) int {
	n := 0
	for _, p := range products {
		if p.IsLowStock() {
			n++
		}
	}
	return n
}
