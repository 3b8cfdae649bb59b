package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus estado de una orden.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderCompleted OrderStatus = "completed"
	OrderCancelled OrderStatus = "cancelled"
)

// OrderStatuses en el orden en que se ofrecen en el formulario.
var OrderStatuses = []OrderStatus{OrderPending, OrderCompleted, OrderCancelled}

// Valid indica si el estado es uno de los tres conocidos.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderCompleted, OrderCancelled:
		return true
	}
	return false
}

// OrDefault devuelve pending cuando el estado viene vacío.
func (s OrderStatus) OrDefault() OrderStatus {
	if s == "" {
		return OrderPending
	}
	return s
}

// Ref referencia a otra entidad: la API la envía como id plano o como objeto embebido.
// Name solo viene informado en el segundo caso.
type Ref struct {
	ID   string
	Name string
}

// Embedded true si la API envió el objeto completo.
func (r Ref) Embedded() bool { return r.Name != "" }

// OrderItem línea de una orden.
type OrderItem struct {
	Product Ref
	Qty     int
	Price   decimal.Decimal
}

// Subtotal qty × price.
func (i OrderItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Qty)))
}

// Order orden de compra a un proveedor. El total nunca se almacena: se deriva de los items.
type Order struct {
	ID        string
	Supplier  Ref
	Status    OrderStatus
	Items     []OrderItem
	CreatedAt time.Time
}

// Total suma exacta de qty × price sobre los items (0 sin items).
func (o Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range o.Items {
		total = total.Add(it.Subtotal())
	}
	return total
}

// EntityID implementa Identifiable.
func (o Order) EntityID() string { return o.ID }
