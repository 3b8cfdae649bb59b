package restapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stocksync-dashboard/internal/domain/entity"
)

// ── Formato de la API ─────────────────────────────────────────────────────────
// La API identifica con "_id" (estilo Mongo); también se acepta "id".
// Los precios viajan como números JSON.

type identity struct {
	MongoID string `json:"_id,omitempty"`
	ID      string `json:"id,omitempty"`
}

func (i identity) value() string {
	if i.MongoID != "" {
		return i.MongoID
	}
	return i.ID
}

type productJSON struct {
	identity
	SKU      string          `json:"sku"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Stock    int             `json:"stock"`
	Category string          `json:"category"`
}

func (p productJSON) toEntity() entity.Product {
	return entity.Product{
		ID:       p.value(),
		SKU:      p.SKU,
		Name:     p.Name,
		Price:    p.Price,
		Stock:    p.Stock,
		Category: p.Category,
	}
}

// productRequest cuerpo de POST/PUT (sin id).
type productRequest struct {
	SKU      string  `json:"sku"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Stock    int     `json:"stock"`
	Category string  `json:"category,omitempty"`
}

func newProductRequest(p entity.Product) productRequest {
	return productRequest{
		SKU:      p.SKU,
		Name:     p.Name,
		Price:    p.Price.InexactFloat64(),
		Stock:    p.Stock,
		Category: p.Category,
	}
}

type supplierJSON struct {
	identity
	Name      string    `json:"name"`
	Contact   string    `json:"contact"`
	CreatedAt time.Time `json:"createdAt"`
}

func (s supplierJSON) toEntity() entity.Supplier {
	return entity.Supplier{
		ID:        s.value(),
		Name:      s.Name,
		Contact:   s.Contact,
		CreatedAt: s.CreatedAt,
	}
}

type supplierRequest struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
}

type orderItemJSON struct {
	ProductID json.RawMessage `json:"productId"`
	Qty       int             `json:"qty"`
	Price     decimal.Decimal `json:"price"`
}

type orderJSON struct {
	identity
	SupplierID json.RawMessage `json:"supplierId"`
	Status     string          `json:"status"`
	Items      []orderItemJSON `json:"items"`
	CreatedAt  time.Time       `json:"createdAt"`
}

func (o orderJSON) toEntity() (entity.Order, error) {
	supplier, err := parseRef(o.SupplierID)
	if err != nil {
		return entity.Order{}, fmt.Errorf("supplierId: %w", err)
	}
	items := make([]entity.OrderItem, 0, len(o.Items))
	for i, it := range o.Items {
		product, err := parseRef(it.ProductID)
		if err != nil {
			return entity.Order{}, fmt.Errorf("items[%d].productId: %w", i, err)
		}
		items = append(items, entity.OrderItem{Product: product, Qty: it.Qty, Price: it.Price})
	}
	return entity.Order{
		ID:        o.value(),
		Supplier:  supplier,
		Status:    entity.OrderStatus(o.Status).OrDefault(),
		Items:     items,
		CreatedAt: o.CreatedAt,
	}, nil
}

type orderItemRequest struct {
	ProductID string  `json:"productId"`
	Qty       int     `json:"qty"`
	Price     float64 `json:"price"`
}

type orderRequest struct {
	SupplierID string             `json:"supplierId"`
	Status     string             `json:"status"`
	Items      []orderItemRequest `json:"items"`
}

func newOrderRequest(o entity.Order) orderRequest {
	items := make([]orderItemRequest, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, orderItemRequest{
			ProductID: it.Product.ID,
			Qty:       it.Qty,
			Price:     it.Price.InexactFloat64(),
		})
	}
	return orderRequest{
		SupplierID: o.Supplier.ID,
		Status:     string(o.Status.OrDefault()),
		Items:      items,
	}
}

// refObject forma embebida (populate) de una referencia.
type refObject struct {
	identity
	Name string `json:"name"`
}

// parseRef acepta "abc123", {"_id":"abc123","name":"ACME"} o null.
func parseRef(raw json.RawMessage) (entity.Ref, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return entity.Ref{}, nil
	}
	switch trimmed[0] {
	case '"':
		var id string
		if err := json.Unmarshal(trimmed, &id); err != nil {
			return entity.Ref{}, err
		}
		return entity.Ref{ID: id}, nil
	case '{':
		var obj refObject
		if err := json.Unmarshal(trimmed, &obj); err != nil {
			return entity.Ref{}, err
		}
		return entity.Ref{ID: obj.value(), Name: obj.Name}, nil
	}
	return entity.Ref{}, fmt.Errorf("referencia con formato inesperado: %s", string(trimmed))
}
