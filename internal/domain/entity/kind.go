package entity

import (
	"fmt"
	"strings"

	"github.com/jhoicas/stocksync-dashboard/internal/domain"
)

// Identifiable toda entidad cacheada expone su ID asignado por la API.
type Identifiable interface {
	EntityID() string
}

// Kind tipo de entidad gestionada por el dashboard.
type Kind string

const (
	KindProduct  Kind = "product"
	KindSupplier Kind = "supplier"
	KindOrder    Kind = "order"
)

// Kinds todos los tipos, en orden de menú.
var Kinds = []Kind{KindProduct, KindSupplier, KindOrder}

// ParseKind acepta singular o plural ("product", "products").
func ParseKind(s string) (Kind, error) {
	switch s {
	case "product", "products":
		return KindProduct, nil
	case "supplier", "suppliers":
		return KindSupplier, nil
	case "order", "orders":
		return KindOrder, nil
	}
	return "", fmt.Errorf("%w: %q", domain.ErrUnknownKind, s)
}

// Collection segmento de ruta REST ("products").
func (k Kind) Collection() string { return string(k) + "s" }

// Title "Product", "Supplier", "Order".
func (k Kind) Title() string {
	if k == "" {
		return ""
	}
	return strings.ToUpper(string(k[:1])) + string(k[1:])
}
