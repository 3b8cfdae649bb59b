package dto

// ViewState estado de una vista de listado.
type ViewState string

const (
	ViewReady ViewState = "ready"
	ViewEmpty ViewState = "empty"
	ViewError ViewState = "error"
)

// ActionKind acción enlazada a una fila.
type ActionKind string

const (
	ActionEdit   ActionKind = "edit"
	ActionDelete ActionKind = "delete"
	ActionView   ActionKind = "view"
)

// Action disparador de una fila: tipo + id destino. Se re-enlaza en cada render.
type Action struct {
	Kind   ActionKind `json:"kind"`
	Target string     `json:"target"`
	Label  string     `json:"label"`
}

// Badge etiqueta de estado (clase CSS + texto).
type Badge struct {
	Class string `json:"class"`
	Text  string `json:"text"`
}

// Row fila renderizada de un listado.
type Row struct {
	ID      string   `json:"id"`
	Cells   []string `json:"cells"`
	Badge   *Badge   `json:"badge,omitempty"`
	Actions []Action `json:"actions"`
	// Status valor crudo usado por el filtro de órdenes.
	Status string `json:"-"`
}

// ListView salida completa de un renderer: reemplaza a la anterior, sin diff por fila.
type ListView struct {
	Entity  string    `json:"entity"`
	State   ViewState `json:"state"`
	Message string    `json:"message,omitempty"`
	Columns []string  `json:"columns"`
	Rows    []Row     `json:"rows"`
	Count   int       `json:"count"` // filas visibles
	Total   int       `json:"total"` // tamaño de la colección
}

// OrderDetailLine línea del detalle de una orden.
type OrderDetailLine struct {
	Number   int    `json:"number"`
	Product  string `json:"product"`
	Qty      int    `json:"qty"`
	Price    string `json:"price"`
	Subtotal string `json:"subtotal"`
}

// OrderDetailView detalle de una orden ("View").
type OrderDetailView struct {
	ID       string            `json:"id"`
	Supplier string            `json:"supplier"`
	Status   string            `json:"status"`
	Created  string            `json:"created"`
	Lines    []OrderDetailLine `json:"lines"`
	Total    string            `json:"total"`
}
