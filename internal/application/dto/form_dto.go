package dto

// Option opción de un select.
type Option struct {
	Value    string `json:"value"`
	Label    string `json:"label"`
	Price    string `json:"price,omitempty"`
	Selected bool   `json:"selected"`
}

// OrderItemView grupo {producto, cantidad, precio} del formulario de órdenes.
type OrderItemView struct {
	Index     int      `json:"index"`
	ProductID string   `json:"product_id"`
	Qty       string   `json:"qty"`
	Price     string   `json:"price"`
	Options   []Option `json:"options"`
	Removable bool     `json:"removable"`
	// Errors por campo del item: "product", "qty", "price".
	Errors map[string]string `json:"errors,omitempty"`
}

// FormView instantánea de un formulario para el render.
type FormView struct {
	Kind    string            `json:"kind"`
	Visible bool              `json:"visible"`
	Mode    string            `json:"mode"` // hidden | create | edit
	Title   string            `json:"title"`
	ID      string            `json:"id,omitempty"`
	Fields  map[string]string `json:"fields"`
	Errors  map[string]string `json:"errors"`
	Busy    bool              `json:"busy"`

	// Solo órdenes.
	Items     []OrderItemView `json:"items,omitempty"`
	Suppliers []Option        `json:"suppliers,omitempty"`
	Statuses  []Option        `json:"statuses,omitempty"`
}

// DeletePrompt estado del modal de confirmación.
type DeletePrompt struct {
	Open    bool   `json:"open"`
	Kind    string `json:"kind,omitempty"`
	ID      string `json:"id,omitempty"`
	Message string `json:"message,omitempty"`
	Busy    bool   `json:"busy"`
}

// Notification mensaje transitorio.
type Notification struct {
	ID       string `json:"id"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
}
