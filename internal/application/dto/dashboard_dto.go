package dto

// DashboardCounts respuesta de GET /api/dashboard.
// Cada contador es independiente: si una colección falla solo se anulan los suyos.
type DashboardCounts struct {
	TotalProducts  int      `json:"total_products"`
	LowStock       int      `json:"low_stock"`
	TotalSuppliers int      `json:"total_suppliers"`
	TotalOrders    int      `json:"total_orders"`
	Failed         []string `json:"failed,omitempty"` // colecciones que fallaron
}

// NavBadges contadores del menú lateral ("" cuando la caché está vacía).
type NavBadges struct {
	Products  string `json:"products"`
	Suppliers string `json:"suppliers"`
	Orders    string `json:"orders"`
}

// APIStatus conectividad con la API.
type APIStatus struct {
	Connected bool   `json:"connected"`
	Label     string `json:"label"`
	CheckedAt string `json:"checked_at,omitempty"`
}
