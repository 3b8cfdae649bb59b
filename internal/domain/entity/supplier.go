package entity

import "time"

// Supplier proveedor. CreatedAt lo asigna el servidor.
type Supplier struct {
	ID        string
	Name      string
	Contact   string
	CreatedAt time.Time
}

// EntityID implementa Identifiable.
func (s Supplier) EntityID() string { return s.ID }
