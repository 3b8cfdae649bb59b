package session

import (
	"github.com/jhoicas/stocksync-dashboard/internal/domain"
	"github.com/jhoicas/stocksync-dashboard/internal/domain/entity"
)

// Section sección del menú. Siempre hay exactamente una activa.
type Section string

const (
	SectionDashboard Section = "dashboard"
	SectionProducts  Section = "products"
	SectionSuppliers Section = "suppliers"
	SectionOrders    Section = "orders"
)

// Sections en orden de menú.
var Sections = []Section{SectionDashboard, SectionProducts, SectionSuppliers, SectionOrders}

var sectionTitles = map[Section]string{
	SectionDashboard: "Dashboard",
	SectionProducts:  "Products",
	SectionSuppliers: "Suppliers",
	SectionOrders:    "Orders",
}

// ParseSection valida el nombre recibido en la URL y devuelve la constante
// correspondiente, nunca s: la sesión la guarda más allá del request.
func ParseSection(s string) (Section, error) {
	for _, sec := range Sections {
		if string(sec) == s {
			return sec, nil
		}
	}
	return "", domain.ErrUnknownSection
}

// Title texto del encabezado.
func (s Section) Title() string { return sectionTitles[s] }

// Kind entidad listada en la sección ("" para el dashboard).
func (s Section) Kind() entity.Kind {
	switch s {
	case SectionProducts:
		return entity.KindProduct
	case SectionSuppliers:
		return entity.KindSupplier
	case SectionOrders:
		return entity.KindOrder
	}
	return ""
}

// SectionFor sección que lista kind.
func SectionFor(kind entity.Kind) Section {
	return Section(kind.Collection())
}
