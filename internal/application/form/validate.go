package form

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stocksync-dashboard/internal/domain"
)

// validator acumula errores por campo.
type validator struct {
	errs domain.ValidationErrors
}

func (v *validator) add(field, reason string) {
	v.errs = append(v.errs, domain.ValidationError{Field: field, Reason: reason})
}

// required devuelve el texto recortado; vacío registra reason.
func (v *validator) required(field, value, reason string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		v.add(field, reason)
	}
	return value
}

// money precio ≥ 0.
func (v *validator) money(field, value, reason string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil || d.IsNegative() {
		v.add(field, reason)
		return decimal.Zero
	}
	return d
}

// integer entero ≥ min.
func (v *validator) integer(field, value string, min int, reason string) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n < min {
		v.add(field, reason)
		return 0
	}
	return n
}

func (v *validator) err() error {
	if len(v.errs) == 0 {
		return nil
	}
	return v.errs
}
