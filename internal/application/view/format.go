// Package view convierte colecciones en filas de presentación independientes del toolkit
// de UI. Las funciones son puras: misma entrada, misma salida, sin efectos.
package view

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const notAvailable = "N/A"

// Money formatea un importe como "$19.98".
func Money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

// Date fecha corta o N/A si el servidor no la envió.
func Date(t time.Time) string {
	if t.IsZero() {
		return notAvailable
	}
	return t.Format("2006-01-02")
}

// Title "pending" → "Pending". Un Caser no se comparte entre goroutines.
func Title(s string) string {
	return cases.Title(language.English).String(s)
}

// ShortID primeros 8 caracteres + "...".
func ShortID(id string) string {
	if id == "" {
		return notAvailable
	}
	r := []rune(id)
	if len(r) <= 8 {
		return id
	}
	return string(r[:8]) + "..."
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return notAvailable
	}
	return s
}

// Itoa entero como texto.
func Itoa(n int) string { return strconv.Itoa(n) }
