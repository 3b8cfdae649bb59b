package view

import (
	"strings"

	"github.com/jhoicas/stocksync-dashboard/internal/application/dto"
	"github.com/jhoicas/stocksync-dashboard/internal/domain/entity"
)

// MinGlobalSearch longitud mínima del término de búsqueda global.
const MinGlobalSearch = 2

// Filter deja las filas cuyo texto contiene term (sin distinguir mayúsculas) y, si status
// no está vacío, cuyo estado coincide. El filtro de estado solo aplica a órdenes.
// Count pasa a ser el número de filas visibles.
func Filter(v dto.ListView, term, status string) dto.ListView {
	term = strings.ToLower(strings.TrimSpace(term))
	status = strings.ToLower(strings.TrimSpace(status))
	if v.Entity != string(entity.KindOrder) {
		status = ""
	}
	if v.State != dto.ViewReady || (term == "" && status == "") {
		return v
	}

	kept := make([]dto.Row, 0, len(v.Rows))
	for _, r := range v.Rows {
		if term != "" && !strings.Contains(rowText(r), term) {
			continue
		}
		if status != "" && r.Status != status {
			continue
		}
		kept = append(kept, r)
	}
	v.Rows = kept
	v.Count = len(kept)
	return v
}

func rowText(r dto.Row) string {
	var b strings.Builder
	for _, c := range r.Cells {
		b.WriteString(c)
		b.WriteByte(' ')
	}
	if r.Badge != nil {
		b.WriteString(r.Badge.Text)
	}
	return strings.ToLower(b.String())
}
