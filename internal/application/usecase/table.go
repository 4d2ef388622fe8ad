package usecase

import (
	"github.com/tu-usuario/almacen-pro/internal/application/dto"
	"github.com/tu-usuario/almacen-pro/pkg/datatable"
)

// tableMeta convierte la vista del motor tabular en metadatos de respuesta.
func tableMeta[T any](v datatable.View[T]) dto.TableMeta {
	return dto.TableMeta{
		Page:          v.Page,
		PerPage:       v.PerPage,
		TotalPages:    v.TotalPages,
		TotalFiltered: v.TotalFiltered,
		Empty:         v.Empty,
		HasPrev:       v.HasPrev,
		HasNext:       v.HasNext,
		From:          v.From,
		To:            v.To,
	}
}

// tableHeaders extrae los encabezados declarados de las columnas.
func tableHeaders[T any](columns []datatable.Column[T]) []string {
	headers := make([]string, 0, len(columns))
	for _, c := range columns {
		headers = append(headers, c.Header)
	}
	return headers
}
