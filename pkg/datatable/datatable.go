// Package datatable implementa el motor genérico de presentación tabular que
// comparten las pantallas de listado (productos, compras): filtrado por texto
// libre, paginación y resolución de celdas listas para render.
//
// El motor no conoce la semántica del negocio: opera sobre cualquier tipo de
// registro T mediante funciones de acceso declaradas por el llamador.
package datatable

import (
	"fmt"
	"reflect"
	"strings"

	"golang.org/x/text/cases"
)

// DefaultPerPage registros por página cuando el llamador no indica otro valor.
const DefaultPerPage = 10

// Column describe cómo extraer y presentar el valor de una columna.
// Accessor debe ser puro y determinista para un registro dado: puede ser una
// proyección de campo o una derivación sobre el registro completo.
// Cell es opcional; si es nil la celda muestra el valor crudo como texto.
type Column[T any] struct {
	Header   string
	Accessor func(item T) any
	Cell     func(value any, item T) string
}

// Params parámetros de una presentación: término de búsqueda y página pedida.
// Valores de página fuera de rango se ajustan en silencio, nunca son error.
type Params struct {
	Search  string
	Page    int
	PerPage int
}

// Row una fila lista para render: clave estable, registro original y celdas resueltas.
type Row[T any] struct {
	Key   string
	Item  T
	Cells []string
}

// View resultado de una presentación. Empty distingue explícitamente
// "sin resultados" de cualquier otro estado, para que la pantalla pueda
// sustituir su vista vacía propia.
type View[T any] struct {
	Rows          []Row[T]
	Page          int
	PerPage       int
	TotalPages    int
	TotalFiltered int
	Empty         bool
	HasPrev       bool
	HasNext       bool
	From          int // índice 1-based del primer registro mostrado (0 si no hay)
	To            int // índice 1-based del último registro mostrado (0 si no hay)
}

// Present filtra, pagina y resuelve celdas. Es una función pura: mismos
// argumentos producen siempre la misma vista.
//
// Filtrado: un registro entra si CUALQUIERA de sus campos, convertido a texto,
// contiene el término como substring sin distinguir mayúsculas (case folding
// Unicode). Término vacío incluye todo. key debe producir un valor único
// dentro de la colección completa; eso es contrato del llamador.
func Present[T any](data []T, columns []Column[T], key func(item T) string, p Params) View[T] {
	perPage := p.PerPage
	if perPage <= 0 {
		perPage = DefaultPerPage
	}

	filtered := data
	if p.Search != "" {
		folder := cases.Fold()
		term := folder.String(p.Search)
		filtered = make([]T, 0, len(data))
		for _, item := range data {
			if matches(item, term) {
				filtered = append(filtered, item)
			}
		}
	}

	totalPages := (len(filtered) + perPage - 1) / perPage
	if totalPages < 1 {
		totalPages = 1
	}
	page := p.Page
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * perPage
	end := start + perPage
	if start > len(filtered) {
		start = len(filtered)
	}
	if end > len(filtered) {
		end = len(filtered)
	}
	pageItems := filtered[start:end]

	rows := make([]Row[T], 0, len(pageItems))
	for _, item := range pageItems {
		cells := make([]string, 0, len(columns))
		for _, col := range columns {
			value := col.Accessor(item)
			if col.Cell != nil {
				cells = append(cells, col.Cell(value, item))
			} else {
				cells = append(cells, formatValue(value))
			}
		}
		rows = append(rows, Row[T]{Key: key(item), Item: item, Cells: cells})
	}

	view := View[T]{
		Rows:          rows,
		Page:          page,
		PerPage:       perPage,
		TotalPages:    totalPages,
		TotalFiltered: len(filtered),
		Empty:         len(filtered) == 0,
		HasPrev:       page > 1,
		HasNext:       page < totalPages,
	}
	if len(pageItems) > 0 {
		view.From = start + 1
		view.To = start + len(pageItems)
	}
	return view
}

// matches aplica el OR sobre todos los campos del registro: basta con que un
// campo contenga el término (ya case-folded) para incluir el registro.
func matches[T any](item T, foldedTerm string) bool {
	folder := cases.Fold()
	for _, value := range fieldValues(item) {
		if strings.Contains(folder.String(formatValue(value)), foldedTerm) {
			return true
		}
	}
	return false
}

// fieldValues devuelve los valores de campo del registro. Para structs expone
// los campos exportados (equivalente a recorrer todas las propiedades del
// registro); para cualquier otro tipo, el valor completo.
func fieldValues[T any](item T) []any {
	v := reflect.ValueOf(item)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return []any{item}
	}
	t := v.Type()
	values := make([]any, 0, v.NumField())
	for i := 0; i < v.NumField(); i++ {
		if !t.Field(i).IsExported() {
			continue
		}
		switch v.Field(i).Kind() {
		case reflect.Func, reflect.Chan:
			continue
		}
		values = append(values, v.Field(i).Interface())
	}
	return values
}

// formatValue convierte un valor de celda a texto. nil se muestra vacío.
func formatValue(value any) string {
	if value == nil {
		return ""
	}
	return fmt.Sprint(value)
}
