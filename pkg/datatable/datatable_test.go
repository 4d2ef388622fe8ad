package datatable_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/almacen-pro/pkg/datatable"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type record struct {
	ID   string
	Name string
	SKU  string
}

func testColumns() []datatable.Column[record] {
	return []datatable.Column[record]{
		{Header: "Producto", Accessor: func(r record) any { return r.Name }},
		{Header: "SKU", Accessor: func(r record) any { return r.SKU }},
	}
}

func keyOf(r record) string { return r.ID }

// buildRecords genera n registros con nombres Item-1..Item-n.
func buildRecords(n int) []record {
	out := make([]record, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, record{
			ID:   fmt.Sprintf("%d", i),
			Name: fmt.Sprintf("Item-%d", i),
			SKU:  fmt.Sprintf("SKU-%03d", i),
		})
	}
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Filtrado
// ──────────────────────────────────────────────────────────────────────────────

// Escenario de referencia: búsqueda en árabe debe encontrar solo el registro
// cuyo nombre contiene el término.
func TestPresent_FiltroArabe(t *testing.T) {
	data := []record{
		{ID: "1", Name: "كابل", SKU: "C1"},
		{ID: "2", Name: "مفتاح", SKU: "S1"},
	}

	view := datatable.Present(data, testColumns(), keyOf, datatable.Params{Search: "كابل"})

	require.Len(t, view.Rows, 1, "solo el primer registro contiene el término")
	assert.Equal(t, "1", view.Rows[0].Key)
	assert.Equal(t, 1, view.TotalFiltered)
	assert.False(t, view.Empty)
}

// El filtro no distingue mayúsculas de minúsculas.
func TestPresent_FiltroCaseInsensitive(t *testing.T) {
	data := []record{
		{ID: "1", Name: "Cable eléctrico", SKU: "CAB-2015"},
		{ID: "2", Name: "Interruptor", SKU: "SW-D200"},
	}

	view := datatable.Present(data, testColumns(), keyOf, datatable.Params{Search: "cab"})

	require.Len(t, view.Rows, 1)
	assert.Equal(t, "1", view.Rows[0].Key, "CAB-2015 debe coincidir con el término cab")
}

// El término se compara contra TODOS los campos del registro (OR), no solo
// contra las columnas declaradas.
func TestPresent_FiltroSobreTodosLosCampos(t *testing.T) {
	data := []record{
		{ID: "1", Name: "Cable", SKU: "ZZZ-999"},
		{ID: "2", Name: "Lámpara", SKU: "AAA-111"},
	}
	// Columnas solo con Name; el término coincide con el SKU del registro 1.
	cols := []datatable.Column[record]{
		{Header: "Producto", Accessor: func(r record) any { return r.Name }},
	}

	view := datatable.Present(data, cols, keyOf, datatable.Params{Search: "zzz"})

	require.Len(t, view.Rows, 1)
	assert.Equal(t, "1", view.Rows[0].Key)
}

// Término vacío incluye todos los registros.
func TestPresent_SinTerminoIncluyeTodo(t *testing.T) {
	data := buildRecords(7)
	view := datatable.Present(data, testColumns(), keyOf, datatable.Params{})
	assert.Equal(t, 7, view.TotalFiltered)
}

// Propiedad: todo registro incluido tiene al menos un campo que contiene el
// término; todo registro excluido no tiene ninguno.
func TestPresent_PropiedadDeInclusion(t *testing.T) {
	data := buildRecords(30)
	term := "item-1" // coincide con Item-1 e Item-10..Item-19

	view := datatable.Present(data, testColumns(), keyOf, datatable.Params{
		Search:  term,
		PerPage: 100,
	})

	included := map[string]bool{}
	for _, row := range view.Rows {
		included[row.Key] = true
		has := strings.Contains(strings.ToLower(row.Item.Name), term) ||
			strings.Contains(strings.ToLower(row.Item.SKU), term) ||
			strings.Contains(strings.ToLower(row.Item.ID), term)
		assert.True(t, has, "el registro incluido %s debe contener el término en algún campo", row.Key)
	}
	for _, r := range data {
		if included[r.ID] {
			continue
		}
		has := strings.Contains(strings.ToLower(r.Name), term) ||
			strings.Contains(strings.ToLower(r.SKU), term) ||
			strings.Contains(strings.ToLower(r.ID), term)
		assert.False(t, has, "el registro excluido %s no debe contener el término", r.ID)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Paginación
// ──────────────────────────────────────────────────────────────────────────────

// Escenario de referencia: 25 registros con perPage 10 producen 3 páginas y
// la tercera contiene exactamente 5.
func TestPresent_VeinticincoRegistrosTresPaginas(t *testing.T) {
	data := buildRecords(25)

	p1 := datatable.Present(data, testColumns(), keyOf, datatable.Params{Page: 1, PerPage: 10})
	p3 := datatable.Present(data, testColumns(), keyOf, datatable.Params{Page: 3, PerPage: 10})

	assert.Equal(t, 3, p1.TotalPages)
	assert.Len(t, p1.Rows, 10)
	assert.Len(t, p3.Rows, 5, "la última página contiene los 5 restantes")
	assert.Equal(t, 21, p3.From)
	assert.Equal(t, 25, p3.To)
}

// Propiedad: la suma de filas de todas las páginas es el total filtrado y
// ninguna página salvo la última queda corta.
func TestPresent_PropiedadDeParticion(t *testing.T) {
	data := buildRecords(43)
	perPage := 7

	first := datatable.Present(data, testColumns(), keyOf, datatable.Params{PerPage: perPage})
	total := 0
	for page := 1; page <= first.TotalPages; page++ {
		v := datatable.Present(data, testColumns(), keyOf, datatable.Params{Page: page, PerPage: perPage})
		total += len(v.Rows)
		if page < v.TotalPages {
			assert.Len(t, v.Rows, perPage, "la página %d no es la última y debe ir llena", page)
		}
	}
	assert.Equal(t, first.TotalFiltered, total, "las páginas deben particionar el total filtrado")
}

// Páginas fuera de rango se ajustan en silencio, nunca son error.
func TestPresent_PaginaFueraDeRangoSeAjusta(t *testing.T) {
	data := buildRecords(25)

	tooHigh := datatable.Present(data, testColumns(), keyOf, datatable.Params{Page: 99, PerPage: 10})
	assert.Equal(t, 3, tooHigh.Page, "página 99 se ajusta a la última")

	tooLow := datatable.Present(data, testColumns(), keyOf, datatable.Params{Page: -5, PerPage: 10})
	assert.Equal(t, 1, tooLow.Page, "página negativa se ajusta a la primera")
}

// Sin resultados: una página mínima, estado vacío explícito.
func TestPresent_SinResultados(t *testing.T) {
	data := buildRecords(5)

	view := datatable.Present(data, testColumns(), keyOf, datatable.Params{Search: "no-existe"})

	assert.True(t, view.Empty, "Empty debe señalar explícitamente el resultado vacío")
	assert.Equal(t, 1, view.TotalPages, "mínimo una página aunque no haya resultados")
	assert.Equal(t, 0, view.TotalFiltered)
	assert.Zero(t, view.From)
	assert.Zero(t, view.To)
	assert.Empty(t, view.Rows)
}

// HasPrev/HasNext reflejan los bordes para deshabilitar los botones de salto.
func TestPresent_BordesDeNavegacion(t *testing.T) {
	data := buildRecords(25)

	first := datatable.Present(data, testColumns(), keyOf, datatable.Params{Page: 1, PerPage: 10})
	assert.False(t, first.HasPrev, "en la primera página no hay anterior")
	assert.True(t, first.HasNext)

	last := datatable.Present(data, testColumns(), keyOf, datatable.Params{Page: 3, PerPage: 10})
	assert.True(t, last.HasPrev)
	assert.False(t, last.HasNext, "en la última página no hay siguiente")
}

// Idempotencia: la misma llamada produce siempre la misma vista.
func TestPresent_EsPura(t *testing.T) {
	data := buildRecords(25)
	p := datatable.Params{Search: "item-1", Page: 2, PerPage: 5}

	v1 := datatable.Present(data, testColumns(), keyOf, p)
	v2 := datatable.Present(data, testColumns(), keyOf, p)

	assert.Equal(t, v1, v2, "Present debe ser una función pura")
}

// ──────────────────────────────────────────────────────────────────────────────
// Resolución de celdas
// ──────────────────────────────────────────────────────────────────────────────

// Sin Cell, el valor crudo se convierte a texto; con Cell, se aplica el
// transformador declarado.
func TestPresent_ResolucionDeCeldas(t *testing.T) {
	data := []record{{ID: "1", Name: "Cable", SKU: "CAB-1"}}
	cols := []datatable.Column[record]{
		{Header: "Producto", Accessor: func(r record) any { return r.Name }},
		{
			Header:   "Código",
			Accessor: func(r record) any { return r.SKU },
			Cell:     func(value any, _ record) string { return "[" + value.(string) + "]" },
		},
		// Derivación sobre el registro completo, no un campo directo.
		{Header: "Resumen", Accessor: func(r record) any { return r.Name + " / " + r.SKU }},
	}

	view := datatable.Present(data, cols, keyOf, datatable.Params{})

	require.Len(t, view.Rows, 1)
	assert.Equal(t, []string{"Cable", "[CAB-1]", "Cable / CAB-1"}, view.Rows[0].Cells)
}

// ──────────────────────────────────────────────────────────────────────────────
// Estado de vista (State + Apply)
// ──────────────────────────────────────────────────────────────────────────────

func TestState_CambiarBusquedaVuelveAPagina1(t *testing.T) {
	data := buildRecords(25)
	st := datatable.NewState(10)
	st.SetPage(3)

	st.SetSearch("item")
	view := datatable.Apply(st, data, testColumns(), keyOf)

	assert.Equal(t, 1, view.Page, "cambiar el término debe volver a la página 1")
	assert.Equal(t, 1, st.Page())
}

func TestState_NavegacionConLimites(t *testing.T) {
	data := buildRecords(25)
	st := datatable.NewState(10)

	st.Prev()
	view := datatable.Apply(st, data, testColumns(), keyOf)
	assert.Equal(t, 1, view.Page, "Prev en la primera página es no-op")

	st.Last()
	view = datatable.Apply(st, data, testColumns(), keyOf)
	assert.Equal(t, 3, view.Page, "Last salta a la última página")

	st.Next()
	view = datatable.Apply(st, data, testColumns(), keyOf)
	assert.Equal(t, 3, view.Page, "Next en la última página se ajusta")

	st.First()
	view = datatable.Apply(st, data, testColumns(), keyOf)
	assert.Equal(t, 1, view.Page)
}

// Si el filtro reduce el total de páginas, la página actual se reajusta.
func TestState_FiltroReajustaPagina(t *testing.T) {
	data := buildRecords(25)
	st := datatable.NewState(10)
	st.Last()
	_ = datatable.Apply(st, data, testColumns(), keyOf)
	require.Equal(t, 3, st.Page())

	// Se asigna el término sin pasar por SetSearch para comprobar que el
	// ajuste de página ocurre igualmente al aplicar el filtro.
	st.Search = "item-13"
	view := datatable.Apply(st, data, testColumns(), keyOf)

	assert.Equal(t, 1, view.Page, "la página se ajusta al nuevo total")
	assert.Equal(t, 1, st.Page(), "el estado queda sincronizado con la vista")
}
