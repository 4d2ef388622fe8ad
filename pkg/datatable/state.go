package datatable

import "math"

// State estado de vista de una tabla: término de búsqueda y página actual.
// Cada pantalla crea el suyo al montar y lo descarta al desmontar; no hay
// identidad compartida entre pantallas ni estado global.
//
// La página puede quedar transitoriamente por encima del total (p.ej. tras
// Last o tras un cambio de filtro); Apply la reajusta siempre al rango
// [1, max(1, totalPages)].
type State struct {
	Search  string
	PerPage int
	page    int
}

// NewState crea el estado inicial en la página 1.
func NewState(perPage int) *State {
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	return &State{PerPage: perPage, page: 1}
}

// Page devuelve la página actual.
func (s *State) Page() int { return s.page }

// SetSearch cambia el término de búsqueda y vuelve a la página 1.
func (s *State) SetSearch(term string) {
	s.Search = term
	s.page = 1
}

// SetPage salta a una página concreta. El límite superior se ajusta en Apply.
func (s *State) SetPage(n int) {
	if n < 1 {
		n = 1
	}
	s.page = n
}

// First salta a la primera página.
func (s *State) First() { s.page = 1 }

// Prev retrocede una página sin bajar de la primera.
func (s *State) Prev() {
	if s.page > 1 {
		s.page--
	}
}

// Next avanza una página. El tope se ajusta en Apply.
func (s *State) Next() { s.page++ }

// Last salta a la última página (resuelta en Apply contra los datos filtrados).
func (s *State) Last() { s.page = math.MaxInt }

// Apply presenta los datos con el estado actual y sincroniza la página
// ajustada de vuelta en el estado, de modo que el invariante de rango se
// mantiene tras cada cambio de filtro o navegación.
func Apply[T any](s *State, data []T, columns []Column[T], key func(item T) string) View[T] {
	view := Present(data, columns, key, Params{
		Search:  s.Search,
		Page:    s.page,
		PerPage: s.PerPage,
	})
	s.page = view.Page
	return view
}
