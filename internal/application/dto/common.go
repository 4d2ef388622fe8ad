package dto

// TableQuery parámetros de listado tabular: búsqueda libre y página.
type TableQuery struct {
	Search  string `query:"search"`
	Page    int    `query:"page"`
	PerPage int    `query:"per_page"`
}

// TableMeta metadatos de la vista tabular en respuestas de listado.
type TableMeta struct {
	Page          int  `json:"page"`
	PerPage       int  `json:"per_page"`
	TotalPages    int  `json:"total_pages"`
	TotalFiltered int  `json:"total_filtered"`
	Empty         bool `json:"empty"`
	HasPrev       bool `json:"has_prev"`
	HasNext       bool `json:"has_next"`
	From          int  `json:"from"`
	To            int  `json:"to"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}
