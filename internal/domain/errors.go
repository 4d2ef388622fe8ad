package domain

import (
	"errors"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrUnauthorized = errors.New("no autorizado")
	ErrConflict     = errors.New("conflicto con el estado actual")
)

// ValidationError agrupa las violaciones encontradas en la puerta de guardado.
// Es recuperable: el estado del formulario queda intacto para que el usuario
// corrija y reintente.
type ValidationError struct {
	Violations []string
}

// Error devuelve las violaciones como un mensaje legible.
func (e *ValidationError) Error() string {
	return "validación: " + strings.Join(e.Violations, "; ")
}

// NewValidationError construye el error con la lista de violaciones.
func NewValidationError(violations ...string) *ValidationError {
	return &ValidationError{Violations: violations}
}
