package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrUserNotFound = errors.New("usuario no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrPersistence  = errors.New("error de persistencia")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
)

// Razones legibles por máquina que acompañan a los errores expuestos al cliente.
const (
	ReasonNotFound     = "NOT_FOUND"
	ReasonValidation   = "VALIDATION"
	ReasonPersistence  = "PERSISTENCE"
	ReasonDuplicate    = "DUPLICATE"
	ReasonUnauthorized = "UNAUTHORIZED"
	ReasonForbidden    = "FORBIDDEN"
	ReasonInternal     = "INTERNAL"
)

// Reason clasifica err en una de las razones anteriores (INTERNAL si no es un error de dominio).
func Reason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrUserNotFound):
		return ReasonNotFound
	case errors.Is(err, ErrInvalidInput):
		return ReasonValidation
	case errors.Is(err, ErrPersistence):
		return ReasonPersistence
	case errors.Is(err, ErrDuplicate):
		return ReasonDuplicate
	case errors.Is(err, ErrUnauthorized):
		return ReasonUnauthorized
	case errors.Is(err, ErrForbidden):
		return ReasonForbidden
	default:
		return ReasonInternal
	}
}
