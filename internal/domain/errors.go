package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound               = errors.New("recurso no encontrado")
	ErrInvalidInput           = errors.New("entrada inválida")
	ErrDuplicate              = errors.New("recurso duplicado")
	ErrUnauthorized           = errors.New("no autorizado")
	ErrPermissionDenied       = errors.New("permiso denegado para el rol")
	ErrInvalidTransferRoute   = errors.New("origen y destino del traspaso deben ser distintos")
	ErrInvalidStateTransition = errors.New("transición de estado no permitida")
	ErrInsufficientStock      = errors.New("stock insuficiente")
	ErrTotalMismatch          = errors.New("el total no coincide con la suma de partidas")
)

// Code devuelve el código estable de rechazo para un error de dominio (etiquetas de métricas y respuestas HTTP).
func Code(err error) string {
	switch {
	case err == nil:
		return "OK"
	case errors.Is(err, ErrPermissionDenied):
		return "PERMISSION_DENIED"
	case errors.Is(err, ErrInvalidTransferRoute):
		return "INVALID_TRANSFER_ROUTE"
	case errors.Is(err, ErrInvalidStateTransition):
		return "INVALID_STATE_TRANSITION"
	case errors.Is(err, ErrInsufficientStock):
		return "INSUFFICIENT_STOCK"
	case errors.Is(err, ErrTotalMismatch):
		return "TOTAL_MISMATCH"
	case errors.Is(err, ErrDuplicate):
		return "DUPLICATE"
	case errors.Is(err, ErrNotFound):
		return "NOT_FOUND"
	case errors.Is(err, ErrInvalidInput):
		return "VALIDATION"
	case errors.Is(err, ErrUnauthorized):
		return "UNAUTHORIZED"
	default:
		return "INTERNAL"
	}
}
