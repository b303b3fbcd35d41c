package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrItemNotFound      = errors.New("ítem no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInvalidStatus     = errors.New("estado fuera del conjunto permitido")
	ErrIllegalTransition = errors.New("transición de estado no permitida")
	ErrConflict          = errors.New("conflicto con el estado actual")
)
