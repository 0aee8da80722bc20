package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrDuplicate       = errors.New("recurso duplicado")
	ErrLimitExceeded   = errors.New("límite de subcategorías alcanzado")
	ErrInvalidQuantity = errors.New("la cantidad no puede ser negativa")
	ErrUnauthorized    = errors.New("no autorizado")
)
