package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrBackend      = errors.New("el backend de estoque respondió con error")
	ErrUnavailable  = errors.New("backend de estoque no disponible")
)
