package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound      = errors.New("recurso no encontrado")
	ErrUserNotFound  = errors.New("usuario no encontrado")
	ErrUsernameTaken = errors.New("el username ya está registrado")
	ErrInvalidInput  = errors.New("entrada inválida")
	ErrInvalidRange  = errors.New("rango de fechas inválido")
	ErrOverflow      = errors.New("desbordamiento en acumulador")
	ErrUnauthorized  = errors.New("no autorizado")
	ErrForbidden     = errors.New("acceso denegado")
)
