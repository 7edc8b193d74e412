package entity

import "time"

// Base representa una base militar donde se almacenan y mueven activos.
// Dato de referencia inmutable; solo un Admin puede crearla.
type Base struct {
	ID        string
	Name      string
	Location  string
	CreatedAt time.Time
}
