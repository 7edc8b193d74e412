package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Equipment representa un tipo de equipo del catálogo (arma, vehículo, munición...).
// Dato de referencia inmutable; las transacciones lo referencian por ID.
type Equipment struct {
	ID        string
	Name      string
	Type      string
	UnitPrice decimal.Decimal
	CreatedAt time.Time
}
