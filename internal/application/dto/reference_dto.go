package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateBaseRequest body de POST /api/bases (solo Admin).
type CreateBaseRequest struct {
	Name     string `json:"name"`
	Location string `json:"location"`
}

// BaseResponse representación de una base.
type BaseResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateEquipmentRequest body de POST /api/equipments (solo Admin).
type CreateEquipmentRequest struct {
	Name  string          `json:"name"`
	Type  string          `json:"type"`
	Price decimal.Decimal `json:"price"`
}

// EquipmentResponse representación de un equipo del catálogo.
type EquipmentResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Type      string          `json:"type"`
	Price     decimal.Decimal `json:"price"`
	CreatedAt time.Time       `json:"createdAt"`
}
