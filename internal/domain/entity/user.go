package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin     = "Admin"
	RoleCommander = "Commander"
	RoleLogistics = "Logistics"
)

// User representa un usuario del sistema. Todo rol distinto de Admin
// queda atado a su base (BaseID); Admin opera sobre cualquier base.
type User struct {
	ID           string
	Username     string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // Admin, Commander, Logistics
	BaseID       string // vacío solo para Admin
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
