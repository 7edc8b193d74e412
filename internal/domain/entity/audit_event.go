package entity

import "time"

// AuditEvent registra quién hizo qué sobre el ledger. Se emite uno por cada
// append exitoso; su persistencia/publicación es best-effort y nunca
// revierte la transacción que lo originó.
type AuditEvent struct {
	ID          string
	Action      string // kind de la transacción registrada
	Actor       string // UserID
	BaseID      string
	EquipmentID string
	Quantity    int64
	Details     string
	Timestamp   time.Time
}
