package dto

import "time"

// AuditEventResponse una entrada del log de auditoría (GET /api/auditlog).
type AuditEventResponse struct {
	ID        string    `json:"id"`
	Action    string    `json:"action"`
	User      string    `json:"user"`
	Base      string    `json:"base,omitempty"`
	Equipment string    `json:"equipment,omitempty"`
	Quantity  int64     `json:"quantity"`
	Details   string    `json:"details"`
	Timestamp time.Time `json:"timestamp"`
}
