package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/asset-ledger/internal/domain/entity"
	"github.com/tu-usuario/asset-ledger/internal/domain/repository"
)

var _ repository.AuditRepository = (*AuditRepo)(nil)

// AuditRepo implementación sobre PostgreSQL.
type AuditRepo struct {
	q Querier
}

// NewAuditRepository construye el adaptador.
func NewAuditRepository(q Querier) *AuditRepo {
	return &AuditRepo{q: q}
}

// Save persiste un evento de auditoría.
func (r *AuditRepo) Save(ctx context.Context, event *entity.AuditEvent) error {
	query := `
		INSERT INTO audit_events (id, action, actor, base_id, equipment_id, quantity, details, ts)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		event.ID, event.Action, nullIfEmpty(event.Actor),
		nullIfEmpty(event.BaseID), nullIfEmpty(event.EquipmentID),
		event.Quantity, event.Details, event.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("save audit event: %w", err)
	}
	return nil
}

// List devuelve eventos en orden cronológico inverso (más reciente primero).
func (r *AuditRepo) List(ctx context.Context, limit, offset int) ([]*entity.AuditEvent, error) {
	query := `
		SELECT id, action, actor, base_id, equipment_id, quantity, details, ts
		FROM audit_events ORDER BY ts DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list audit events: %w", err)
	}
	defer rows.Close()
	var list []*entity.AuditEvent
	for rows.Next() {
		var e entity.AuditEvent
		var actor, baseID, equipmentID *string
		if err := rows.Scan(&e.ID, &e.Action, &actor, &baseID, &equipmentID, &e.Quantity, &e.Details, &e.Timestamp); err != nil {
			return nil, fmt.Errorf("scan audit event: %w", err)
		}
		e.Actor = orEmpty(actor)
		e.BaseID = orEmpty(baseID)
		e.EquipmentID = orEmpty(equipmentID)
		list = append(list, &e)
	}
	return list, rows.Err()
}
