package repository

import (
	"context"

	"github.com/tu-usuario/asset-ledger/internal/domain/entity"
)

// AuditRepository define el puerto de persistencia para eventos de auditoría.
type AuditRepository interface {
	Save(ctx context.Context, event *entity.AuditEvent) error
	List(ctx context.Context, limit, offset int) ([]*entity.AuditEvent, error)
}
