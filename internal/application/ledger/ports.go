package ledger

import (
	"context"

	"github.com/tu-usuario/asset-ledger/internal/application/dto"
	"github.com/tu-usuario/asset-ledger/internal/domain/entity"
)

// AuditPublisher publica eventos de auditoría hacia un colaborador externo
// (broker AMQP en producción). Best-effort: un error de publicación se
// registra pero nunca revierte el append que lo originó.
type AuditPublisher interface {
	Publish(ctx context.Context, event *entity.AuditEvent) error
}

// ReportGenerator genera la representación PDF de un snapshot de métricas.
type ReportGenerator interface {
	GenerateSnapshotPDF(ctx context.Context, snap *dto.MetricsSnapshotDTO) ([]byte, error)
}
