package usecase

import (
	"context"

	"github.com/tu-usuario/asset-ledger/internal/application/dto"
	"github.com/tu-usuario/asset-ledger/internal/domain/repository"
)

// AuditUseCase lectura del log de auditoría (solo Admin).
type AuditUseCase struct {
	auditRepo repository.AuditRepository
}

// NewAuditUseCase construye el caso de uso.
func NewAuditUseCase(auditRepo repository.AuditRepository) *AuditUseCase {
	return &AuditUseCase{auditRepo: auditRepo}
}

// List devuelve las entradas más recientes del log.
func (uc *AuditUseCase) List(ctx context.Context, page dto.PageRequest) ([]*dto.AuditEventResponse, error) {
	page.DefaultPage()
	events, err := uc.auditRepo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.AuditEventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, &dto.AuditEventResponse{
			ID:        e.ID,
			Action:    e.Action,
			User:      e.Actor,
			Base:      e.BaseID,
			Equipment: e.EquipmentID,
			Quantity:  e.Quantity,
			Details:   e.Details,
			Timestamp: e.Timestamp,
		})
	}
	return out, nil
}
