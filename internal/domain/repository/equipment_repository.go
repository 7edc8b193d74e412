package repository

import (
	"context"

	"github.com/tu-usuario/asset-ledger/internal/domain/entity"
)

// EquipmentRepository define el puerto de persistencia para el catálogo de equipos.
type EquipmentRepository interface {
	Create(ctx context.Context, eq *entity.Equipment) error
	GetByID(ctx context.Context, id string) (*entity.Equipment, error)
	List(ctx context.Context) ([]*entity.Equipment, error)
}
