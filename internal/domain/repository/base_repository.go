package repository

import (
	"context"

	"github.com/tu-usuario/asset-ledger/internal/domain/entity"
)

// BaseRepository define el puerto de persistencia para bases (dato de referencia).
type BaseRepository interface {
	Create(ctx context.Context, base *entity.Base) error
	GetByID(ctx context.Context, id string) (*entity.Base, error)
	List(ctx context.Context) ([]*entity.Base, error)
}
