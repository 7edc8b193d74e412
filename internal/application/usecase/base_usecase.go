package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/asset-ledger/internal/application/dto"
	"github.com/tu-usuario/asset-ledger/internal/domain"
	"github.com/tu-usuario/asset-ledger/internal/domain/entity"
	"github.com/tu-usuario/asset-ledger/internal/domain/repository"
)

// BaseUseCase CRUD de bases (dato de referencia; creación solo Admin).
type BaseUseCase struct {
	baseRepo repository.BaseRepository
}

// NewBaseUseCase construye el caso de uso.
func NewBaseUseCase(baseRepo repository.BaseRepository) *BaseUseCase {
	return &BaseUseCase{baseRepo: baseRepo}
}

// Create crea una base nueva.
func (uc *BaseUseCase) Create(ctx context.Context, in dto.CreateBaseRequest) (*dto.BaseResponse, error) {
	if in.Name == "" || in.Location == "" {
		return nil, domain.ErrInvalidInput
	}
	base := &entity.Base{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Location:  in.Location,
		CreatedAt: time.Now(),
	}
	if err := uc.baseRepo.Create(ctx, base); err != nil {
		return nil, err
	}
	return toBaseResponse(base), nil
}

// GetByID obtiene una base por ID.
func (uc *BaseUseCase) GetByID(ctx context.Context, id string) (*dto.BaseResponse, error) {
	base, err := uc.baseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if base == nil {
		return nil, domain.ErrNotFound
	}
	return toBaseResponse(base), nil
}

// List devuelve todas las bases.
func (uc *BaseUseCase) List(ctx context.Context) ([]*dto.BaseResponse, error) {
	bases, err := uc.baseRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.BaseResponse, 0, len(bases))
	for _, b := range bases {
		out = append(out, toBaseResponse(b))
	}
	return out, nil
}

func toBaseResponse(b *entity.Base) *dto.BaseResponse {
	return &dto.BaseResponse{
		ID:        b.ID,
		Name:      b.Name,
		Location:  b.Location,
		CreatedAt: b.CreatedAt,
	}
}
