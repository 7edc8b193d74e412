package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/asset-ledger/internal/application/dto"
	"github.com/tu-usuario/asset-ledger/internal/domain"
	"github.com/tu-usuario/asset-ledger/internal/domain/entity"
	"github.com/tu-usuario/asset-ledger/internal/domain/repository"
)

// EquipmentUseCase CRUD del catálogo de equipos (creación solo Admin).
type EquipmentUseCase struct {
	equipmentRepo repository.EquipmentRepository
}

// NewEquipmentUseCase construye el caso de uso.
func NewEquipmentUseCase(equipmentRepo repository.EquipmentRepository) *EquipmentUseCase {
	return &EquipmentUseCase{equipmentRepo: equipmentRepo}
}

// Create da de alta un tipo de equipo.
func (uc *EquipmentUseCase) Create(ctx context.Context, in dto.CreateEquipmentRequest) (*dto.EquipmentResponse, error) {
	if in.Name == "" || in.Type == "" || in.Price.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	eq := &entity.Equipment{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Type:      in.Type,
		UnitPrice: in.Price,
		CreatedAt: time.Now(),
	}
	if err := uc.equipmentRepo.Create(ctx, eq); err != nil {
		return nil, err
	}
	return toEquipmentResponse(eq), nil
}

// GetByID obtiene un equipo por ID.
func (uc *EquipmentUseCase) GetByID(ctx context.Context, id string) (*dto.EquipmentResponse, error) {
	eq, err := uc.equipmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if eq == nil {
		return nil, domain.ErrNotFound
	}
	return toEquipmentResponse(eq), nil
}

// List devuelve el catálogo completo.
func (uc *EquipmentUseCase) List(ctx context.Context) ([]*dto.EquipmentResponse, error) {
	items, err := uc.equipmentRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.EquipmentResponse, 0, len(items))
	for _, eq := range items {
		out = append(out, toEquipmentResponse(eq))
	}
	return out, nil
}

func toEquipmentResponse(eq *entity.Equipment) *dto.EquipmentResponse {
	return &dto.EquipmentResponse{
		ID:        eq.ID,
		Name:      eq.Name,
		Type:      eq.Type,
		Price:     eq.UnitPrice,
		CreatedAt: eq.CreatedAt,
	}
}
