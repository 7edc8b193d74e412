package ledger

import (
	"context"
	"time"

	"github.com/tu-usuario/asset-ledger/internal/application/dto"
	"github.com/tu-usuario/asset-ledger/internal/domain"
	"github.com/tu-usuario/asset-ledger/internal/domain/repository"
)

// MetricsUseCase es el punto de entrada único de lectura del dashboard.
// Orquesta en este orden: validación de rango → clamp de alcance →
// resolución de referencias → agregación. El clamp va antes que cualquier
// lookup para que un caller fuera de alcance no pueda deducir la existencia
// de datos ajenos a partir de la forma del error.
type MetricsUseCase struct {
	aggregator    *Aggregator
	baseRepo      repository.BaseRepository
	equipmentRepo repository.EquipmentRepository
}

// NewMetricsUseCase construye el facade de consulta.
func NewMetricsUseCase(
	aggregator *Aggregator,
	baseRepo repository.BaseRepository,
	equipmentRepo repository.EquipmentRepository,
) *MetricsUseCase {
	return &MetricsUseCase{
		aggregator:    aggregator,
		baseRepo:      baseRepo,
		equipmentRepo: equipmentRepo,
	}
}

// GetMetrics valida la petición, clampa la base al alcance del rol y delega
// en el agregador. (role, homeBaseID) vienen del contexto de identidad ya
// verificado (JWT); el facade confía en ellos.
func (uc *MetricsUseCase) GetMetrics(ctx context.Context, role, homeBaseID string, req dto.MetricsRequest) (*dto.MetricsSnapshotDTO, error) {
	from, err := parseDate(req.FromDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	to, err := parseDate(req.ToDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	if from.After(to) {
		// Se rechaza aquí, antes del clamp y de cualquier scan del store.
		return nil, domain.ErrInvalidRange
	}

	effectiveBase, err := ScopeBase(role, homeBaseID, req.Base)
	if err != nil {
		return nil, err
	}

	var baseName, equipmentName string
	if effectiveBase != "" {
		base, err := uc.baseRepo.GetByID(ctx, effectiveBase)
		if err != nil {
			return nil, err
		}
		if base == nil {
			return nil, domain.ErrNotFound
		}
		baseName = base.Name
	}
	if req.Equipment != "" {
		eq, err := uc.equipmentRepo.GetByID(ctx, req.Equipment)
		if err != nil {
			return nil, err
		}
		if eq == nil {
			return nil, domain.ErrNotFound
		}
		equipmentName = eq.Name
	}

	snap, err := uc.aggregator.Compute(ctx, effectiveBase, req.Equipment, from, to)
	if err != nil {
		return nil, err
	}
	snap.BaseName = baseName
	snap.EquipmentName = equipmentName
	return snap, nil
}

// parseDate interpreta una fecha de negocio YYYY-MM-DD (obligatoria).
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, domain.ErrInvalidInput
	}
	return time.Parse(dateLayout, s)
}

// parseOptionalDate interpreta una fecha que puede venir vacía (filtros de listado).
func parseOptionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	return &t, nil
}
