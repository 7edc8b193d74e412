package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/asset-ledger/internal/domain/entity"
	"github.com/tu-usuario/asset-ledger/internal/domain/repository"
)

var _ repository.EquipmentRepository = (*EquipmentRepo)(nil)

// EquipmentRepo implementación sobre PostgreSQL. unit_price es NUMERIC y se
// mapea a shopspring/decimal vía el codec registrado en el pool.
type EquipmentRepo struct {
	q Querier
}

// NewEquipmentRepository construye el adaptador.
func NewEquipmentRepository(q Querier) *EquipmentRepo {
	return &EquipmentRepo{q: q}
}

// Create persiste un equipo del catálogo.
func (r *EquipmentRepo) Create(ctx context.Context, eq *entity.Equipment) error {
	query := `INSERT INTO equipments (id, name, type, unit_price, created_at) VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query, eq.ID, eq.Name, eq.Type, eq.UnitPrice, eq.CreatedAt)
	if err != nil {
		return fmt.Errorf("create equipment: %w", err)
	}
	return nil
}

// GetByID obtiene un equipo por ID; nil si no existe.
func (r *EquipmentRepo) GetByID(ctx context.Context, id string) (*entity.Equipment, error) {
	query := `SELECT id, name, type, unit_price, created_at FROM equipments WHERE id = $1`
	var eq entity.Equipment
	err := r.q.QueryRow(ctx, query, id).Scan(&eq.ID, &eq.Name, &eq.Type, &eq.UnitPrice, &eq.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get equipment: %w", err)
	}
	return &eq, nil
}

// List devuelve el catálogo completo ordenado por nombre.
func (r *EquipmentRepo) List(ctx context.Context) ([]*entity.Equipment, error) {
	query := `SELECT id, name, type, unit_price, created_at FROM equipments ORDER BY name`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list equipments: %w", err)
	}
	defer rows.Close()
	var list []*entity.Equipment
	for rows.Next() {
		var eq entity.Equipment
		if err := rows.Scan(&eq.ID, &eq.Name, &eq.Type, &eq.UnitPrice, &eq.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan equipment: %w", err)
		}
		list = append(list, &eq)
	}
	return list, rows.Err()
}
