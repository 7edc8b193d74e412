package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/asset-ledger/internal/domain"
	"github.com/tu-usuario/asset-ledger/internal/domain/entity"
	"github.com/tu-usuario/asset-ledger/internal/domain/repository"
)

var _ repository.BaseRepository = (*BaseRepo)(nil)

// BaseRepo implementación sobre PostgreSQL.
type BaseRepo struct {
	q Querier
}

// NewBaseRepository construye el adaptador.
func NewBaseRepository(q Querier) *BaseRepo {
	return &BaseRepo{q: q}
}

// Create persiste una base.
func (r *BaseRepo) Create(ctx context.Context, base *entity.Base) error {
	query := `INSERT INTO bases (id, name, location, created_at) VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(ctx, query, base.ID, base.Name, base.Location, base.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("create base: %w", err)
	}
	return nil
}

// GetByID obtiene una base por ID; nil si no existe.
func (r *BaseRepo) GetByID(ctx context.Context, id string) (*entity.Base, error) {
	query := `SELECT id, name, location, created_at FROM bases WHERE id = $1`
	var b entity.Base
	err := r.q.QueryRow(ctx, query, id).Scan(&b.ID, &b.Name, &b.Location, &b.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get base: %w", err)
	}
	return &b, nil
}

// List devuelve todas las bases ordenadas por nombre.
func (r *BaseRepo) List(ctx context.Context) ([]*entity.Base, error) {
	query := `SELECT id, name, location, created_at FROM bases ORDER BY name`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list bases: %w", err)
	}
	defer rows.Close()
	var list []*entity.Base
	for rows.Next() {
		var b entity.Base
		if err := rows.Scan(&b.ID, &b.Name, &b.Location, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan base: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}
