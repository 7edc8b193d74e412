package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/tu-usuario/asset-ledger/internal/domain/entity"
	"github.com/tu-usuario/asset-ledger/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo implementación del log append-only sobre PostgreSQL.
// commit_seq BIGSERIAL da el paso atómico "asignar secuencia y publicar":
// el INSERT confirma secuencia y registro en una sola operación, así que un
// scan nunca ve una escritura parcial.
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

const transactionColumns = `id, commit_seq, kind, base_id, from_base_id, to_base_id,
	equipment_id, quantity, date, supplier, personnel, reason, created_at, created_by`

// Append inserta la transacción y devuelve su ID. Nunca hay UPDATE posterior.
func (r *TransactionRepo) Append(ctx context.Context, tx *entity.Transaction) (string, error) {
	if tx.ID == "" {
		tx.ID = uuid.New().String()
	}
	query := `
		INSERT INTO transactions (id, kind, base_id, from_base_id, to_base_id,
			equipment_id, quantity, date, supplier, personnel, reason, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING commit_seq`
	err := r.q.QueryRow(ctx, query,
		tx.ID, tx.Kind,
		nullIfEmpty(tx.BaseID), nullIfEmpty(tx.FromBaseID), nullIfEmpty(tx.ToBaseID),
		tx.EquipmentID, tx.Quantity, tx.Date,
		nullIfEmpty(tx.Supplier), nullIfEmpty(tx.Personnel), nullIfEmpty(tx.Reason),
		tx.CreatedAt, nullIfEmpty(tx.CreatedBy),
	).Scan(&tx.CommitSeq)
	if err != nil {
		return "", fmt.Errorf("append transaction: %w", err)
	}
	return tx.ID, nil
}

// Scan recorre las transacciones que matchean el filtro en orden ascendente
// de commit_seq, invocando fn por cada fila. La cancelación de ctx aborta la
// query y el cursor; un error de fn corta el scan y se propaga tal cual.
func (r *TransactionRepo) Scan(ctx context.Context, filter repository.ScanFilter, fn func(*entity.Transaction) error) error {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE 1=1`
	var args []any
	pos := 1
	if filter.BaseID != "" {
		query += fmt.Sprintf(" AND (base_id = $%d OR from_base_id = $%d OR to_base_id = $%d)", pos, pos, pos)
		args = append(args, filter.BaseID)
		pos++
	}
	if filter.EquipmentID != "" {
		query += fmt.Sprintf(" AND equipment_id = $%d", pos)
		args = append(args, filter.EquipmentID)
		pos++
	}
	if filter.Kind != "" {
		query += fmt.Sprintf(" AND kind = $%d", pos)
		args = append(args, filter.Kind)
		pos++
	}
	if filter.From != nil {
		query += fmt.Sprintf(" AND date >= $%d", pos)
		args = append(args, *filter.From)
		pos++
	}
	if filter.To != nil {
		query += fmt.Sprintf(" AND date <= $%d", pos)
		args = append(args, *filter.To)
		pos++
	}
	query += " ORDER BY commit_seq ASC"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("scan transactions: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var t entity.Transaction
		var baseID, fromBaseID, toBaseID, supplier, personnel, reason, createdBy *string
		if err := rows.Scan(&t.ID, &t.CommitSeq, &t.Kind, &baseID, &fromBaseID, &toBaseID,
			&t.EquipmentID, &t.Quantity, &t.Date, &supplier, &personnel, &reason,
			&t.CreatedAt, &createdBy); err != nil {
			return fmt.Errorf("scan transaction row: %w", err)
		}
		t.BaseID = orEmpty(baseID)
		t.FromBaseID = orEmpty(fromBaseID)
		t.ToBaseID = orEmpty(toBaseID)
		t.Supplier = orEmpty(supplier)
		t.Personnel = orEmpty(personnel)
		t.Reason = orEmpty(reason)
		t.CreatedBy = orEmpty(createdBy)
		if err := fn(&t); err != nil {
			return err
		}
	}
	return rows.Err()
}
