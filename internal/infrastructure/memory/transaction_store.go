// Package memory implementa los puertos de persistencia sobre estructuras en
// memoria. Es el doble del motor del ledger en los tests y sirve para correr
// la API sin base de datos; el agregador no distingue una implementación de otra.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/tu-usuario/asset-ledger/internal/domain/entity"
	"github.com/tu-usuario/asset-ledger/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionStore)(nil)

// TransactionStore log append-only en memoria. El mutex cubre el único paso
// de coordinación que existe: asignar el commit sequence y publicar el
// registro en el mismo instante. No hay mutación in-place, así que los scans
// concurrentes leen sobre un snapshot sin bloquear a los appends.
type TransactionStore struct {
	mu   sync.RWMutex
	log  []*entity.Transaction
	next int64
}

// NewTransactionStore construye el store vacío.
func NewTransactionStore() *TransactionStore {
	return &TransactionStore{}
}

// Append asigna ID y commit sequence y hace visible la transacción de forma
// atómica. El registro guardado es una copia: el caller no puede mutarlo
// después de confirmado.
func (s *TransactionStore) Append(_ context.Context, tx *entity.Transaction) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.next++
	rec := *tx
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	rec.CommitSeq = s.next
	s.log = append(s.log, &rec)

	tx.ID = rec.ID
	tx.CommitSeq = rec.CommitSeq
	return rec.ID, nil
}

// Scan recorre el log en orden de commit sequence ascendente. Cada llamada
// empieza de cero sobre el snapshot del momento; respeta la cancelación de
// ctx entre registros. fn recibe una copia para preservar la inmutabilidad.
func (s *TransactionStore) Scan(ctx context.Context, filter repository.ScanFilter, fn func(*entity.Transaction) error) error {
	s.mu.RLock()
	snapshot := s.log
	s.mu.RUnlock()

	for _, rec := range snapshot {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !matches(rec, filter) {
			continue
		}
		cp := *rec
		if err := fn(&cp); err != nil {
			return err
		}
	}
	return nil
}

// Len cantidad de transacciones confirmadas (para tests).
func (s *TransactionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.log)
}

func matches(t *entity.Transaction, f repository.ScanFilter) bool {
	if f.Kind != "" && t.Kind != f.Kind {
		return false
	}
	if f.EquipmentID != "" && t.EquipmentID != f.EquipmentID {
		return false
	}
	if f.BaseID != "" && !t.Touches(f.BaseID) {
		return false
	}
	if f.From != nil && t.Date.Before(*f.From) {
		return false
	}
	if f.To != nil && t.Date.After(*f.To) {
		return false
	}
	return true
}
