package memory

import (
	"context"
	"sync"

	"github.com/tu-usuario/asset-ledger/internal/domain/entity"
	"github.com/tu-usuario/asset-ledger/internal/domain/repository"
)

var _ repository.AuditRepository = (*AuditStore)(nil)

// AuditStore log de auditoría en memoria (más reciente primero al listar).
type AuditStore struct {
	mu     sync.RWMutex
	events []*entity.AuditEvent
}

// NewAuditStore construye el store vacío.
func NewAuditStore() *AuditStore {
	return &AuditStore{}
}

func (s *AuditStore) Save(_ context.Context, event *entity.AuditEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *event
	s.events = append(s.events, &cp)
	return nil
}

func (s *AuditStore) List(_ context.Context, limit, offset int) ([]*entity.AuditEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entity.AuditEvent, 0, limit)
	for i := len(s.events) - 1 - offset; i >= 0 && len(out) < limit; i-- {
		cp := *s.events[i]
		out = append(out, &cp)
	}
	return out, nil
}
