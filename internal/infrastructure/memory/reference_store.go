package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/tu-usuario/asset-ledger/internal/domain/entity"
	"github.com/tu-usuario/asset-ledger/internal/domain/repository"
)

var (
	_ repository.BaseRepository      = (*BaseStore)(nil)
	_ repository.EquipmentRepository = (*EquipmentStore)(nil)
	_ repository.UserRepository      = (*UserStore)(nil)
)

// BaseStore repositorio de bases en memoria.
type BaseStore struct {
	mu    sync.RWMutex
	items map[string]*entity.Base
}

// NewBaseStore construye el store vacío.
func NewBaseStore() *BaseStore {
	return &BaseStore{items: map[string]*entity.Base{}}
}

func (s *BaseStore) Create(_ context.Context, base *entity.Base) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *base
	s.items[base.ID] = &cp
	return nil
}

func (s *BaseStore) GetByID(_ context.Context, id string) (*entity.Base, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.items[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (s *BaseStore) List(_ context.Context) ([]*entity.Base, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entity.Base, 0, len(s.items))
	for _, b := range s.items {
		cp := *b
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// EquipmentStore catálogo de equipos en memoria.
type EquipmentStore struct {
	mu    sync.RWMutex
	items map[string]*entity.Equipment
}

// NewEquipmentStore construye el store vacío.
func NewEquipmentStore() *EquipmentStore {
	return &EquipmentStore{items: map[string]*entity.Equipment{}}
}

func (s *EquipmentStore) Create(_ context.Context, eq *entity.Equipment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *eq
	s.items[eq.ID] = &cp
	return nil
}

func (s *EquipmentStore) GetByID(_ context.Context, id string) (*entity.Equipment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	eq, ok := s.items[id]
	if !ok {
		return nil, nil
	}
	cp := *eq
	return &cp, nil
}

func (s *EquipmentStore) List(_ context.Context) ([]*entity.Equipment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entity.Equipment, 0, len(s.items))
	for _, eq := range s.items {
		cp := *eq
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// UserStore repositorio de usuarios en memoria.
type UserStore struct {
	mu    sync.RWMutex
	items map[string]*entity.User
}

// NewUserStore construye el store vacío.
func NewUserStore() *UserStore {
	return &UserStore{items: map[string]*entity.User{}}
}

func (s *UserStore) Create(_ context.Context, user *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *user
	s.items[user.ID] = &cp
	return nil
}

func (s *UserStore) GetByID(_ context.Context, id string) (*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.items[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (s *UserStore) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.items {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *UserStore) List(_ context.Context) ([]*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entity.User, 0, len(s.items))
	for _, u := range s.items {
		cp := *u
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out, nil
}
