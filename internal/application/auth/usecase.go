package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/asset-ledger/internal/application/dto"
	"github.com/tu-usuario/asset-ledger/internal/domain"
	"github.com/tu-usuario/asset-ledger/internal/domain/entity"
	"github.com/tu-usuario/asset-ledger/internal/domain/repository"
	"github.com/tu-usuario/asset-ledger/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: alta de usuarios y login.
// El alta la hace un Admin desde la pantalla de gestión de recursos.
type AuthUseCase struct {
	userRepo repository.UserRepository
	baseRepo repository.BaseRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, baseRepo repository.BaseRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, baseRepo: baseRepo, jwtCfg: jwtCfg}
}

// CreateUser crea un usuario: hashea password con bcrypt y persiste.
// Todo rol distinto de Admin exige una base existente; devuelve
// ErrUsernameTaken si el username ya está registrado.
func (uc *AuthUseCase) CreateUser(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	switch in.Role {
	case entity.RoleAdmin, entity.RoleCommander, entity.RoleLogistics:
	default:
		return nil, domain.ErrInvalidInput
	}
	if in.Role != entity.RoleAdmin {
		if in.Base == "" {
			return nil, domain.ErrInvalidInput
		}
		base, err := uc.baseRepo.GetByID(ctx, in.Base)
		if err != nil {
			return nil, err
		}
		if base == nil {
			return nil, domain.ErrNotFound
		}
	}
	existing, _ := uc.userRepo.FindByUsername(ctx, in.Username)
	if existing != nil {
		return nil, domain.ErrUsernameTaken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     in.Username,
		PasswordHash: string(hash),
		Role:         in.Role,
		BaseID:       in.Base,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica username/password, genera JWT y retorna token + usuario.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != "active" {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.BaseID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

// ListUsers devuelve todos los usuarios (solo Admin, controlado en el router).
func (uc *AuthUseCase) ListUsers(ctx context.Context) ([]*dto.UserResponse, error) {
	users, err := uc.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return out, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Role:      u.Role,
		Base:      u.BaseID,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
	}
}
