package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/portalmembros/portal-api/internal/application/dto"
	"github.com/portalmembros/portal-api/internal/domain"
	"github.com/portalmembros/portal-api/internal/domain/entity"
	"github.com/portalmembros/portal-api/internal/domain/repository"
	"github.com/portalmembros/portal-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuração para geração de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// TokenRevoker porto da lista de revogação (logout). Pode ser nil: sem Redis
// configurado o logout passa a depender só da expiração do token.
type TokenRevoker interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
}

// AuthUseCase casos de uso de autenticação: cadastro, login, logout e perfil.
type AuthUseCase struct {
	userRepo repository.UserRepository
	revoker  TokenRevoker
	jwtCfg   JWTConfig
}

// NewAuthUseCase constrói o caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, revoker TokenRevoker, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, revoker: revoker, jwtCfg: jwtCfg}
}

// Register cria um usuário: hasheia o password com bcrypt e persiste.
// Todo cadastro nasce BASIC e ativo; promoção de papel é pelo console admin.
// Devolve ErrEmailAlreadyExists se o email já estiver cadastrado.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.UserResponse, error) {
	existing, _ := uc.userRepo.GetByEmail(in.Email)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	name := in.Name
	if name == "" {
		name = in.Email
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         entity.RoleBasic,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

// Login verifica email/password, gera JWT e retorna token + usuário.
// Conta desativada devolve ErrAccountDisabled mesmo com credenciais corretas.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.Active {
		return nil, domain.ErrAccountDisabled
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, string(user.Role), uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *ToUserResponse(user),
	}, nil
}

// Logout revoga o token atual pelo jti, pelo tempo de vida que ainda resta.
func (uc *AuthUseCase) Logout(ctx context.Context, claims *jwt.Claims) error {
	if uc.revoker == nil {
		return nil
	}
	return uc.revoker.Revoke(ctx, claims.ID, claims.RemainingTTL(time.Now()))
}

// Me devolve o usuário autenticado.
func (uc *AuthUseCase) Me(userID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return ToUserResponse(user), nil
}

// ToUserResponse converte a entidade para o DTO de saída (sem password).
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      string(u.Role),
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
