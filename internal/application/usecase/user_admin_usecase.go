package usecase

import (
	"time"

	"github.com/portalmembros/portal-api/internal/application/dto"
	"github.com/portalmembros/portal-api/internal/domain"
	"github.com/portalmembros/portal-api/internal/domain/entity"
	"github.com/portalmembros/portal-api/internal/domain/repository"
)

// UserAdminUseCase console admin de usuários: listagem, troca de papel e
// ativação/desativação de conta.
type UserAdminUseCase struct {
	repo repository.UserRepository
}

// NewUserAdminUseCase constrói o caso de uso.
func NewUserAdminUseCase(repo repository.UserRepository) *UserAdminUseCase {
	return &UserAdminUseCase{repo: repo}
}

// List lista usuários com paginação.
func (uc *UserAdminUseCase) List(limit, offset int) (*dto.UserListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, dto.UserResponse{
			ID:        u.ID,
			Email:     u.Email,
			Name:      u.Name,
			Role:      string(u.Role),
			Active:    u.Active,
			CreatedAt: u.CreatedAt,
			UpdatedAt: u.UpdatedAt,
		})
	}
	return &dto.UserListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// UpdateRole troca o papel de um usuário. Papel fora da enumeração devolve ErrInvalidInput.
func (uc *UserAdminUseCase) UpdateRole(id string, role entity.Role) (*dto.UserResponse, error) {
	if !role.Valid() {
		return nil, domain.ErrInvalidInput
	}
	return uc.mutate(id, func(u *entity.User) {
		u.Role = role
	})
}

// SetActive ativa/desativa uma conta. A desativação vale a partir da próxima
// requisição do alvo: o gate relê a linha do usuário a cada acesso.
func (uc *UserAdminUseCase) SetActive(id string, active bool) (*dto.UserResponse, error) {
	return uc.mutate(id, func(u *entity.User) {
		u.Active = active
	})
}

func (uc *UserAdminUseCase) mutate(id string, fn func(*entity.User)) (*dto.UserResponse, error) {
	u, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	fn(u)
	u.UpdatedAt = time.Now()
	if err := uc.repo.Update(u); err != nil {
		return nil, err
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      string(u.Role),
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}, nil
}
