package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/portalmembros/portal-api/internal/application/dto"
	"github.com/portalmembros/portal-api/internal/domain"
	"github.com/portalmembros/portal-api/internal/domain/entity"
	"github.com/portalmembros/portal-api/internal/domain/repository"
)

// SavedSupplierUseCase CRM pessoal de fornecedores. Toda operação recebe o
// userID do chamador e recusa acesso a anotações de outros usuários.
type SavedSupplierUseCase struct {
	repo repository.SavedSupplierRepository
}

// NewSavedSupplierUseCase constrói o caso de uso.
func NewSavedSupplierUseCase(repo repository.SavedSupplierRepository) *SavedSupplierUseCase {
	return &SavedSupplierUseCase{repo: repo}
}

// Create cria uma anotação para o usuário.
func (uc *SavedSupplierUseCase) Create(userID string, in dto.CreateSavedSupplierRequest) (*dto.SavedSupplierResponse, error) {
	if in.Rating < 0 || in.Rating > 5 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	s := &entity.SavedSupplier{
		ID:         uuid.New().String(),
		UserID:     userID,
		SupplierID: in.SupplierID,
		Name:       in.Name,
		Contact:    in.Contact,
		Notes:      in.Notes,
		Rating:     in.Rating,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(s); err != nil {
		return nil, err
	}
	return toSavedSupplierResponse(s), nil
}

// GetByID obtém uma anotação; dono diferente devolve ErrForbidden.
func (uc *SavedSupplierUseCase) GetByID(userID, id string) (*dto.SavedSupplierResponse, error) {
	s, err := uc.owned(userID, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, nil
	}
	return toSavedSupplierResponse(s), nil
}

// Update atualização parcial de uma anotação do próprio usuário.
func (uc *SavedSupplierUseCase) Update(userID, id string, in dto.UpdateSavedSupplierRequest) (*dto.SavedSupplierResponse, error) {
	s, err := uc.owned(userID, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, nil
	}
	if in.Name != nil {
		s.Name = *in.Name
	}
	if in.Contact != nil {
		s.Contact = *in.Contact
	}
	if in.Notes != nil {
		s.Notes = *in.Notes
	}
	if in.Rating != nil {
		if *in.Rating < 0 || *in.Rating > 5 {
			return nil, domain.ErrInvalidInput
		}
		s.Rating = *in.Rating
	}
	s.UpdatedAt = time.Now()
	if err := uc.repo.Update(s); err != nil {
		return nil, err
	}
	return toSavedSupplierResponse(s), nil
}

// Delete remove uma anotação do próprio usuário.
func (uc *SavedSupplierUseCase) Delete(userID, id string) error {
	s, err := uc.owned(userID, id)
	if err != nil {
		return err
	}
	if s == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// List lista as anotações do usuário.
func (uc *SavedSupplierUseCase) List(userID string, limit, offset int) (*dto.SavedSupplierListResponse, error) {
	list, err := uc.repo.ListByUser(userID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SavedSupplierResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSavedSupplierResponse(s))
	}
	return &dto.SavedSupplierListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// owned carrega a anotação e confere o dono.
func (uc *SavedSupplierUseCase) owned(userID, id string) (*entity.SavedSupplier, error) {
	s, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, nil
	}
	if s.UserID != userID {
		return nil, domain.ErrForbidden
	}
	return s, nil
}

func toSavedSupplierResponse(s *entity.SavedSupplier) *dto.SavedSupplierResponse {
	if s == nil {
		return nil
	}
	return &dto.SavedSupplierResponse{
		ID:         s.ID,
		SupplierID: s.SupplierID,
		Name:       s.Name,
		Contact:    s.Contact,
		Notes:      s.Notes,
		Rating:     s.Rating,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}
