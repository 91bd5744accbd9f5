package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/portalmembros/portal-api/internal/application/dto"
	"github.com/portalmembros/portal-api/internal/domain"
	"github.com/portalmembros/portal-api/internal/domain/entity"
	"github.com/portalmembros/portal-api/internal/domain/repository"
)

// MaterialUseCase biblioteca de materiais/aulas. Escrita restrita ao admin.
type MaterialUseCase struct {
	repo repository.MaterialRepository
}

// NewMaterialUseCase constrói o caso de uso.
func NewMaterialUseCase(repo repository.MaterialRepository) *MaterialUseCase {
	return &MaterialUseCase{repo: repo}
}

func validKind(k string) bool {
	switch k {
	case entity.MaterialKindVideo, entity.MaterialKindPDF, entity.MaterialKindArtigo:
		return true
	}
	return false
}

// Create cadastra um material novo.
func (uc *MaterialUseCase) Create(in dto.CreateMaterialRequest) (*dto.MaterialResponse, error) {
	if !validKind(in.Kind) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	m := &entity.Material{
		ID:          uuid.New().String(),
		Title:       in.Title,
		Description: in.Description,
		ContentURL:  in.ContentURL,
		Kind:        in.Kind,
		Premium:     in.Premium,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(m); err != nil {
		return nil, err
	}
	return toMaterialResponse(m), nil
}

// GetByID obtém um material. Material premium só para papéis ALUNO_PRO ou acima.
func (uc *MaterialUseCase) GetByID(id string, viewerRole entity.Role) (*dto.MaterialResponse, error) {
	m, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, nil
	}
	if m.Premium && !viewerRole.AtLeast(entity.RoleAlunoPro) {
		return nil, domain.ErrForbidden
	}
	return toMaterialResponse(m), nil
}

// Update atualização parcial de um material.
func (uc *MaterialUseCase) Update(id string, in dto.UpdateMaterialRequest) (*dto.MaterialResponse, error) {
	m, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, nil
	}
	if in.Title != nil {
		m.Title = *in.Title
	}
	if in.Description != nil {
		m.Description = *in.Description
	}
	if in.ContentURL != nil {
		m.ContentURL = *in.ContentURL
	}
	if in.Kind != nil {
		if !validKind(*in.Kind) {
			return nil, domain.ErrInvalidInput
		}
		m.Kind = *in.Kind
	}
	if in.Premium != nil {
		m.Premium = *in.Premium
	}
	m.UpdatedAt = time.Now()
	if err := uc.repo.Update(m); err != nil {
		return nil, err
	}
	return toMaterialResponse(m), nil
}

// Delete remove um material.
func (uc *MaterialUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// List lista a biblioteca filtrando conteúdo premium pelo papel de quem pede:
// abaixo de ALUNO_PRO o servidor nem devolve os itens exclusivos.
func (uc *MaterialUseCase) List(viewerRole entity.Role, limit, offset int) (*dto.MaterialListResponse, error) {
	includePremium := viewerRole.AtLeast(entity.RoleAlunoPro)
	list, err := uc.repo.List(includePremium, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MaterialResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toMaterialResponse(m))
	}
	return &dto.MaterialListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toMaterialResponse(m *entity.Material) *dto.MaterialResponse {
	if m == nil {
		return nil
	}
	return &dto.MaterialResponse{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		ContentURL:  m.ContentURL,
		Kind:        m.Kind,
		Premium:     m.Premium,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
