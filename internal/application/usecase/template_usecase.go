package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/portalmembros/portal-api/internal/application/dto"
	"github.com/portalmembros/portal-api/internal/domain/entity"
	"github.com/portalmembros/portal-api/internal/domain/repository"
)

// TemplateUseCase biblioteca de templates (acesso ALUNO_PRO+ via guard de rota).
type TemplateUseCase struct {
	repo repository.TemplateRepository
}

// NewTemplateUseCase constrói o caso de uso.
func NewTemplateUseCase(repo repository.TemplateRepository) *TemplateUseCase {
	return &TemplateUseCase{repo: repo}
}

// Create cadastra um template novo.
func (uc *TemplateUseCase) Create(in dto.CreateTemplateRequest) (*dto.TemplateResponse, error) {
	now := time.Now()
	t := &entity.Template{
		ID:          uuid.New().String(),
		Title:       in.Title,
		Description: in.Description,
		FileURL:     in.FileURL,
		Category:    in.Category,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(t); err != nil {
		return nil, err
	}
	return toTemplateResponse(t), nil
}

// GetByID obtém um template por ID.
func (uc *TemplateUseCase) GetByID(id string) (*dto.TemplateResponse, error) {
	t, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, nil
	}
	return toTemplateResponse(t), nil
}

// Update atualização parcial de um template.
func (uc *TemplateUseCase) Update(id string, in dto.UpdateTemplateRequest) (*dto.TemplateResponse, error) {
	t, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, nil
	}
	if in.Title != nil {
		t.Title = *in.Title
	}
	if in.Description != nil {
		t.Description = *in.Description
	}
	if in.FileURL != nil {
		t.FileURL = *in.FileURL
	}
	if in.Category != nil {
		t.Category = *in.Category
	}
	t.UpdatedAt = time.Now()
	if err := uc.repo.Update(t); err != nil {
		return nil, err
	}
	return toTemplateResponse(t), nil
}

// Delete remove um template.
func (uc *TemplateUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// List lista templates com filtro opcional de categoria.
func (uc *TemplateUseCase) List(category string, limit, offset int) (*dto.TemplateListResponse, error) {
	list, err := uc.repo.List(category, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TemplateResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toTemplateResponse(t))
	}
	return &dto.TemplateListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toTemplateResponse(t *entity.Template) *dto.TemplateResponse {
	if t == nil {
		return nil
	}
	return &dto.TemplateResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		FileURL:     t.FileURL,
		Category:    t.Category,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
