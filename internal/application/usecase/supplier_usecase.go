package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/portalmembros/portal-api/internal/application/dto"
	"github.com/portalmembros/portal-api/internal/domain"
	"github.com/portalmembros/portal-api/internal/domain/entity"
	"github.com/portalmembros/portal-api/internal/domain/repository"
)

// SupplierUseCase casos de uso do diretório de fornecedores/parceiros/ferramentas.
// Leitura para membros; escrita restrita ao admin (guard de rota).
type SupplierUseCase struct {
	repo repository.SupplierRepository
}

// NewSupplierUseCase constrói o caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo}
}

func validCategory(c string) bool {
	switch c {
	case entity.SupplierCategoryFornecedor, entity.SupplierCategoryParceiro, entity.SupplierCategoryFerramenta:
		return true
	}
	return false
}

// Create cadastra uma entrada nova no diretório.
func (uc *SupplierUseCase) Create(in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	if !validCategory(in.Category) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	s := &entity.Supplier{
		ID:          uuid.New().String(),
		Name:        in.Name,
		SearchName:  normalizeSearch(in.Name),
		Category:    in.Category,
		Description: in.Description,
		WebsiteURL:  in.WebsiteURL,
		Instagram:   in.Instagram,
		Discount:    in.Discount,
		Featured:    in.Featured,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(s); err != nil {
		return nil, err
	}
	return toSupplierResponse(s), nil
}

// GetByID obtém uma entrada por ID.
func (uc *SupplierUseCase) GetByID(id string) (*dto.SupplierResponse, error) {
	s, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, nil
	}
	return toSupplierResponse(s), nil
}

// Update atualização parcial de uma entrada.
func (uc *SupplierUseCase) Update(id string, in dto.UpdateSupplierRequest) (*dto.SupplierResponse, error) {
	s, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, nil
	}
	if in.Name != nil {
		s.Name = *in.Name
		s.SearchName = normalizeSearch(*in.Name)
	}
	if in.Category != nil {
		if !validCategory(*in.Category) {
			return nil, domain.ErrInvalidInput
		}
		s.Category = *in.Category
	}
	if in.Description != nil {
		s.Description = *in.Description
	}
	if in.WebsiteURL != nil {
		s.WebsiteURL = *in.WebsiteURL
	}
	if in.Instagram != nil {
		s.Instagram = *in.Instagram
	}
	if in.Discount != nil {
		s.Discount = *in.Discount
	}
	if in.Featured != nil {
		s.Featured = *in.Featured
	}
	s.UpdatedAt = time.Now()
	if err := uc.repo.Update(s); err != nil {
		return nil, err
	}
	return toSupplierResponse(s), nil
}

// Delete remove uma entrada do diretório.
func (uc *SupplierUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// List lista o diretório; o termo de busca é normalizado aqui (sem acento,
// minúsculas) antes de chegar ao repositório.
func (uc *SupplierUseCase) List(category, search string, limit, offset int) (*dto.SupplierListResponse, error) {
	list, err := uc.repo.List(repository.SupplierFilter{
		Category: category,
		Search:   normalizeSearch(search),
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSupplierResponse(s))
	}
	return &dto.SupplierListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	if s == nil {
		return nil
	}
	return &dto.SupplierResponse{
		ID:          s.ID,
		Name:        s.Name,
		Category:    s.Category,
		Description: s.Description,
		WebsiteURL:  s.WebsiteURL,
		Instagram:   s.Instagram,
		Discount:    s.Discount,
		Featured:    s.Featured,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}
