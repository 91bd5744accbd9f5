package repository

import "github.com/portalmembros/portal-api/internal/domain/entity"

// SavedSupplierRepository porto de persistência do CRM pessoal de fornecedores.
type SavedSupplierRepository interface {
	Create(s *entity.SavedSupplier) error
	GetByID(id string) (*entity.SavedSupplier, error)
	Update(s *entity.SavedSupplier) error
	Delete(id string) error
	ListByUser(userID string, limit, offset int) ([]*entity.SavedSupplier, error)
}
