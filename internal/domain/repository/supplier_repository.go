package repository

import "github.com/portalmembros/portal-api/internal/domain/entity"

// SupplierFilter filtros de listagem do diretório.
// Search já chega normalizado (minúsculas, sem acento) pelo use case.
type SupplierFilter struct {
	Category string
	Search   string
	Limit    int
	Offset   int
}

// SupplierRepository porto de persistência do diretório de fornecedores.
type SupplierRepository interface {
	Create(s *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	Update(s *entity.Supplier) error
	Delete(id string) error
	List(f SupplierFilter) ([]*entity.Supplier, error)
}
