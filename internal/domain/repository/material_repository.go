package repository

import "github.com/portalmembros/portal-api/internal/domain/entity"

// MaterialRepository porto de persistência da biblioteca de materiais.
type MaterialRepository interface {
	Create(m *entity.Material) error
	GetByID(id string) (*entity.Material, error)
	Update(m *entity.Material) error
	Delete(id string) error
	// List com includePremium=false omite os materiais exclusivos de ALUNO_PRO+.
	List(includePremium bool, limit, offset int) ([]*entity.Material, error)
}
