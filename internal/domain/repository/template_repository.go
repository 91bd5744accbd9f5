package repository

import "github.com/portalmembros/portal-api/internal/domain/entity"

// TemplateRepository porto de persistência da biblioteca de templates.
type TemplateRepository interface {
	Create(t *entity.Template) error
	GetByID(id string) (*entity.Template, error)
	Update(t *entity.Template) error
	Delete(id string) error
	List(category string, limit, offset int) ([]*entity.Template, error)
}
