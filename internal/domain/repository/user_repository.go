package repository

import "github.com/portalmembros/portal-api/internal/domain/entity"

// UserRepository define o porto de persistência para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	List(limit, offset int) ([]*entity.User, error)
	// FindByID e FindByEmail aliases semânticos para uso em auth e no middleware.
	FindByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
}
