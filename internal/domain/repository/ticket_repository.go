package repository

import "github.com/portalmembros/portal-api/internal/domain/entity"

// TicketRepository porto de persistência de tickets e suas mensagens.
type TicketRepository interface {
	Create(t *entity.Ticket) error
	GetByID(id string) (*entity.Ticket, error)
	Update(t *entity.Ticket) error
	ListByUser(userID string, limit, offset int) ([]*entity.Ticket, error)
	ListAll(status string, limit, offset int) ([]*entity.Ticket, error)

	CreateMessage(m *entity.TicketMessage) error
	ListMessages(ticketID string) ([]*entity.TicketMessage, error)
}
