package entity

import "time"

// Status de um ticket de suporte. Ciclo: OPEN -> ANSWERED -> CLOSED.
// Resposta do dono sobre um ticket ANSWERED reabre (volta a OPEN).
const (
	TicketStatusOpen     = "OPEN"
	TicketStatusAnswered = "ANSWERED"
	TicketStatusClosed   = "CLOSED"
)

// Ticket chamado de suporte aberto por um membro.
type Ticket struct {
	ID        string
	UserID    string
	Subject   string
	Status    string // OPEN, ANSWERED, CLOSED
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TicketMessage mensagem dentro de um ticket (do dono ou da equipe de suporte).
type TicketMessage struct {
	ID         string
	TicketID   string
	AuthorID   string
	AuthorRole Role
	Body       string
	CreatedAt  time.Time
}
