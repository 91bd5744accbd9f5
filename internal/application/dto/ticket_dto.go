package dto

import "time"

// CreateTicketRequest abertura de um ticket com a primeira mensagem.
type CreateTicketRequest struct {
	Subject string `json:"subject" validate:"required,min=1,max=200"`
	Body    string `json:"body" validate:"required,min=1,max=10000"`
}

// ReplyTicketRequest nova mensagem em um ticket existente.
type ReplyTicketRequest struct {
	Body string `json:"body" validate:"required,min=1,max=10000"`
}

// TicketMessageResponse mensagem dentro de um ticket.
type TicketMessageResponse struct {
	ID         string    `json:"id"`
	AuthorID   string    `json:"author_id"`
	AuthorRole string    `json:"author_role"`
	Body       string    `json:"body"`
	CreatedAt  time.Time `json:"created_at"`
}

// TicketResponse saída de um ticket (sem mensagens).
type TicketResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Subject   string    `json:"subject"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TicketDetailResponse ticket com o histórico de mensagens.
type TicketDetailResponse struct {
	Ticket   TicketResponse          `json:"ticket"`
	Messages []TicketMessageResponse `json:"messages"`
}

// TicketListResponse listagem paginada de tickets.
type TicketListResponse struct {
	Items []TicketResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
