package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/portalmembros/portal-api/internal/domain/entity"
	"github.com/portalmembros/portal-api/internal/domain/repository"
)

var _ repository.TicketRepository = (*TicketRepo)(nil)

// TicketRepo implementação do porto TicketRepository sobre PostgreSQL.
type TicketRepo struct {
	pool *pgxpool.Pool
}

// NewTicketRepository constrói o adaptador de persistência de tickets.
func NewTicketRepository(pool *pgxpool.Pool) *TicketRepo {
	return &TicketRepo{pool: pool}
}

const ticketColumns = `id, user_id, subject, status, created_at, updated_at`

// Create persiste um ticket novo.
func (r *TicketRepo) Create(t *entity.Ticket) error {
	query := `
		INSERT INTO tickets (` + ticketColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.pool.Exec(context.Background(), query,
		t.ID, t.UserID, t.Subject, t.Status, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert ticket: %w", err)
	}
	return nil
}

// GetByID obtém um ticket por ID.
func (r *TicketRepo) GetByID(id string) (*entity.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets WHERE id = $1`
	var t entity.Ticket
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.UserID, &t.Subject, &t.Status, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ticket: %w", err)
	}
	return &t, nil
}

// Update atualiza status/assunto de um ticket.
func (r *TicketRepo) Update(t *entity.Ticket) error {
	query := `UPDATE tickets SET subject = $2, status = $3, updated_at = $4 WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query, t.ID, t.Subject, t.Status, t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update ticket: %w", err)
	}
	return nil
}

// ListByUser lista os tickets de um usuário.
func (r *TicketRepo) ListByUser(userID string, limit, offset int) ([]*entity.Ticket, error) {
	query := `
		SELECT ` + ticketColumns + ` FROM tickets
		WHERE user_id = $1 ORDER BY updated_at DESC LIMIT $2 OFFSET $3`
	return r.list(query, userID, limit, offset)
}

// ListAll lista todos os tickets (fila do suporte), com filtro opcional de status.
func (r *TicketRepo) ListAll(status string, limit, offset int) ([]*entity.Ticket, error) {
	if status != "" {
		query := `
			SELECT ` + ticketColumns + ` FROM tickets
			WHERE status = $1 ORDER BY updated_at DESC LIMIT $2 OFFSET $3`
		return r.list(query, status, limit, offset)
	}
	query := `SELECT ` + ticketColumns + ` FROM tickets ORDER BY updated_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	defer rows.Close()
	return scanTickets(rows)
}

func (r *TicketRepo) list(query string, arg interface{}, limit, offset int) ([]*entity.Ticket, error) {
	rows, err := r.pool.Query(context.Background(), query, arg, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	defer rows.Close()
	return scanTickets(rows)
}

func scanTickets(rows pgx.Rows) ([]*entity.Ticket, error) {
	var list []*entity.Ticket
	for rows.Next() {
		var t entity.Ticket
		if err := rows.Scan(&t.ID, &t.UserID, &t.Subject, &t.Status, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan ticket: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// CreateMessage persiste uma mensagem de ticket.
func (r *TicketRepo) CreateMessage(m *entity.TicketMessage) error {
	query := `
		INSERT INTO ticket_messages (id, ticket_id, author_id, author_role, body, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.pool.Exec(context.Background(), query,
		m.ID, m.TicketID, m.AuthorID, string(m.AuthorRole), m.Body, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert ticket message: %w", err)
	}
	return nil
}

// ListMessages lista as mensagens de um ticket em ordem cronológica.
func (r *TicketRepo) ListMessages(ticketID string) ([]*entity.TicketMessage, error) {
	query := `
		SELECT id, ticket_id, author_id, author_role, body, created_at
		FROM ticket_messages WHERE ticket_id = $1 ORDER BY created_at ASC`
	rows, err := r.pool.Query(context.Background(), query, ticketID)
	if err != nil {
		return nil, fmt.Errorf("list ticket messages: %w", err)
	}
	defer rows.Close()
	var list []*entity.TicketMessage
	for rows.Next() {
		var m entity.TicketMessage
		var role string
		if err := rows.Scan(&m.ID, &m.TicketID, &m.AuthorID, &role, &m.Body, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan ticket message: %w", err)
		}
		m.AuthorRole = entity.Role(role)
		list = append(list, &m)
	}
	return list, rows.Err()
}
