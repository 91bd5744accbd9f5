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

var _ repository.TemplateRepository = (*TemplateRepo)(nil)

// TemplateRepo implementação do porto TemplateRepository sobre PostgreSQL.
type TemplateRepo struct {
	pool *pgxpool.Pool
}

// NewTemplateRepository constrói o adaptador da biblioteca de templates.
func NewTemplateRepository(pool *pgxpool.Pool) *TemplateRepo {
	return &TemplateRepo{pool: pool}
}

const templateColumns = `id, title, description, file_url, category, created_at, updated_at`

// Create persiste um template novo.
func (r *TemplateRepo) Create(t *entity.Template) error {
	query := `
		INSERT INTO templates (` + templateColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.pool.Exec(context.Background(), query,
		t.ID, t.Title, t.Description, t.FileURL, t.Category, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert template: %w", err)
	}
	return nil
}

// GetByID obtém um template por ID.
func (r *TemplateRepo) GetByID(id string) (*entity.Template, error) {
	query := `SELECT ` + templateColumns + ` FROM templates WHERE id = $1`
	var t entity.Template
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.Title, &t.Description, &t.FileURL, &t.Category, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get template: %w", err)
	}
	return &t, nil
}

// Update atualiza um template.
func (r *TemplateRepo) Update(t *entity.Template) error {
	query := `
		UPDATE templates SET title = $2, description = $3, file_url = $4, category = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		t.ID, t.Title, t.Description, t.FileURL, t.Category, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update template: %w", err)
	}
	return nil
}

// Delete remove um template por ID.
func (r *TemplateRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM templates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete template: %w", err)
	}
	return nil
}

// List lista templates com filtro opcional de categoria.
func (r *TemplateRepo) List(category string, limit, offset int) ([]*entity.Template, error) {
	query := `SELECT ` + templateColumns + ` FROM templates`
	args := []interface{}{}
	if category != "" {
		args = append(args, category)
		query += ` WHERE category = $1`
	}
	args = append(args, limit)
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d`, len(args))
	args = append(args, offset)
	query += fmt.Sprintf(` OFFSET $%d`, len(args))

	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	defer rows.Close()
	var list []*entity.Template
	for rows.Next() {
		var t entity.Template
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.FileURL, &t.Category, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan template: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}
