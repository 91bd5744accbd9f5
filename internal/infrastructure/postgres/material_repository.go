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

var _ repository.MaterialRepository = (*MaterialRepo)(nil)

// MaterialRepo implementação do porto MaterialRepository sobre PostgreSQL.
type MaterialRepo struct {
	pool *pgxpool.Pool
}

// NewMaterialRepository constrói o adaptador da biblioteca de materiais.
func NewMaterialRepository(pool *pgxpool.Pool) *MaterialRepo {
	return &MaterialRepo{pool: pool}
}

const materialColumns = `id, title, description, content_url, kind, premium, created_at, updated_at`

// Create persiste um material novo.
func (r *MaterialRepo) Create(m *entity.Material) error {
	query := `
		INSERT INTO materials (` + materialColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.pool.Exec(context.Background(), query,
		m.ID, m.Title, m.Description, m.ContentURL, m.Kind, m.Premium, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert material: %w", err)
	}
	return nil
}

// GetByID obtém um material por ID.
func (r *MaterialRepo) GetByID(id string) (*entity.Material, error) {
	query := `SELECT ` + materialColumns + ` FROM materials WHERE id = $1`
	var m entity.Material
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.Title, &m.Description, &m.ContentURL, &m.Kind, &m.Premium, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get material: %w", err)
	}
	return &m, nil
}

// Update atualiza um material.
func (r *MaterialRepo) Update(m *entity.Material) error {
	query := `
		UPDATE materials SET title = $2, description = $3, content_url = $4, kind = $5, premium = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		m.ID, m.Title, m.Description, m.ContentURL, m.Kind, m.Premium, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update material: %w", err)
	}
	return nil
}

// Delete remove um material por ID.
func (r *MaterialRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM materials WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete material: %w", err)
	}
	return nil
}

// List lista materiais; includePremium=false omite o conteúdo exclusivo.
func (r *MaterialRepo) List(includePremium bool, limit, offset int) ([]*entity.Material, error) {
	query := `SELECT ` + materialColumns + ` FROM materials`
	if !includePremium {
		query += ` WHERE premium = FALSE`
	}
	query += ` ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list materials: %w", err)
	}
	defer rows.Close()
	var list []*entity.Material
	for rows.Next() {
		var m entity.Material
		if err := rows.Scan(&m.ID, &m.Title, &m.Description, &m.ContentURL, &m.Kind, &m.Premium, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan material: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
