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

var _ repository.SavedSupplierRepository = (*SavedSupplierRepo)(nil)

// SavedSupplierRepo implementação do porto SavedSupplierRepository sobre PostgreSQL.
type SavedSupplierRepo struct {
	pool *pgxpool.Pool
}

// NewSavedSupplierRepository constrói o adaptador do CRM pessoal.
func NewSavedSupplierRepository(pool *pgxpool.Pool) *SavedSupplierRepo {
	return &SavedSupplierRepo{pool: pool}
}

const savedSupplierColumns = `id, user_id, supplier_id, name, contact, notes, rating, created_at, updated_at`

// Create persiste uma anotação nova.
func (r *SavedSupplierRepo) Create(s *entity.SavedSupplier) error {
	query := `
		INSERT INTO saved_suppliers (` + savedSupplierColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.pool.Exec(context.Background(), query,
		s.ID, s.UserID, s.SupplierID, s.Name, s.Contact, s.Notes, s.Rating, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert saved supplier: %w", err)
	}
	return nil
}

// GetByID obtém uma anotação por ID.
func (r *SavedSupplierRepo) GetByID(id string) (*entity.SavedSupplier, error) {
	query := `SELECT ` + savedSupplierColumns + ` FROM saved_suppliers WHERE id = $1`
	var s entity.SavedSupplier
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.UserID, &s.SupplierID, &s.Name, &s.Contact, &s.Notes, &s.Rating, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get saved supplier: %w", err)
	}
	return &s, nil
}

// Update atualiza uma anotação.
func (r *SavedSupplierRepo) Update(s *entity.SavedSupplier) error {
	query := `
		UPDATE saved_suppliers SET name = $2, contact = $3, notes = $4, rating = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		s.ID, s.Name, s.Contact, s.Notes, s.Rating, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update saved supplier: %w", err)
	}
	return nil
}

// Delete remove uma anotação por ID.
func (r *SavedSupplierRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM saved_suppliers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete saved supplier: %w", err)
	}
	return nil
}

// ListByUser lista as anotações de um usuário com paginação.
func (r *SavedSupplierRepo) ListByUser(userID string, limit, offset int) ([]*entity.SavedSupplier, error) {
	query := `
		SELECT ` + savedSupplierColumns + ` FROM saved_suppliers
		WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(context.Background(), query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list saved suppliers: %w", err)
	}
	defer rows.Close()
	var list []*entity.SavedSupplier
	for rows.Next() {
		var s entity.SavedSupplier
		if err := rows.Scan(&s.ID, &s.UserID, &s.SupplierID, &s.Name, &s.Contact, &s.Notes, &s.Rating, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan saved supplier: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
