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

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementação do porto SupplierRepository sobre PostgreSQL.
type SupplierRepo struct {
	pool *pgxpool.Pool
}

// NewSupplierRepository constrói o adaptador de persistência do diretório.
func NewSupplierRepository(pool *pgxpool.Pool) *SupplierRepo {
	return &SupplierRepo{pool: pool}
}

const supplierColumns = `id, name, search_name, category, description, website_url, instagram, discount, featured, created_at, updated_at`

// Create persiste uma nova entrada do diretório.
func (r *SupplierRepo) Create(s *entity.Supplier) error {
	query := `
		INSERT INTO suppliers (` + supplierColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.pool.Exec(context.Background(), query,
		s.ID, s.Name, s.SearchName, s.Category, s.Description, s.WebsiteURL, s.Instagram,
		s.Discount, s.Featured, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

// GetByID obtém uma entrada por ID.
func (r *SupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE id = $1`
	var s entity.Supplier
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.Name, &s.SearchName, &s.Category, &s.Description, &s.WebsiteURL, &s.Instagram,
		&s.Discount, &s.Featured, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return &s, nil
}

// Update atualiza uma entrada do diretório.
func (r *SupplierRepo) Update(s *entity.Supplier) error {
	query := `
		UPDATE suppliers
		SET name = $2, search_name = $3, category = $4, description = $5, website_url = $6,
		    instagram = $7, discount = $8, featured = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		s.ID, s.Name, s.SearchName, s.Category, s.Description, s.WebsiteURL,
		s.Instagram, s.Discount, s.Featured, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update supplier: %w", err)
	}
	return nil
}

// Delete remove uma entrada por ID.
func (r *SupplierRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM suppliers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete supplier: %w", err)
	}
	return nil
}

// List lista o diretório com filtros opcionais de categoria e busca.
// O termo de busca chega normalizado e casa contra search_name.
func (r *SupplierRepo) List(f repository.SupplierFilter) ([]*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE 1=1`
	args := []interface{}{}
	if f.Category != "" {
		args = append(args, f.Category)
		query += fmt.Sprintf(" AND category = $%d", len(args))
	}
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		query += fmt.Sprintf(" AND search_name LIKE $%d", len(args))
	}
	args = append(args, f.Limit)
	query += fmt.Sprintf(" ORDER BY featured DESC, name ASC LIMIT $%d", len(args))
	args = append(args, f.Offset)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(&s.ID, &s.Name, &s.SearchName, &s.Category, &s.Description, &s.WebsiteURL,
			&s.Instagram, &s.Discount, &s.Featured, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
