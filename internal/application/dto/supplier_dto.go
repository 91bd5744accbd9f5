package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSupplierRequest entrada para cadastrar um fornecedor no diretório (admin).
type CreateSupplierRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Category    string          `json:"category" validate:"required,oneof=fornecedor parceiro ferramenta"`
	Description string          `json:"description" validate:"omitempty,max=2000"`
	WebsiteURL  string          `json:"website_url" validate:"omitempty,url"`
	Instagram   string          `json:"instagram" validate:"omitempty,max=100"`
	Discount    decimal.Decimal `json:"discount"`
	Featured    bool            `json:"featured"`
}

// UpdateSupplierRequest atualização parcial de um fornecedor (admin).
type UpdateSupplierRequest struct {
	Name        *string          `json:"name"`
	Category    *string          `json:"category"`
	Description *string          `json:"description"`
	WebsiteURL  *string          `json:"website_url"`
	Instagram   *string          `json:"instagram"`
	Discount    *decimal.Decimal `json:"discount"`
	Featured    *bool            `json:"featured"`
}

// SupplierResponse saída de um fornecedor do diretório.
type SupplierResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	WebsiteURL  string          `json:"website_url"`
	Instagram   string          `json:"instagram"`
	Discount    decimal.Decimal `json:"discount"`
	Featured    bool            `json:"featured"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// SupplierListResponse listagem paginada do diretório.
type SupplierListResponse struct {
	Items []SupplierResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// CreateSavedSupplierRequest entrada do CRM pessoal. SupplierID opcional vincula
// a anotação a uma entrada do diretório.
type CreateSavedSupplierRequest struct {
	SupplierID *string `json:"supplier_id"`
	Name       string  `json:"name" validate:"required,min=1,max=200"`
	Contact    string  `json:"contact" validate:"omitempty,max=200"`
	Notes      string  `json:"notes" validate:"omitempty,max=5000"`
	Rating     int     `json:"rating" validate:"min=0,max=5"`
}

// UpdateSavedSupplierRequest atualização parcial de uma anotação do CRM.
type UpdateSavedSupplierRequest struct {
	Name    *string `json:"name"`
	Contact *string `json:"contact"`
	Notes   *string `json:"notes"`
	Rating  *int    `json:"rating"`
}

// SavedSupplierResponse saída de uma anotação do CRM pessoal.
type SavedSupplierResponse struct {
	ID         string    `json:"id"`
	SupplierID *string   `json:"supplier_id,omitempty"`
	Name       string    `json:"name"`
	Contact    string    `json:"contact"`
	Notes      string    `json:"notes"`
	Rating     int       `json:"rating"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// SavedSupplierListResponse listagem do CRM pessoal.
type SavedSupplierListResponse struct {
	Items []SavedSupplierResponse `json:"items"`
	Page  PageResponse            `json:"page"`
}
