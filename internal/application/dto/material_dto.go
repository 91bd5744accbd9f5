package dto

import "time"

// CreateMaterialRequest entrada para cadastrar material (admin).
type CreateMaterialRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=200"`
	Description string `json:"description" validate:"omitempty,max=2000"`
	ContentURL  string `json:"content_url" validate:"required,url"`
	Kind        string `json:"kind" validate:"required,oneof=video pdf artigo"`
	Premium     bool   `json:"premium"`
}

// UpdateMaterialRequest atualização parcial de material (admin).
type UpdateMaterialRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	ContentURL  *string `json:"content_url"`
	Kind        *string `json:"kind"`
	Premium     *bool   `json:"premium"`
}

// MaterialResponse saída de um material.
type MaterialResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ContentURL  string    `json:"content_url"`
	Kind        string    `json:"kind"`
	Premium     bool      `json:"premium"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// MaterialListResponse listagem paginada da biblioteca.
type MaterialListResponse struct {
	Items []MaterialResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
