package dto

import "time"

// CreateTemplateRequest entrada para cadastrar template (admin).
type CreateTemplateRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=200"`
	Description string `json:"description" validate:"omitempty,max=2000"`
	FileURL     string `json:"file_url" validate:"required,url"`
	Category    string `json:"category" validate:"omitempty,max=100"`
}

// UpdateTemplateRequest atualização parcial de template (admin).
type UpdateTemplateRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	FileURL     *string `json:"file_url"`
	Category    *string `json:"category"`
}

// TemplateResponse saída de um template.
type TemplateResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	FileURL     string    `json:"file_url"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TemplateListResponse listagem paginada de templates.
type TemplateListResponse struct {
	Items []TemplateResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
