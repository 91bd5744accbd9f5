package dto

import "time"

// RegisterRequest entrada de cadastro. Todo cadastro nasce com papel BASIC;
// promoções são feitas pelo console admin.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"omitempty,max=200"`
}

// LoginRequest entrada de login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse saída com token JWT e dados do usuário.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse saída de um usuário (sem password).
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserListResponse listagem paginada de usuários (console admin).
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

// UpdateUserRoleRequest troca de papel via console admin.
type UpdateUserRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=BASIC ALUNO ALUNO_PRO SUPORTE ADM"`
}

// UpdateUserActiveRequest ativação/desativação de conta via console admin.
type UpdateUserActiveRequest struct {
	Active *bool `json:"active" validate:"required"`
}
