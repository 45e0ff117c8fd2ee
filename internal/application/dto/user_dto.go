package dto

import (
	"time"

	"github.com/jhoicas/comercio-api/internal/domain/filter"
)

// CreateUserRequest entrada para crear un usuario (password en texto, se hashea en use case).
type CreateUserRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,max=72"`
	Role     string `json:"role" validate:"omitempty,oneof=admin guest"`
}

// UpdateUserRequest actualización parcial: sólo los campos presentes se aplican.
type UpdateUserRequest struct {
	Username *string `json:"username" validate:"omitempty,min=1,max=100"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Password *string `json:"password" validate:"omitempty,min=1,max=72"`
	Role     *string `json:"role" validate:"omitempty,oneof=admin guest"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// UserListResponse listado de usuarios.
type UserListResponse struct {
	Users []UserResponse `json:"users"`
}

// UserFilter parámetros opcionales del listado de usuarios.
type UserFilter struct {
	Role *string
	Page filter.Page
}

// LoginRequest credenciales para /auth/token. Username acepta nombre de usuario o email.
type LoginRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// TokenResponse token de acceso emitido.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
