package dto

import (
	"time"

	"github.com/jhoicas/comercio-api/internal/domain/filter"
)

// CreateClientRequest entrada para crear un cliente.
type CreateClientRequest struct {
	FullName string `json:"nome_completo" validate:"required,max=200"`
	TaxID    string `json:"cpf" validate:"required,max=20"`
	Email    string `json:"email" validate:"required,email"`
}

// UpdateClientRequest actualización parcial de un cliente.
type UpdateClientRequest struct {
	FullName *string `json:"nome_completo" validate:"omitempty,min=1,max=200"`
	TaxID    *string `json:"cpf" validate:"omitempty,min=1,max=20"`
	Email    *string `json:"email" validate:"omitempty,email"`
}

// ClientResponse salida de un cliente.
type ClientResponse struct {
	ID        int64     `json:"id"`
	FullName  string    `json:"nome_completo"`
	TaxID     string    `json:"cpf"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ClientListResponse listado de clientes.
type ClientListResponse struct {
	Clients []ClientResponse `json:"clients"`
}

// ClientFilter parámetros opcionales del listado de clientes.
type ClientFilter struct {
	FullName *string // contiene
	TaxID    *string // contiene
	Email    *string // exacto
	Page     filter.Page
}
