package entity

import "time"

// Client representa un cliente de la tienda. Es dueño de sus pedidos (borrado en cascada).
type Client struct {
	ID        int64
	FullName  string
	TaxID     string // CPF
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
