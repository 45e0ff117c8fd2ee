package dto

import (
	"time"

	"github.com/jhoicas/comercio-api/internal/domain/entity"
	"github.com/jhoicas/comercio-api/internal/domain/filter"
)

// CreateOrderRequest entrada para crear un pedido.
type CreateOrderRequest struct {
	State      entity.OrderState `json:"state" validate:"required"`
	ClientID   int64             `json:"client_id" validate:"required,gt=0"`
	ProductIDs []int64           `json:"product_ids"`
}

// UpdateOrderRequest actualización parcial de un pedido. ProductIDs presente reemplaza el conjunto.
type UpdateOrderRequest struct {
	State      *entity.OrderState `json:"state"`
	ClientID   *int64             `json:"client_id" validate:"omitempty,gt=0"`
	ProductIDs *[]int64           `json:"product_ids"`
}

// OrderResponse salida de un pedido.
type OrderResponse struct {
	ID         int64             `json:"id"`
	State      entity.OrderState `json:"state"`
	ClientID   int64             `json:"client_id"`
	CreatedAt  time.Time         `json:"created_at"`
	ProductIDs []int64           `json:"product_ids"`
}

// OrderListResponse listado de pedidos.
type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
}

// OrderFilter parámetros opcionales del listado de pedidos.
// CreatedStart y CreatedEnd sólo se aplican juntos.
type OrderFilter struct {
	CreatedStart   *time.Time
	CreatedEnd     *time.Time
	ProductSection *string
	OrderID        *int64
	State          *entity.OrderState
	ClientID       *int64
	Page           filter.Page
}
