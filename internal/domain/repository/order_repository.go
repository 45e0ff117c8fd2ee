package repository

import (
	"context"

	"github.com/jhoicas/comercio-api/internal/domain/entity"
	"github.com/jhoicas/comercio-api/internal/domain/filter"
)

// OrderRepository define el puerto de persistencia para Order y sus filas order_products.
type OrderRepository interface {
	// Create inserta el pedido y una fila de asociación por cada ProductIDs.
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id int64) (*entity.Order, error)
	// Update guarda estado y cliente y reemplaza el conjunto de productos.
	Update(ctx context.Context, order *entity.Order) error
	List(ctx context.Context, q filter.Query) ([]*entity.Order, error)
	// Delete borra el pedido y sus filas de asociación; los productos permanecen.
	Delete(ctx context.Context, id int64) error
}
