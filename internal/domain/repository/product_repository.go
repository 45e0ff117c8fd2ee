package repository

import (
	"context"

	"github.com/jhoicas/comercio-api/internal/domain/entity"
	"github.com/jhoicas/comercio-api/internal/domain/filter"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	// GetByIDs devuelve sólo los productos existentes, ordenados por id.
	GetByIDs(ctx context.Context, ids []int64) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	List(ctx context.Context, q filter.Query) ([]*entity.Product, error)
	Delete(ctx context.Context, id int64) error
}
