package repository

import (
	"context"

	"github.com/jhoicas/comercio-api/internal/domain/entity"
	"github.com/jhoicas/comercio-api/internal/domain/filter"
)

// ClientRepository define el puerto de persistencia para Client.
// Delete borra en cascada los pedidos del cliente.
type ClientRepository interface {
	Create(ctx context.Context, client *entity.Client) error
	GetByID(ctx context.Context, id int64) (*entity.Client, error)
	GetByEmail(ctx context.Context, email string) (*entity.Client, error)
	Update(ctx context.Context, client *entity.Client) error
	List(ctx context.Context, q filter.Query) ([]*entity.Client, error)
	Delete(ctx context.Context, id int64) error
}
