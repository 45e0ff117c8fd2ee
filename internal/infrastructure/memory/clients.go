package memory

import (
	"context"

	"github.com/jhoicas/comercio-api/internal/domain"
	"github.com/jhoicas/comercio-api/internal/domain/entity"
	"github.com/jhoicas/comercio-api/internal/domain/filter"
	"github.com/jhoicas/comercio-api/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo repositorio de clientes en memoria.
type ClientRepo struct {
	s  *Store
	lk locker
}

// NewClientRepository construye el repo sobre s.
func NewClientRepository(s *Store) *ClientRepo {
	return &ClientRepo{s: s, lk: &s.mu}
}

func (r *ClientRepo) Create(ctx context.Context, client *entity.Client) error {
	r.lk.Lock()
	defer r.lk.Unlock()
	if r.emailTaken(client) {
		return domain.ErrEmailExists
	}
	client.ID = r.s.nextID("clients")
	client.CreatedAt = r.s.now()
	client.UpdatedAt = client.CreatedAt
	r.s.clients[client.ID] = *client
	return nil
}

func (r *ClientRepo) emailTaken(client *entity.Client) bool {
	for id, c := range r.s.clients {
		if id != client.ID && c.Email == client.Email {
			return true
		}
	}
	return false
}

func (r *ClientRepo) GetByID(ctx context.Context, id int64) (*entity.Client, error) {
	r.lk.RLock()
	defer r.lk.RUnlock()
	if c, ok := r.s.clients[id]; ok {
		return &c, nil
	}
	return nil, nil
}

func (r *ClientRepo) GetByEmail(ctx context.Context, email string) (*entity.Client, error) {
	r.lk.RLock()
	defer r.lk.RUnlock()
	for _, c := range r.s.clients {
		if c.Email == email {
			return &c, nil
		}
	}
	return nil, nil
}

func (r *ClientRepo) Update(ctx context.Context, client *entity.Client) error {
	r.lk.Lock()
	defer r.lk.Unlock()
	current, ok := r.s.clients[client.ID]
	if !ok {
		return domain.ErrClientNotFound
	}
	if r.emailTaken(client) {
		return domain.ErrEmailExists
	}
	client.CreatedAt = current.CreatedAt
	client.UpdatedAt = r.s.now()
	r.s.clients[client.ID] = *client
	return nil
}

func (r *ClientRepo) List(ctx context.Context, q filter.Query) ([]*entity.Client, error) {
	r.lk.RLock()
	defer r.lk.RUnlock()
	list := []*entity.Client{}
	for _, c := range r.s.clients {
		get := func(field string) (any, bool) {
			switch field {
			case filter.ClientFullName:
				return c.FullName, true
			case filter.ClientTaxID:
				return c.TaxID, true
			case filter.ClientEmail:
				return c.Email, true
			}
			return nil, false
		}
		if match(q, get, nil) {
			list = append(list, &c)
		}
	}
	return paginate(list, func(c *entity.Client) int64 { return c.ID }, q.Page), nil
}

// Delete borra el cliente, sus pedidos y las asociaciones de esos pedidos.
func (r *ClientRepo) Delete(ctx context.Context, id int64) error {
	r.lk.Lock()
	defer r.lk.Unlock()
	if _, ok := r.s.clients[id]; !ok {
		return domain.ErrClientNotFound
	}
	for orderID, o := range r.s.orders {
		if o.ClientID == id {
			delete(r.s.orders, orderID)
			delete(r.s.links, orderID)
		}
	}
	delete(r.s.clients, id)
	return nil
}
