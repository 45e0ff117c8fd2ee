package memory

import (
	"context"

	"github.com/jhoicas/comercio-api/internal/domain"
	"github.com/jhoicas/comercio-api/internal/domain/entity"
	"github.com/jhoicas/comercio-api/internal/domain/filter"
	"github.com/jhoicas/comercio-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo repositorio de productos en memoria.
type ProductRepo struct {
	s  *Store
	lk locker
}

// NewProductRepository construye el repo sobre s.
func NewProductRepository(s *Store) *ProductRepo {
	return &ProductRepo{s: s, lk: &s.mu}
}

func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	r.lk.Lock()
	defer r.lk.Unlock()
	product.ID = r.s.nextID("products")
	r.s.products[product.ID] = *product
	return nil
}

func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	r.lk.RLock()
	defer r.lk.RUnlock()
	if p, ok := r.s.products[id]; ok {
		return &p, nil
	}
	return nil, nil
}

func (r *ProductRepo) GetByIDs(ctx context.Context, ids []int64) ([]*entity.Product, error) {
	r.lk.RLock()
	defer r.lk.RUnlock()
	seen := make(map[int64]bool, len(ids))
	list := []*entity.Product{}
	for _, id := range ids {
		p, ok := r.s.products[id]
		if !ok || seen[id] {
			continue
		}
		seen[id] = true
		list = append(list, &p)
	}
	return paginate(list, func(p *entity.Product) int64 { return p.ID }, filter.Page{}), nil
}

func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	r.lk.Lock()
	defer r.lk.Unlock()
	if _, ok := r.s.products[product.ID]; !ok {
		return domain.ErrProductNotFound
	}
	r.s.products[product.ID] = *product
	return nil
}

func (r *ProductRepo) List(ctx context.Context, q filter.Query) ([]*entity.Product, error) {
	r.lk.RLock()
	defer r.lk.RUnlock()
	list := []*entity.Product{}
	for _, p := range r.s.products {
		get := func(field string) (any, bool) {
			switch field {
			case filter.ProductValue:
				return p.Value, true
			case filter.ProductDescription:
				return p.Description, true
			case filter.ProductCategory:
				return string(p.Category), true
			case filter.ProductStock:
				return p.InitialStock, true
			}
			return nil, false
		}
		if match(q, get, nil) {
			list = append(list, &p)
		}
	}
	return paginate(list, func(p *entity.Product) int64 { return p.ID }, q.Page), nil
}

// Delete borra el producto y lo quita de los pedidos que lo referencian.
func (r *ProductRepo) Delete(ctx context.Context, id int64) error {
	r.lk.Lock()
	defer r.lk.Unlock()
	if _, ok := r.s.products[id]; !ok {
		return domain.ErrProductNotFound
	}
	for _, set := range r.s.links {
		delete(set, id)
	}
	delete(r.s.products, id)
	return nil
}
