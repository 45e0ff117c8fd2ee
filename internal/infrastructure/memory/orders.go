package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jhoicas/comercio-api/internal/domain"
	"github.com/jhoicas/comercio-api/internal/domain/entity"
	"github.com/jhoicas/comercio-api/internal/domain/filter"
	"github.com/jhoicas/comercio-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo repositorio de pedidos en memoria; las asociaciones viven en Store.links.
type OrderRepo struct {
	s  *Store
	lk locker
}

// NewOrderRepository construye el repo sobre s.
func NewOrderRepository(s *Store) *OrderRepo {
	return &OrderRepo{s: s, lk: &s.mu}
}

func (r *OrderRepo) Create(ctx context.Context, order *entity.Order) error {
	r.lk.Lock()
	defer r.lk.Unlock()
	if err := r.checkRefs(order); err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	order.ID = r.s.nextID("orders")
	order.CreatedAt = r.s.now()
	r.s.orders[order.ID] = stored(order)
	r.setLinks(order.ID, order.ProductIDs)
	order.ProductIDs = r.productIDs(order.ID)
	return nil
}

// checkRefs emula las FKs de orders.client_id y order_products.product_id.
func (r *OrderRepo) checkRefs(order *entity.Order) error {
	if _, ok := r.s.clients[order.ClientID]; !ok {
		return fmt.Errorf("cliente %d inexistente", order.ClientID)
	}
	for _, id := range order.ProductIDs {
		if _, ok := r.s.products[id]; !ok {
			return fmt.Errorf("producto %d inexistente", id)
		}
	}
	return nil
}

// setLinks reemplaza el conjunto de productos de orderID conservando created_at de los que siguen.
func (r *OrderRepo) setLinks(orderID int64, productIDs []int64) {
	prev := r.s.links[orderID]
	set := make(map[int64]time.Time, len(productIDs))
	now := r.s.now()
	for _, id := range productIDs {
		if at, ok := prev[id]; ok {
			set[id] = at
			continue
		}
		set[id] = now
	}
	r.s.links[orderID] = set
}

func (r *OrderRepo) productIDs(orderID int64) []int64 {
	ids := make([]int64, 0, len(r.s.links[orderID]))
	for id := range r.s.links[orderID] {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func stored(order *entity.Order) entity.Order {
	o := *order
	o.ProductIDs = nil
	return o
}

func (r *OrderRepo) GetByID(ctx context.Context, id int64) (*entity.Order, error) {
	r.lk.RLock()
	defer r.lk.RUnlock()
	o, ok := r.s.orders[id]
	if !ok {
		return nil, nil
	}
	o.ProductIDs = r.productIDs(id)
	return &o, nil
}

func (r *OrderRepo) Update(ctx context.Context, order *entity.Order) error {
	r.lk.Lock()
	defer r.lk.Unlock()
	current, ok := r.s.orders[order.ID]
	if !ok {
		return domain.ErrOrderNotFound
	}
	if err := r.checkRefs(order); err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	order.CreatedAt = current.CreatedAt
	r.s.orders[order.ID] = stored(order)
	r.setLinks(order.ID, order.ProductIDs)
	order.ProductIDs = r.productIDs(order.ID)
	return nil
}

func (r *OrderRepo) List(ctx context.Context, q filter.Query) ([]*entity.Order, error) {
	r.lk.RLock()
	defer r.lk.RUnlock()
	list := []*entity.Order{}
	for _, o := range r.s.orders {
		get := func(field string) (any, bool) {
			switch field {
			case filter.OrderCreatedAt:
				return o.CreatedAt, true
			case filter.OrderID:
				return o.ID, true
			case filter.OrderState:
				return string(o.State), true
			case filter.OrderClientID:
				return o.ClientID, true
			}
			return nil, false
		}
		if match(q, get, r.related(o.ID)) {
			o.ProductIDs = r.productIDs(o.ID)
			list = append(list, &o)
		}
	}
	return paginate(list, func(o *entity.Order) int64 { return o.ID }, q.Page), nil
}

// related evalúa product_section como EXISTS: basta un producto asociado que coincida.
func (r *OrderRepo) related(orderID int64) relatedFunc {
	return func(field string, value any) bool {
		if field != filter.OrderProductSection {
			return false
		}
		for productID := range r.s.links[orderID] {
			if p, ok := r.s.products[productID]; ok && p.Section == value {
				return true
			}
		}
		return false
	}
}

// Delete borra el pedido y sus asociaciones; los productos permanecen.
func (r *OrderRepo) Delete(ctx context.Context, id int64) error {
	r.lk.Lock()
	defer r.lk.Unlock()
	if _, ok := r.s.orders[id]; !ok {
		return domain.ErrOrderNotFound
	}
	delete(r.s.orders, id)
	delete(r.s.links, id)
	return nil
}
