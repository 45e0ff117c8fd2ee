package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/comercio-api/internal/application/dto"
	"github.com/jhoicas/comercio-api/internal/domain"
	"github.com/jhoicas/comercio-api/internal/domain/entity"
	"github.com/jhoicas/comercio-api/internal/domain/filter"
	"github.com/jhoicas/comercio-api/internal/domain/repository"
)

// OrderUseCase aplica reglas de negocio para pedidos.
// Las escrituras (pedido + order_products) corren en una sola transacción.
type OrderUseCase struct {
	tx     repository.TxRunner
	orders repository.OrderRepository
	// strict rechaza ids de producto inexistentes en vez de descartarlos.
	strict bool
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(tx repository.TxRunner, orders repository.OrderRepository, strictProducts bool) *OrderUseCase {
	return &OrderUseCase{tx: tx, orders: orders, strict: strictProducts}
}

// Create registra un pedido. El cliente debe existir; los productos se resuelven por id.
func (uc *OrderUseCase) Create(ctx context.Context, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	state, err := entity.ParseOrderState(string(in.State))
	if err != nil {
		return nil, err
	}
	order := &entity.Order{State: state, ClientID: in.ClientID}
	err = uc.tx.Run(ctx, func(repos repository.Repositories) error {
		if err := requireClient(ctx, repos.Clients, in.ClientID); err != nil {
			return err
		}
		ids, err := uc.resolveProducts(ctx, repos.Products, in.ProductIDs)
		if err != nil {
			return err
		}
		order.ProductIDs = ids
		return repos.Orders.Create(ctx, order)
	})
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

func requireClient(ctx context.Context, clients repository.ClientRepository, id int64) error {
	client, err := clients.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if client == nil {
		return domain.ErrOrderClientAbsent
	}
	return nil
}

// resolveProducts devuelve los ids existentes (sin repetidos, ascendentes).
// Con strict, el primer id inexistente es un error de validación.
func (uc *OrderUseCase) resolveProducts(ctx context.Context, products repository.ProductRepository, ids []int64) ([]int64, error) {
	if len(ids) == 0 {
		return []int64{}, nil
	}
	found, err := products.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	exists := make(map[int64]bool, len(found))
	out := make([]int64, 0, len(found))
	for _, p := range found {
		exists[p.ID] = true
		out = append(out, p.ID)
	}
	if uc.strict {
		for _, id := range ids {
			if !exists[id] {
				return nil, domain.NewError(domain.ErrInvalidInput, fmt.Sprintf("Product not found: %d", id))
			}
		}
	}
	return out, nil
}

// List devuelve los pedidos filtrados. El rango de fechas sólo se aplica con ambos extremos.
func (uc *OrderUseCase) List(ctx context.Context, f dto.OrderFilter) (*dto.OrderListResponse, error) {
	var state *string
	if f.State != nil {
		s := string(*f.State)
		state = &s
	}
	q := filter.New(filter.OrderFields...).
		DateRange(filter.OrderCreatedAt, f.CreatedStart, f.CreatedEnd).
		Related(filter.OrderProductSection, f.ProductSection).
		EqualsID(filter.OrderID, f.OrderID).
		Equals(filter.OrderState, state).
		EqualsID(filter.OrderClientID, f.ClientID).
		Paginate(f.Page).
		Build()
	orders, err := uc.orders.List(ctx, q)
	if err != nil {
		return nil, err
	}
	out := &dto.OrderListResponse{Orders: make([]dto.OrderResponse, 0, len(orders))}
	for _, o := range orders {
		out.Orders = append(out.Orders, *toOrderResponse(o))
	}
	return out, nil
}

// GetByID obtiene un pedido con sus productos.
func (uc *OrderUseCase) GetByID(ctx context.Context, id int64) (*dto.OrderResponse, error) {
	order, err := uc.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrOrderNotFound
	}
	return toOrderResponse(order), nil
}

// Update aplica sólo los campos presentes; product_ids presente reemplaza el conjunto completo.
func (uc *OrderUseCase) Update(ctx context.Context, id int64, in dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	var order *entity.Order
	err := uc.tx.Run(ctx, func(repos repository.Repositories) error {
		var err error
		order, err = repos.Orders.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrOrderNotFound
		}
		if in.State != nil {
			state, err := entity.ParseOrderState(string(*in.State))
			if err != nil {
				return err
			}
			order.State = state
		}
		if in.ClientID != nil {
			if err := requireClient(ctx, repos.Clients, *in.ClientID); err != nil {
				return err
			}
			order.ClientID = *in.ClientID
		}
		if in.ProductIDs != nil {
			ids, err := uc.resolveProducts(ctx, repos.Products, *in.ProductIDs)
			if err != nil {
				return err
			}
			order.ProductIDs = ids
		}
		return repos.Orders.Update(ctx, order)
	})
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// Delete elimina el pedido y sus asociaciones; los productos no se tocan.
func (uc *OrderUseCase) Delete(ctx context.Context, id int64) error {
	return uc.orders.Delete(ctx, id)
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	ids := o.ProductIDs
	if ids == nil {
		ids = []int64{}
	}
	return &dto.OrderResponse{
		ID:         o.ID,
		State:      o.State,
		ClientID:   o.ClientID,
		CreatedAt:  o.CreatedAt,
		ProductIDs: ids,
	}
}
