package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/comercio-api/internal/domain"
	"github.com/jhoicas/comercio-api/internal/domain/entity"
	"github.com/jhoicas/comercio-api/internal/domain/filter"
	"github.com/jhoicas/comercio-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

const orderColumns = `o.id, o.state, o.client_id, o.created_at`

var orderSelect = selectSpec{
	base:    `SELECT ` + orderColumns + ` FROM orders o`,
	orderBy: "o.id",
	columns: map[string]string{
		filter.OrderCreatedAt: "o.created_at",
		filter.OrderID:        "o.id",
		filter.OrderState:     "o.state",
		filter.OrderClientID:  "o.client_id",
	},
	related: map[string]string{
		filter.OrderProductSection: `EXISTS (SELECT 1 FROM order_products op JOIN products p ON p.id = op.product_id` +
			` WHERE op.order_id = o.id AND p.section = $%d)`,
	},
}

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL.
// Las escrituras tocan orders y order_products: usar dentro de TxRunner.Run.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador de persistencia para pedidos.
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create inserta el pedido y sus asociaciones; completa ID y CreatedAt.
func (r *OrderRepo) Create(ctx context.Context, order *entity.Order) error {
	query := `
		INSERT INTO orders (state, client_id)
		VALUES ($1, $2)
		RETURNING id, created_at`
	if err := r.q.QueryRow(ctx, query, string(order.State), order.ClientID).
		Scan(&order.ID, &order.CreatedAt); err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return r.insertProducts(ctx, order.ID, order.ProductIDs)
}

func (r *OrderRepo) insertProducts(ctx context.Context, orderID int64, productIDs []int64) error {
	if len(productIDs) == 0 {
		return nil
	}
	query := `
		INSERT INTO order_products (order_id, product_id)
		SELECT $1, unnest($2::bigint[])
		ON CONFLICT DO NOTHING`
	if _, err := r.q.Exec(ctx, query, orderID, productIDs); err != nil {
		return fmt.Errorf("insert order products: %w", err)
	}
	return nil
}

// GetByID obtiene un pedido con sus productos.
func (r *OrderRepo) GetByID(ctx context.Context, id int64) (*entity.Order, error) {
	o, err := scanOrder(r.q.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders o WHERE o.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	if err := r.loadProducts(ctx, []*entity.Order{o}); err != nil {
		return nil, err
	}
	return o, nil
}

// Update guarda estado y cliente y reemplaza el conjunto de productos.
func (r *OrderRepo) Update(ctx context.Context, order *entity.Order) error {
	tag, err := r.q.Exec(ctx, `UPDATE orders SET state = $2, client_id = $3 WHERE id = $1`,
		order.ID, string(order.State), order.ClientID)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrOrderNotFound
	}
	keep := order.ProductIDs
	if keep == nil {
		keep = []int64{}
	}
	// las filas que siguen conservan su created_at
	if _, err := r.q.Exec(ctx,
		`DELETE FROM order_products WHERE order_id = $1 AND NOT (product_id = ANY($2))`, order.ID, keep); err != nil {
		return fmt.Errorf("clear order products: %w", err)
	}
	return r.insertProducts(ctx, order.ID, order.ProductIDs)
}

// List devuelve los pedidos que cumplen q con sus productos.
func (r *OrderRepo) List(ctx context.Context, q filter.Query) ([]*entity.Order, error) {
	query, args, err := orderSelect.render(q)
	if err != nil {
		return nil, err
	}
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	list := []*entity.Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, o)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	if err := r.loadProducts(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

// loadProducts completa ProductIDs de cada pedido con una sola consulta.
func (r *OrderRepo) loadProducts(ctx context.Context, orders []*entity.Order) error {
	if len(orders) == 0 {
		return nil
	}
	byID := make(map[int64]*entity.Order, len(orders))
	ids := make([]int64, 0, len(orders))
	for _, o := range orders {
		o.ProductIDs = []int64{}
		byID[o.ID] = o
		ids = append(ids, o.ID)
	}
	rows, err := r.q.Query(ctx,
		`SELECT order_id, product_id FROM order_products WHERE order_id = ANY($1) ORDER BY order_id, product_id`, ids)
	if err != nil {
		return fmt.Errorf("load order products: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var orderID, productID int64
		if err := rows.Scan(&orderID, &productID); err != nil {
			return fmt.Errorf("scan order product: %w", err)
		}
		if o, ok := byID[orderID]; ok {
			o.ProductIDs = append(o.ProductIDs, productID)
		}
	}
	return rows.Err()
}

// Delete elimina el pedido; order_products cae por cascada y los productos permanecen.
func (r *OrderRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

func scanOrder(row pgx.Row) (*entity.Order, error) {
	var (
		o     entity.Order
		state string
	)
	if err := row.Scan(&o.ID, &state, &o.ClientID, &o.CreatedAt); err != nil {
		return nil, err
	}
	o.State = entity.OrderState(state)
	return &o, nil
}
