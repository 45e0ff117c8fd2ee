package entity

import "time"

// Order representa un pedido de un cliente con su conjunto de productos.
type Order struct {
	ID         int64
	State      OrderState
	ClientID   int64
	CreatedAt  time.Time
	ProductIDs []int64 // ids asociados vía order_products, orden ascendente
}

// OrderProduct es la fila de asociación order_products (par único).
type OrderProduct struct {
	OrderID   int64
	ProductID int64
	CreatedAt time.Time
}
