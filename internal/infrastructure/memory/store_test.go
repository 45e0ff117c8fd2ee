package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/comercio-api/internal/domain"
	"github.com/jhoicas/comercio-api/internal/domain/entity"
	"github.com/jhoicas/comercio-api/internal/domain/filter"
	"github.com/jhoicas/comercio-api/internal/domain/repository"
	"github.com/jhoicas/comercio-api/internal/infrastructure/memory"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func seedProduct(t *testing.T, repos repository.Repositories, desc, value, section string, stock int) *entity.Product {
	t.Helper()
	p := &entity.Product{
		Description:  desc,
		Value:        decimal.RequireFromString(value),
		Barcode:      "789",
		Section:      section,
		Category:     entity.CategoryShoes,
		InitialStock: stock,
	}
	require.NoError(t, repos.Products.Create(context.Background(), p))
	return p
}

func seedClient(t *testing.T, repos repository.Repositories, email string) *entity.Client {
	t.Helper()
	c := &entity.Client{FullName: "Maria Silva", TaxID: "12345678900", Email: email}
	require.NoError(t, repos.Clients.Create(context.Background(), c))
	return c
}

func TestUsers_Unicidad(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewStore().Repositories()

	require.NoError(t, repos.Users.Create(ctx, &entity.User{Username: "alice", Email: "a@x.com", Role: entity.RoleGuest}))

	err := repos.Users.Create(ctx, &entity.User{Username: "alice", Email: "b@x.com"})
	assert.ErrorIs(t, err, domain.ErrUsernameExists)

	err = repos.Users.Create(ctx, &entity.User{Username: "bob", Email: "a@x.com"})
	assert.ErrorIs(t, err, domain.ErrEmailExists)
}

func TestProducts_FiltroValorComoTexto(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewStore().Repositories()
	seedProduct(t, repos, "tenis", "123.45", "A1", 5)
	seedProduct(t, repos, "bota", "10", "A1", 0)

	list, err := repos.Products.List(ctx, filter.New().TextEquals(filter.ProductValue, strPtr("123.45")).Build())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "tenis", list[0].Description)

	list, err = repos.Products.List(ctx, filter.New().TextEquals(filter.ProductValue, strPtr("123.450")).Build())
	require.NoError(t, err)
	assert.Empty(t, list)

	list, err = repos.Products.List(ctx, filter.New().TextEquals(filter.ProductValue, strPtr("10.00")).Build())
	require.NoError(t, err)
	assert.Len(t, list, 1)

	list, err = repos.Products.List(ctx, filter.New().Positive(filter.ProductStock, true).Build())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "tenis", list[0].Description)
}

func TestClients_Paginacion(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewStore().Repositories()
	for _, email := range []string{"1@x.com", "2@x.com", "3@x.com", "4@x.com", "5@x.com"} {
		seedClient(t, repos, email)
	}

	list, err := repos.Clients.List(ctx, filter.New().Paginate(filter.Page{Offset: intPtr(1), Limit: intPtr(2)}).Build())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "2@x.com", list[0].Email)
	assert.Equal(t, "3@x.com", list[1].Email)

	list, err = repos.Clients.List(ctx, filter.New().Paginate(filter.Page{Limit: intPtr(0)}).Build())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestClients_BorradoEnCascada(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewStore().Repositories()
	p := seedProduct(t, repos, "tenis", "1", "A1", 1)
	c := seedClient(t, repos, "c@x.com")
	other := seedClient(t, repos, "d@x.com")
	for _, clientID := range []int64{c.ID, c.ID, other.ID} {
		require.NoError(t, repos.Orders.Create(ctx, &entity.Order{State: entity.OrderWaiting, ClientID: clientID, ProductIDs: []int64{p.ID}}))
	}

	require.NoError(t, repos.Clients.Delete(ctx, c.ID))

	orders, err := repos.Orders.List(ctx, filter.Query{})
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, other.ID, orders[0].ClientID)

	assert.ErrorIs(t, repos.Clients.Delete(ctx, c.ID), domain.ErrClientNotFound)
}

func TestOrders_BorrarPedidoConservaProductos(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewStore().Repositories()
	p := seedProduct(t, repos, "tenis", "1", "A1", 1)
	c := seedClient(t, repos, "c@x.com")
	o := &entity.Order{State: entity.OrderPaid, ClientID: c.ID, ProductIDs: []int64{p.ID}}
	require.NoError(t, repos.Orders.Create(ctx, o))

	require.NoError(t, repos.Orders.Delete(ctx, o.ID))

	got, err := repos.Products.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestOrders_FiltroSeccionNoDuplica(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewStore().Repositories()
	a := seedProduct(t, repos, "tenis", "1", "A1", 1)
	b := seedProduct(t, repos, "bota", "2", "A1", 1)
	x := seedProduct(t, repos, "livro", "3", "B2", 1)
	c := seedClient(t, repos, "c@x.com")
	require.NoError(t, repos.Orders.Create(ctx, &entity.Order{State: entity.OrderWaiting, ClientID: c.ID, ProductIDs: []int64{a.ID, b.ID}}))
	require.NoError(t, repos.Orders.Create(ctx, &entity.Order{State: entity.OrderWaiting, ClientID: c.ID, ProductIDs: []int64{x.ID}}))

	list, err := repos.Orders.List(ctx, filter.New().Related(filter.OrderProductSection, strPtr("A1")).Build())
	require.NoError(t, err)
	require.Len(t, list, 1, "dos productos de la sección no deben duplicar el pedido")
	assert.Equal(t, []int64{a.ID, b.ID}, list[0].ProductIDs)
}

func TestOrders_RangoDeFechasInclusivo(t *testing.T) {
	ctx := context.Background()
	clock := time.Date(2024, 5, 31, 23, 59, 59, 0, time.Local)
	store := memory.NewStore().WithClock(func() time.Time { return clock })
	repos := store.Repositories()
	c := seedClient(t, repos, "c@x.com")

	require.NoError(t, repos.Orders.Create(ctx, &entity.Order{State: entity.OrderWaiting, ClientID: c.ID}))
	clock = time.Date(2024, 6, 1, 0, 0, 0, 0, time.Local)
	require.NoError(t, repos.Orders.Create(ctx, &entity.Order{State: entity.OrderWaiting, ClientID: c.ID}))
	clock = time.Date(2024, 6, 3, 23, 59, 59, 500, time.Local)
	require.NoError(t, repos.Orders.Create(ctx, &entity.Order{State: entity.OrderWaiting, ClientID: c.ID}))

	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.Local)
	end := time.Date(2024, 6, 3, 0, 0, 0, 0, time.Local)
	list, err := repos.Orders.List(ctx, filter.New().DateRange(filter.OrderCreatedAt, &start, &end).Build())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, int64(2), list[0].ID)
	assert.Equal(t, int64(3), list[1].ID)
}

func TestTxRunner_RollbackRestauraEstado(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	tx := memory.NewTxRunner(store)
	boom := errors.New("boom")

	err := tx.Run(ctx, func(repos repository.Repositories) error {
		seedClient(t, repos, "c@x.com")
		return boom
	})
	assert.ErrorIs(t, err, boom)

	list, err := store.Repositories().Clients.List(ctx, filter.Query{})
	require.NoError(t, err)
	assert.Empty(t, list)
}

// Una escritura fuera de la transacción espera al rollback y no se pierde con él.
func TestTxRunner_RollbackConservaEscriturasAjenas(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	tx := memory.NewTxRunner(store)
	boom := errors.New("boom")

	outside := &entity.Product{
		Description: "externo", Value: decimal.RequireFromString("1.00"), Barcode: "1",
		Section: "A1", Category: entity.CategoryBooks, InitialStock: 1,
	}
	done := make(chan error, 1)

	err := tx.Run(ctx, func(repos repository.Repositories) error {
		seedClient(t, repos, "c@x.com")
		go func() {
			done <- store.Repositories().Products.Create(ctx, outside)
		}()
		time.Sleep(20 * time.Millisecond) // la escritura ajena queda esperando el lock
		return boom
	})
	assert.ErrorIs(t, err, boom)
	require.NoError(t, <-done)

	repos := store.Repositories()
	got, err := repos.Products.GetByID(ctx, outside.ID)
	require.NoError(t, err)
	require.NotNil(t, got, "el producto creado fuera de la transacción debe persistir")
	assert.Equal(t, "externo", got.Description)

	clients, err := repos.Clients.List(ctx, filter.Query{})
	require.NoError(t, err)
	assert.Empty(t, clients, "lo escrito por la transacción sí se deshace")
}

func TestTxRunner_CommitVisibleFuera(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	var id int64
	err := memory.NewTxRunner(store).Run(ctx, func(repos repository.Repositories) error {
		id = seedClient(t, repos, "c@x.com").ID
		return nil
	})
	require.NoError(t, err)

	got, err := store.Repositories().Clients.GetByID(ctx, id)
	require.NoError(t, err)
	assert.NotNil(t, got)
}
