package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/comercio-api/internal/domain/filter"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func TestRender_SinFiltrosNiPaginacion(t *testing.T) {
	query, args, err := clientSelect.render(filter.New(filter.ClientFields...).Build())
	require.NoError(t, err)
	assert.Equal(t, `SELECT `+clientColumns+` FROM clients ORDER BY id`, query)
	assert.Empty(t, args)
}

func TestRender_ProductosEnOrdenDeclarado(t *testing.T) {
	q := filter.New(filter.ProductFields...).
		Positive(filter.ProductStock, true).
		Contains(filter.ProductDescription, strPtr("tenis")).
		TextEquals(filter.ProductValue, strPtr("123.45")).
		Equals(filter.ProductCategory, strPtr("shoes")).
		Paginate(filter.Page{Offset: intPtr(0), Limit: intPtr(10)}).
		Build()

	query, args, err := productSelect.render(q)
	require.NoError(t, err)
	assert.Equal(t, `SELECT `+productColumns+` FROM products WHERE CAST(value AS TEXT) = $1`+
		` AND strpos(description, $2) > 0 AND category = $3 AND initial_stock > 0`+
		` ORDER BY id LIMIT $4 OFFSET $5`, query)
	assert.Equal(t, []any{"123.45", "tenis", "shoes", 10, 0}, args)
}

func TestRender_SoloOffset(t *testing.T) {
	q := filter.New().Paginate(filter.Page{Offset: intPtr(3)}).Build()
	query, args, err := userSelect.render(q)
	require.NoError(t, err)
	assert.Equal(t, `SELECT `+userColumns+` FROM users ORDER BY id OFFSET $1`, query)
	assert.Equal(t, []any{3}, args)
}

func TestRender_PedidosRangoYSeccionSinDuplicados(t *testing.T) {
	start := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 2, 12, 0, 0, 0, time.UTC)
	q := filter.New(filter.OrderFields...).
		Related(filter.OrderProductSection, strPtr("A1")).
		DateRange(filter.OrderCreatedAt, &start, &end).
		Build()

	query, args, err := orderSelect.render(q)
	require.NoError(t, err)
	assert.Contains(t, query, `date_trunc('second', o.created_at) BETWEEN $1 AND $2`)
	assert.Contains(t, query, `EXISTS (SELECT 1 FROM order_products op JOIN products p ON p.id = op.product_id`)
	assert.Contains(t, query, `p.section = $3)`)
	require.Len(t, args, 3)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), args[0])
	assert.Equal(t, time.Date(2024, 6, 2, 23, 59, 59, 0, time.UTC), args[1])
	assert.Equal(t, "A1", args[2])
}

func TestRender_CampoDesconocido(t *testing.T) {
	q := filter.New().Equals("password_hash", strPtr("x")).Build()
	_, _, err := userSelect.render(q)
	assert.Error(t, err)

	q = filter.New().Related("supplier", strPtr("x")).Build()
	_, _, err = productSelect.render(q)
	assert.Error(t, err)
}
