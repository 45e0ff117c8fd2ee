package filter_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/comercio-api/internal/domain/filter"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func TestBuilder_SoloAplicaFiltrosPresentes(t *testing.T) {
	empty := ""
	q := filter.New("description", "category").
		Contains("description", nil).
		Equals("category", &empty).
		Positive("stock", false).
		Build()

	assert.Empty(t, q.Predicates, "parámetros ausentes no deben generar predicados")
	assert.Nil(t, q.Page.Offset)
	assert.Nil(t, q.Page.Limit)
}

func TestBuilder_OrdenDeclaradoIndependienteDelOrdenDeLlamada(t *testing.T) {
	fields := []string{"stock", "category", "value", "description"}

	a := filter.New(fields...).
		Contains("description", strPtr("tenis")).
		TextEquals("value", strPtr("123.45")).
		Equals("category", strPtr("shoes")).
		Positive("stock", true).
		Build()

	b := filter.New(fields...).
		Positive("stock", true).
		Equals("category", strPtr("shoes")).
		Contains("description", strPtr("tenis")).
		TextEquals("value", strPtr("123.45")).
		Build()

	require.Len(t, a.Predicates, 4)
	assert.Equal(t, a, b, "A luego B debe producir la misma consulta que B luego A")
	assert.Equal(t, "stock", a.Predicates[0].Field)
	assert.Equal(t, "description", a.Predicates[3].Field)
}

func TestBuilder_RangoParcialSeIgnora(t *testing.T) {
	start := time.Date(2024, 6, 1, 15, 0, 0, 0, time.UTC)

	q := filter.New().DateRange("created_at", &start, nil).Build()
	assert.Empty(t, q.Predicates)

	q = filter.New().DateRange("created_at", nil, &start).Build()
	assert.Empty(t, q.Predicates)
}

func TestBuilder_RangoCompletoUsaLimitesDelDia(t *testing.T) {
	start := time.Date(2024, 6, 1, 15, 30, 0, 0, time.UTC)
	end := time.Date(2024, 6, 3, 8, 0, 0, 0, time.UTC)

	q := filter.New().DateRange("created_at", &start, &end).Build()
	require.Len(t, q.Predicates, 1)

	p := q.Predicates[0]
	assert.Equal(t, filter.OpDateRange, p.Op)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), p.Value)
	assert.Equal(t, time.Date(2024, 6, 3, 23, 59, 59, 0, time.UTC), p.Upper)
}

func TestBuilder_PaginacionDistingueCeroDeAusente(t *testing.T) {
	q := filter.New().Paginate(filter.Page{Offset: intPtr(0)}).Build()
	require.NotNil(t, q.Page.Offset)
	assert.Equal(t, 0, *q.Page.Offset)
	assert.Nil(t, q.Page.Limit)
}

func TestBuilder_EqualsIDAceptaCero(t *testing.T) {
	var id int64
	q := filter.New().EqualsID("id", &id).Build()
	require.Len(t, q.Predicates, 1)
	assert.Equal(t, int64(0), q.Predicates[0].Value)
}
