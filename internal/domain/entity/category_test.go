package entity_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/comercio-api/internal/domain"
	"github.com/jhoicas/comercio-api/internal/domain/entity"
)

func TestParseCategory_AliasSinAcentosNiMayusculas(t *testing.T) {
	cases := map[string]entity.Category{
		"shoes":       entity.CategoryShoes,
		"calçados":    entity.CategoryShoes,
		"Calcados":    entity.CategoryShoes,
		"ELETRÔNICOS": entity.CategoryElectronics,
		" livros ":    entity.CategoryBooks,
	}
	for in, want := range cases {
		got, err := entity.ParseCategory(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestParseCategory_Invalida(t *testing.T) {
	_, err := entity.ParseCategory("comida")
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Equal(t, "Invalid category", err.Error())
}

func TestParseOrderState_Alias(t *testing.T) {
	st, err := entity.ParseOrderState("Aguardando")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderWaiting, st)

	_, err = entity.ParseOrderState("enviado")
	assert.ErrorIs(t, err, domain.ErrInvalidOrderState)
}

func TestOrderState_UnmarshalJSON(t *testing.T) {
	var body struct {
		State entity.OrderState `json:"state"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"state":"pago"}`), &body))
	assert.Equal(t, entity.OrderPaid, body.State)

	err := json.Unmarshal([]byte(`{"state":"x"}`), &body)
	assert.ErrorIs(t, err, domain.ErrInvalidOrderState)
}
