package entity

import (
	"encoding/json"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/comercio-api/internal/domain"
)

// Category es la categoría cerrada de un producto. Se persiste como texto.
type Category string

// Categorías válidas.
const (
	CategoryElectronics Category = "electronics"
	CategoryClothing    Category = "clothing"
	CategoryShoes       Category = "shoes"
	CategoryBooks       Category = "books"
	CategoryGames       Category = "games"
)

// Etiquetas heredadas del catálogo en portugués; se aceptan como alias de entrada.
// Las claves están plegadas con foldLabel.
var categoryAliases = map[string]Category{
	"eletronicos": CategoryElectronics,
	"roupas":      CategoryClothing,
	"calcados":    CategoryShoes,
	"livros":      CategoryBooks,
	"jogos":       CategoryGames,
}

// foldLabel quita acentos y mayúsculas: "Calçados" -> "calcados".
func foldLabel(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), cases.Fold(), norm.NFC)
	out, _, err := transform.String(t, strings.TrimSpace(s))
	if err != nil {
		return strings.ToLower(strings.TrimSpace(s))
	}
	return out
}

// ParseCategory normaliza s a una Category. Devuelve domain.ErrInvalidCategory si no existe.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.TrimSpace(s))
	switch c {
	case CategoryElectronics, CategoryClothing, CategoryShoes, CategoryBooks, CategoryGames:
		return c, nil
	}
	if alias, ok := categoryAliases[foldLabel(s)]; ok {
		return alias, nil
	}
	return "", domain.ErrInvalidCategory
}

// UnmarshalJSON valida la categoría al decodificar el cuerpo de la petición.
func (c *Category) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return domain.ErrInvalidCategory
	}
	parsed, err := ParseCategory(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// OrderState es el estado cerrado de un pedido. Se persiste como texto.
type OrderState string

// Estados válidos de pedido.
const (
	OrderWaiting   OrderState = "waiting"
	OrderPaid      OrderState = "paid"
	OrderCancelled OrderState = "cancelled"
)

var orderStateAliases = map[string]OrderState{
	"aguardando": OrderWaiting,
	"pago":       OrderPaid,
	"cancelado":  OrderCancelled,
	"cancel":     OrderCancelled,
}

// ParseOrderState normaliza s a un OrderState. Devuelve domain.ErrInvalidOrderState si no existe.
func ParseOrderState(s string) (OrderState, error) {
	st := OrderState(strings.TrimSpace(s))
	switch st {
	case OrderWaiting, OrderPaid, OrderCancelled:
		return st, nil
	}
	if alias, ok := orderStateAliases[foldLabel(s)]; ok {
		return alias, nil
	}
	return "", domain.ErrInvalidOrderState
}

// UnmarshalJSON valida el estado al decodificar el cuerpo de la petición.
func (s *OrderState) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return domain.ErrInvalidOrderState
	}
	parsed, err := ParseOrderState(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
