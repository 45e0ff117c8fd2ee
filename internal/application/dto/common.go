package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/comercio-api/internal/domain"
)

// valor viaja como número JSON (123.45), no como string.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// DateLayout formato de fecha (sin hora) en JSON y query params.
const DateLayout = "2006-01-02"

// ErrInvalidDate fecha con formato distinto de YYYY-MM-DD.
var ErrInvalidDate = domain.NewError(domain.ErrInvalidInput, "Invalid date, expected YYYY-MM-DD")

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Message respuesta simple con mensaje (borrados, raíz).
type Message struct {
	Message string `json:"message"`
}

// Date fecha sin hora serializada como "YYYY-MM-DD".
type Date struct {
	time.Time
}

// NewDate envuelve t; nil si t es nil.
func NewDate(t *time.Time) *Date {
	if t == nil {
		return nil
	}
	return &Date{Time: *t}
}

// Ptr devuelve la fecha como *time.Time (nil si d es nil).
func (d *Date) Ptr() *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}

// MarshalJSON serializa como "YYYY-MM-DD".
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(DateLayout))
}

// UnmarshalJSON acepta "YYYY-MM-DD".
func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return ErrInvalidDate
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return ErrInvalidDate
	}
	d.Time = t
	return nil
}

// NullableDate fecha opcional de un PATCH que distingue ausente de null:
// ausente deja Set en false; null fija Set con Value nil (borrar la fecha).
type NullableDate struct {
	Set   bool
	Value *Date
}

// UnmarshalJSON sólo se invoca si el campo está presente en el body.
func (n *NullableDate) UnmarshalJSON(b []byte) error {
	n.Set = true
	if string(b) == "null" {
		n.Value = nil
		return nil
	}
	var d Date
	if err := d.UnmarshalJSON(b); err != nil {
		return err
	}
	n.Value = &d
	return nil
}
