package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un artículo del catálogo.
type Product struct {
	ID           int64
	Description  string
	Value        decimal.Decimal // NUMERIC(12,2)
	Barcode      string
	Section      string
	Category     Category
	InitialStock int
	ExpiresOn    *time.Time // fecha de validez opcional
}
