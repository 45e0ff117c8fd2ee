package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/comercio-api/internal/domain/entity"
	"github.com/jhoicas/comercio-api/internal/domain/filter"
)

// CreateProductRequest entrada para crear un producto. La categoría se valida al decodificar.
// valor y estoque_inicial son punteros para distinguir ausente de 0.
type CreateProductRequest struct {
	Description  string           `json:"descricao" validate:"required"`
	Value        *decimal.Decimal `json:"valor" validate:"required"`
	Barcode      string           `json:"codigo_barras" validate:"required"`
	Section      string           `json:"secao" validate:"required"`
	Category     entity.Category  `json:"categoria" validate:"required"`
	InitialStock *int             `json:"estoque_inicial" validate:"required,min=0"`
	ExpiresOn    *Date            `json:"data_validade"`
}

// UpdateProductRequest actualización parcial (PATCH): sólo los campos presentes se aplican.
// data_validade: null borra la fecha de validez; ausente la conserva.
type UpdateProductRequest struct {
	Description  *string          `json:"descricao" validate:"omitempty,min=1"`
	Value        *decimal.Decimal `json:"valor"`
	Barcode      *string          `json:"codigo_barras" validate:"omitempty,min=1"`
	Section      *string          `json:"secao" validate:"omitempty,min=1"`
	Category     *entity.Category `json:"categoria"`
	InitialStock *int             `json:"estoque_inicial" validate:"omitempty,min=0"`
	ExpiresOn    NullableDate     `json:"data_validade"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID           int64           `json:"id"`
	Description  string          `json:"descricao"`
	Value        decimal.Decimal `json:"valor"`
	Barcode      string          `json:"codigo_barras"`
	Section      string          `json:"secao"`
	Category     entity.Category `json:"categoria"`
	InitialStock int             `json:"estoque_inicial"`
	ExpiresOn    *Date           `json:"data_validade"`
}

// ProductListResponse listado de productos.
type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
}

// ProductFilter parámetros opcionales del listado de productos.
// Value se compara contra el texto canónico del NUMERIC(12,2): "123.45" coincide, "123.450" no.
type ProductFilter struct {
	Value       *string
	Description *string
	Category    *entity.Category
	Available   bool
	Page        filter.Page
}
