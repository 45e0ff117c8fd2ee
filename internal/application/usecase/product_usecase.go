package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/comercio-api/internal/application/dto"
	"github.com/jhoicas/comercio-api/internal/domain"
	"github.com/jhoicas/comercio-api/internal/domain/entity"
	"github.com/jhoicas/comercio-api/internal/domain/filter"
	"github.com/jhoicas/comercio-api/internal/domain/repository"
)

// maxValue límite exclusivo de NUMERIC(12,2).
var maxValue = decimal.New(1, 10)

var (
	errValueRequired = domain.NewError(domain.ErrInvalidInput, "valor is required")
	errStockRequired = domain.NewError(domain.ErrInvalidInput, "estoque_inicial is required")
	errStockNegative = domain.NewError(domain.ErrInvalidInput, "estoque_inicial must be at least 0")
)

// ProductUseCase aplica reglas de negocio para productos.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso con el puerto de persistencia.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create registra un producto. El valor se redondea a 2 decimales.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	category, err := entity.ParseCategory(string(in.Category))
	if err != nil {
		return nil, err
	}
	if in.Value == nil {
		return nil, errValueRequired
	}
	value, err := normalizeValue(*in.Value)
	if err != nil {
		return nil, err
	}
	if in.InitialStock == nil {
		return nil, errStockRequired
	}
	if *in.InitialStock < 0 {
		return nil, errStockNegative
	}
	product := &entity.Product{
		Description:  in.Description,
		Value:        value,
		Barcode:      in.Barcode,
		Section:      in.Section,
		Category:     category,
		InitialStock: *in.InitialStock,
		ExpiresOn:    in.ExpiresOn.Ptr(),
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

func normalizeValue(v decimal.Decimal) (decimal.Decimal, error) {
	v = v.Round(2)
	if v.IsNegative() || v.GreaterThanOrEqual(maxValue) {
		return decimal.Zero, domain.ErrInvalidValue
	}
	return v, nil
}

// List devuelve los productos filtrados por valor (texto exacto), descripción, categoría y disponibilidad.
func (uc *ProductUseCase) List(ctx context.Context, f dto.ProductFilter) (*dto.ProductListResponse, error) {
	var category *string
	if f.Category != nil {
		c := string(*f.Category)
		category = &c
	}
	q := filter.New(filter.ProductFields...).
		TextEquals(filter.ProductValue, f.Value).
		Contains(filter.ProductDescription, f.Description).
		Equals(filter.ProductCategory, category).
		Positive(filter.ProductStock, f.Available).
		Paginate(f.Page).
		Build()
	products, err := uc.repo.List(ctx, q)
	if err != nil {
		return nil, err
	}
	out := &dto.ProductListResponse{Products: make([]dto.ProductResponse, 0, len(products))}
	for _, p := range products {
		out.Products = append(out.Products, *toProductResponse(p))
	}
	return out, nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	return toProductResponse(product), nil
}

// Update aplica sólo los campos presentes. data_validade en null borra la fecha.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Value != nil {
		value, err := normalizeValue(*in.Value)
		if err != nil {
			return nil, err
		}
		product.Value = value
	}
	if in.Barcode != nil {
		product.Barcode = *in.Barcode
	}
	if in.Section != nil {
		product.Section = *in.Section
	}
	if in.Category != nil {
		category, err := entity.ParseCategory(string(*in.Category))
		if err != nil {
			return nil, err
		}
		product.Category = category
	}
	if in.InitialStock != nil {
		if *in.InitialStock < 0 {
			return nil, errStockNegative
		}
		product.InitialStock = *in.InitialStock
	}
	if in.ExpiresOn.Set {
		product.ExpiresOn = in.ExpiresOn.Value.Ptr()
	}
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto; los pedidos que lo tenían lo pierden de su conjunto.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:           p.ID,
		Description:  p.Description,
		Value:        p.Value,
		Barcode:      p.Barcode,
		Section:      p.Section,
		Category:     p.Category,
		InitialStock: p.InitialStock,
		ExpiresOn:    dto.NewDate(p.ExpiresOn),
	}
}
