package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	ProductCode  string          `json:"product_code" validate:"required,min=1,max=100"`
	Description  string          `json:"description"`
	MaterialID   string          `json:"material_id"`
	InitialPrice decimal.Decimal `json:"initial_price"`
	FinalPrice   decimal.Decimal `json:"final_price"`
	Weight       decimal.Decimal `json:"weight"`
	Supplier     string          `json:"supplier"`
}

// UpdateProductRequest entrada para actualizar un producto.
// ProductCode no se modifica una vez creado.
type UpdateProductRequest struct {
	Description  *string          `json:"description"`
	MaterialID   *string          `json:"material_id"`
	InitialPrice *decimal.Decimal `json:"initial_price"`
	FinalPrice   *decimal.Decimal `json:"final_price"`
	Weight       *decimal.Decimal `json:"weight"`
	Supplier     *string          `json:"supplier"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID           string          `json:"id"`
	ProductCode  string          `json:"product_code"`
	Description  string          `json:"description"`
	MaterialID   string          `json:"material_id"`
	InitialPrice decimal.Decimal `json:"initial_price"`
	FinalPrice   decimal.Decimal `json:"final_price"`
	Weight       decimal.Decimal `json:"weight"`
	Supplier     string          `json:"supplier"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
