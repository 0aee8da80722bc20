package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name        string          `json:"name" validate:"required,min=2,max=200"`
	Category    string          `json:"category" validate:"required"`
	Subcategory string          `json:"subcategory" validate:"required"`
	Quantity    int             `json:"quantity" validate:"min=0"`
	MinQuantity int             `json:"min_quantity" validate:"min=0"`
	Unit        string          `json:"unit" validate:"required"`
	Price       decimal.Decimal `json:"price"`
}

// UpdateProductRequest entrada para actualizar un producto. La cantidad no es
// editable aquí: solo se mueve vía el ajuste de stock.
type UpdateProductRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=2,max=200"`
	MinQuantity *int             `json:"min_quantity" validate:"omitempty,min=0"`
	Unit        *string          `json:"unit"`
	Price       *decimal.Decimal `json:"price"`
}

// AdjustQuantityRequest entrada del ajuste incremental de stock.
// La UI envía siempre ±1, pero cualquier delta distinto de cero es válido.
type AdjustQuantityRequest struct {
	Delta int `json:"delta" validate:"required"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Subcategory string          `json:"subcategory"`
	Quantity    int             `json:"quantity"`
	MinQuantity int             `json:"min_quantity"`
	Unit        string          `json:"unit"`
	Price       decimal.Decimal `json:"price"`
	LowStock    bool            `json:"low_stock"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductListResponse lista de productos ordenada por (categoría, subcategoría).
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
}
