package repository

import (
	"context"

	"github.com/jhoicas/StockMarie-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// List devuelve los productos ordenados por (category, subcategory).
	// Si category no es vacío, restringe a esa categoría.
	List(ctx context.Context, category string) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	// UpdateQuantity actualiza solo la cantidad (usada por el ajuste de stock).
	UpdateQuantity(ctx context.Context, productID string, quantity int) error
	Delete(ctx context.Context, id string) error
}
