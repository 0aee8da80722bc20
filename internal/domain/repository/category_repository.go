package repository

import (
	"context"

	"github.com/jhoicas/StockMarie-api/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category (DIP).
// La inserción no comprueba unicidad de nombre: el modelo admite duplicados.
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByName(ctx context.Context, name string) (*entity.Category, error)
	List(ctx context.Context) ([]*entity.Category, error)
}

// SubcategoryRepository define el puerto de persistencia para Subcategory.
type SubcategoryRepository interface {
	Create(ctx context.Context, sub *entity.Subcategory) error
	GetByCategoryAndName(ctx context.Context, categoryID, name string) (*entity.Subcategory, error)
	ListByCategory(ctx context.Context, categoryID string) ([]*entity.Subcategory, error)
	CountByCategory(ctx context.Context, categoryID string) (int, error)
}
