package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/StockMarie-api/internal/application/dto"
	"github.com/jhoicas/StockMarie-api/internal/domain"
	"github.com/jhoicas/StockMarie-api/internal/domain/entity"
	"github.com/jhoicas/StockMarie-api/internal/domain/repository"
)

// CategoryUseCase gestiona categorías y subcategorías. Las comprobaciones del
// tope y de unicidad son lecturas secuenciales seguidas de una escritura, sin
// transacción: dos llamadores concurrentes pueden romper el tope (limitación
// aceptada para el despliegue objetivo, de uno o pocos usuarios).
type CategoryUseCase struct {
	categories    repository.CategoryRepository
	subcategories repository.SubcategoryRepository
	products      repository.ProductRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(
	categories repository.CategoryRepository,
	subcategories repository.SubcategoryRepository,
	products repository.ProductRepository,
) *CategoryUseCase {
	return &CategoryUseCase{
		categories:    categories,
		subcategories: subcategories,
		products:      products,
	}
}

// Create inserta una categoría. No hay comprobación de unicidad de nombre:
// el modelo admite categorías duplicadas.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	category := &entity.Category{
		ID:        uuid.New().String(),
		Name:      in.Name,
		CreatedAt: time.Now(),
	}
	if err := uc.categories.Create(ctx, category); err != nil {
		return nil, err
	}
	return &dto.CategoryResponse{ID: category.ID, Name: category.Name, Subcategories: []string{}}, nil
}

// AddSubcategory registra una subcategoría bajo la categoría nombrada.
// Secuencia: resolver la categoría (NotFound), contar contra el tope de 12
// (LimitExceeded), comprobar nombre repetido (Duplicate), insertar.
func (uc *CategoryUseCase) AddSubcategory(ctx context.Context, categoryName string, in dto.AddSubcategoryRequest) (*dto.CategoryResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	category, err := uc.categories.GetByName(ctx, categoryName)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}

	count, err := uc.subcategories.CountByCategory(ctx, category.ID)
	if err != nil {
		return nil, err
	}
	if count >= entity.MaxSubcategories {
		return nil, domain.ErrLimitExceeded
	}

	existing, err := uc.subcategories.GetByCategoryAndName(ctx, category.ID, in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	sub := &entity.Subcategory{
		ID:         uuid.New().String(),
		CategoryID: category.ID,
		Name:       in.Name,
		CreatedAt:  time.Now(),
	}
	if err := uc.subcategories.Create(ctx, sub); err != nil {
		return nil, err
	}
	return uc.categoryResponse(ctx, category)
}

// List devuelve todas las categorías con sus subcategorías registradas.
func (uc *CategoryUseCase) List(ctx context.Context) (*dto.CategoryListResponse, error) {
	categories, err := uc.categories.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		resp, err := uc.categoryResponse(ctx, c)
		if err != nil {
			return nil, err
		}
		items = append(items, *resp)
	}
	return &dto.CategoryListResponse{Items: items}, nil
}

// Overview resume las tres categorías fijas: total de productos, cuántos
// están en stock bajo y las subcategorías registradas.
func (uc *CategoryUseCase) Overview(ctx context.Context) (*dto.CategoryOverviewResponse, error) {
	products, err := uc.products.List(ctx, "")
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryOverview, 0, len(entity.CategoryNames))
	for _, name := range entity.CategoryNames {
		overview := dto.CategoryOverview{Category: name, Subcategories: []string{}}
		for _, p := range products {
			if p.Category != name {
				continue
			}
			overview.TotalProducts++
			if p.LowStock() {
				overview.LowStock++
			}
		}
		if category, err := uc.categories.GetByName(ctx, name); err != nil {
			return nil, err
		} else if category != nil {
			subs, err := uc.subcategories.ListByCategory(ctx, category.ID)
			if err != nil {
				return nil, err
			}
			for _, s := range subs {
				overview.Subcategories = append(overview.Subcategories, s.Name)
			}
		}
		items = append(items, overview)
	}
	return &dto.CategoryOverviewResponse{Items: items}, nil
}

func (uc *CategoryUseCase) categoryResponse(ctx context.Context, category *entity.Category) (*dto.CategoryResponse, error) {
	subs, err := uc.subcategories.ListByCategory(ctx, category.ID)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(subs))
	for _, s := range subs {
		names = append(names, s.Name)
	}
	return &dto.CategoryResponse{ID: category.ID, Name: category.Name, Subcategories: names}, nil
}
