package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/jhoicas/StockMarie-api/internal/application/dto"
	"github.com/jhoicas/StockMarie-api/internal/domain"
	"github.com/jhoicas/StockMarie-api/internal/domain/entity"
	"github.com/jhoicas/StockMarie-api/internal/domain/repository"
	"github.com/jhoicas/StockMarie-api/pkg/logger"
)

// ProductUseCase casos de uso del catálogo. La cantidad no se edita por CRUD:
// solo se mueve vía el ajuste de stock (stock.AdjustUseCase).
type ProductUseCase struct {
	products      repository.ProductRepository
	categories    repository.CategoryRepository
	subcategories repository.SubcategoryRepository
	movements     repository.MovementRepository
	log           *logger.Logger
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	products repository.ProductRepository,
	categories repository.CategoryRepository,
	subcategories repository.SubcategoryRepository,
	movements repository.MovementRepository,
	log *logger.Logger,
) *ProductUseCase {
	return &ProductUseCase{
		products:      products,
		categories:    categories,
		subcategories: subcategories,
		movements:     movements,
		log:           log,
	}
}

// Create valida el formulario, inserta el producto y, si la cantidad inicial
// es positiva, registra el movimiento increment de apertura. Un fallo al
// registrar el movimiento inicial se loggea pero no anula la creación.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if len(in.Name) < 2 || in.Unit == "" || in.Subcategory == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity < 0 || in.MinQuantity < 0 || in.Price.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	category := entity.NormalizeCategory(in.Category)
	if category == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.checkSubcategory(ctx, category, in.Subcategory); err != nil {
		return nil, err
	}

	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Category:    category,
		Subcategory: in.Subcategory,
		Quantity:    in.Quantity,
		MinQuantity: in.MinQuantity,
		Unit:        in.Unit,
		Price:       in.Price,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.products.Create(ctx, product); err != nil {
		return nil, err
	}

	if in.Quantity > 0 {
		pid := product.ID
		movement := &entity.Movement{
			ID:        uuid.New().String(),
			ProductID: &pid,
			Name:      product.Name,
			Type:      entity.MovementTypeIncrement,
			Quantity:  in.Quantity,
			CreatedAt: now,
		}
		if err := uc.movements.Create(ctx, movement); err != nil {
			uc.log.Warn().Err(err).Str("product_id", product.ID).
				Msg("movimiento inicial no registrado")
		}
	}
	return toProductResponse(product), nil
}

// checkSubcategory verifica que la subcategoría pertenezca al conjunto
// registrado de la categoría.
func (uc *ProductUseCase) checkSubcategory(ctx context.Context, category, subcategory string) error {
	cat, err := uc.categories.GetByName(ctx, category)
	if err != nil {
		return err
	}
	if cat == nil {
		return domain.ErrNotFound
	}
	sub, err := uc.subcategories.GetByCategoryAndName(ctx, cat.ID, subcategory)
	if err != nil {
		return err
	}
	if sub == nil {
		return domain.ErrInvalidInput
	}
	return nil
}

// List devuelve el catálogo ordenado por (categoría, subcategoría). El filtro
// de categoría es case-insensitive contra el enum; un valor fuera del enum es
// entrada inválida.
func (uc *ProductUseCase) List(ctx context.Context, categoryFilter string) (*dto.ProductListResponse, error) {
	category := ""
	if categoryFilter != "" {
		category = entity.NormalizeCategory(categoryFilter)
		if category == "" {
			return nil, domain.ErrInvalidInput
		}
	}
	list, err := uc.products.List(ctx, category)
	if err != nil {
		return nil, err
	}
	sortProducts(list)
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items}, nil
}

// LowStock devuelve los productos con quantity ≤ min_quantity, mismo orden
// que List.
func (uc *ProductUseCase) LowStock(ctx context.Context, categoryFilter string) (*dto.ProductListResponse, error) {
	all, err := uc.List(ctx, categoryFilter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0)
	for _, p := range all.Items {
		if p.LowStock {
			items = append(items, p)
		}
	}
	return &dto.ProductListResponse{Items: items}, nil
}

// GetByID obtiene un producto por ID. Devuelve nil si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update actualiza los campos editables del producto (nunca la cantidad).
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		if len(*in.Name) < 2 {
			return nil, domain.ErrInvalidInput
		}
		product.Name = *in.Name
	}
	if in.MinQuantity != nil {
		if *in.MinQuantity < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.MinQuantity = *in.MinQuantity
	}
	if in.Unit != nil {
		product.Unit = *in.Unit
	}
	if in.Price != nil {
		if in.Price.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	product.UpdatedAt = time.Now()
	if err := uc.products.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto en dos pasos: primero desengancha sus
// movimientos (product_id → NULL, name congelado), después borra la fila.
// Si el primer paso falla, el producto no se elimina.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	product, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if err := uc.movements.DetachProduct(ctx, id, product.Name); err != nil {
		return err
	}
	return uc.products.Delete(ctx, id)
}

// sortProducts ordena por (categoría, subcategoría) con collation francesa,
// como hacía la comparación locale-aware del cliente original. Orden estable.
func sortProducts(list []*entity.Product) {
	c := collate.New(language.French)
	sort.SliceStable(list, func(i, j int) bool {
		if cmp := c.CompareString(list[i].Category, list[j].Category); cmp != 0 {
			return cmp < 0
		}
		return c.CompareString(list[i].Subcategory, list[j].Subcategory) < 0
	})
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Category:    p.Category,
		Subcategory: p.Subcategory,
		Quantity:    p.Quantity,
		MinQuantity: p.MinQuantity,
		Unit:        p.Unit,
		Price:       p.Price,
		LowStock:    p.LowStock(),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
