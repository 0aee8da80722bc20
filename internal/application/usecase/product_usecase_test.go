package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/StockMarie-api/internal/application/dto"
	"github.com/jhoicas/StockMarie-api/internal/application/usecase"
	"github.com/jhoicas/StockMarie-api/internal/domain"
	"github.com/jhoicas/StockMarie-api/internal/domain/entity"
	"github.com/jhoicas/StockMarie-api/internal/infrastructure/memory"
	"github.com/jhoicas/StockMarie-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type productFixture struct {
	uc            *usecase.ProductUseCase
	products      *memory.ProductRepo
	categories    *memory.CategoryRepo
	subcategories *memory.SubcategoryRepo
	movements     *memory.MovementRepo
}

func newProductFixture(t *testing.T) *productFixture {
	t.Helper()
	f := &productFixture{
		products:      memory.NewProductRepository(),
		categories:    memory.NewCategoryRepository(),
		subcategories: memory.NewSubcategoryRepository(),
		movements:     memory.NewMovementRepository(),
	}
	f.uc = usecase.NewProductUseCase(
		f.products, f.categories, f.subcategories, f.movements,
		logger.New(logger.Config{Env: "test", Level: "error"}),
	)
	return f
}

// registerSubcategory da de alta la categoría (si hace falta) y la
// subcategoría para que Create la acepte.
func (f *productFixture) registerSubcategory(t *testing.T, category, subcategory string) {
	t.Helper()
	ctx := context.Background()
	cat, err := f.categories.GetByName(ctx, category)
	require.NoError(t, err)
	if cat == nil {
		cat = &entity.Category{ID: "cat-" + category, Name: category, CreatedAt: time.Now()}
		require.NoError(t, f.categories.Create(ctx, cat))
	}
	require.NoError(t, f.subcategories.Create(ctx, &entity.Subcategory{
		ID: "sub-" + category + "-" + subcategory, CategoryID: cat.ID,
		Name: subcategory, CreatedAt: time.Now(),
	}))
}

func (f *productFixture) create(t *testing.T, in dto.CreateProductRequest) *dto.ProductResponse {
	t.Helper()
	out, err := f.uc.Create(context.Background(), in)
	require.NoError(t, err)
	return out
}

func validCreate(name, category, subcategory string, quantity int) dto.CreateProductRequest {
	return dto.CreateProductRequest{
		Name:        name,
		Category:    category,
		Subcategory: subcategory,
		Quantity:    quantity,
		MinQuantity: 1,
		Unit:        "unité",
		Price:       decimal.NewFromFloat(2.50),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

// Crear con cantidad inicial positiva registra el movimiento de apertura.
func TestCreateProduct_RegistraMovimientoInicial(t *testing.T) {
	f := newProductFixture(t)
	f.registerSubcategory(t, entity.CategoryAlimentation, "Épicerie")

	out := f.create(t, validCreate("Riz", entity.CategoryAlimentation, "Épicerie", 4))

	rows := f.movements.All()
	require.Len(t, rows, 1)
	assert.Equal(t, entity.MovementTypeIncrement, rows[0].Type)
	assert.Equal(t, 4, rows[0].Quantity)
	require.NotNil(t, rows[0].ProductID)
	assert.Equal(t, out.ID, *rows[0].ProductID)
}

// Con cantidad inicial cero no hay movimiento de apertura.
func TestCreateProduct_SinCantidadNoHayMovimiento(t *testing.T) {
	f := newProductFixture(t)
	f.registerSubcategory(t, entity.CategoryAlimentation, "Épicerie")

	f.create(t, validCreate("Pâtes", entity.CategoryAlimentation, "Épicerie", 0))

	assert.Empty(t, f.movements.All())
}

// La categoría se normaliza contra el enum sin distinguir mayúsculas.
func TestCreateProduct_CategoriaNormalizada(t *testing.T) {
	f := newProductFixture(t)
	f.registerSubcategory(t, entity.CategoryEntretien, "Linge")

	out := f.create(t, validCreate("Lessive", "ENTRETIEN", "Linge", 1))
	assert.Equal(t, entity.CategoryEntretien, out.Category)
}

func TestCreateProduct_CategoriaFueraDelEnum(t *testing.T) {
	f := newProductFixture(t)

	_, err := f.uc.Create(context.Background(), validCreate("Tournevis", "bricolage", "Visserie", 1))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// La subcategoría debe existir en el conjunto registrado de la categoría.
func TestCreateProduct_SubcategoriaNoRegistrada(t *testing.T) {
	f := newProductFixture(t)
	f.registerSubcategory(t, entity.CategoryEntretien, "Linge")

	_, err := f.uc.Create(context.Background(), validCreate("Éponge", entity.CategoryEntretien, "Cuisine", 1))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateProduct_NombreDemasiadoCorto(t *testing.T) {
	f := newProductFixture(t)

	_, err := f.uc.Create(context.Background(), validCreate("X", entity.CategoryEntretien, "Linge", 1))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// List y LowStock
// ──────────────────────────────────────────────────────────────────────────────

// El catálogo sale ordenado por (categoría, subcategoría) con collation
// francesa y orden estable dentro del mismo par. "Linge" existe bajo las dos
// categorías: la clave de categoría domina sobre la de subcategoría.
func TestListProducts_OrdenadoPorCategoriaYSubcategoria(t *testing.T) {
	f := newProductFixture(t)
	f.registerSubcategory(t, entity.CategoryEntretien, "Linge")
	f.registerSubcategory(t, entity.CategoryEntretien, "Cuisine")
	f.registerSubcategory(t, entity.CategoryAlimentation, "Épicerie")
	f.registerSubcategory(t, entity.CategoryAlimentation, "Linge")

	f.create(t, validCreate("Lessive", entity.CategoryEntretien, "Linge", 1))
	f.create(t, validCreate("Éponge", entity.CategoryEntretien, "Cuisine", 1))
	f.create(t, validCreate("Riz", entity.CategoryAlimentation, "Épicerie", 1))
	f.create(t, validCreate("Torchons", entity.CategoryAlimentation, "Linge", 1))
	f.create(t, validCreate("Adoucissant", entity.CategoryEntretien, "Linge", 1))

	out, err := f.uc.List(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, out.Items, 5)

	assert.Equal(t, "Riz", out.Items[0].Name, "Épicerie precede a Linge dentro de alimentation")
	assert.Equal(t, "Torchons", out.Items[1].Name,
		"alimentation/Linge sale antes que todo entretien: la categoría domina")
	assert.Equal(t, "Éponge", out.Items[2].Name, "Cuisine precede a Linge")
	assert.Equal(t, "Lessive", out.Items[3].Name, "orden estable dentro del mismo par")
	assert.Equal(t, "Adoucissant", out.Items[4].Name)
}

func TestListProducts_FiltroPorCategoria(t *testing.T) {
	f := newProductFixture(t)
	f.registerSubcategory(t, entity.CategoryEntretien, "Linge")
	f.registerSubcategory(t, entity.CategoryAlimentation, "Épicerie")

	f.create(t, validCreate("Lessive", entity.CategoryEntretien, "Linge", 1))
	f.create(t, validCreate("Riz", entity.CategoryAlimentation, "Épicerie", 1))

	out, err := f.uc.List(context.Background(), "Alimentation")
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "Riz", out.Items[0].Name)
}

func TestListProducts_FiltroInvalido(t *testing.T) {
	f := newProductFixture(t)

	_, err := f.uc.List(context.Background(), "bricolage")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// quantity ≤ min_quantity marca stock bajo, el límite inclusive.
func TestLowStock_LimiteInclusive(t *testing.T) {
	f := newProductFixture(t)
	f.registerSubcategory(t, entity.CategoryEntretien, "Linge")

	low := validCreate("Lessive", entity.CategoryEntretien, "Linge", 1)
	low.MinQuantity = 1
	f.create(t, low)

	ok := validCreate("Adoucissant", entity.CategoryEntretien, "Linge", 3)
	ok.MinQuantity = 1
	f.create(t, ok)

	out, err := f.uc.LowStock(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "Lessive", out.Items[0].Name)
	assert.True(t, out.Items[0].LowStock)
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete
// ──────────────────────────────────────────────────────────────────────────────

// Eliminar desengancha el historial: las filas pierden product_id pero
// conservan el nombre congelado del producto.
func TestDeleteProduct_DesenganchaHistorial(t *testing.T) {
	f := newProductFixture(t)
	f.registerSubcategory(t, entity.CategoryCosmetiques, "Soins")

	out := f.create(t, validCreate("Crème mains", entity.CategoryCosmetiques, "Soins", 2))

	require.NoError(t, f.uc.Delete(context.Background(), out.ID))

	got, err := f.uc.GetByID(context.Background(), out.ID)
	require.NoError(t, err)
	assert.Nil(t, got, "el producto ya no existe")

	rows := f.movements.All()
	require.Len(t, rows, 1)
	assert.Nil(t, rows[0].ProductID, "el movimiento queda desenganchado")
	assert.Equal(t, "Crème mains", rows[0].Name, "el nombre queda congelado en la fila")
}

func TestDeleteProduct_Inexistente(t *testing.T) {
	f := newProductFixture(t)

	err := f.uc.Delete(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update
// ──────────────────────────────────────────────────────────────────────────────

// Update nunca toca la cantidad: solo los campos del formulario de edición.
func TestUpdateProduct_NoTocaCantidad(t *testing.T) {
	f := newProductFixture(t)
	f.registerSubcategory(t, entity.CategoryEntretien, "Linge")

	out := f.create(t, validCreate("Lessive", entity.CategoryEntretien, "Linge", 5))

	name := "Lessive liquide"
	minQty := 2
	updated, err := f.uc.Update(context.Background(), out.ID, dto.UpdateProductRequest{
		Name:        &name,
		MinQuantity: &minQty,
	})
	require.NoError(t, err)
	assert.Equal(t, "Lessive liquide", updated.Name)
	assert.Equal(t, 2, updated.MinQuantity)
	assert.Equal(t, 5, updated.Quantity, "la cantidad solo se mueve vía el ajuste de stock")
}

func TestUpdateProduct_PrecioNegativo(t *testing.T) {
	f := newProductFixture(t)
	f.registerSubcategory(t, entity.CategoryEntretien, "Linge")

	out := f.create(t, validCreate("Lessive", entity.CategoryEntretien, "Linge", 1))

	bad := decimal.NewFromFloat(-1)
	_, err := f.uc.Update(context.Background(), out.ID, dto.UpdateProductRequest{Price: &bad})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
