package stock_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/StockMarie-api/internal/application/stock"
	"github.com/jhoicas/StockMarie-api/internal/domain"
	"github.com/jhoicas/StockMarie-api/internal/domain/entity"
	"github.com/jhoicas/StockMarie-api/internal/infrastructure/memory"
	"github.com/jhoicas/StockMarie-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "test", Level: "error"})
}

// seedProduct inserta un producto con la cantidad indicada y devuelve su ID.
func seedProduct(t *testing.T, products *memory.ProductRepo, quantity int) string {
	t.Helper()
	p := &entity.Product{
		ID:          "prod-1",
		Name:        "Lessive",
		Category:    entity.CategoryEntretien,
		Subcategory: "Linge",
		Quantity:    quantity,
		MinQuantity: 1,
		Unit:        "bidon",
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	require.NoError(t, products.Create(context.Background(), p))
	return p.ID
}

// failingMovements envuelve el repositorio en memoria y hace fallar Create.
type failingMovements struct {
	*memory.MovementRepo
	err error
}

func (f *failingMovements) Create(_ context.Context, _ *entity.Movement) error {
	return f.err
}

// ──────────────────────────────────────────────────────────────────────────────
// Fusión de rachas
// ──────────────────────────────────────────────────────────────────────────────

// Tres clics +1 seguidos deben enmendar una única fila increment con
// cantidad acumulada 3, no crear tres filas.
func TestApplyDelta_ClicsConsecutivosEnmiendanUnaFila(t *testing.T) {
	products := memory.NewProductRepository()
	movements := memory.NewMovementRepository()
	uc := stock.NewAdjustUseCase(products, movements, testLogger())
	id := seedProduct(t, products, 0)

	for i := 0; i < 3; i++ {
		out, err := uc.ApplyDelta(context.Background(), id, +1)
		require.NoError(t, err)
		assert.Equal(t, i+1, out.Quantity)
	}

	rows := movements.All()
	require.Len(t, rows, 1, "tres clics en la misma dirección deben fusionarse en una fila")
	assert.Equal(t, entity.MovementTypeIncrement, rows[0].Type)
	assert.Equal(t, 3, rows[0].Quantity)
}

// La enmienda no toca created_at: la fila conserva la marca del primer clic.
func TestApplyDelta_EnmiendaConservaCreatedAt(t *testing.T) {
	products := memory.NewProductRepository()
	movements := memory.NewMovementRepository()
	uc := stock.NewAdjustUseCase(products, movements, testLogger())
	id := seedProduct(t, products, 0)

	_, err := uc.ApplyDelta(context.Background(), id, +1)
	require.NoError(t, err)
	first := movements.All()[0].CreatedAt

	_, err = uc.ApplyDelta(context.Background(), id, +1)
	require.NoError(t, err)

	rows := movements.All()
	require.Len(t, rows, 1)
	assert.True(t, rows[0].CreatedAt.Equal(first),
		"la enmienda debe conservar el created_at del primer clic de la racha")
}

// Un cambio de dirección abre una fila nueva: +1 +1 -1 deja dos filas.
func TestApplyDelta_CambioDeDireccionAbreFilaNueva(t *testing.T) {
	products := memory.NewProductRepository()
	movements := memory.NewMovementRepository()
	uc := stock.NewAdjustUseCase(products, movements, testLogger())
	id := seedProduct(t, products, 0)

	_, err := uc.ApplyDelta(context.Background(), id, +1)
	require.NoError(t, err)
	_, err = uc.ApplyDelta(context.Background(), id, +1)
	require.NoError(t, err)
	_, err = uc.ApplyDelta(context.Background(), id, -1)
	require.NoError(t, err)

	rows := movements.All()
	require.Len(t, rows, 2)
	assert.Equal(t, entity.MovementTypeIncrement, rows[0].Type)
	assert.Equal(t, 2, rows[0].Quantity)
	assert.Equal(t, entity.MovementTypeDecrement, rows[1].Type)
	assert.Equal(t, 1, rows[1].Quantity)
}

// ──────────────────────────────────────────────────────────────────────────────
// Validaciones y fallos
// ──────────────────────────────────────────────────────────────────────────────

// delta que llevaría la cantidad por debajo de cero → ErrInvalidQuantity,
// sin tocar el producto ni el historial.
func TestApplyDelta_CantidadNegativaRechazadaSinEscrituras(t *testing.T) {
	products := memory.NewProductRepository()
	movements := memory.NewMovementRepository()
	uc := stock.NewAdjustUseCase(products, movements, testLogger())
	id := seedProduct(t, products, 0)

	_, err := uc.ApplyDelta(context.Background(), id, -1)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	p, err := products.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 0, p.Quantity, "la cantidad no debe cambiar")
	assert.Empty(t, movements.All(), "no debe registrarse ningún movimiento")
}

func TestApplyDelta_DeltaCeroEsInvalido(t *testing.T) {
	products := memory.NewProductRepository()
	uc := stock.NewAdjustUseCase(products, memory.NewMovementRepository(), testLogger())
	id := seedProduct(t, products, 5)

	_, err := uc.ApplyDelta(context.Background(), id, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestApplyDelta_ProductoInexistente(t *testing.T) {
	uc := stock.NewAdjustUseCase(memory.NewProductRepository(), memory.NewMovementRepository(), testLogger())

	_, err := uc.ApplyDelta(context.Background(), "no-existe", +1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Si la escritura del movimiento falla, la cantidad ya aplicada NO se
// revierte: el caso de uso devuelve el error pero el producto conserva la
// cantidad nueva.
func TestApplyDelta_FalloDeMovimientoNoRevierteCantidad(t *testing.T) {
	products := memory.NewProductRepository()
	movements := &failingMovements{
		MovementRepo: memory.NewMovementRepository(),
		err:          errors.New("historial caído"),
	}
	uc := stock.NewAdjustUseCase(products, movements, testLogger())
	id := seedProduct(t, products, 0)

	_, err := uc.ApplyDelta(context.Background(), id, +1)
	require.Error(t, err)

	p, gerr := products.GetByID(context.Background(), id)
	require.NoError(t, gerr)
	assert.Equal(t, 1, p.Quantity,
		"la cantidad aplicada se conserva aunque el movimiento no se registre")
}
