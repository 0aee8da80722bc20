package repository

import (
	"context"

	"github.com/jhoicas/StockMarie-api/internal/domain/entity"
)

// MovementWithProduct fila del historial con los datos del producto unidos.
// ProductName y ProductUnit son nil cuando el producto fue eliminado.
type MovementWithProduct struct {
	Movement    entity.Movement
	ProductName *string
	ProductUnit *string
}

// MovementRepository define el puerto de persistencia para el historial de
// movimientos. El historial es append/amend-only: no hay operación de borrado.
type MovementRepository interface {
	Create(ctx context.Context, movement *entity.Movement) error
	// FindLatestByProductAndType devuelve el movimiento más reciente del
	// producto con ese tipo (order created_at desc, limit 1), o nil.
	FindLatestByProductAndType(ctx context.Context, productID, movementType string) (*entity.Movement, error)
	// AddQuantity enmienda la fila sumando amount a su cantidad acumulada.
	// created_at no se modifica.
	AddQuantity(ctx context.Context, movementID string, amount int) error
	// DetachProduct pone product_id a NULL en todos los movimientos del
	// producto y congela name con la etiqueta indicada.
	DetachProduct(ctx context.Context, productID, name string) error
	// ListWithProduct devuelve el historial completo (created_at desc) con
	// name y unit del producto unidos cuando aún existe.
	ListWithProduct(ctx context.Context) ([]*MovementWithProduct, error)
}
