// Package stock implementa el ajuste incremental de cantidad con fusión de
// rachas: ediciones consecutivas en la misma dirección enmiendan una sola
// fila del historial en lugar de crear una fila por clic.
package stock

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/StockMarie-api/internal/application/dto"
	"github.com/jhoicas/StockMarie-api/internal/domain"
	"github.com/jhoicas/StockMarie-api/internal/domain/entity"
	"github.com/jhoicas/StockMarie-api/internal/domain/repository"
	"github.com/jhoicas/StockMarie-api/pkg/logger"
)

// AdjustUseCase aplica deltas de cantidad a un producto y mantiene el
// historial fusionado. Las dos escrituras (cantidad y movimiento) son
// llamadas secuenciales sin transacción: si la del movimiento falla, la
// cantidad ya aplicada NO se revierte; la inconsistencia se loggea y se
// devuelve el error al llamador.
type AdjustUseCase struct {
	products  repository.ProductRepository
	movements repository.MovementRepository
	log       *logger.Logger
}

// NewAdjustUseCase construye el caso de uso.
func NewAdjustUseCase(
	products repository.ProductRepository,
	movements repository.MovementRepository,
	log *logger.Logger,
) *AdjustUseCase {
	return &AdjustUseCase{products: products, movements: movements, log: log}
}

// ApplyDelta aplica un delta (≠ 0) a la cantidad del producto:
//
//  1. newQuantity < 0 → ErrInvalidQuantity, sin escrituras.
//  2. Persiste la nueva cantidad.
//  3. Busca el movimiento más reciente del producto en la misma dirección.
//  4. Si existe, suma |delta| a su cantidad acumulada (created_at intacto);
//     si no, inserta una fila nueva con |delta|.
//
// La búsqueda del paso 3 no comprueba si un movimiento en la dirección
// contraria es más reciente: una racha puede seguir enmendándose aunque ya
// haya sido interrumpida. Es el comportamiento histórico del sistema y se
// conserva tal cual.
func (uc *AdjustUseCase) ApplyDelta(ctx context.Context, productID string, delta int) (*dto.ProductResponse, error) {
	if delta == 0 {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	newQuantity := product.Quantity + delta
	if newQuantity < 0 {
		return nil, domain.ErrInvalidQuantity
	}
	if err := uc.products.UpdateQuantity(ctx, productID, newQuantity); err != nil {
		return nil, err
	}
	product.Quantity = newQuantity
	product.UpdatedAt = time.Now()

	direction := entity.MovementTypeIncrement
	magnitude := delta
	if delta < 0 {
		direction = entity.MovementTypeDecrement
		magnitude = -delta
	}

	if err := uc.recordMovement(ctx, product, direction, magnitude); err != nil {
		// La cantidad ya quedó aplicada; el historial puede quedarse corto.
		uc.log.Warn().Err(err).
			Str("product_id", productID).
			Str("movement_type", direction).
			Msg("cantidad aplicada pero movimiento no registrado")
		return nil, fmt.Errorf("registrar movimiento: %w", err)
	}

	return &dto.ProductResponse{
		ID:          product.ID,
		Name:        product.Name,
		Category:    product.Category,
		Subcategory: product.Subcategory,
		Quantity:    product.Quantity,
		MinQuantity: product.MinQuantity,
		Unit:        product.Unit,
		Price:       product.Price,
		LowStock:    product.LowStock(),
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}, nil
}

// recordMovement enmienda la racha vigente en esa dirección o abre una nueva.
func (uc *AdjustUseCase) recordMovement(ctx context.Context, product *entity.Product, direction string, magnitude int) error {
	latest, err := uc.movements.FindLatestByProductAndType(ctx, product.ID, direction)
	if err != nil {
		return err
	}
	if latest != nil {
		return uc.movements.AddQuantity(ctx, latest.ID, magnitude)
	}
	pid := product.ID
	return uc.movements.Create(ctx, &entity.Movement{
		ID:        uuid.New().String(),
		ProductID: &pid,
		Name:      product.Name,
		Type:      direction,
		Quantity:  magnitude,
		CreatedAt: time.Now(),
	})
}
