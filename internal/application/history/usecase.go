// Package history expone el historial de movimientos de stock: listado JSON
// y exportación PDF.
package history

import (
	"context"

	"github.com/jhoicas/StockMarie-api/internal/application/dto"
	"github.com/jhoicas/StockMarie-api/internal/domain/repository"
)

// Etiquetas de relleno para movimientos de productos eliminados.
const (
	deletedProductLabel = "Produit supprimé"
	deletedProductUnit  = "-"
)

// UseCase lista el historial completo, más reciente primero.
type UseCase struct {
	movements repository.MovementRepository
	pdf       PDFGenerator
}

// NewUseCase construye el caso de uso. pdf puede ser nil si la exportación
// no está cableada.
func NewUseCase(movements repository.MovementRepository, pdf PDFGenerator) *UseCase {
	return &UseCase{movements: movements, pdf: pdf}
}

// List devuelve todos los movimientos con los datos del producto unidos.
// Para productos eliminados se usa el nombre congelado en el movimiento; si
// no lo hubiera, la etiqueta de relleno.
func (uc *UseCase) List(ctx context.Context) (*dto.MovementListResponse, error) {
	rows, err := uc.movements.ListWithProduct(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(rows))
	for _, r := range rows {
		items = append(items, toMovementResponse(r))
	}
	return &dto.MovementListResponse{Items: items}, nil
}

// ExportPDF genera el PDF del historial completo.
func (uc *UseCase) ExportPDF(ctx context.Context) ([]byte, error) {
	list, err := uc.List(ctx)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateHistoryPDF(ctx, list.Items)
}

func toMovementResponse(r *repository.MovementWithProduct) dto.MovementResponse {
	name := deletedProductLabel
	unit := deletedProductUnit
	if r.ProductName != nil {
		name = *r.ProductName
	} else if r.Movement.Name != "" {
		name = r.Movement.Name
	}
	if r.ProductUnit != nil {
		unit = *r.ProductUnit
	}
	return dto.MovementResponse{
		ID:           r.Movement.ID,
		ProductID:    r.Movement.ProductID,
		ProductName:  name,
		ProductUnit:  unit,
		MovementType: r.Movement.Type,
		Quantity:     r.Movement.Quantity,
		CreatedAt:    r.Movement.CreatedAt,
	}
}
