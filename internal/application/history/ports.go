package history

import (
	"context"

	"github.com/jhoicas/StockMarie-api/internal/application/dto"
)

// PDFGenerator puerto de generación del PDF del historial (infraestructura).
type PDFGenerator interface {
	GenerateHistoryPDF(ctx context.Context, movements []dto.MovementResponse) ([]byte, error)
}
