// Package stats contiene los casos de uso de la página de estadísticas:
// análisis de movimientos por inactividad y écart entre stock y mínimo.
package stats

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/jhoicas/StockMarie-api/internal/application/dto"
	"github.com/jhoicas/StockMarie-api/internal/domain/repository"
	domainstats "github.com/jhoicas/StockMarie-api/internal/domain/stats"
)

// UseCase consultas de estadísticas (read-only, sin mutación de datos).
type UseCase struct {
	stats    repository.StatsRepository
	products repository.ProductRepository
	now      func() time.Time
}

// NewUseCase construye el caso de uso. now es inyectable para los tests.
func NewUseCase(stats repository.StatsRepository, products repository.ProductRepository) *UseCase {
	return &UseCase{stats: stats, products: products, now: time.Now}
}

// WithNow fija el reloj de evaluación (tests).
func (uc *UseCase) WithNow(now func() time.Time) *UseCase {
	uc.now = now
	return uc
}

// MovementAnalysis agrega los movimientos por producto y los particiona en
// los cuatro cubos de inactividad evaluados en el momento de la llamada.
func (uc *UseCase) MovementAnalysis(ctx context.Context) (*dto.MovementAnalysisResponse, error) {
	rows, err := uc.stats.GetProductMovementStats(ctx)
	if err != nil {
		return nil, err
	}
	analysis := domainstats.Classify(rows, uc.now())
	return &dto.MovementAnalysisResponse{
		Active:                  toStatsDTOs(analysis.Active),
		InactiveOneToTwoWeeks:   toStatsDTOs(analysis.InactiveOneToTwoWeeks),
		InactiveTwoToThreeWeeks: toStatsDTOs(analysis.InactiveTwoToThree),
		InactiveLongerOrNever:   toStatsDTOs(analysis.InactiveLongerOrNever),
	}, nil
}

// QuantityDifference devuelve los productos con su écart quantity −
// min_quantity, orden descendente estable. search filtra por nombre
// (contains, case-insensitive); vacío no filtra.
func (uc *UseCase) QuantityDifference(ctx context.Context, search string) (*dto.QuantityDifferenceResponse, error) {
	products, err := uc.products.List(ctx, "")
	if err != nil {
		return nil, err
	}
	search = strings.ToLower(search)
	items := make([]dto.QuantityDifferenceDTO, 0, len(products))
	for _, p := range products {
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		items = append(items, dto.QuantityDifferenceDTO{
			ID:          p.ID,
			Name:        p.Name,
			Category:    p.Category,
			Subcategory: p.Subcategory,
			Quantity:    p.Quantity,
			MinQuantity: p.MinQuantity,
			Difference:  p.Quantity - p.MinQuantity,
			Unit:        p.Unit,
		})
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Difference > items[j].Difference
	})
	return &dto.QuantityDifferenceResponse{Items: items}, nil
}

func toStatsDTOs(rows []*repository.ProductMovementStats) []dto.ProductMovementStatsDTO {
	out := make([]dto.ProductMovementStatsDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ProductMovementStatsDTO{
			ID:            r.ID,
			Name:          r.Name,
			Category:      r.Category,
			Subcategory:   r.Subcategory,
			MovementCount: r.MovementCount,
			LastMovement:  r.LastMovement,
		})
	}
	return out
}
