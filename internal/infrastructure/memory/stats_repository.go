package memory

import (
	"context"

	"github.com/jhoicas/StockMarie-api/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo devuelve agregados fijados por el test.
type StatsRepo struct {
	Rows []*repository.ProductMovementStats
	Err  error
}

// NewStatsRepository construye el repositorio con las filas dadas.
func NewStatsRepository(rows ...*repository.ProductMovementStats) *StatsRepo {
	return &StatsRepo{Rows: rows}
}

func (r *StatsRepo) GetProductMovementStats(_ context.Context) ([]*repository.ProductMovementStats, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	return r.Rows, nil
}
