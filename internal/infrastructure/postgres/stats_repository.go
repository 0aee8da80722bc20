package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/StockMarie-api/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo consultas read-only de estadísticas sobre PostgreSQL.
type StatsRepo struct {
	q Querier
}

// NewStatsRepository construye el adaptador de consultas de estadísticas.
func NewStatsRepository(q Querier) *StatsRepo {
	return &StatsRepo{q: q}
}

// GetProductMovementStats agrega por producto el número de movimientos y la
// fecha del último. Productos sin movimientos aparecen con count 0 y
// last_movement NULL (LEFT JOIN).
func (r *StatsRepo) GetProductMovementStats(ctx context.Context) ([]*repository.ProductMovementStats, error) {
	rows, err := r.q.Query(ctx,
		`SELECT p.id, p.name, p.category, p.subcategory,
		        COUNT(m.id), MAX(m.created_at)
		 FROM products p
		 LEFT JOIN product_movements m ON m.product_id = p.id
		 GROUP BY p.id, p.name, p.category, p.subcategory
		 ORDER BY p.category, p.subcategory`,
	)
	if err != nil {
		return nil, fmt.Errorf("movement stats: %w", err)
	}
	defer rows.Close()
	var list []*repository.ProductMovementStats
	for rows.Next() {
		var s repository.ProductMovementStats
		if err := rows.Scan(&s.ID, &s.Name, &s.Category, &s.Subcategory,
			&s.MovementCount, &s.LastMovement); err != nil {
			return nil, fmt.Errorf("scan movement stats: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
