package repository

import (
	"context"
	"time"
)

// ProductMovementStats agregado por producto para el análisis de movimientos.
// LastMovement es nil si el producto nunca tuvo movimientos.
type ProductMovementStats struct {
	ID            string
	Name          string
	Category      string
	Subcategory   string
	MovementCount int
	LastMovement  *time.Time
}

// StatsRepository consultas read-only de estadísticas. Los agregados se
// recalculan en cada consulta; no se mantienen incrementalmente.
type StatsRepository interface {
	GetProductMovementStats(ctx context.Context) ([]*ProductMovementStats, error)
}
