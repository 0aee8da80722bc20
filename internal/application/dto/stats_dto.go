package dto

import "time"

// ProductMovementStatsDTO agregado de movimientos de un producto.
type ProductMovementStatsDTO struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Category      string     `json:"category"`
	Subcategory   string     `json:"subcategory"`
	MovementCount int        `json:"movement_count"`
	LastMovement  *time.Time `json:"last_movement,omitempty"`
}

// MovementAnalysisResponse las cuatro listas del análisis de movimientos.
type MovementAnalysisResponse struct {
	Active                  []ProductMovementStatsDTO `json:"active"`
	InactiveOneToTwoWeeks   []ProductMovementStatsDTO `json:"inactive_1_2_weeks"`
	InactiveTwoToThreeWeeks []ProductMovementStatsDTO `json:"inactive_2_3_weeks"`
	InactiveLongerOrNever   []ProductMovementStatsDTO `json:"inactive_longer_or_never"`
}

// QuantityDifferenceDTO producto con su diferencia quantity − min_quantity.
type QuantityDifferenceDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Subcategory string `json:"subcategory"`
	Quantity    int    `json:"quantity"`
	MinQuantity int    `json:"min_quantity"`
	Difference  int    `json:"difference"`
	Unit        string `json:"unit"`
}

// QuantityDifferenceResponse productos ordenados por diferencia descendente.
type QuantityDifferenceResponse struct {
	Items []QuantityDifferenceDTO `json:"items"`
}
