package dto

import "time"

// MovementResponse fila del historial de stock. ProductName y ProductUnit
// caen a los valores de relleno cuando el producto fue eliminado.
type MovementResponse struct {
	ID           string    `json:"id"`
	ProductID    *string   `json:"product_id"`
	ProductName  string    `json:"product_name"`
	ProductUnit  string    `json:"product_unit"`
	MovementType string    `json:"movement_type"`
	Quantity     int       `json:"quantity"`
	CreatedAt    time.Time `json:"created_at"`
}

// MovementListResponse historial completo, más reciente primero.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
}
