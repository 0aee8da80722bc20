package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementTypeIncrement = "increment"
	MovementTypeDecrement = "decrement"
)

// Movement es una entrada del historial de stock. Rachas consecutivas en la
// misma dirección se fusionan en una sola fila: Quantity acumula el cambio
// neto y CreatedAt conserva el instante en que empezó la racha (no se toca
// al enmendar la fila).
//
// ProductID es una referencia débil: queda en nil cuando el producto se
// elimina, y Name conserva la etiqueta legible para el historial.
type Movement struct {
	ID        string
	ProductID *string
	Name      string
	Type      string // increment, decrement
	Quantity  int    // magnitud acumulada de la racha, siempre > 0
	CreatedAt time.Time
}
