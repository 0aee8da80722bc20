package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Categorías fijas del stock doméstico. El conjunto es cerrado: la UI y la
// validación de formularios solo admiten estos tres valores.
const (
	CategoryEntretien    = "entretien"
	CategoryAlimentation = "alimentation"
	CategoryCosmetiques  = "cosmétiques"
)

// CategoryNames lista las categorías válidas en el orden de presentación.
var CategoryNames = []string{CategoryEntretien, CategoryAlimentation, CategoryCosmetiques}

// NormalizeCategory resuelve un nombre de categoría (case-insensitive) al
// valor canónico del enum. Devuelve "" si no pertenece al conjunto.
func NormalizeCategory(name string) string {
	for _, c := range CategoryNames {
		if strings.EqualFold(c, name) {
			return c
		}
	}
	return ""
}

// Product representa un producto del stock. La cantidad solo se modifica vía
// el ajuste incremental (+1/−1); nunca directamente por el CRUD.
type Product struct {
	ID          string
	Name        string
	Category    string // entretien, alimentation, cosmétiques
	Subcategory string
	Quantity    int
	MinQuantity int // umbral de stock bajo
	Unit        string
	Price       decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// LowStock indica si el producto está en stock bajo (estado derivado, no almacenado).
func (p *Product) LowStock() bool {
	return p.Quantity <= p.MinQuantity
}
