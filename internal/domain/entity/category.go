package entity

import "time"

// MaxSubcategories tope de subcategorías por categoría.
const MaxSubcategories = 12

// Category representa una categoría registrada en el almacén de datos.
// El nombre no tiene restricción de unicidad: pueden existir duplicados.
type Category struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

// Subcategory pertenece a una categoría; el nombre es único dentro de ella.
type Subcategory struct {
	ID         string
	CategoryID string
	Name       string
	CreatedAt  time.Time
}
