package dto

// CreateCategoryRequest entrada para crear una categoría.
type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// AddSubcategoryRequest entrada para registrar una subcategoría.
type AddSubcategoryRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// CategoryResponse categoría con sus subcategorías registradas.
type CategoryResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Subcategories []string `json:"subcategories"`
}

// CategoryListResponse salida del listado de categorías.
type CategoryListResponse struct {
	Items []CategoryResponse `json:"items"`
}

// CategoryOverview resumen de una categoría fija: totales y stock bajo.
type CategoryOverview struct {
	Category      string   `json:"category"`
	TotalProducts int      `json:"total_products"`
	LowStock      int      `json:"low_stock"`
	Subcategories []string `json:"subcategories"`
}

// CategoryOverviewResponse resumen de las tres categorías fijas.
type CategoryOverviewResponse struct {
	Items []CategoryOverview `json:"items"`
}
