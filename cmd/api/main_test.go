package main

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// El middleware de swagger carga ./docs/swagger.json al arrancar y entra en
// pánico si el archivo no existe: el documento estático debe venir en el repo
// y describir las rutas que registra el router.
func TestSwaggerJSON_PresenteYConsistente(t *testing.T) {
	data, err := os.ReadFile("../../docs/swagger.json")
	require.NoError(t, err, "docs/swagger.json debe existir en el repo")

	var doc struct {
		Swagger string                     `json:"swagger"`
		Paths   map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "2.0", doc.Swagger)

	for _, path := range []string{
		"/health",
		"/api/products",
		"/api/products/{id}",
		"/api/products/{id}/adjust",
		"/api/products/low-stock",
		"/api/categories",
		"/api/categories/overview",
		"/api/categories/{name}/subcategories",
		"/api/movements",
		"/api/movements/pdf",
		"/api/stats/movement-analysis",
		"/api/stats/quantity-difference",
	} {
		assert.Contains(t, doc.Paths, path)
	}
}
