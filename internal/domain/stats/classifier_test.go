package stats_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/StockMarie-api/internal/domain/repository"
	"github.com/jhoicas/StockMarie-api/internal/domain/stats"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

var testNow = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

// row construye una fila de estadísticas con el último movimiento hace
// daysAgo días (nil si never).
func row(name string, count int, daysAgo int, never bool) *repository.ProductMovementStats {
	r := &repository.ProductMovementStats{Name: name, MovementCount: count}
	if !never {
		last := testNow.AddDate(0, 0, -daysAgo)
		r.LastMovement = &last
	}
	return r
}

func names(rows []*repository.ProductMovementStats) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Name)
	}
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Particionado en cubos
// ──────────────────────────────────────────────────────────────────────────────

func TestClassify_CuatroCubos(t *testing.T) {
	rows := []*repository.ProductMovementStats{
		row("reciente", 5, 3, false),
		row("una-dos", 2, 10, false),
		row("dos-tres", 1, 16, false),
		row("antiguo", 1, 25, false),
		row("nunca", 0, 0, true),
	}

	out := stats.Classify(rows, testNow)

	assert.Equal(t, []string{"reciente", "una-dos", "dos-tres", "antiguo"}, names(out.Active),
		"todo producto con movimientos es activo, ordenado por count desc")
	assert.Equal(t, []string{"una-dos"}, names(out.InactiveOneToTwoWeeks))
	assert.Equal(t, []string{"dos-tres"}, names(out.InactiveTwoToThree))
	assert.Equal(t, []string{"antiguo", "nunca"}, names(out.InactiveLongerOrNever))
}

// Un producto puede estar en Active y a la vez en un cubo de inactividad:
// las listas no son excluyentes entre sí, solo los cubos entre ellos.
func TestClassify_ActivoEInactivoNoSonExcluyentes(t *testing.T) {
	rows := []*repository.ProductMovementStats{row("p", 3, 10, false)}

	out := stats.Classify(rows, testNow)

	require.Len(t, out.Active, 1)
	require.Len(t, out.InactiveOneToTwoWeeks, 1)
	assert.Same(t, rows[0], out.Active[0])
	assert.Same(t, rows[0], out.InactiveOneToTwoWeeks[0])
}

func TestClassify_OrdenActivoEstableConEmpates(t *testing.T) {
	rows := []*repository.ProductMovementStats{
		row("a", 2, 1, false),
		row("b", 5, 1, false),
		row("c", 2, 1, false),
	}

	out := stats.Classify(rows, testNow)

	assert.Equal(t, []string{"b", "a", "c"}, names(out.Active),
		"los empates conservan el orden de entrada")
}

// ──────────────────────────────────────────────────────────────────────────────
// Límites exactos (semiabiertos)
// ──────────────────────────────────────────────────────────────────────────────

// Exactamente 7 días: aún no entra en ningún cubo de inactividad.
func TestClassify_ExactamenteSieteDias(t *testing.T) {
	out := stats.Classify([]*repository.ProductMovementStats{row("p", 1, 7, false)}, testNow)

	assert.Empty(t, out.InactiveOneToTwoWeeks)
	assert.Empty(t, out.InactiveTwoToThree)
	assert.Empty(t, out.InactiveLongerOrNever)
	assert.Len(t, out.Active, 1)
}

// Exactamente 14 días: cae en 1–2 semanas, no en 2–3.
func TestClassify_ExactamenteCatorceDias(t *testing.T) {
	out := stats.Classify([]*repository.ProductMovementStats{row("p", 1, 14, false)}, testNow)

	assert.Len(t, out.InactiveOneToTwoWeeks, 1)
	assert.Empty(t, out.InactiveTwoToThree)
}

// Exactamente 21 días: cae en 2–3 semanas, no en >3.
func TestClassify_ExactamenteVeintiunDias(t *testing.T) {
	out := stats.Classify([]*repository.ProductMovementStats{row("p", 1, 21, false)}, testNow)

	assert.Len(t, out.InactiveTwoToThree, 1)
	assert.Empty(t, out.InactiveLongerOrNever)
}

// Sin movimientos nunca: no activo, cubo >3/nunca.
func TestClassify_SinMovimientos(t *testing.T) {
	out := stats.Classify([]*repository.ProductMovementStats{row("p", 0, 0, true)}, testNow)

	assert.Empty(t, out.Active)
	assert.Len(t, out.InactiveLongerOrNever, 1)
}
