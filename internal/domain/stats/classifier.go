// Package stats contiene la lógica pura de clasificación por inactividad
// (servicio de dominio, sin acceso a datos).
package stats

import (
	"sort"
	"time"

	"github.com/jhoicas/StockMarie-api/internal/domain/repository"
)

// MovementAnalysis particiona los productos en las cuatro listas del análisis
// de movimientos. Un producto cae como mucho en un cubo de inactividad por
// pasada; Active se calcula aparte (todo producto con ≥1 movimiento).
type MovementAnalysis struct {
	Active                []*repository.ProductMovementStats // ordenados por movement_count desc
	InactiveOneToTwoWeeks []*repository.ProductMovementStats
	InactiveTwoToThree    []*repository.ProductMovementStats
	InactiveLongerOrNever []*repository.ProductMovementStats
}

// Classify evalúa cada producto contra los cortes de 1, 2 y 3 semanas
// respecto a now:
//
//	activo:        movement_count > 0 (orden estable por count desc)
//	1–2 semanas:   twoWeeksAgo ≤ last < oneWeekAgo
//	2–3 semanas:   threeWeeksAgo ≤ last < twoWeeksAgo
//	>3 / nunca:    last < threeWeeksAgo, o sin movimientos
//
// Los límites son semiabiertos: un último movimiento exactamente a 7 días no
// entra en ningún cubo de inactividad, a 14 días cae en 1–2 semanas y a 21
// días en 2–3 semanas.
func Classify(products []*repository.ProductMovementStats, now time.Time) MovementAnalysis {
	oneWeekAgo := now.AddDate(0, 0, -7)
	twoWeeksAgo := now.AddDate(0, 0, -14)
	threeWeeksAgo := now.AddDate(0, 0, -21)

	var out MovementAnalysis
	for _, p := range products {
		if p.MovementCount > 0 {
			out.Active = append(out.Active, p)
		}
		switch {
		case p.LastMovement == nil:
			out.InactiveLongerOrNever = append(out.InactiveLongerOrNever, p)
		case p.LastMovement.Before(threeWeeksAgo):
			out.InactiveLongerOrNever = append(out.InactiveLongerOrNever, p)
		case p.LastMovement.Before(twoWeeksAgo):
			out.InactiveTwoToThree = append(out.InactiveTwoToThree, p)
		case p.LastMovement.Before(oneWeekAgo):
			out.InactiveOneToTwoWeeks = append(out.InactiveOneToTwoWeeks, p)
		}
	}

	// Orden estable: empates conservan el orden de entrada.
	sort.SliceStable(out.Active, func(i, j int) bool {
		return out.Active[i].MovementCount > out.Active[j].MovementCount
	})
	return out
}
