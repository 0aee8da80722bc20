package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/StockMarie-api/internal/application/stats"
)

// StatsHandler maneja las estadísticas de movimiento (protegido).
type StatsHandler struct {
	uc *stats.UseCase
}

// NewStatsHandler construye el handler.
func NewStatsHandler(uc *stats.UseCase) *StatsHandler {
	return &StatsHandler{uc: uc}
}

// MovementAnalysis godoc
// @Summary      Clasificar productos por actividad de movimiento
// @Tags         stats
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.MovementAnalysisResponse
// @Router       /api/stats/movement-analysis [get]
func (h *StatsHandler) MovementAnalysis(c *fiber.Ctx) error {
	out, err := h.uc.MovementAnalysis(c.Context())
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// QuantityDifference godoc
// @Summary      Diferencia entre cantidad actual y cantidad mínima por producto
// @Tags         stats
// @Security     Bearer
// @Produce      json
// @Param        q  query  string  false  "Filtrar por nombre (contiene, sin mayúsculas)"
// @Success      200  {object}  dto.QuantityDifferenceResponse
// @Router       /api/stats/quantity-difference [get]
func (h *StatsHandler) QuantityDifference(c *fiber.Ctx) error {
	out, err := h.uc.QuantityDifference(c.Context(), c.Query("q"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}
