package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/StockMarie-api/internal/application/history"
	"github.com/jhoicas/StockMarie-api/internal/application/stats"
	"github.com/jhoicas/StockMarie-api/internal/application/stock"
	"github.com/jhoicas/StockMarie-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC  *usecase.ProductUseCase
	CategoryUC *usecase.CategoryUseCase
	AdjustUC   *stock.AdjustUseCase
	HistoryUC  *history.UseCase
	StatsUC    *stats.UseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	stockHandler := NewStockHandler(deps.AdjustUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/low-stock", productHandler.LowStock)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
	products.Post("/:id/adjust", stockHandler.Adjust)

	// Categories (protegido)
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/overview", categoryHandler.Overview)
	categories.Post("/:name/subcategories", categoryHandler.AddSubcategory)

	// Movements (protegido)
	movements := protected.Group("/movements")
	historyHandler := NewHistoryHandler(deps.HistoryUC)
	movements.Get("/", historyHandler.List)
	movements.Get("/pdf", historyHandler.ExportPDF)

	// Stats (protegido)
	statsGroup := protected.Group("/stats")
	statsHandler := NewStatsHandler(deps.StatsUC)
	statsGroup.Get("/movement-analysis", statsHandler.MovementAnalysis)
	statsGroup.Get("/quantity-difference", statsHandler.QuantityDifference)
}
