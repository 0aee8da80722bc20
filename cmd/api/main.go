package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/StockMarie-api/internal/application/history"
	"github.com/jhoicas/StockMarie-api/internal/application/stats"
	"github.com/jhoicas/StockMarie-api/internal/application/stock"
	"github.com/jhoicas/StockMarie-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/StockMarie-api/internal/infrastructure/pdf"
	"github.com/jhoicas/StockMarie-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/StockMarie-api/internal/interfaces/http"
	"github.com/jhoicas/StockMarie-api/pkg/config"
	"github.com/jhoicas/StockMarie-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	subcategoryRepo := postgres.NewSubcategoryRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	statsRepo := postgres.NewStatsRepository(pool)

	productUC := usecase.NewProductUseCase(productRepo, categoryRepo, subcategoryRepo, movementRepo, log)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo, subcategoryRepo, productRepo)
	adjustUC := stock.NewAdjustUseCase(productRepo, movementRepo, log)
	statsUC := stats.NewUseCase(statsRepo, productRepo)

	// PDF: exportación del historial de movimientos
	pdfGenerator := infrapdf.NewMarotoHistoryGenerator()
	historyUC := history.NewUseCase(movementRepo, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "StockMarie API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:  productUC,
		CategoryUC: categoryUC,
		AdjustUC:   adjustUC,
		HistoryUC:  historyUC,
		StatsUC:    statsUC,
		JWTSecret:  cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
