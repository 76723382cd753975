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
	"github.com/tu-usuario/controle-estoque-front/internal/application/usecase"
	infrapdf "github.com/tu-usuario/controle-estoque-front/internal/infrastructure/pdf"
	"github.com/tu-usuario/controle-estoque-front/internal/infrastructure/stockapi"
	httpRouter "github.com/tu-usuario/controle-estoque-front/internal/interfaces/http"
	"github.com/tu-usuario/controle-estoque-front/pkg/config"
	"github.com/tu-usuario/controle-estoque-front/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(cfg.App.Env, cfg.App.LogLevel)
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("backend", cfg.StockAPI.BaseURL).
		Msg("iniciando aplicación")

	api := stockapi.New(cfg.StockAPI.BaseURL, cfg.StockAPI.Timeout)
	store := usecase.NewSnapshotStore(api)

	// Carga inicial del snapshot. Si el backend no está disponible arrancamos
	// igual: /api/refresh permite reintentar sin reiniciar el servicio.
	warmCtx, warmCancel := context.WithTimeout(context.Background(), cfg.StockAPI.Timeout)
	if err := store.Refresh(warmCtx); err != nil {
		log.Warn().Err(err).Msg("carga inicial del snapshot falló")
	}
	warmCancel()

	productUC := usecase.NewProductUseCase(store, api)
	categoryUC := usecase.NewCategoryUseCase(store, api)
	movementUC := usecase.NewMovementUseCase(store, api)
	reportUC := usecase.NewReportUseCase(store, infrapdf.NewMarotoBalanceGenerator())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Controle de Estoque",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Store:      store,
		ProductUC:  productUC,
		CategoryUC: categoryUC,
		MovementUC: movementUC,
		ReportUC:   reportUC,
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
