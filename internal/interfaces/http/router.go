package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/controle-estoque-front/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Store      *usecase.SnapshotStore
	ProductUC  *usecase.ProductUseCase
	CategoryUC *usecase.CategoryUseCase
	MovementUC *usecase.MovementUseCase
	ReportUC   *usecase.ReportUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Refresco explícito del snapshot (la UI lo dispara al entrar a una vista)
	api.Post("/refresh", func(c *fiber.Ctx) error {
		if err := deps.Store.Refresh(c.Context()); err != nil {
			return errorJSON(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	})

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Categories
	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/:id/impact", categoryHandler.DeleteImpact)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	// Movements (inmutables: solo listado y alta)
	movements := api.Group("/movements")
	movementHandler := NewMovementHandler(deps.MovementUC)
	movements.Get("/", movementHandler.List)
	movements.Post("/", movementHandler.Create)

	// Reports
	reports := api.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/balance", reportHandler.Balance)
	reports.Get("/balance/pdf", reportHandler.BalancePDF)
	reports.Get("/stock", reportHandler.Stock)
	reports.Get("/by-category", reportHandler.ByCategory)
	reports.Get("/rankings", reportHandler.Rankings)
}
