package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/controle-estoque-front/internal/application/dto"
	"github.com/tu-usuario/controle-estoque-front/internal/application/usecase"
)

// ReportHandler maneja los endpoints de reportes derivados.
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Balance godoc
// @Summary      Balance del estoque
// @Description  Totales del snapshot completo: items, valor financiero,
//               contadores y promedio de productos por categoría.
// @Tags         reports
// @Produce      json
// @Success      200  {object}  dto.BalanceDTO
// @Router       /api/reports/balance [get]
func (h *ReportHandler) Balance(c *fiber.Ctx) error {
	return c.JSON(h.uc.Balance())
}

// Stock godoc
// @Summary      Productos fuera de rango de estoque
// @Tags         reports
// @Produce      json
// @Success      200  {object}  dto.StockReportDTO
// @Router       /api/reports/stock [get]
func (h *ReportHandler) Stock(c *fiber.Ctx) error {
	return c.JSON(h.uc.StockReport())
}

// ByCategory godoc
// @Summary      Agregado por categoría
// @Description  Una fila por categoría del snapshot, con ceros para las
//               categorías sin productos.
// @Tags         reports
// @Produce      json
// @Success      200  {array}  dto.CategoryRollupDTO
// @Router       /api/reports/by-category [get]
func (h *ReportHandler) ByCategory(c *fiber.Ctx) error {
	return c.JSON(h.uc.ByCategory())
}

// Rankings godoc
// @Summary      Top-10 de productos por cantidad movida
// @Description  Particiones ENTRY y EXIT; listas vacías son un resultado
//               válido, no un error.
// @Tags         reports
// @Produce      json
// @Param        type        query  string  false  "ENTRY|EXIT (vacío = ambos)"
// @Param        categoryId  query  int     false  "Alcance de categoría"
// @Param        search      query  string  false  "Substring sobre el nombre del producto"
// @Success      200  {object}  dto.RankingsDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/rankings [get]
func (h *ReportHandler) Rankings(c *fiber.Ctx) error {
	categoryID, err := parseCategoryQuery(c)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(h.uc.Rankings(dto.RankingRequest{
		Type:       c.Query("type"),
		CategoryID: categoryID,
		Search:     c.Query("search"),
	}))
}

// BalancePDF godoc
// @Summary      Exportar el balance como PDF
// @Tags         reports
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/balance/pdf [get]
func (h *ReportHandler) BalancePDF(c *fiber.Ctx) error {
	raw, err := h.uc.BalancePDF(c.Context())
	if err != nil {
		return errorJSON(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="balanco-estoque.pdf"`)
	return c.Send(raw)
}
