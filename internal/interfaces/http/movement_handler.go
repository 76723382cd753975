package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/controle-estoque-front/internal/application/dto"
	"github.com/tu-usuario/controle-estoque-front/internal/application/usecase"
)

// MovementHandler maneja las peticiones HTTP del historial de movimientos.
type MovementHandler struct {
	uc *usecase.MovementUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(uc *usecase.MovementUseCase) *MovementHandler {
	return &MovementHandler{uc: uc}
}

// List godoc
// @Summary      Historial de movimentaciones
// @Description  Filtrado por nombre del producto resuelto y ordenado por
//               fecha; por defecto las más recientes primero.
// @Tags         movements
// @Produce      json
// @Param        search   query  string  false  "Substring sobre el nombre del producto"
// @Param        sortDir  query  string  false  "asc|desc"  default(desc)
// @Success      200  {object}  dto.MovementListDTO
// @Router       /api/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.uc.History(dto.MovementListRequest{
		Search:  c.Query("search"),
		SortDir: c.Query("sortDir"),
	}))
}

// Create godoc
// @Summary      Registrar entrada o salida de estoque
// @Tags         movements
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMovementRequest  true  "Movimiento (ENTRY|EXIT, cantidad > 0)"
// @Success      201   {object}  dto.MovementRowDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/movements [post]
func (h *MovementHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Register(c.Context(), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
