package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/controle-estoque-front/internal/application/dto"
	"github.com/tu-usuario/controle-estoque-front/internal/domain"
)

// parseIDParam lee el :id de la ruta como entero. La conversión explícita y
// falible vive acá, en el borde: los casos de uso reciben siempre números
// ya tipados.
func parseIDParam(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ErrInvalidInput
	}
	return id, nil
}

// parseCategoryQuery lee ?categoryId= como selector opcional. Ausente o
// vacío devuelve nil (sin filtro de categoría); malformado es error.
func parseCategoryQuery(c *fiber.Ctx) (*int64, error) {
	raw := c.Query("categoryId")
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	return &id, nil
}

// errorJSON mapea los errores de dominio y del backend a códigos HTTP.
func errorJSON(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code: "NOT_FOUND", Message: "recurso no encontrado",
		})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: err.Error(),
		})
	case errors.Is(err, domain.ErrUnavailable), errors.Is(err, domain.ErrBackend):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
			Code: "BACKEND", Message: err.Error(),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
}
