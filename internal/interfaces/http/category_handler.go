package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/controle-estoque-front/internal/application/dto"
	"github.com/tu-usuario/controle-estoque-front/internal/application/usecase"
)

// CategoryHandler maneja las peticiones HTTP de la vista de categorías.
type CategoryHandler struct {
	uc *usecase.CategoryUseCase
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(uc *usecase.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

// List godoc
// @Summary      Listado de categorías con contador de productos
// @Tags         categories
// @Produce      json
// @Param        search  query  string  false  "Substring sobre nombre, tamaño y embalaje"
// @Success      200  {object}  dto.CategoryListDTO
// @Router       /api/categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.uc.List(dto.CategoryListRequest{Search: c.Query("search")}))
}

// DeleteImpact godoc
// @Summary      Impacto del borrado en cascada de una categoría
// @Description  Cuántos productos y movimentaciones arrastraría eliminar la
//               categoría. La UI muestra estos números en el diálogo de
//               confirmación antes de autorizar el DELETE.
// @Tags         categories
// @Produce      json
// @Param        id  path  int  true  "ID de la categoría"
// @Success      200  {object}  dto.DeleteImpactDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/categories/{id}/impact [get]
func (h *CategoryHandler) DeleteImpact(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return errorJSON(c, err)
	}
	out, err := h.uc.DeleteImpact(id)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear categoría
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCategoryRequest  true  "Datos de la categoría"
// @Success      201   {object}  dto.CategoryRowDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/categories [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar categoría
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la categoría"
// @Param        body  body  dto.UpdateCategoryRequest  true  "Datos de la categoría"
// @Success      200   {object}  dto.CategoryRowDTO
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/categories/{id} [put]
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return errorJSON(c, err)
	}
	var in dto.UpdateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar categoría (cascada en el backend)
// @Tags         categories
// @Param        id  path  int  true  "ID de la categoría"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/categories/{id} [delete]
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return errorJSON(c, err)
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return errorJSON(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
