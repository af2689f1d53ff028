package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/flujo-api/internal/application/dto"
	"github.com/jhoicas/flujo-api/internal/application/usecase"
)

// SubcategoryHandler maneja las peticiones HTTP para el recurso Subcategory.
type SubcategoryHandler struct {
	uc *usecase.SubcategoryUseCase
}

// NewSubcategoryHandler construye el handler inyectando el caso de uso.
func NewSubcategoryHandler(uc *usecase.SubcategoryUseCase) *SubcategoryHandler {
	return &SubcategoryHandler{uc: uc}
}

// List godoc
// @Summary      Listar subcategorías
// @Tags         taxonomy
// @Produce      json
// @Success      200  {array}  dto.SubcategoryResponse
// @Router       /subcategory [get]
func (h *SubcategoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear subcategoría
// @Tags         taxonomy
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSubcategoryRequest  true  "Subcategoría con su categoría"
// @Success      201   {object}  dto.SubcategoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /subcategory [post]
func (h *SubcategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSubcategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondTaxonomyWriteError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID devuelve una subcategoría por ID.
func (h *SubcategoryHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondTaxonomyReadError(c, err)
	}
	return c.JSON(out)
}

// Update cambia título y categoría de una subcategoría.
func (h *SubcategoryHandler) Update(c *fiber.Ctx) error {
	var in dto.CreateSubcategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondTaxonomyWriteError(c, err)
	}
	return c.JSON(out)
}

// Delete elimina una subcategoría (y sus registros, en cascada).
func (h *SubcategoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondTaxonomyReadError(c, err)
	}
	return c.JSON(dto.OK())
}
