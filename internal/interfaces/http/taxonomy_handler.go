package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/flujo-api/internal/application/dto"
	"github.com/jhoicas/flujo-api/internal/domain"
)

// titleUseCase es el CRUD común de Status y Type: pares (id, título único).
type titleUseCase interface {
	Create(in dto.CreateTitleRequest) (*dto.TitleResponse, error)
	GetByID(id string) (*dto.TitleResponse, error)
	List() ([]dto.TitleResponse, error)
	Update(id string, in dto.CreateTitleRequest) (*dto.TitleResponse, error)
	Delete(id string) error
}

// TitleHandler maneja las peticiones HTTP de Status y Type (mismo shape).
type TitleHandler struct {
	uc titleUseCase
}

// NewTitleHandler construye el handler inyectando el caso de uso (Status o Type).
func NewTitleHandler(uc titleUseCase) *TitleHandler {
	return &TitleHandler{uc: uc}
}

// List godoc
// @Summary      Listar estados o tipos
// @Tags         taxonomy
// @Produce      json
// @Success      200  {array}  dto.TitleResponse
// @Router       /status [get]
func (h *TitleHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear estado o tipo
// @Tags         taxonomy
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTitleRequest  true  "Título único"
// @Success      201   {object}  dto.TitleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /status [post]
func (h *TitleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTitleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondTaxonomyWriteError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID devuelve un estado o tipo por ID.
func (h *TitleHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondTaxonomyReadError(c, err)
	}
	return c.JSON(out)
}

// Update cambia el título de un estado o tipo.
func (h *TitleHandler) Update(c *fiber.Ctx) error {
	var in dto.CreateTitleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondTaxonomyWriteError(c, err)
	}
	return c.JSON(out)
}

// Delete elimina un estado o tipo (y sus dependientes, en cascada).
func (h *TitleHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondTaxonomyReadError(c, err)
	}
	return c.JSON(dto.OK())
}

// respondTaxonomyReadError mapea errores de lecturas/borrados por ID: 404 o 500.
func respondTaxonomyReadError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
}

// respondTaxonomyWriteError mapea errores de creación/actualización: el único
// NotFound posible es el padre referenciado (type_id/category_id), un 400.
func respondTaxonomyWriteError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Error: "el título ya existe"})
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
}
