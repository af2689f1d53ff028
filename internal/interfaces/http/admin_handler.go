package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/flujo-api/internal/application/dto"
	"github.com/jhoicas/flujo-api/internal/application/usecase"
)

// defaultDropdownLimit cota de los listados de dropdown; la taxonomía es
// pequeña pero el listado no puede quedar sin acotar.
const defaultDropdownLimit = 100

// AdminHandler helpers de dropdowns dependientes del panel de administración:
// categorías por tipo y subcategorías por categoría.
type AdminHandler struct {
	categories    *usecase.CategoryUseCase
	subcategories *usecase.SubcategoryUseCase
}

// NewAdminHandler construye el handler inyectando los casos de uso.
func NewAdminHandler(categories *usecase.CategoryUseCase, subcategories *usecase.SubcategoryUseCase) *AdminHandler {
	return &AdminHandler{categories: categories, subcategories: subcategories}
}

// CategoriesByType godoc
// @Summary      Categorías de un tipo (dropdown dependiente)
// @Tags         admin
// @Produce      json
// @Param        type_id  query  string  true   "ID del tipo"
// @Param        limit    query  int     false  "Máximo de filas"  default(100)
// @Success      200  {array}  dto.CategoryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /admin/categories [get]
func (h *AdminHandler) CategoriesByType(c *fiber.Ctx) error {
	typeID := c.Query("type_id")
	if typeID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "type_id es requerido"})
	}
	out, err := h.categories.ListByType(typeID, dropdownLimit(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(out)
}

// SubcategoriesByCategory godoc
// @Summary      Subcategorías de una categoría (dropdown dependiente)
// @Tags         admin
// @Produce      json
// @Param        category_id  query  string  true   "ID de la categoría"
// @Param        limit        query  int     false  "Máximo de filas"  default(100)
// @Success      200  {array}  dto.SubcategoryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /admin/subcategories [get]
func (h *AdminHandler) SubcategoriesByCategory(c *fiber.Ctx) error {
	categoryID := c.Query("category_id")
	if categoryID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "category_id es requerido"})
	}
	out, err := h.subcategories.ListByCategory(categoryID, dropdownLimit(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(out)
}

func dropdownLimit(c *fiber.Ctx) int {
	limit := c.QueryInt("limit", defaultDropdownLimit)
	if limit <= 0 || limit > defaultDropdownLimit {
		limit = defaultDropdownLimit
	}
	return limit
}
