package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/flujo-api/internal/application/dto"
	"github.com/jhoicas/flujo-api/internal/application/usecase"
	"github.com/jhoicas/flujo-api/internal/domain"
)

// RecordHandler maneja las peticiones HTTP para el recurso Record.
type RecordHandler struct {
	uc *usecase.RecordUseCase
}

// NewRecordHandler construye el handler inyectando el caso de uso.
func NewRecordHandler(uc *usecase.RecordUseCase) *RecordHandler {
	return &RecordHandler{uc: uc}
}

// parseFilter lee los criterios de filtrado del query string. Las fechas van
// en formato yyyy-mm-dd.
func parseFilter(c *fiber.Ctx) (dto.FilterRecordsRequest, error) {
	var f dto.FilterRecordsRequest
	if raw := c.Query("date_from"); raw != "" {
		t, err := time.Parse(dto.DateLayout, raw)
		if err != nil {
			return f, errors.New("date_from inválida, formato esperado yyyy-mm-dd")
		}
		f.DateFrom = &t
	}
	if raw := c.Query("date_to"); raw != "" {
		t, err := time.Parse(dto.DateLayout, raw)
		if err != nil {
			return f, errors.New("date_to inválida, formato esperado yyyy-mm-dd")
		}
		f.DateTo = &t
	}
	f.Status = c.Query("status")
	f.Type = c.Query("type")
	f.Category = c.Query("category")
	f.Subcategory = c.Query("subcategory")
	return f, nil
}

// List godoc
// @Summary      Listar registros filtrados
// @Tags         records
// @Produce      json
// @Param        date_from    query  string  false  "Fecha inicial (yyyy-mm-dd)"
// @Param        date_to      query  string  false  "Fecha final, por defecto hoy (yyyy-mm-dd)"
// @Param        status       query  string  false  "Título del estado"
// @Param        type         query  string  false  "Título del tipo"
// @Param        category     query  string  false  "Título de la categoría"
// @Param        subcategory  query  string  false  "Título de la subcategoría"
// @Success      200  {object}  dto.RecordListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /records [get]
func (h *RecordHandler) List(c *fiber.Ctx) error {
	filter, err := parseFilter(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	out, err := h.uc.Filter(filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear registro
// @Tags         records
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRecordRequest  true  "Registro (entidades por título)"
// @Success      201   {object}  dto.RecordEnvelope
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /records [post]
func (h *RecordHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRecordRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	// Validación de frontera: los dominios nunca reciben un amount < 1.
	if in.Amount < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "amount debe ser un entero >= 1"})
	}
	if in.Status == "" || in.Type == "" || in.Category == "" || in.Subcategory == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "status, type, category y subcategory son requeridos"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondRecordWriteError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.RecordEnvelope{Record: *out})
}

// GetByID godoc
// @Summary      Obtener registro por ID
// @Tags         records
// @Produce      json
// @Param        id   path  string  true  "ID del registro"
// @Success      200  {object}  dto.RecordEnvelope
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /records/{id} [get]
func (h *RecordHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(dto.RecordEnvelope{Record: *out})
}

// Update godoc
// @Summary      Actualizar registro (PUT completo, PATCH parcial)
// @Tags         records
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID del registro"
// @Param        body  body  dto.UpdateRecordRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.RecordEnvelope
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /records/{id} [put]
func (h *RecordHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateRecordRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	// PUT exige el recurso completo; PATCH acepta cualquier subconjunto y los
	// campos ausentes conservan su valor actual.
	if c.Method() == fiber.MethodPut {
		if in.Status == nil || in.Type == nil || in.Category == nil || in.Subcategory == nil || in.Amount == nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "PUT requiere status, type, category, subcategory y amount"})
		}
	}
	if in.Amount != nil && *in.Amount < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "amount debe ser un entero >= 1"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondRecordWriteError(c, err)
	}
	return c.JSON(dto.RecordEnvelope{Record: *out})
}

// Delete godoc
// @Summary      Eliminar registro
// @Tags         records
// @Produce      json
// @Param        id   path  string  true  "ID del registro"
// @Success      200  {object}  dto.AckResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /records/{id} [delete]
func (h *RecordHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(dto.OK())
}

// respondRecordWriteError mapea los errores de dominio de Create/Update.
// El ID del propio registro inexistente es 404; el resto de errores de
// resolución y de jerarquía son fallos de validación del cliente (400).
func respondRecordWriteError(c *fiber.Ctx, err error) error {
	var nf *domain.NotFoundError
	if errors.As(err, &nf) && nf.Kind == "Record" {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	if errors.Is(err, domain.ErrNotFound) ||
		errors.Is(err, domain.ErrHierarchyMismatch) ||
		errors.Is(err, domain.ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
}
