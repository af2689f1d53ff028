package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/flujo-api/internal/application/dto"
	"github.com/jhoicas/flujo-api/internal/application/report"
)

// ReportHandler exporta el listado filtrado de registros como PDF.
type ReportHandler struct {
	uc *report.ReportUseCase
}

// NewReportHandler construye el handler inyectando el caso de uso.
func NewReportHandler(uc *report.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// RecordsPDF godoc
// @Summary      Reporte PDF de registros filtrados
// @Tags         records
// @Produce      application/pdf
// @Param        date_from    query  string  false  "Fecha inicial (yyyy-mm-dd)"
// @Param        date_to      query  string  false  "Fecha final, por defecto hoy (yyyy-mm-dd)"
// @Param        status       query  string  false  "Título del estado"
// @Param        type         query  string  false  "Título del tipo"
// @Param        category     query  string  false  "Título de la categoría"
// @Param        subcategory  query  string  false  "Título de la subcategoría"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /records/report.pdf [get]
func (h *ReportHandler) RecordsPDF(c *fiber.Ctx) error {
	filter, err := parseFilter(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	data, err := h.uc.RecordsPDF(c.Context(), filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="records.pdf"`)
	return c.Send(data)
}
