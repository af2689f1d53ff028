package report

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/flujo-api/internal/application/dto"
	"github.com/jhoicas/flujo-api/internal/domain/repository"
)

// ReportUseCase exporta como PDF el mismo conjunto filtrado que GET /records.
type ReportUseCase struct {
	records   repository.RecordRepository
	generator RecordsPDFGenerator
}

// NewReportUseCase construye el caso de uso de reportes.
func NewReportUseCase(records repository.RecordRepository, generator RecordsPDFGenerator) *ReportUseCase {
	return &ReportUseCase{records: records, generator: generator}
}

// RecordsPDF filtra los registros con la misma semántica que la consulta
// normal (DateTo por omisión: hoy, calculado en la llamada) y genera el PDF.
func (uc *ReportUseCase) RecordsPDF(ctx context.Context, in dto.FilterRecordsRequest) ([]byte, error) {
	now := time.Now()
	dateTo := time.Date(now.UTC().Year(), now.UTC().Month(), now.UTC().Day(), 0, 0, 0, 0, time.UTC)
	if in.DateTo != nil {
		dateTo = *in.DateTo
	}
	details, err := uc.records.Filter(repository.RecordFilter{
		DateFrom:    in.DateFrom,
		DateTo:      dateTo,
		Status:      in.Status,
		Type:        in.Type,
		Category:    in.Category,
		Subcategory: in.Subcategory,
	})
	if err != nil {
		return nil, fmt.Errorf("filtrar registros para reporte: %w", err)
	}
	return uc.generator.GenerateRecordsPDF(ctx, details, now)
}
