package report

import (
	"context"
	"time"

	"github.com/jhoicas/flujo-api/internal/domain/entity"
)

// RecordsPDFGenerator puerto de generación del PDF del reporte de registros.
type RecordsPDFGenerator interface {
	GenerateRecordsPDF(ctx context.Context, records []*entity.RecordDetail, generatedAt time.Time) ([]byte, error)
}
