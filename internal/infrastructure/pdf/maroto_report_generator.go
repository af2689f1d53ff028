// Package pdf genera el reporte imprimible de movimientos: la misma lista que
// devuelve GET /records, en una tabla A4 con total al pie.
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/flujo-api/internal/application/report"
	"github.com/jhoicas/flujo-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ report.RecordsPDFGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa report.RecordsPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateRecordsPDF genera el PDF del listado y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateRecordsPDF(
	_ context.Context,
	records []*entity.RecordDetail,
	generatedAt time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle("Reporte de movimientos", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, r := range records {
		m.AddRows(recordRow(r))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(records))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(generatedAt time.Time) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("Reporte de movimientos", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Top: 4, Align: align.Right, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := func(size int, label string) core.Col {
		return col.New(size).Add(text.New(label, props.Text{Style: fontstyle.Bold, Size: 8}))
	}
	return row.New(7).Add(
		header(2, "Fecha"),
		header(2, "Estado"),
		header(2, "Tipo"),
		header(2, "Categoría"),
		header(2, "Subcategoría"),
		header(2, "Importe"),
	)
}

func recordRow(r *entity.RecordDetail) core.Row {
	cell := func(size int, value string) core.Col {
		return col.New(size).Add(text.New(value, props.Text{Size: 8}))
	}
	return row.New(6).Add(
		cell(2, r.Date.Format("02/01/2006")),
		cell(2, r.StatusTitle),
		cell(2, r.TypeTitle),
		cell(2, r.CategoryTitle),
		cell(2, r.SubcategoryTitle),
		col.New(2).Add(text.New(fmt.Sprintf("%d", r.Amount), props.Text{Size: 8, Align: align.Right})),
	)
}

func totalRow(records []*entity.RecordDetail) core.Row {
	var total int64
	for _, r := range records {
		total += r.Amount
	}
	return row.New(8).Add(
		col.New(10).Add(
			text.New(fmt.Sprintf("Movimientos: %d", len(records)), props.Text{Size: 8, Top: 2, Color: colorGray}),
		),
		col.New(2).Add(
			text.New(fmt.Sprintf("Total: %d", total), props.Text{
				Style: fontstyle.Bold, Size: 9, Top: 1, Align: align.Right, Color: colorPrimary,
			}),
		),
	)
}
