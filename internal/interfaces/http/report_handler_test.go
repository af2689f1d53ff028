package http_test

import (
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// GET /records/report.pdf devuelve un PDF descargable con los registros filtrados.
func TestRecordsReportPDF_DevuelvePDF(t *testing.T) {
	app, _ := newTestApp(t)
	createRecord(t, app, validRecordBody)

	resp := doJSON(t, app, http.MethodGet, "/records/report.pdf?category=Marketing", "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "attachment")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, len(body) > 4 && string(body[:5]) == "%PDF-",
		"el cuerpo debe ser un documento PDF")
}

// Una fecha mal formada en el filtro del reporte se rechaza igual que en el listado.
func TestRecordsReportPDF_FechaMalFormada400(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/records/report.pdf?date_to=ayer", "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
