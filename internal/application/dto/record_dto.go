package dto

import (
	"time"

	"github.com/jhoicas/flujo-api/internal/domain/entity"
)

// DateLayout formato de fecha en el API (yyyy-mm-dd).
const DateLayout = "2006-01-02"

// CreateRecordRequest entrada para crear un registro. Las entidades
// relacionadas se indican por título, no por ID.
type CreateRecordRequest struct {
	Status      string  `json:"status"`
	Type        string  `json:"type"`
	Category    string  `json:"category"`
	Subcategory string  `json:"subcategory"`
	Amount      int64   `json:"amount"`
	Comment     *string `json:"comment"`
}

// UpdateRecordRequest entrada para actualizar un registro. Todos los campos
// son opcionales: un campo ausente conserva el valor actual del registro
// (semántica PATCH). Para PUT el handler exige que estén todos presentes.
type UpdateRecordRequest struct {
	Status      *string `json:"status"`
	Type        *string `json:"type"`
	Category    *string `json:"category"`
	Subcategory *string `json:"subcategory"`
	Amount      *int64  `json:"amount"`
	Comment     *string `json:"comment"`
}

// FilterRecordsRequest criterios de filtrado ya parseados por el handler.
type FilterRecordsRequest struct {
	DateFrom    *time.Time
	DateTo      *time.Time // nil → hoy, calculado en el momento de la llamada
	Status      string
	Type        string
	Category    string
	Subcategory string
}

// RecordResponse vista de un registro: las entidades relacionadas se
// representan por su título.
type RecordResponse struct {
	ID          string `json:"id"`
	Date        string `json:"date"` // yyyy-mm-dd
	Status      string `json:"status"`
	Type        string `json:"type"`
	Category    string `json:"category"`
	Subcategory string `json:"subcategory"`
	Amount      int64  `json:"amount"`
	Comment     string `json:"comment"`
}

// RecordEnvelope respuesta de detalle: {"record": {...}}.
type RecordEnvelope struct {
	Record RecordResponse `json:"record"`
}

// RecordListResponse respuesta de listado: {"records": [...]}.
type RecordListResponse struct {
	Records []RecordResponse `json:"records"`
}

// ToRecordResponse mapea la vista de lectura de dominio al DTO de salida.
func ToRecordResponse(d *entity.RecordDetail) RecordResponse {
	return RecordResponse{
		ID:          d.ID,
		Date:        d.Date.Format(DateLayout),
		Status:      d.StatusTitle,
		Type:        d.TypeTitle,
		Category:    d.CategoryTitle,
		Subcategory: d.SubcategoryTitle,
		Amount:      d.Amount,
		Comment:     d.Comment,
	}
}
