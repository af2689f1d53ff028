package repository

import (
	"time"

	"github.com/jhoicas/flujo-api/internal/domain/entity"
)

// RecordFilter criterios de filtrado de registros. Los criterios vacíos no
// restringen; los presentes se combinan con AND. DateTo debe venir ya
// resuelta por el caso de uso (hoy si no se indicó otra fecha).
type RecordFilter struct {
	DateFrom    *time.Time // nil → solo se aplica date <= DateTo
	DateTo      time.Time  // rango inclusivo
	Status      string     // título exacto
	Type        string     // título exacto
	Category    string     // título exacto
	Subcategory string     // título exacto
}

// RecordRepository define el puerto de persistencia para Record.
// Las lecturas devuelven RecordDetail con los títulos relacionados resueltos.
type RecordRepository interface {
	Create(record *entity.Record) error
	GetByID(id string) (*entity.RecordDetail, error)
	Filter(f RecordFilter) ([]*entity.RecordDetail, error)
	Update(record *entity.Record) error
	Delete(id string) error
}
