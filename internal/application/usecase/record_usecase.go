package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/flujo-api/internal/application/dto"
	"github.com/jhoicas/flujo-api/internal/domain"
	"github.com/jhoicas/flujo-api/internal/domain/entity"
	"github.com/jhoicas/flujo-api/internal/domain/repository"
)

// RecordUseCase casos de uso de registros: validación de jerarquía, creación,
// actualización parcial, borrado y consulta filtrada.
type RecordUseCase struct {
	records       repository.RecordRepository
	statuses      repository.StatusRepository
	types         repository.TypeRepository
	categories    repository.CategoryRepository
	subcategories repository.SubcategoryRepository
}

// NewRecordUseCase construye el caso de uso con los puertos de persistencia.
func NewRecordUseCase(
	records repository.RecordRepository,
	statuses repository.StatusRepository,
	types repository.TypeRepository,
	categories repository.CategoryRepository,
	subcategories repository.SubcategoryRepository,
) *RecordUseCase {
	return &RecordUseCase{
		records:       records,
		statuses:      statuses,
		types:         types,
		categories:    categories,
		subcategories: subcategories,
	}
}

// resolved entidades relacionadas de un registro, ya resueltas y validadas.
type resolved struct {
	status      *entity.Status
	typ         *entity.Type
	category    *entity.Category
	subcategory *entity.Subcategory
}

// checkHierarchy aplica las dos invariantes de jerarquía en orden fijo:
// primero categoría/tipo, después subcategoría/categoría. Los errores de
// resolución de títulos ya se reportaron antes de llegar aquí.
func checkHierarchy(r resolved) error {
	if r.category.TypeID != r.typ.ID {
		return domain.ErrCategoryTypeMismatch
	}
	if r.subcategory.CategoryID != r.category.ID {
		return domain.ErrSubcategoryCategoryMismatch
	}
	return nil
}

// Create resuelve los cuatro títulos (status, type, category, subcategory),
// valida la jerarquía y persiste un registro nuevo con ID generado y la fecha
// del día. La fecha no vuelve a modificarse nunca.
func (uc *RecordUseCase) Create(in dto.CreateRecordRequest) (*dto.RecordResponse, error) {
	status, err := uc.statuses.GetByTitle(in.Status)
	if err != nil {
		return nil, err
	}
	typ, err := uc.types.GetByTitle(in.Type)
	if err != nil {
		return nil, err
	}
	category, err := uc.categories.GetByTitle(in.Category)
	if err != nil {
		return nil, err
	}
	subcategory, err := uc.subcategories.GetByTitle(in.Subcategory)
	if err != nil {
		return nil, err
	}
	r := resolved{status: status, typ: typ, category: category, subcategory: subcategory}
	if err := checkHierarchy(r); err != nil {
		return nil, err
	}

	comment := ""
	if in.Comment != nil {
		comment = *in.Comment
	}
	now := time.Now()
	record := &entity.Record{
		ID:            uuid.New().String(),
		Date:          today(now),
		StatusID:      status.ID,
		TypeID:        typ.ID,
		CategoryID:    category.ID,
		SubcategoryID: subcategory.ID,
		Amount:        in.Amount,
		Comment:       comment,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.records.Create(record); err != nil {
		return nil, err
	}
	out := dto.ToRecordResponse(detailOf(record, r))
	return &out, nil
}

// Update actualiza un registro. Un campo ausente en la entrada conserva el
// valor actual del registro (no un valor por defecto). La resolución de
// títulos y las validaciones de jerarquía son las mismas que en Create;
// la fecha del registro no se toca.
func (uc *RecordUseCase) Update(id string, in dto.UpdateRecordRequest) (*dto.RecordResponse, error) {
	current, err := uc.records.GetByID(id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.NewNotFound("Record", id)
	}

	r, err := uc.resolveForUpdate(current, in)
	if err != nil {
		return nil, err
	}
	if err := checkHierarchy(r); err != nil {
		return nil, err
	}

	record := current.Record
	record.StatusID = r.status.ID
	record.TypeID = r.typ.ID
	record.CategoryID = r.category.ID
	record.SubcategoryID = r.subcategory.ID
	if in.Amount != nil {
		record.Amount = *in.Amount
	}
	if in.Comment != nil {
		record.Comment = *in.Comment
	}
	record.UpdatedAt = time.Now()
	if err := uc.records.Update(&record); err != nil {
		return nil, err
	}
	out := dto.ToRecordResponse(detailOf(&record, r))
	return &out, nil
}

// resolveForUpdate resuelve cada entidad relacionada: por título si vino en la
// entrada, por el ID ya presente en el registro si no. El orden de resolución
// (status, type, category, subcategory) fija el orden de los errores NotFound.
func (uc *RecordUseCase) resolveForUpdate(current *entity.RecordDetail, in dto.UpdateRecordRequest) (resolved, error) {
	var r resolved
	var err error

	if in.Status != nil {
		r.status, err = uc.statuses.GetByTitle(*in.Status)
	} else {
		r.status, err = currentRef(uc.statuses.GetByID, current.StatusID, "Status")
	}
	if err != nil {
		return r, err
	}
	if in.Type != nil {
		r.typ, err = uc.types.GetByTitle(*in.Type)
	} else {
		r.typ, err = currentRef(uc.types.GetByID, current.TypeID, "Type")
	}
	if err != nil {
		return r, err
	}
	if in.Category != nil {
		r.category, err = uc.categories.GetByTitle(*in.Category)
	} else {
		r.category, err = currentRef(uc.categories.GetByID, current.CategoryID, "Category")
	}
	if err != nil {
		return r, err
	}
	if in.Subcategory != nil {
		r.subcategory, err = uc.subcategories.GetByTitle(*in.Subcategory)
	} else {
		r.subcategory, err = currentRef(uc.subcategories.GetByID, current.SubcategoryID, "Subcategory")
	}
	return r, err
}

// currentRef carga una referencia ya asignada al registro. Con las FKs de la
// base no debería faltar nunca; si falta se reporta como NotFound.
func currentRef[T any](get func(string) (*T, error), id, kind string) (*T, error) {
	e, err := get(id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.NewNotFound(kind, id)
	}
	return e, nil
}

// Delete elimina un registro existente y no hace nada más.
func (uc *RecordUseCase) Delete(id string) error {
	current, err := uc.records.GetByID(id)
	if err != nil {
		return err
	}
	if current == nil {
		return domain.NewNotFound("Record", id)
	}
	return uc.records.Delete(id)
}

// GetByID devuelve la vista de un registro.
func (uc *RecordUseCase) GetByID(id string) (*dto.RecordResponse, error) {
	detail, err := uc.records.GetByID(id)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, domain.NewNotFound("Record", id)
	}
	out := dto.ToRecordResponse(detail)
	return &out, nil
}

// Filter devuelve los registros que cumplen todos los criterios presentes.
// DateTo por omisión es la fecha actual, calculada en cada llamada.
func (uc *RecordUseCase) Filter(in dto.FilterRecordsRequest) (*dto.RecordListResponse, error) {
	dateTo := today(time.Now())
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
		return nil, err
	}
	out := &dto.RecordListResponse{Records: make([]dto.RecordResponse, 0, len(details))}
	for _, d := range details {
		out.Records = append(out.Records, dto.ToRecordResponse(d))
	}
	return out, nil
}

// today trunca un instante a su fecha (medianoche UTC).
func today(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// detailOf arma la vista de lectura a partir del registro y sus entidades resueltas.
func detailOf(record *entity.Record, r resolved) *entity.RecordDetail {
	return &entity.RecordDetail{
		Record:           *record,
		StatusTitle:      r.status.Title,
		TypeTitle:        r.typ.Title,
		CategoryTitle:    r.category.Title,
		SubcategoryTitle: r.subcategory.Title,
	}
}
