package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/flujo-api/internal/application/dto"
	"github.com/jhoicas/flujo-api/internal/application/usecase"
	"github.com/jhoicas/flujo-api/internal/domain"
	"github.com/jhoicas/flujo-api/internal/domain/entity"
	"github.com/jhoicas/flujo-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// seedStore construye un almacén en memoria con una taxonomía mínima:
//
//	Income  -> Sales     -> Products
//	Expense -> Marketing -> Ads
//
// y los estados Business y Personal.
func seedStore(t *testing.T) *memory.Store {
	t.Helper()
	s := memory.NewStore()
	now := time.Now()

	for _, st := range []entity.Status{
		{ID: "st-business", Title: "Business", CreatedAt: now, UpdatedAt: now},
		{ID: "st-personal", Title: "Personal", CreatedAt: now, UpdatedAt: now},
	} {
		st := st
		require.NoError(t, s.Statuses().Create(&st))
	}
	for _, ty := range []entity.Type{
		{ID: "ty-income", Title: "Income", CreatedAt: now, UpdatedAt: now},
		{ID: "ty-expense", Title: "Expense", CreatedAt: now, UpdatedAt: now},
	} {
		ty := ty
		require.NoError(t, s.Types().Create(&ty))
	}
	for _, ca := range []entity.Category{
		{ID: "ca-sales", Title: "Sales", TypeID: "ty-income", CreatedAt: now, UpdatedAt: now},
		{ID: "ca-marketing", Title: "Marketing", TypeID: "ty-expense", CreatedAt: now, UpdatedAt: now},
	} {
		ca := ca
		require.NoError(t, s.Categories().Create(&ca))
	}
	for _, su := range []entity.Subcategory{
		{ID: "su-products", Title: "Products", CategoryID: "ca-sales", CreatedAt: now, UpdatedAt: now},
		{ID: "su-ads", Title: "Ads", CategoryID: "ca-marketing", CreatedAt: now, UpdatedAt: now},
	} {
		su := su
		require.NoError(t, s.Subcategories().Create(&su))
	}
	return s
}

func recordUC(s *memory.Store) *usecase.RecordUseCase {
	return usecase.NewRecordUseCase(s.Records(), s.Statuses(), s.Types(), s.Categories(), s.Subcategories())
}

func strPtr(v string) *string { return &v }
func i64Ptr(v int64) *int64   { return &v }

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

// Caso feliz: jerarquía coherente → registro creado con la fecha de hoy.
func TestRecordCreate_JerarquiaCoherente(t *testing.T) {
	s := seedStore(t)
	uc := recordUC(s)

	out, err := uc.Create(dto.CreateRecordRequest{
		Status:      "Business",
		Type:        "Expense",
		Category:    "Marketing",
		Subcategory: "Ads",
		Amount:      1500,
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.NotEmpty(t, out.ID)
	assert.Equal(t, time.Now().UTC().Format(dto.DateLayout), out.Date,
		"la fecha del registro debe ser la del día de creación")
	assert.Equal(t, "Business", out.Status)
	assert.Equal(t, "Expense", out.Type)
	assert.Equal(t, "Marketing", out.Category)
	assert.Equal(t, "Ads", out.Subcategory)
	assert.Equal(t, int64(1500), out.Amount)
	assert.Equal(t, "", out.Comment, "comment ausente debe quedar vacío")
}

// La categoría no pertenece al tipo indicado → error de jerarquía, nada se persiste.
func TestRecordCreate_CategoriaDeOtroTipo(t *testing.T) {
	s := seedStore(t)
	uc := recordUC(s)

	_, err := uc.Create(dto.CreateRecordRequest{
		Status:      "Business",
		Type:        "Income",
		Category:    "Marketing", // pertenece a Expense
		Subcategory: "Ads",
		Amount:      100,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCategoryTypeMismatch)
	assert.ErrorIs(t, err, domain.ErrHierarchyMismatch)

	list, err := uc.Filter(dto.FilterRecordsRequest{})
	require.NoError(t, err)
	assert.Empty(t, list.Records, "un create rechazado no debe dejar registros")
}

// La subcategoría no pertenece a la categoría indicada → error de jerarquía.
func TestRecordCreate_SubcategoriaDeOtraCategoria(t *testing.T) {
	s := seedStore(t)
	uc := recordUC(s)

	_, err := uc.Create(dto.CreateRecordRequest{
		Status:      "Business",
		Type:        "Expense",
		Category:    "Marketing",
		Subcategory: "Products", // pertenece a Sales
		Amount:      100,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSubcategoryCategoryMismatch)
}

// Con ambas violaciones presentes se reporta primero la de categoría/tipo.
func TestRecordCreate_OrdenDeErroresDeJerarquia(t *testing.T) {
	s := seedStore(t)
	uc := recordUC(s)

	_, err := uc.Create(dto.CreateRecordRequest{
		Status:      "Business",
		Type:        "Income",
		Category:    "Marketing", // mal: es de Expense
		Subcategory: "Products",  // mal: es de Sales
		Amount:      100,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCategoryTypeMismatch,
		"la validación categoría/tipo va antes que subcategoría/categoría")
}

// Los títulos se resuelven en orden fijo: status, type, category, subcategory.
// Con varios títulos inexistentes se reporta el primero de ese orden.
func TestRecordCreate_OrdenDeResolucionDeTitulos(t *testing.T) {
	s := seedStore(t)
	uc := recordUC(s)

	_, err := uc.Create(dto.CreateRecordRequest{
		Status:      "NoExiste",
		Type:        "TampocoExiste",
		Category:    "Marketing",
		Subcategory: "Ads",
		Amount:      100,
	})
	require.Error(t, err)

	var nf *domain.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "Status", nf.Kind, "status se resuelve primero")
	assert.Equal(t, "NoExiste", nf.Key)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update
// ──────────────────────────────────────────────────────────────────────────────

// PATCH de un solo campo: el resto de campos del registro (fecha incluida) se conserva.
func TestRecordUpdate_ParcialConservaCampos(t *testing.T) {
	s := seedStore(t)
	uc := recordUC(s)

	created, err := uc.Create(dto.CreateRecordRequest{
		Status:      "Business",
		Type:        "Expense",
		Category:    "Marketing",
		Subcategory: "Ads",
		Amount:      1500,
		Comment:     strPtr("campaña inicial"),
	})
	require.NoError(t, err)

	out, err := uc.Update(created.ID, dto.UpdateRecordRequest{Amount: i64Ptr(2000)})
	require.NoError(t, err)

	assert.Equal(t, int64(2000), out.Amount)
	assert.Equal(t, created.Date, out.Date, "la fecha no se modifica nunca")
	assert.Equal(t, "Business", out.Status)
	assert.Equal(t, "Expense", out.Type)
	assert.Equal(t, "Marketing", out.Category)
	assert.Equal(t, "Ads", out.Subcategory)
	assert.Equal(t, "campaña inicial", out.Comment)
}

// Cambiar solo la categoría a una de otro tipo rompe la jerarquía y se rechaza
// sin modificar el registro.
func TestRecordUpdate_JerarquiaValidadaContraValoresActuales(t *testing.T) {
	s := seedStore(t)
	uc := recordUC(s)

	created, err := uc.Create(dto.CreateRecordRequest{
		Status:      "Business",
		Type:        "Expense",
		Category:    "Marketing",
		Subcategory: "Ads",
		Amount:      1500,
	})
	require.NoError(t, err)

	_, err = uc.Update(created.ID, dto.UpdateRecordRequest{Category: strPtr("Sales")})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrHierarchyMismatch)

	current, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Marketing", current.Category, "el registro no debe cambiar tras un update rechazado")
	assert.Equal(t, int64(1500), current.Amount)
}

// Cambio de rama completo (type + category + subcategory) en una sola operación.
func TestRecordUpdate_CambioDeRamaCompleto(t *testing.T) {
	s := seedStore(t)
	uc := recordUC(s)

	created, err := uc.Create(dto.CreateRecordRequest{
		Status:      "Business",
		Type:        "Expense",
		Category:    "Marketing",
		Subcategory: "Ads",
		Amount:      1500,
	})
	require.NoError(t, err)

	out, err := uc.Update(created.ID, dto.UpdateRecordRequest{
		Type:        strPtr("Income"),
		Category:    strPtr("Sales"),
		Subcategory: strPtr("Products"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Income", out.Type)
	assert.Equal(t, "Sales", out.Category)
	assert.Equal(t, "Products", out.Subcategory)
	assert.Equal(t, "Business", out.Status, "status no enviado se conserva")
}

// Update sobre un ID inexistente → NotFound del propio registro.
func TestRecordUpdate_RegistroInexistente(t *testing.T) {
	s := seedStore(t)
	uc := recordUC(s)

	_, err := uc.Update("no-existe", dto.UpdateRecordRequest{Amount: i64Ptr(10)})
	require.Error(t, err)

	var nf *domain.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "Record", nf.Kind)
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete / GetByID
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordDelete_EliminaYLuego404(t *testing.T) {
	s := seedStore(t)
	uc := recordUC(s)

	created, err := uc.Create(dto.CreateRecordRequest{
		Status:      "Business",
		Type:        "Income",
		Category:    "Sales",
		Subcategory: "Products",
		Amount:      300,
	})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(created.ID))

	_, err = uc.GetByID(created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = uc.Delete(created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound, "borrar dos veces debe fallar la segunda")
}

// ──────────────────────────────────────────────────────────────────────────────
// Filter
// ──────────────────────────────────────────────────────────────────────────────

// insertRecord inserta un registro directamente en el almacén, con fecha arbitraria.
func insertRecord(t *testing.T, s *memory.Store, id string, date time.Time, statusID, typeID, categoryID, subcategoryID string, amount int64) {
	t.Helper()
	now := time.Now()
	require.NoError(t, s.Records().Create(&entity.Record{
		ID:            id,
		Date:          date,
		StatusID:      statusID,
		TypeID:        typeID,
		CategoryID:    categoryID,
		SubcategoryID: subcategoryID,
		Amount:        amount,
		CreatedAt:     now,
		UpdatedAt:     now,
	}))
}

func day(s string) time.Time {
	t, err := time.Parse(dto.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestRecordFilter_RangoDeFechasInclusivo(t *testing.T) {
	s := seedStore(t)
	uc := recordUC(s)

	insertRecord(t, s, "r1", day("2026-01-10"), "st-business", "ty-expense", "ca-marketing", "su-ads", 100)
	insertRecord(t, s, "r2", day("2026-01-15"), "st-business", "ty-expense", "ca-marketing", "su-ads", 200)
	insertRecord(t, s, "r3", day("2026-01-20"), "st-business", "ty-expense", "ca-marketing", "su-ads", 300)

	from := day("2026-01-15")
	to := day("2026-01-20")
	out, err := uc.Filter(dto.FilterRecordsRequest{DateFrom: &from, DateTo: &to})
	require.NoError(t, err)

	require.Len(t, out.Records, 2, "ambos extremos del rango son inclusivos")
	assert.Equal(t, "r2", out.Records[0].ID)
	assert.Equal(t, "r3", out.Records[1].ID)
}

// Sin date_to el límite superior es la fecha actual, calculada en cada llamada:
// los registros con fecha futura quedan fuera.
func TestRecordFilter_DateToPorDefectoEsHoy(t *testing.T) {
	s := seedStore(t)
	uc := recordUC(s)

	today := time.Now().UTC().Truncate(24 * time.Hour)
	insertRecord(t, s, "hoy", today, "st-business", "ty-expense", "ca-marketing", "su-ads", 100)
	insertRecord(t, s, "futuro", today.AddDate(0, 0, 7), "st-business", "ty-expense", "ca-marketing", "su-ads", 200)

	out, err := uc.Filter(dto.FilterRecordsRequest{})
	require.NoError(t, err)

	require.Len(t, out.Records, 1)
	assert.Equal(t, "hoy", out.Records[0].ID)
}

func TestRecordFilter_PorTitulosExactos(t *testing.T) {
	s := seedStore(t)
	uc := recordUC(s)

	d := day("2026-01-10")
	insertRecord(t, s, "gasto", d, "st-business", "ty-expense", "ca-marketing", "su-ads", 100)
	insertRecord(t, s, "ingreso", d, "st-personal", "ty-income", "ca-sales", "su-products", 900)

	out, err := uc.Filter(dto.FilterRecordsRequest{Type: "Income"})
	require.NoError(t, err)
	require.Len(t, out.Records, 1)
	assert.Equal(t, "ingreso", out.Records[0].ID)
	assert.Equal(t, "Sales", out.Records[0].Category)

	// Combinación de criterios: todos deben cumplirse a la vez.
	out, err = uc.Filter(dto.FilterRecordsRequest{Type: "Income", Status: "Business"})
	require.NoError(t, err)
	assert.Empty(t, out.Records)

	// La igualdad de títulos es exacta, sin coincidencias parciales.
	out, err = uc.Filter(dto.FilterRecordsRequest{Category: "Market"})
	require.NoError(t, err)
	assert.Empty(t, out.Records)
}

// El filtrado es una consulta pura: repetirla no altera el resultado.
func TestRecordFilter_ConsultaRepetibleSinEfectos(t *testing.T) {
	s := seedStore(t)
	uc := recordUC(s)

	d := day("2026-01-10")
	insertRecord(t, s, "r1", d, "st-business", "ty-expense", "ca-marketing", "su-ads", 100)

	first, err := uc.Filter(dto.FilterRecordsRequest{Category: "Marketing"})
	require.NoError(t, err)
	second, err := uc.Filter(dto.FilterRecordsRequest{Category: "Marketing"})
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
