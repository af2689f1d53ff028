package memory_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/flujo-api/internal/domain"
	"github.com/jhoicas/flujo-api/internal/domain/entity"
	"github.com/jhoicas/flujo-api/internal/domain/repository"
	"github.com/jhoicas/flujo-api/internal/infrastructure/memory"
)

// buildStore arma un almacén con la rama Expense -> Marketing -> Ads y un
// registro colgando de ella.
func buildStore(t *testing.T) *memory.Store {
	t.Helper()
	s := memory.NewStore()
	now := time.Now()

	require.NoError(t, s.Statuses().Create(&entity.Status{ID: "st", Title: "Business", CreatedAt: now, UpdatedAt: now}))
	require.NoError(t, s.Types().Create(&entity.Type{ID: "ty", Title: "Expense", CreatedAt: now, UpdatedAt: now}))
	require.NoError(t, s.Categories().Create(&entity.Category{ID: "ca", Title: "Marketing", TypeID: "ty", CreatedAt: now, UpdatedAt: now}))
	require.NoError(t, s.Subcategories().Create(&entity.Subcategory{ID: "su", Title: "Ads", CategoryID: "ca", CreatedAt: now, UpdatedAt: now}))
	require.NoError(t, s.Records().Create(&entity.Record{
		ID: "re", Date: now, StatusID: "st", TypeID: "ty", CategoryID: "ca", SubcategoryID: "su",
		Amount: 100, CreatedAt: now, UpdatedAt: now,
	}))
	return s
}

func countRecords(t *testing.T, s *memory.Store) int {
	t.Helper()
	out, err := s.Records().Filter(repository.RecordFilter{DateTo: time.Now().Add(24 * time.Hour)})
	require.NoError(t, err)
	return len(out)
}

// ──────────────────────────────────────────────────────────────────────────────
// Cascadas de borrado
// ──────────────────────────────────────────────────────────────────────────────

// Borrar el tipo arrastra categorías, subcategorías y registros de la rama.
func TestDeleteType_ArrastraTodaLaRama(t *testing.T) {
	s := buildStore(t)

	require.NoError(t, s.Types().Delete("ty"))

	ca, err := s.Categories().GetByID("ca")
	require.NoError(t, err)
	assert.Nil(t, ca, "la categoría del tipo borrado debe desaparecer")

	su, err := s.Subcategories().GetByID("su")
	require.NoError(t, err)
	assert.Nil(t, su, "la subcategoría de la rama debe desaparecer")

	assert.Zero(t, countRecords(t, s), "los registros de la rama deben desaparecer")
}

// Borrar la categoría arrastra subcategorías y registros, pero no el tipo.
func TestDeleteCategory_ArrastraSubcategoriasYRegistros(t *testing.T) {
	s := buildStore(t)

	require.NoError(t, s.Categories().Delete("ca"))

	su, err := s.Subcategories().GetByID("su")
	require.NoError(t, err)
	assert.Nil(t, su)
	assert.Zero(t, countRecords(t, s))

	ty, err := s.Types().GetByID("ty")
	require.NoError(t, err)
	assert.NotNil(t, ty, "el tipo padre sobrevive al borrado de la categoría")
}

// Borrar la subcategoría arrastra solo sus registros.
func TestDeleteSubcategory_ArrastraSoloSusRegistros(t *testing.T) {
	s := buildStore(t)

	require.NoError(t, s.Subcategories().Delete("su"))

	assert.Zero(t, countRecords(t, s))

	ca, err := s.Categories().GetByID("ca")
	require.NoError(t, err)
	assert.NotNil(t, ca)
}

// Borrar el estado arrastra los registros que lo referencian.
func TestDeleteStatus_ArrastraSusRegistros(t *testing.T) {
	s := buildStore(t)

	require.NoError(t, s.Statuses().Delete("st"))
	assert.Zero(t, countRecords(t, s))
}

// ──────────────────────────────────────────────────────────────────────────────
// Contratos de lectura
// ──────────────────────────────────────────────────────────────────────────────

// GetByID sin coincidencia devuelve (nil, nil); GetByTitle devuelve NotFound.
func TestLecturas_SemanticaDeAusencia(t *testing.T) {
	s := memory.NewStore()

	st, err := s.Statuses().GetByID("no-existe")
	require.NoError(t, err)
	assert.Nil(t, st)

	_, err = s.Statuses().GetByTitle("no-existe")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	var nf *domain.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "Status", nf.Kind)
	assert.Equal(t, "no-existe", nf.Key)
}

// El detalle de un registro resuelve los títulos de sus cuatro referencias.
func TestRecordGetByID_ResuelveTitulos(t *testing.T) {
	s := buildStore(t)

	d, err := s.Records().GetByID("re")
	require.NoError(t, err)
	require.NotNil(t, d)

	assert.Equal(t, "Business", d.StatusTitle)
	assert.Equal(t, "Expense", d.TypeTitle)
	assert.Equal(t, "Marketing", d.CategoryTitle)
	assert.Equal(t, "Ads", d.SubcategoryTitle)
}

// Los repos devuelven copias: mutar el resultado no toca el almacén.
func TestLecturas_DevuelvenCopias(t *testing.T) {
	s := buildStore(t)

	st, err := s.Statuses().GetByID("st")
	require.NoError(t, err)
	st.Title = "Mutado"

	again, err := s.Statuses().GetByID("st")
	require.NoError(t, err)
	assert.Equal(t, "Business", again.Title)
}

// ──────────────────────────────────────────────────────────────────────────────
// Filter
// ──────────────────────────────────────────────────────────────────────────────

func TestFilter_CriteriosCombinados(t *testing.T) {
	s := buildStore(t)
	now := time.Now()

	// Segunda rama: Income -> Sales -> Products con su propio registro.
	require.NoError(t, s.Types().Create(&entity.Type{ID: "ty2", Title: "Income", CreatedAt: now, UpdatedAt: now}))
	require.NoError(t, s.Categories().Create(&entity.Category{ID: "ca2", Title: "Sales", TypeID: "ty2", CreatedAt: now, UpdatedAt: now}))
	require.NoError(t, s.Subcategories().Create(&entity.Subcategory{ID: "su2", Title: "Products", CategoryID: "ca2", CreatedAt: now, UpdatedAt: now}))
	require.NoError(t, s.Records().Create(&entity.Record{
		ID: "re2", Date: now, StatusID: "st", TypeID: "ty2", CategoryID: "ca2", SubcategoryID: "su2",
		Amount: 900, CreatedAt: now, UpdatedAt: now,
	}))

	out, err := s.Records().Filter(repository.RecordFilter{
		DateTo:      now.Add(time.Hour),
		Type:        "Income",
		Category:    "Sales",
		Subcategory: "Products",
	})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "re2", out[0].ID)

	// Criterio de fecha: un date_to anterior a ambos registros no devuelve nada.
	out, err = s.Records().Filter(repository.RecordFilter{DateTo: now.Add(-time.Hour)})
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestFilter_DateFromInclusivo(t *testing.T) {
	s := buildStore(t)

	d, err := s.Records().GetByID("re")
	require.NoError(t, err)

	from := d.Date
	out, err := s.Records().Filter(repository.RecordFilter{DateFrom: &from, DateTo: d.Date})
	require.NoError(t, err)
	assert.Len(t, out, 1, "un registro en el límite exacto del rango entra en el resultado")
}
