package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/flujo-api/internal/application/dto"
	"github.com/jhoicas/flujo-api/internal/application/usecase"
	"github.com/jhoicas/flujo-api/internal/domain"
	"github.com/jhoicas/flujo-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Status / Type (entidades de solo título)
// ──────────────────────────────────────────────────────────────────────────────

func TestStatusCreate_TituloDuplicado(t *testing.T) {
	s := memory.NewStore()
	uc := usecase.NewStatusUseCase(s.Statuses())

	_, err := uc.Create(dto.CreateTitleRequest{Title: "Business"})
	require.NoError(t, err)

	_, err = uc.Create(dto.CreateTitleRequest{Title: "Business"})
	assert.ErrorIs(t, err, domain.ErrDuplicate, "el título es único por entidad")
}

func TestStatusCreate_TituloVacio(t *testing.T) {
	s := memory.NewStore()
	uc := usecase.NewStatusUseCase(s.Statuses())

	_, err := uc.Create(dto.CreateTitleRequest{Title: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTypeUpdate_Inexistente(t *testing.T) {
	s := memory.NewStore()
	uc := usecase.NewTypeUseCase(s.Types())

	_, err := uc.Update("no-existe", dto.CreateTitleRequest{Title: "Income"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStatusCRUD_CicloCompleto(t *testing.T) {
	s := memory.NewStore()
	uc := usecase.NewStatusUseCase(s.Statuses())

	created, err := uc.Create(dto.CreateTitleRequest{Title: "Tax"})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Tax", got.Title)

	updated, err := uc.Update(created.ID, dto.CreateTitleRequest{Title: "Taxes"})
	require.NoError(t, err)
	assert.Equal(t, "Taxes", updated.Title)

	list, err := uc.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Taxes", list[0].Title)

	require.NoError(t, uc.Delete(created.ID))
	_, err = uc.GetByID(created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Category / Subcategory (validación del padre)
// ──────────────────────────────────────────────────────────────────────────────

func TestCategoryCreate_TipoInexistente(t *testing.T) {
	s := memory.NewStore()
	uc := usecase.NewCategoryUseCase(s.Categories(), s.Types())

	_, err := uc.Create(dto.CreateCategoryRequest{Title: "Marketing", TypeID: "no-existe"})
	require.Error(t, err)

	var nf *domain.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "Type", nf.Kind, "el tipo padre debe existir antes de crear la categoría")
}

func TestCategoryCreate_ConTipoValido(t *testing.T) {
	s := seedStore(t)
	uc := usecase.NewCategoryUseCase(s.Categories(), s.Types())

	out, err := uc.Create(dto.CreateCategoryRequest{Title: "Payroll", TypeID: "ty-expense"})
	require.NoError(t, err)
	assert.Equal(t, "Payroll", out.Title)
	assert.Equal(t, "ty-expense", out.TypeID)
}

func TestCategoryUpdate_ValidaTipoNuevo(t *testing.T) {
	s := seedStore(t)
	uc := usecase.NewCategoryUseCase(s.Categories(), s.Types())

	_, err := uc.Update("ca-marketing", dto.CreateCategoryRequest{Title: "Marketing", TypeID: "no-existe"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSubcategoryCreate_CategoriaInexistente(t *testing.T) {
	s := memory.NewStore()
	uc := usecase.NewSubcategoryUseCase(s.Subcategories(), s.Categories())

	_, err := uc.Create(dto.CreateSubcategoryRequest{Title: "Ads", CategoryID: "no-existe"})
	require.Error(t, err)

	var nf *domain.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "Category", nf.Kind)
}

func TestSubcategoryCreate_ConCategoriaValida(t *testing.T) {
	s := seedStore(t)
	uc := usecase.NewSubcategoryUseCase(s.Subcategories(), s.Categories())

	out, err := uc.Create(dto.CreateSubcategoryRequest{Title: "Avito", CategoryID: "ca-marketing"})
	require.NoError(t, err)
	assert.Equal(t, "Avito", out.Title)
	assert.Equal(t, "ca-marketing", out.CategoryID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Dropdowns dependientes (panel de administración)
// ──────────────────────────────────────────────────────────────────────────────

func TestCategoryListByType_SoloLasDelTipo(t *testing.T) {
	s := seedStore(t)
	uc := usecase.NewCategoryUseCase(s.Categories(), s.Types())

	out, err := uc.ListByType("ty-expense", 100)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Marketing", out[0].Title)
}

func TestSubcategoryListByCategory_SoloLasDeLaCategoria(t *testing.T) {
	s := seedStore(t)
	uc := usecase.NewSubcategoryUseCase(s.Subcategories(), s.Categories())

	out, err := uc.ListByCategory("ca-sales", 100)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Products", out[0].Title)
}
