package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/flujo-api/internal/application/dto"
	"github.com/jhoicas/flujo-api/internal/domain"
	"github.com/jhoicas/flujo-api/internal/domain/entity"
	"github.com/jhoicas/flujo-api/internal/domain/repository"
)

// CategoryUseCase CRUD de categorías. Cada categoría referencia un Type existente.
type CategoryUseCase struct {
	repo  repository.CategoryRepository
	types repository.TypeRepository
}

// NewCategoryUseCase construye el caso de uso con los puertos de persistencia.
func NewCategoryUseCase(repo repository.CategoryRepository, types repository.TypeRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo, types: types}
}

// Create crea una categoría; valida que el tipo referenciado exista.
func (uc *CategoryUseCase) Create(in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if in.Title == "" || in.TypeID == "" {
		return nil, domain.ErrInvalidInput
	}
	t, err := uc.types.GetByID(in.TypeID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.NewNotFound("Type", in.TypeID)
	}
	now := time.Now()
	category := &entity.Category{
		ID:        uuid.New().String(),
		Title:     in.Title,
		TypeID:    in.TypeID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// GetByID obtiene una categoría por ID.
func (uc *CategoryUseCase) GetByID(id string) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.NewNotFound("Category", id)
	}
	return toCategoryResponse(category), nil
}

// List lista todas las categorías.
func (uc *CategoryUseCase) List() ([]dto.CategoryResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoryResponse(c))
	}
	return items, nil
}

// ListByType lista las categorías de un tipo (dropdown dependiente).
func (uc *CategoryUseCase) ListByType(typeID string, limit int) ([]dto.CategoryResponse, error) {
	list, err := uc.repo.ListByType(typeID, limit)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoryResponse(c))
	}
	return items, nil
}

// Update cambia título y tipo de una categoría; valida el tipo nuevo.
func (uc *CategoryUseCase) Update(id string, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if in.Title == "" || in.TypeID == "" {
		return nil, domain.ErrInvalidInput
	}
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.NewNotFound("Category", id)
	}
	t, err := uc.types.GetByID(in.TypeID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.NewNotFound("Type", in.TypeID)
	}
	category.Title = in.Title
	category.TypeID = in.TypeID
	category.UpdatedAt = time.Now()
	if err := uc.repo.Update(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// Delete elimina una categoría. Arrastra en cascada subcategorías y registros.
func (uc *CategoryUseCase) Delete(id string) error {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.NewNotFound("Category", id)
	}
	return uc.repo.Delete(id)
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{ID: c.ID, Title: c.Title, TypeID: c.TypeID}
}
