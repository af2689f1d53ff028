package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/flujo-api/internal/application/dto"
	"github.com/jhoicas/flujo-api/internal/domain"
	"github.com/jhoicas/flujo-api/internal/domain/entity"
	"github.com/jhoicas/flujo-api/internal/domain/repository"
)

// SubcategoryUseCase CRUD de subcategorías. Cada subcategoría referencia una
// Category existente.
type SubcategoryUseCase struct {
	repo       repository.SubcategoryRepository
	categories repository.CategoryRepository
}

// NewSubcategoryUseCase construye el caso de uso con los puertos de persistencia.
func NewSubcategoryUseCase(repo repository.SubcategoryRepository, categories repository.CategoryRepository) *SubcategoryUseCase {
	return &SubcategoryUseCase{repo: repo, categories: categories}
}

// Create crea una subcategoría; valida que la categoría referenciada exista.
func (uc *SubcategoryUseCase) Create(in dto.CreateSubcategoryRequest) (*dto.SubcategoryResponse, error) {
	if in.Title == "" || in.CategoryID == "" {
		return nil, domain.ErrInvalidInput
	}
	category, err := uc.categories.GetByID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.NewNotFound("Category", in.CategoryID)
	}
	now := time.Now()
	subcategory := &entity.Subcategory{
		ID:         uuid.New().String(),
		Title:      in.Title,
		CategoryID: in.CategoryID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(subcategory); err != nil {
		return nil, err
	}
	return toSubcategoryResponse(subcategory), nil
}

// GetByID obtiene una subcategoría por ID.
func (uc *SubcategoryUseCase) GetByID(id string) (*dto.SubcategoryResponse, error) {
	subcategory, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if subcategory == nil {
		return nil, domain.NewNotFound("Subcategory", id)
	}
	return toSubcategoryResponse(subcategory), nil
}

// List lista todas las subcategorías.
func (uc *SubcategoryUseCase) List() ([]dto.SubcategoryResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.SubcategoryResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSubcategoryResponse(s))
	}
	return items, nil
}

// ListByCategory lista las subcategorías de una categoría (dropdown dependiente).
func (uc *SubcategoryUseCase) ListByCategory(categoryID string, limit int) ([]dto.SubcategoryResponse, error) {
	list, err := uc.repo.ListByCategory(categoryID, limit)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SubcategoryResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSubcategoryResponse(s))
	}
	return items, nil
}

// Update cambia título y categoría de una subcategoría; valida la categoría nueva.
func (uc *SubcategoryUseCase) Update(id string, in dto.CreateSubcategoryRequest) (*dto.SubcategoryResponse, error) {
	if in.Title == "" || in.CategoryID == "" {
		return nil, domain.ErrInvalidInput
	}
	subcategory, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if subcategory == nil {
		return nil, domain.NewNotFound("Subcategory", id)
	}
	category, err := uc.categories.GetByID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.NewNotFound("Category", in.CategoryID)
	}
	subcategory.Title = in.Title
	subcategory.CategoryID = in.CategoryID
	subcategory.UpdatedAt = time.Now()
	if err := uc.repo.Update(subcategory); err != nil {
		return nil, err
	}
	return toSubcategoryResponse(subcategory), nil
}

// Delete elimina una subcategoría. Arrastra en cascada sus registros.
func (uc *SubcategoryUseCase) Delete(id string) error {
	subcategory, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if subcategory == nil {
		return domain.NewNotFound("Subcategory", id)
	}
	return uc.repo.Delete(id)
}

func toSubcategoryResponse(s *entity.Subcategory) *dto.SubcategoryResponse {
	return &dto.SubcategoryResponse{ID: s.ID, Title: s.Title, CategoryID: s.CategoryID}
}
