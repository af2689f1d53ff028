package repository

import "github.com/jhoicas/flujo-api/internal/domain/entity"

// SubcategoryRepository define el puerto de persistencia para Subcategory.
type SubcategoryRepository interface {
	Create(subcategory *entity.Subcategory) error
	GetByID(id string) (*entity.Subcategory, error)
	GetByTitle(title string) (*entity.Subcategory, error)
	List() ([]*entity.Subcategory, error)
	// ListByCategory lista las subcategorías de una categoría (dropdown dependiente del admin).
	ListByCategory(categoryID string, limit int) ([]*entity.Subcategory, error)
	Update(subcategory *entity.Subcategory) error
	Delete(id string) error
}
