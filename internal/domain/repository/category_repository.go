package repository

import "github.com/jhoicas/flujo-api/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	GetByTitle(title string) (*entity.Category, error)
	List() ([]*entity.Category, error)
	// ListByType lista las categorías de un tipo (dropdown dependiente del admin).
	ListByType(typeID string, limit int) ([]*entity.Category, error)
	Update(category *entity.Category) error
	Delete(id string) error
}
