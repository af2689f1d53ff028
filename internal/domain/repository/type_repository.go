package repository

import "github.com/jhoicas/flujo-api/internal/domain/entity"

// TypeRepository define el puerto de persistencia para Type.
// GetByTitle devuelve domain.NotFoundError si no hay filas; GetByID devuelve
// (nil, nil) si el ID no existe.
type TypeRepository interface {
	Create(t *entity.Type) error
	GetByID(id string) (*entity.Type, error)
	GetByTitle(title string) (*entity.Type, error)
	List() ([]*entity.Type, error)
	Update(t *entity.Type) error
	Delete(id string) error
}
