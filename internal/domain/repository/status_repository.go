package repository

import "github.com/jhoicas/flujo-api/internal/domain/entity"

// StatusRepository define el puerto de persistencia para Status.
// GetByTitle devuelve domain.NotFoundError si no hay filas.
type StatusRepository interface {
	Create(status *entity.Status) error
	GetByID(id string) (*entity.Status, error)
	GetByTitle(title string) (*entity.Status, error)
	List() ([]*entity.Status, error)
	Update(status *entity.Status) error
	Delete(id string) error
}
