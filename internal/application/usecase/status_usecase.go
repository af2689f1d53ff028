package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/flujo-api/internal/application/dto"
	"github.com/jhoicas/flujo-api/internal/domain"
	"github.com/jhoicas/flujo-api/internal/domain/entity"
	"github.com/jhoicas/flujo-api/internal/domain/repository"
)

// StatusUseCase CRUD de estados de registro.
type StatusUseCase struct {
	repo repository.StatusRepository
}

// NewStatusUseCase construye el caso de uso con el puerto de persistencia.
func NewStatusUseCase(repo repository.StatusRepository) *StatusUseCase {
	return &StatusUseCase{repo: repo}
}

// Create crea un estado. Devuelve domain.ErrDuplicate si el título ya existe.
func (uc *StatusUseCase) Create(in dto.CreateTitleRequest) (*dto.TitleResponse, error) {
	if in.Title == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	status := &entity.Status{
		ID:        uuid.New().String(),
		Title:     in.Title,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(status); err != nil {
		return nil, err
	}
	return &dto.TitleResponse{ID: status.ID, Title: status.Title}, nil
}

// GetByID obtiene un estado por ID.
func (uc *StatusUseCase) GetByID(id string) (*dto.TitleResponse, error) {
	status, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if status == nil {
		return nil, domain.NewNotFound("Status", id)
	}
	return &dto.TitleResponse{ID: status.ID, Title: status.Title}, nil
}

// List lista todos los estados.
func (uc *StatusUseCase) List() ([]dto.TitleResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.TitleResponse, 0, len(list))
	for _, s := range list {
		items = append(items, dto.TitleResponse{ID: s.ID, Title: s.Title})
	}
	return items, nil
}

// Update cambia el título de un estado.
func (uc *StatusUseCase) Update(id string, in dto.CreateTitleRequest) (*dto.TitleResponse, error) {
	if in.Title == "" {
		return nil, domain.ErrInvalidInput
	}
	status, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if status == nil {
		return nil, domain.NewNotFound("Status", id)
	}
	status.Title = in.Title
	status.UpdatedAt = time.Now()
	if err := uc.repo.Update(status); err != nil {
		return nil, err
	}
	return &dto.TitleResponse{ID: status.ID, Title: status.Title}, nil
}

// Delete elimina un estado. Las FKs en cascada eliminan sus registros.
func (uc *StatusUseCase) Delete(id string) error {
	status, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if status == nil {
		return domain.NewNotFound("Status", id)
	}
	return uc.repo.Delete(id)
}
