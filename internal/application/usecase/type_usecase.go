package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/flujo-api/internal/application/dto"
	"github.com/jhoicas/flujo-api/internal/domain"
	"github.com/jhoicas/flujo-api/internal/domain/entity"
	"github.com/jhoicas/flujo-api/internal/domain/repository"
)

// TypeUseCase CRUD de tipos de operación.
type TypeUseCase struct {
	repo repository.TypeRepository
}

// NewTypeUseCase construye el caso de uso con el puerto de persistencia.
func NewTypeUseCase(repo repository.TypeRepository) *TypeUseCase {
	return &TypeUseCase{repo: repo}
}

// Create crea un tipo. Devuelve domain.ErrDuplicate si el título ya existe.
func (uc *TypeUseCase) Create(in dto.CreateTitleRequest) (*dto.TitleResponse, error) {
	if in.Title == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	t := &entity.Type{
		ID:        uuid.New().String(),
		Title:     in.Title,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(t); err != nil {
		return nil, err
	}
	return &dto.TitleResponse{ID: t.ID, Title: t.Title}, nil
}

// GetByID obtiene un tipo por ID.
func (uc *TypeUseCase) GetByID(id string) (*dto.TitleResponse, error) {
	t, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.NewNotFound("Type", id)
	}
	return &dto.TitleResponse{ID: t.ID, Title: t.Title}, nil
}

// List lista todos los tipos.
func (uc *TypeUseCase) List() ([]dto.TitleResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.TitleResponse, 0, len(list))
	for _, t := range list {
		items = append(items, dto.TitleResponse{ID: t.ID, Title: t.Title})
	}
	return items, nil
}

// Update cambia el título de un tipo.
func (uc *TypeUseCase) Update(id string, in dto.CreateTitleRequest) (*dto.TitleResponse, error) {
	if in.Title == "" {
		return nil, domain.ErrInvalidInput
	}
	t, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.NewNotFound("Type", id)
	}
	t.Title = in.Title
	t.UpdatedAt = time.Now()
	if err := uc.repo.Update(t); err != nil {
		return nil, err
	}
	return &dto.TitleResponse{ID: t.ID, Title: t.Title}, nil
}

// Delete elimina un tipo. Arrastra en cascada categorías, subcategorías y registros.
func (uc *TypeUseCase) Delete(id string) error {
	t, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if t == nil {
		return domain.NewNotFound("Type", id)
	}
	return uc.repo.Delete(id)
}
