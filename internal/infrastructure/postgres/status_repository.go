package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/flujo-api/internal/domain"
	"github.com/jhoicas/flujo-api/internal/domain/entity"
	"github.com/jhoicas/flujo-api/internal/domain/repository"
)

var _ repository.StatusRepository = (*StatusRepo)(nil)

// StatusRepo implementación del puerto StatusRepository sobre PostgreSQL.
type StatusRepo struct {
	q Querier
}

// NewStatusRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStatusRepository(q Querier) *StatusRepo {
	return &StatusRepo{q: q}
}

// Create persiste un estado nuevo. Título duplicado → domain.ErrDuplicate.
func (r *StatusRepo) Create(status *entity.Status) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO statuses (id, title, created_at, updated_at) VALUES ($1, $2, $3, $4)`,
		status.ID, status.Title, status.CreatedAt, status.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert status: %w", err)
	}
	return nil
}

// GetByID obtiene un estado por ID; (nil, nil) si no existe.
func (r *StatusRepo) GetByID(id string) (*entity.Status, error) {
	var s entity.Status
	err := r.q.QueryRow(context.Background(),
		`SELECT id, title, created_at, updated_at FROM statuses WHERE id = $1`, id,
	).Scan(&s.ID, &s.Title, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get status: %w", err)
	}
	return &s, nil
}

// GetByTitle resuelve un estado por título exacto; domain.NotFoundError si no existe.
func (r *StatusRepo) GetByTitle(title string) (*entity.Status, error) {
	var s entity.Status
	err := r.q.QueryRow(context.Background(),
		`SELECT id, title, created_at, updated_at FROM statuses WHERE title = $1`, title,
	).Scan(&s.ID, &s.Title, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFound("Status", title)
		}
		return nil, fmt.Errorf("get status by title: %w", err)
	}
	return &s, nil
}

// List lista todos los estados en orden de inserción.
func (r *StatusRepo) List() ([]*entity.Status, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, title, created_at, updated_at FROM statuses ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list statuses: %w", err)
	}
	defer rows.Close()
	var list []*entity.Status
	for rows.Next() {
		var s entity.Status
		if err := rows.Scan(&s.ID, &s.Title, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan status: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Update actualiza el título de un estado.
func (r *StatusRepo) Update(status *entity.Status) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE statuses SET title = $2, updated_at = $3 WHERE id = $1`,
		status.ID, status.Title, status.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update status: %w", err)
	}
	return nil
}

// Delete elimina un estado; las FKs en cascada eliminan sus registros.
func (r *StatusRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM statuses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete status: %w", err)
	}
	return nil
}
