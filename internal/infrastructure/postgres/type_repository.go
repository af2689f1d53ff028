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

var _ repository.TypeRepository = (*TypeRepo)(nil)

// TypeRepo implementación del puerto TypeRepository sobre PostgreSQL.
type TypeRepo struct {
	q Querier
}

// NewTypeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTypeRepository(q Querier) *TypeRepo {
	return &TypeRepo{q: q}
}

// Create persiste un tipo nuevo. Título duplicado → domain.ErrDuplicate.
func (r *TypeRepo) Create(t *entity.Type) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO types (id, title, created_at, updated_at) VALUES ($1, $2, $3, $4)`,
		t.ID, t.Title, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert type: %w", err)
	}
	return nil
}

// GetByID obtiene un tipo por ID; (nil, nil) si no existe.
func (r *TypeRepo) GetByID(id string) (*entity.Type, error) {
	var t entity.Type
	err := r.q.QueryRow(context.Background(),
		`SELECT id, title, created_at, updated_at FROM types WHERE id = $1`, id,
	).Scan(&t.ID, &t.Title, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get type: %w", err)
	}
	return &t, nil
}

// GetByTitle resuelve un tipo por título exacto; domain.NotFoundError si no existe.
func (r *TypeRepo) GetByTitle(title string) (*entity.Type, error) {
	var t entity.Type
	err := r.q.QueryRow(context.Background(),
		`SELECT id, title, created_at, updated_at FROM types WHERE title = $1`, title,
	).Scan(&t.ID, &t.Title, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFound("Type", title)
		}
		return nil, fmt.Errorf("get type by title: %w", err)
	}
	return &t, nil
}

// List lista todos los tipos en orden de inserción.
func (r *TypeRepo) List() ([]*entity.Type, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, title, created_at, updated_at FROM types ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list types: %w", err)
	}
	defer rows.Close()
	var list []*entity.Type
	for rows.Next() {
		var t entity.Type
		if err := rows.Scan(&t.ID, &t.Title, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan type: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// Update actualiza el título de un tipo.
func (r *TypeRepo) Update(t *entity.Type) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE types SET title = $2, updated_at = $3 WHERE id = $1`,
		t.ID, t.Title, t.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update type: %w", err)
	}
	return nil
}

// Delete elimina un tipo; arrastra categorías, subcategorías y registros.
func (r *TypeRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM types WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete type: %w", err)
	}
	return nil
}
