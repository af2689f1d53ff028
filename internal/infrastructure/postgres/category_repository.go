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

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// Create persiste una categoría nueva. Título duplicado → domain.ErrDuplicate.
func (r *CategoryRepo) Create(category *entity.Category) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO categories (id, title, type_id, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)`,
		category.ID, category.Title, category.TypeID, category.CreatedAt, category.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría por ID; (nil, nil) si no existe.
func (r *CategoryRepo) GetByID(id string) (*entity.Category, error) {
	var c entity.Category
	err := r.q.QueryRow(context.Background(),
		`SELECT id, title, type_id, created_at, updated_at FROM categories WHERE id = $1`, id,
	).Scan(&c.ID, &c.Title, &c.TypeID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}

// GetByTitle resuelve una categoría por título exacto; domain.NotFoundError si no existe.
func (r *CategoryRepo) GetByTitle(title string) (*entity.Category, error) {
	var c entity.Category
	err := r.q.QueryRow(context.Background(),
		`SELECT id, title, type_id, created_at, updated_at FROM categories WHERE title = $1`, title,
	).Scan(&c.ID, &c.Title, &c.TypeID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFound("Category", title)
		}
		return nil, fmt.Errorf("get category by title: %w", err)
	}
	return &c, nil
}

// List lista todas las categorías en orden de inserción.
func (r *CategoryRepo) List() ([]*entity.Category, error) {
	return r.list(`SELECT id, title, type_id, created_at, updated_at FROM categories ORDER BY created_at`)
}

// ListByType lista las categorías de un tipo, acotadas por limit.
func (r *CategoryRepo) ListByType(typeID string, limit int) ([]*entity.Category, error) {
	return r.list(
		`SELECT id, title, type_id, created_at, updated_at FROM categories WHERE type_id = $1 ORDER BY created_at LIMIT $2`,
		typeID, limit,
	)
}

func (r *CategoryRepo) list(query string, args ...any) ([]*entity.Category, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Title, &c.TypeID, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza título y tipo de una categoría.
func (r *CategoryRepo) Update(category *entity.Category) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE categories SET title = $2, type_id = $3, updated_at = $4 WHERE id = $1`,
		category.ID, category.Title, category.TypeID, category.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

// Delete elimina una categoría; arrastra subcategorías y registros.
func (r *CategoryRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}
