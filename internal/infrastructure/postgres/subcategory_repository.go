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

var _ repository.SubcategoryRepository = (*SubcategoryRepo)(nil)

// SubcategoryRepo implementación del puerto SubcategoryRepository sobre PostgreSQL.
type SubcategoryRepo struct {
	q Querier
}

// NewSubcategoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSubcategoryRepository(q Querier) *SubcategoryRepo {
	return &SubcategoryRepo{q: q}
}

// Create persiste una subcategoría nueva. Título duplicado → domain.ErrDuplicate.
func (r *SubcategoryRepo) Create(subcategory *entity.Subcategory) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO subcategories (id, title, category_id, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)`,
		subcategory.ID, subcategory.Title, subcategory.CategoryID, subcategory.CreatedAt, subcategory.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert subcategory: %w", err)
	}
	return nil
}

// GetByID obtiene una subcategoría por ID; (nil, nil) si no existe.
func (r *SubcategoryRepo) GetByID(id string) (*entity.Subcategory, error) {
	var s entity.Subcategory
	err := r.q.QueryRow(context.Background(),
		`SELECT id, title, category_id, created_at, updated_at FROM subcategories WHERE id = $1`, id,
	).Scan(&s.ID, &s.Title, &s.CategoryID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get subcategory: %w", err)
	}
	return &s, nil
}

// GetByTitle resuelve una subcategoría por título exacto; domain.NotFoundError si no existe.
func (r *SubcategoryRepo) GetByTitle(title string) (*entity.Subcategory, error) {
	var s entity.Subcategory
	err := r.q.QueryRow(context.Background(),
		`SELECT id, title, category_id, created_at, updated_at FROM subcategories WHERE title = $1`, title,
	).Scan(&s.ID, &s.Title, &s.CategoryID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFound("Subcategory", title)
		}
		return nil, fmt.Errorf("get subcategory by title: %w", err)
	}
	return &s, nil
}

// List lista todas las subcategorías en orden de inserción.
func (r *SubcategoryRepo) List() ([]*entity.Subcategory, error) {
	return r.list(`SELECT id, title, category_id, created_at, updated_at FROM subcategories ORDER BY created_at`)
}

// ListByCategory lista las subcategorías de una categoría, acotadas por limit.
func (r *SubcategoryRepo) ListByCategory(categoryID string, limit int) ([]*entity.Subcategory, error) {
	return r.list(
		`SELECT id, title, category_id, created_at, updated_at FROM subcategories WHERE category_id = $1 ORDER BY created_at LIMIT $2`,
		categoryID, limit,
	)
}

func (r *SubcategoryRepo) list(query string, args ...any) ([]*entity.Subcategory, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list subcategories: %w", err)
	}
	defer rows.Close()
	var list []*entity.Subcategory
	for rows.Next() {
		var s entity.Subcategory
		if err := rows.Scan(&s.ID, &s.Title, &s.CategoryID, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan subcategory: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Update actualiza título y categoría de una subcategoría.
func (r *SubcategoryRepo) Update(subcategory *entity.Subcategory) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE subcategories SET title = $2, category_id = $3, updated_at = $4 WHERE id = $1`,
		subcategory.ID, subcategory.Title, subcategory.CategoryID, subcategory.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update subcategory: %w", err)
	}
	return nil
}

// Delete elimina una subcategoría; arrastra sus registros.
func (r *SubcategoryRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM subcategories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete subcategory: %w", err)
	}
	return nil
}
