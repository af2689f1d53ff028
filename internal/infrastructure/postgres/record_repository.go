package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/flujo-api/internal/domain/entity"
	"github.com/jhoicas/flujo-api/internal/domain/repository"
)

var _ repository.RecordRepository = (*RecordRepo)(nil)

// RecordRepo implementación del puerto RecordRepository sobre PostgreSQL.
// Las lecturas hacen JOIN con las cuatro tablas de taxonomía para devolver
// los títulos ya resueltos.
type RecordRepo struct {
	q Querier
}

// NewRecordRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRecordRepository(q Querier) *RecordRepo {
	return &RecordRepo{q: q}
}

const recordDetailColumns = `
	r.id, r.date, r.status_id, r.type_id, r.category_id, r.subcategory_id,
	r.amount, r.comment, r.created_at, r.updated_at,
	s.title, t.title, c.title, sc.title`

const recordDetailJoins = `
	FROM records r
	JOIN statuses s ON s.id = r.status_id
	JOIN types t ON t.id = r.type_id
	JOIN categories c ON c.id = r.category_id
	JOIN subcategories sc ON sc.id = r.subcategory_id`

// Create persiste un registro nuevo.
func (r *RecordRepo) Create(record *entity.Record) error {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO records (id, date, status_id, type_id, category_id, subcategory_id, amount, comment, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		record.ID, record.Date, record.StatusID, record.TypeID, record.CategoryID,
		record.SubcategoryID, record.Amount, record.Comment, record.CreatedAt, record.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert record: %w", err)
	}
	return nil
}

// GetByID obtiene un registro con títulos resueltos; (nil, nil) si no existe.
func (r *RecordRepo) GetByID(id string) (*entity.RecordDetail, error) {
	var d entity.RecordDetail
	err := r.q.QueryRow(context.Background(),
		`SELECT`+recordDetailColumns+recordDetailJoins+` WHERE r.id = $1`, id,
	).Scan(
		&d.ID, &d.Date, &d.StatusID, &d.TypeID, &d.CategoryID, &d.SubcategoryID,
		&d.Amount, &d.Comment, &d.CreatedAt, &d.UpdatedAt,
		&d.StatusTitle, &d.TypeTitle, &d.CategoryTitle, &d.SubcategoryTitle,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get record: %w", err)
	}
	return &d, nil
}

// Filter devuelve los registros que cumplen todos los criterios presentes.
// Los filtros de título comparan por igualdad exacta contra la tabla
// relacionada; la fecha es siempre date <= DateTo y, si hay DateFrom,
// también date >= DateFrom (rango inclusivo). Orden de inserción.
func (r *RecordRepo) Filter(f repository.RecordFilter) ([]*entity.RecordDetail, error) {
	var (
		conds []string
		args  []any
	)
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	add("r.date <= $%d", f.DateTo)
	if f.DateFrom != nil {
		add("r.date >= $%d", *f.DateFrom)
	}
	if f.Status != "" {
		add("s.title = $%d", f.Status)
	}
	if f.Type != "" {
		add("t.title = $%d", f.Type)
	}
	if f.Category != "" {
		add("c.title = $%d", f.Category)
	}
	if f.Subcategory != "" {
		add("sc.title = $%d", f.Subcategory)
	}

	query := `SELECT` + recordDetailColumns + recordDetailJoins +
		` WHERE ` + strings.Join(conds, " AND ") +
		` ORDER BY r.created_at`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("filter records: %w", err)
	}
	defer rows.Close()

	var list []*entity.RecordDetail
	for rows.Next() {
		var d entity.RecordDetail
		if err := rows.Scan(
			&d.ID, &d.Date, &d.StatusID, &d.TypeID, &d.CategoryID, &d.SubcategoryID,
			&d.Amount, &d.Comment, &d.CreatedAt, &d.UpdatedAt,
			&d.StatusTitle, &d.TypeTitle, &d.CategoryTitle, &d.SubcategoryTitle,
		); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// Update actualiza un registro existente. La columna date no se toca nunca.
func (r *RecordRepo) Update(record *entity.Record) error {
	_, err := r.q.Exec(context.Background(), `
		UPDATE records
		SET status_id = $2, type_id = $3, category_id = $4, subcategory_id = $5,
		    amount = $6, comment = $7, updated_at = $8
		WHERE id = $1`,
		record.ID, record.StatusID, record.TypeID, record.CategoryID,
		record.SubcategoryID, record.Amount, record.Comment, record.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update record: %w", err)
	}
	return nil
}

// Delete elimina un registro por ID.
func (r *RecordRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete record: %w", err)
	}
	return nil
}
