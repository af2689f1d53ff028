// Package memory implementa los puertos de persistencia sobre slices en
// memoria, con la misma semántica de filtrado y cascada que el adaptador de
// PostgreSQL. Se usa en tests y sirve de referencia ejecutable del contrato.
package memory

import (
	"sync"

	"github.com/jhoicas/flujo-api/internal/domain"
	"github.com/jhoicas/flujo-api/internal/domain/entity"
	"github.com/jhoicas/flujo-api/internal/domain/repository"
)

// Store contiene todas las tablas. Los repos que expone comparten el mismo
// mutex, así las cascadas entre tablas son atómicas.
type Store struct {
	mu            sync.Mutex
	statuses      []*entity.Status
	types         []*entity.Type
	categories    []*entity.Category
	subcategories []*entity.Subcategory
	records       []*entity.Record
	users         []*entity.User
}

// NewStore crea un almacén vacío.
func NewStore() *Store { return &Store{} }

// Statuses devuelve el repositorio de estados.
func (s *Store) Statuses() repository.StatusRepository { return &statusRepo{s} }

// Types devuelve el repositorio de tipos.
func (s *Store) Types() repository.TypeRepository { return &typeRepo{s} }

// Categories devuelve el repositorio de categorías.
func (s *Store) Categories() repository.CategoryRepository { return &categoryRepo{s} }

// Subcategories devuelve el repositorio de subcategorías.
func (s *Store) Subcategories() repository.SubcategoryRepository { return &subcategoryRepo{s} }

// Records devuelve el repositorio de registros.
func (s *Store) Records() repository.RecordRepository { return &recordRepo{s} }

// Users devuelve el repositorio de usuarios.
func (s *Store) Users() repository.UserRepository { return &userRepo{s} }

// ── Status ────────────────────────────────────────────────────────────────────

type statusRepo struct{ s *Store }

func (r *statusRepo) Create(status *entity.Status) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, e := range r.s.statuses {
		if e.Title == status.Title {
			return domain.ErrDuplicate
		}
	}
	cp := *status
	r.s.statuses = append(r.s.statuses, &cp)
	return nil
}

func (r *statusRepo) GetByID(id string) (*entity.Status, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, e := range r.s.statuses {
		if e.ID == id {
			cp := *e
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *statusRepo) GetByTitle(title string) (*entity.Status, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, e := range r.s.statuses {
		if e.Title == title {
			cp := *e
			return &cp, nil
		}
	}
	return nil, domain.NewNotFound("Status", title)
}

func (r *statusRepo) List() ([]*entity.Status, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Status, 0, len(r.s.statuses))
	for _, e := range r.s.statuses {
		cp := *e
		out = append(out, &cp)
	}
	return out, nil
}

func (r *statusRepo) Update(status *entity.Status) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, e := range r.s.statuses {
		if e.ID == status.ID {
			cp := *status
			r.s.statuses[i] = &cp
			return nil
		}
	}
	return nil
}

func (r *statusRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.statuses = deleteByID(r.s.statuses, func(e *entity.Status) bool { return e.ID == id })
	r.s.records = deleteByID(r.s.records, func(e *entity.Record) bool { return e.StatusID == id })
	return nil
}

// ── Type ──────────────────────────────────────────────────────────────────────

type typeRepo struct{ s *Store }

func (r *typeRepo) Create(t *entity.Type) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, e := range r.s.types {
		if e.Title == t.Title {
			return domain.ErrDuplicate
		}
	}
	cp := *t
	r.s.types = append(r.s.types, &cp)
	return nil
}

func (r *typeRepo) GetByID(id string) (*entity.Type, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, e := range r.s.types {
		if e.ID == id {
			cp := *e
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *typeRepo) GetByTitle(title string) (*entity.Type, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, e := range r.s.types {
		if e.Title == title {
			cp := *e
			return &cp, nil
		}
	}
	return nil, domain.NewNotFound("Type", title)
}

func (r *typeRepo) List() ([]*entity.Type, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Type, 0, len(r.s.types))
	for _, e := range r.s.types {
		cp := *e
		out = append(out, &cp)
	}
	return out, nil
}

func (r *typeRepo) Update(t *entity.Type) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, e := range r.s.types {
		if e.ID == t.ID {
			cp := *t
			r.s.types[i] = &cp
			return nil
		}
	}
	return nil
}

func (r *typeRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.types = deleteByID(r.s.types, func(e *entity.Type) bool { return e.ID == id })
	var catIDs []string
	for _, c := range r.s.categories {
		if c.TypeID == id {
			catIDs = append(catIDs, c.ID)
		}
	}
	r.s.deleteCategoriesLocked(catIDs)
	r.s.records = deleteByID(r.s.records, func(e *entity.Record) bool { return e.TypeID == id })
	return nil
}

// ── Category ──────────────────────────────────────────────────────────────────

type categoryRepo struct{ s *Store }

func (r *categoryRepo) Create(category *entity.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, e := range r.s.categories {
		if e.Title == category.Title {
			return domain.ErrDuplicate
		}
	}
	cp := *category
	r.s.categories = append(r.s.categories, &cp)
	return nil
}

func (r *categoryRepo) GetByID(id string) (*entity.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, e := range r.s.categories {
		if e.ID == id {
			cp := *e
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *categoryRepo) GetByTitle(title string) (*entity.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, e := range r.s.categories {
		if e.Title == title {
			cp := *e
			return &cp, nil
		}
	}
	return nil, domain.NewNotFound("Category", title)
}

func (r *categoryRepo) List() ([]*entity.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Category, 0, len(r.s.categories))
	for _, e := range r.s.categories {
		cp := *e
		out = append(out, &cp)
	}
	return out, nil
}

func (r *categoryRepo) ListByType(typeID string, limit int) ([]*entity.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Category
	for _, e := range r.s.categories {
		if e.TypeID != typeID {
			continue
		}
		cp := *e
		out = append(out, &cp)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

func (r *categoryRepo) Update(category *entity.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, e := range r.s.categories {
		if e.ID == category.ID {
			cp := *category
			r.s.categories[i] = &cp
			return nil
		}
	}
	return nil
}

func (r *categoryRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.deleteCategoriesLocked([]string{id})
	return nil
}

// deleteCategoriesLocked elimina categorías y arrastra subcategorías y
// registros dependientes. Requiere el mutex tomado.
func (s *Store) deleteCategoriesLocked(ids []string) {
	inSet := func(id string) bool {
		for _, v := range ids {
			if v == id {
				return true
			}
		}
		return false
	}
	var subIDs []string
	for _, sc := range s.subcategories {
		if inSet(sc.CategoryID) {
			subIDs = append(subIDs, sc.ID)
		}
	}
	s.categories = deleteByID(s.categories, func(e *entity.Category) bool { return inSet(e.ID) })
	s.subcategories = deleteByID(s.subcategories, func(e *entity.Subcategory) bool { return inSet(e.CategoryID) })
	s.records = deleteByID(s.records, func(e *entity.Record) bool {
		if inSet(e.CategoryID) {
			return true
		}
		for _, v := range subIDs {
			if v == e.SubcategoryID {
				return true
			}
		}
		return false
	})
}

// ── Subcategory ───────────────────────────────────────────────────────────────

type subcategoryRepo struct{ s *Store }

func (r *subcategoryRepo) Create(subcategory *entity.Subcategory) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, e := range r.s.subcategories {
		if e.Title == subcategory.Title {
			return domain.ErrDuplicate
		}
	}
	cp := *subcategory
	r.s.subcategories = append(r.s.subcategories, &cp)
	return nil
}

func (r *subcategoryRepo) GetByID(id string) (*entity.Subcategory, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, e := range r.s.subcategories {
		if e.ID == id {
			cp := *e
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *subcategoryRepo) GetByTitle(title string) (*entity.Subcategory, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, e := range r.s.subcategories {
		if e.Title == title {
			cp := *e
			return &cp, nil
		}
	}
	return nil, domain.NewNotFound("Subcategory", title)
}

func (r *subcategoryRepo) List() ([]*entity.Subcategory, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Subcategory, 0, len(r.s.subcategories))
	for _, e := range r.s.subcategories {
		cp := *e
		out = append(out, &cp)
	}
	return out, nil
}

func (r *subcategoryRepo) ListByCategory(categoryID string, limit int) ([]*entity.Subcategory, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Subcategory
	for _, e := range r.s.subcategories {
		if e.CategoryID != categoryID {
			continue
		}
		cp := *e
		out = append(out, &cp)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

func (r *subcategoryRepo) Update(subcategory *entity.Subcategory) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, e := range r.s.subcategories {
		if e.ID == subcategory.ID {
			cp := *subcategory
			r.s.subcategories[i] = &cp
			return nil
		}
	}
	return nil
}

func (r *subcategoryRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.subcategories = deleteByID(r.s.subcategories, func(e *entity.Subcategory) bool { return e.ID == id })
	r.s.records = deleteByID(r.s.records, func(e *entity.Record) bool { return e.SubcategoryID == id })
	return nil
}

// ── Record ────────────────────────────────────────────────────────────────────

type recordRepo struct{ s *Store }

func (r *recordRepo) Create(record *entity.Record) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *record
	r.s.records = append(r.s.records, &cp)
	return nil
}

func (r *recordRepo) GetByID(id string) (*entity.RecordDetail, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, e := range r.s.records {
		if e.ID == id {
			return r.s.detailLocked(e), nil
		}
	}
	return nil, nil
}

// Filter replica la semántica del adaptador SQL: AND sobre los criterios
// presentes, títulos por igualdad exacta y rango de fechas inclusivo.
func (r *recordRepo) Filter(f repository.RecordFilter) ([]*entity.RecordDetail, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.RecordDetail
	for _, e := range r.s.records {
		if e.Date.After(f.DateTo) {
			continue
		}
		if f.DateFrom != nil && e.Date.Before(*f.DateFrom) {
			continue
		}
		d := r.s.detailLocked(e)
		if f.Status != "" && d.StatusTitle != f.Status {
			continue
		}
		if f.Type != "" && d.TypeTitle != f.Type {
			continue
		}
		if f.Category != "" && d.CategoryTitle != f.Category {
			continue
		}
		if f.Subcategory != "" && d.SubcategoryTitle != f.Subcategory {
			continue
		}
		out = append(out, d)
	}
	return out, nil
}

func (r *recordRepo) Update(record *entity.Record) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, e := range r.s.records {
		if e.ID == record.ID {
			cp := *record
			r.s.records[i] = &cp
			return nil
		}
	}
	return nil
}

func (r *recordRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.records = deleteByID(r.s.records, func(e *entity.Record) bool { return e.ID == id })
	return nil
}

// detailLocked resuelve los títulos relacionados. Requiere el mutex tomado.
func (s *Store) detailLocked(e *entity.Record) *entity.RecordDetail {
	d := &entity.RecordDetail{Record: *e}
	for _, v := range s.statuses {
		if v.ID == e.StatusID {
			d.StatusTitle = v.Title
		}
	}
	for _, v := range s.types {
		if v.ID == e.TypeID {
			d.TypeTitle = v.Title
		}
	}
	for _, v := range s.categories {
		if v.ID == e.CategoryID {
			d.CategoryTitle = v.Title
		}
	}
	for _, v := range s.subcategories {
		if v.ID == e.SubcategoryID {
			d.SubcategoryTitle = v.Title
		}
	}
	return d
}

// ── User ──────────────────────────────────────────────────────────────────────

type userRepo struct{ s *Store }

func (r *userRepo) Create(user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, e := range r.s.users {
		if e.Email == user.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *user
	r.s.users = append(r.s.users, &cp)
	return nil
}

func (r *userRepo) FindByEmail(email string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, e := range r.s.users {
		if e.Email == email {
			cp := *e
			return &cp, nil
		}
	}
	return nil, nil
}

func deleteByID[T any](in []*T, match func(*T) bool) []*T {
	out := in[:0]
	for _, e := range in {
		if !match(e) {
			out = append(out, e)
		}
	}
	return out
}
