package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrHierarchyMismatch  = errors.New("jerarquía inconsistente")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrUnauthorized       = errors.New("no autorizado")
)

// NotFoundError indica que una búsqueda por título o por ID no encontró filas.
// Kind es el nombre de la entidad (Status, Type, Category, Subcategory, Record)
// y Key el título o ID buscado.
type NotFoundError struct {
	Kind string
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q no existe", e.Kind, e.Key)
}

// Unwrap permite errors.Is(err, ErrNotFound).
func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// NewNotFound construye un NotFoundError.
func NewNotFound(kind, key string) error {
	return &NotFoundError{Kind: kind, Key: key}
}

// Violaciones concretas de la jerarquía Type → Category → Subcategory.
// Ambas envuelven ErrHierarchyMismatch para errors.Is. La de categoría/tipo
// se reporta siempre antes que la de subcategoría/categoría.
var (
	ErrCategoryTypeMismatch        = fmt.Errorf("%w: la categoría no pertenece al tipo de operación seleccionado", ErrHierarchyMismatch)
	ErrSubcategoryCategoryMismatch = fmt.Errorf("%w: la subcategoría no pertenece a la categoría seleccionada", ErrHierarchyMismatch)
)
