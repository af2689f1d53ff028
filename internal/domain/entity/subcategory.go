package entity

import "time"

// Subcategory subcategoría de operación; pertenece a exactamente una Category.
type Subcategory struct {
	ID         string
	Title      string // único
	CategoryID string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
