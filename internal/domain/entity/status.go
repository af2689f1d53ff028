package entity

import "time"

// Status estado de flujo de un registro (ej. "business", "personal").
// Independiente de la jerarquía Type → Category → Subcategory.
type Status struct {
	ID        string
	Title     string // único
	CreatedAt time.Time
	UpdatedAt time.Time
}
