package entity

import "time"

// Type tipo de operación, raíz de la jerarquía (ej. "income", "expense").
type Type struct {
	ID        string
	Title     string // único
	CreatedAt time.Time
	UpdatedAt time.Time
}
