package entity

import "time"

// Category categoría de operación; pertenece a exactamente un Type.
type Category struct {
	ID        string
	Title     string // único
	TypeID    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
